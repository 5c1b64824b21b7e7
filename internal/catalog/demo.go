package catalog

import "time"

// Demo returns a Memory client populated with a couple of sample charts,
// used when the app runs without Spotify credentials.
func Demo() *Memory {
	m := NewMemory()
	m.AddPlaylist(
		Playlist{ID: "demo-top", Name: "Demo Top 5", Description: "Sample chart", Owner: "chartwaves", Followers: 1200},
		Track{ID: "demo-1", Name: "First Light", Artists: []string{"Aster"}, Album: "Dawn", Duration: 3*time.Minute + 12*time.Second},
		Track{ID: "demo-2", Name: "Night Drive", Artists: []string{"Kilo", "Vera"}, Album: "Roads", Duration: 4*time.Minute + 1*time.Second},
		Track{ID: "demo-3", Name: "Paper Boats", Artists: []string{"Lumen"}, Album: "Harbour", Duration: 2*time.Minute + 48*time.Second},
		Track{ID: "demo-4", Name: "Static", Artists: []string{"Aster"}, Album: "Dawn", Duration: 3*time.Minute + 33*time.Second},
		Track{ID: "demo-5", Name: "Low Tide", Artists: []string{"Marlow"}, Album: "Coast", Duration: 5*time.Minute + 5*time.Second},
	)
	m.AddPlaylist(
		Playlist{ID: "demo-new", Name: "Demo New Releases", Description: "Fresh sample tracks", Owner: "chartwaves", Followers: 87},
		Track{ID: "demo-6", Name: "Glass", Artists: []string{"Oren"}, Album: "Prism", Duration: 3*time.Minute + 20*time.Second},
		Track{ID: "demo-7", Name: "Wires", Artists: []string{"Tamsin"}, Album: "Grid", Duration: 3*time.Minute + 58*time.Second},
	)
	return m
}
