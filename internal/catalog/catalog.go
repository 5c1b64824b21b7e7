// Package catalog defines the data the network collaborator supplies:
// chart playlists and their tracks, and the client contract used to fetch them.
package catalog

import (
	"context"
	"strings"
	"time"
)

// Track is a playable item of a playlist.
// The navigation core only ever reads ID.
type Track struct {
	ID         string
	Name       string
	Artists    []string
	Album      string
	PreviewURL string
	Duration   time.Duration
}

// ArtistLine joins the artist names for display.
func (t Track) ArtistLine() string {
	return strings.Join(t.Artists, ", ")
}

// Playable reports whether the track has a stream the audio engine can open.
func (t Track) Playable() bool {
	return t.PreviewURL != ""
}

// Playlist is an entry of the chart catalog.
type Playlist struct {
	ID          string
	Name        string
	Description string
	Owner       string
	Followers   int
	ImageURL    string
}

// Client fetches catalog data. Implementations may block on the network and
// must honour ctx cancellation. Failures are reported as *FetchError.
type Client interface {
	Charts(ctx context.Context) ([]Playlist, error)
	Playlist(ctx context.Context, playlistID string) (Playlist, error)
	PlaylistTracks(ctx context.Context, playlistID string) ([]Track, error)
}

// TrackIDs returns the ids of tracks, in order.
func TrackIDs(tracks []Track) []string {
	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}
	return ids
}

// IndexOf returns the position of the track with id, or -1.
func IndexOf(tracks []Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
