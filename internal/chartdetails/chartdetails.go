// Package chartdetails is the playlist screen: it lists the tracks of one
// playlist, remembers which one is playing, and emits navigation and player
// intents.
package chartdetails

import (
	"context"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/route"
)

// Output is an event emitted to the owner of the component.
type Output interface {
	detailsOutput()
}

// GoBack asks the owner to leave the screen.
type GoBack struct{}

// PlayAllSelected asks the owner to play Tracks.
type PlayAllSelected struct {
	Tracks []catalog.Track
}

// TrackSelected asks the owner to jump playback to TrackID.
type TrackSelected struct {
	TrackID string
}

// PlayerEvent hands the owner a sink for future track updates.
type PlayerEvent struct {
	Sink route.TrackSink
}

func (GoBack) detailsOutput()          {}
func (PlayAllSelected) detailsOutput() {}
func (TrackSelected) detailsOutput()   {}
func (PlayerEvent) detailsOutput()     {}

// Params are fixed at construction.
type Params struct {
	PlaylistID     string
	PlayingTrackID string
	// Subscribe registers a sink for player track updates. It is resolved by
	// the owner from the screen's resume handle; nil means no subscription.
	Subscribe func(route.TrackSink)
}

// LoadResult is the outcome of a playlist fetch.
type LoadResult struct {
	Playlist catalog.Playlist
	Tracks   []catalog.Track
	Err      error
}

// Component holds the details screen state.
type Component struct {
	client         catalog.Client
	output         func(Output)
	playlistID     string
	playingTrackID string
	playlist       catalog.Playlist
	tracks         []catalog.Track
	cursor         int
	loading        bool
	err            error
	destroyed      bool
}

// Verify Component implements route.TrackSink at compile time.
var _ route.TrackSink = (*Component)(nil)

// New creates the screen and subscribes it to player track updates.
func New(p Params, client catalog.Client, output func(Output)) *Component {
	playing := p.PlayingTrackID
	if playing == "" {
		playing = route.NoTrack
	}
	c := &Component{
		client:         client,
		output:         output,
		playlistID:     p.PlaylistID,
		playingTrackID: playing,
		loading:        true,
	}
	if p.Subscribe != nil {
		p.Subscribe(c)
	}
	return c
}

// Load fetches the playlist and its tracks. Safe off the UI goroutine.
func (c *Component) Load(ctx context.Context) LoadResult {
	pl, err := c.client.Playlist(ctx, c.playlistID)
	if err != nil {
		return LoadResult{Err: err}
	}
	tracks, err := c.client.PlaylistTracks(ctx, c.playlistID)
	if err != nil {
		return LoadResult{Playlist: pl, Err: err}
	}
	return LoadResult{Playlist: pl, Tracks: tracks}
}

// Apply stores the result of Load, places the cursor on the playing track,
// and re-announces the screen as a track update sink.
func (c *Component) Apply(res LoadResult) {
	if c.destroyed {
		return
	}
	c.loading = false
	c.playlist = res.Playlist
	c.err = res.Err
	if res.Err != nil {
		return
	}
	c.tracks = res.Tracks
	c.focusPlaying()
	c.output(PlayerEvent{Sink: c})
}

// OnTrackUpdated records the track now playing so the screen resumes there.
func (c *Component) OnTrackUpdated(trackID string) {
	if c.destroyed {
		return
	}
	c.playingTrackID = trackID
	c.focusPlaying()
}

func (c *Component) focusPlaying() {
	if i := catalog.IndexOf(c.tracks, c.playingTrackID); i >= 0 {
		c.cursor = i
	}
}

func (c *Component) PlaylistID() string { return c.playlistID }

func (c *Component) Playlist() catalog.Playlist { return c.playlist }

func (c *Component) Tracks() []catalog.Track { return c.tracks }

// PlayingTrackID returns the remembered playing track, or route.NoTrack.
func (c *Component) PlayingTrackID() string { return c.playingTrackID }

func (c *Component) Err() error { return c.err }

func (c *Component) Loading() bool { return c.loading }

func (c *Component) Cursor() int { return c.cursor }

// Move shifts the cursor by delta, clamped to the list.
func (c *Component) Move(delta int) {
	c.cursor += delta
	if c.cursor >= len(c.tracks) {
		c.cursor = len(c.tracks) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// Back asks to leave the screen.
func (c *Component) Back() {
	c.emit(GoBack{})
}

// PlayAll asks to play every track. No-op until tracks are loaded.
func (c *Component) PlayAll() {
	if len(c.tracks) == 0 {
		return
	}
	tracks := make([]catalog.Track, len(c.tracks))
	copy(tracks, c.tracks)
	c.emit(PlayAllSelected{Tracks: tracks})
}

// SelectCurrent asks to jump playback to the track under the cursor.
func (c *Component) SelectCurrent() {
	if len(c.tracks) == 0 {
		return
	}
	c.emit(TrackSelected{TrackID: c.tracks[c.cursor].ID})
}

func (c *Component) emit(o Output) {
	if c.destroyed {
		return
	}
	c.output(o)
}

// Destroy detaches the component; it neither emits nor records updates
// afterwards.
func (c *Component) Destroy() {
	c.destroyed = true
}

// Destroyed reports whether Destroy was called.
func (c *Component) Destroyed() bool { return c.destroyed }
