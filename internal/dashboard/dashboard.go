// Package dashboard is the chart catalog screen. It loads the playlists from
// the catalog client and reports the one the user picks.
package dashboard

import (
	"context"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

// Output is an event emitted to the owner of the component.
type Output interface {
	dashboardOutput()
}

// PlaylistSelected asks the owner to open a playlist.
type PlaylistSelected struct {
	PlaylistID string
}

func (PlaylistSelected) dashboardOutput() {}

// LoadResult is the outcome of a catalog fetch.
type LoadResult struct {
	Playlists []catalog.Playlist
	Err       error
}

// Component holds the dashboard screen state.
type Component struct {
	client    catalog.Client
	output    func(Output)
	playlists []catalog.Playlist
	cursor    int
	loading   bool
	err       error
	destroyed bool
}

// New creates a dashboard that reports selections through output.
func New(client catalog.Client, output func(Output)) *Component {
	return &Component{
		client:  client,
		output:  output,
		loading: true,
	}
}

// Load fetches the chart playlists. It only reads immutable fields, so it
// may run off the UI goroutine; hand the result to Apply.
func (c *Component) Load(ctx context.Context) LoadResult {
	playlists, err := c.client.Charts(ctx)
	return LoadResult{Playlists: playlists, Err: err}
}

// Apply stores the result of Load.
func (c *Component) Apply(res LoadResult) {
	c.loading = false
	c.err = res.Err
	if res.Err != nil {
		return
	}
	c.playlists = res.Playlists
	c.clampCursor()
}

func (c *Component) Playlists() []catalog.Playlist { return c.playlists }

// Err returns the last fetch failure, if any.
func (c *Component) Err() error { return c.err }

func (c *Component) Loading() bool { return c.loading }

func (c *Component) Cursor() int { return c.cursor }

// Move shifts the cursor by delta, clamped to the list.
func (c *Component) Move(delta int) {
	c.cursor += delta
	c.clampCursor()
}

func (c *Component) clampCursor() {
	if c.cursor >= len(c.playlists) {
		c.cursor = len(c.playlists) - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
}

// Selected returns the playlist under the cursor.
func (c *Component) Selected() (catalog.Playlist, bool) {
	if len(c.playlists) == 0 {
		return catalog.Playlist{}, false
	}
	return c.playlists[c.cursor], true
}

// SelectCurrent opens the playlist under the cursor.
func (c *Component) SelectCurrent() {
	if p, ok := c.Selected(); ok {
		c.Select(p.ID)
	}
}

// Select opens the playlist with id.
func (c *Component) Select(playlistID string) {
	if c.destroyed || playlistID == "" {
		return
	}
	c.output(PlaylistSelected{PlaylistID: playlistID})
}

// Destroy detaches the component; it emits nothing afterwards.
func (c *Component) Destroy() {
	c.destroyed = true
}
