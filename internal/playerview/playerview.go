// Package playerview is the overlay player: it drives the audio engine
// through one track list and reports playback changes to its owner.
package playerview

import (
	"time"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/route"
)

// Output is an event emitted to the owner of the component.
type Output interface {
	playerOutput()
}

// Paused reports that playback was paused.
type Paused struct{}

// Played reports that playback started or resumed.
type Played struct{}

// TrackUpdated reports that the current track changed.
type TrackUpdated struct {
	TrackID string
}

// RegisterCallbacks hands the owner a sink that jumps playback to a track.
type RegisterCallbacks struct {
	Sink route.TrackSink
}

// Closed asks the owner to dismiss the player.
type Closed struct{}

func (Paused) playerOutput()            {}
func (Played) playerOutput()            {}
func (TrackUpdated) playerOutput()      {}
func (RegisterCallbacks) playerOutput() {}
func (Closed) playerOutput()            {}

// Component plays a fixed track list.
type Component struct {
	tracks    []catalog.Track
	engine    player.Interface
	output    func(Output)
	index     int
	err       error
	destroyed bool
}

// New registers the player's track selection sink with the owner and starts
// the first track.
func New(tracks []catalog.Track, engine player.Interface, output func(Output)) *Component {
	c := &Component{
		tracks: tracks,
		engine: engine,
		output: output,
		index:  -1,
	}
	c.emit(RegisterCallbacks{Sink: route.TrackSinkFunc(c.JumpTo)})
	if len(tracks) > 0 {
		c.startAt(0)
	}
	return c
}

// startAt makes index current and asks the engine to play it. The track is
// current even when the engine fails; the failure is kept in Err.
func (c *Component) startAt(index int) {
	c.index = index
	t := c.tracks[index]
	c.err = c.engine.Play(t.PreviewURL)
	c.emit(TrackUpdated{TrackID: t.ID})
	if c.err == nil {
		c.emit(Played{})
	}
}

// Tracks returns the track list.
func (c *Component) Tracks() []catalog.Track { return c.tracks }

// Current returns the current track.
func (c *Component) Current() (catalog.Track, bool) {
	if c.index < 0 || c.index >= len(c.tracks) {
		return catalog.Track{}, false
	}
	return c.tracks[c.index], true
}

// Index returns the position of the current track, or -1.
func (c *Component) Index() int { return c.index }

// Err returns the engine failure for the current track, if any.
func (c *Component) Err() error { return c.err }

func (c *Component) State() player.State { return c.engine.State() }

func (c *Component) Position() time.Duration { return c.engine.Position() }

// Duration prefers the engine's stream length and falls back to the catalog.
func (c *Component) Duration() time.Duration {
	if d := c.engine.Duration(); d > 0 {
		return d
	}
	if t, ok := c.Current(); ok {
		return t.Duration
	}
	return 0
}

// Events forwards the engine's stream outcomes.
func (c *Component) Events() <-chan player.Event { return c.engine.Events() }

// Pause pauses a playing stream.
func (c *Component) Pause() {
	if c.destroyed || c.engine.State() != player.Playing {
		return
	}
	c.engine.Pause()
	c.emit(Paused{})
}

// Play resumes a paused stream, or restarts the current track when stopped.
func (c *Component) Play() {
	if c.destroyed {
		return
	}
	switch c.engine.State() {
	case player.Paused:
		c.engine.Resume()
		c.emit(Played{})
	case player.Stopped:
		if c.index >= 0 {
			c.startAt(c.index)
		}
	case player.Playing:
	}
}

// Toggle switches between playing and paused.
func (c *Component) Toggle() {
	if c.engine.State() == player.Playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Next moves to the following track. It returns false at the end of the list.
func (c *Component) Next() bool {
	if c.destroyed || c.index+1 >= len(c.tracks) {
		return false
	}
	c.startAt(c.index + 1)
	return true
}

// Previous moves to the preceding track. It returns false at the start.
func (c *Component) Previous() bool {
	if c.destroyed || c.index <= 0 {
		return false
	}
	c.startAt(c.index - 1)
	return true
}

// JumpTo plays the track with id. Unknown ids are ignored.
func (c *Component) JumpTo(trackID string) {
	if c.destroyed {
		return
	}
	if i := catalog.IndexOf(c.tracks, trackID); i >= 0 {
		c.startAt(i)
	}
}

// HandleEvent applies an engine event. Events of streams that were replaced
// since, by a skip or a stop, are ignored.
func (c *Component) HandleEvent(ev player.Event) {
	if c.destroyed || ev.Generation != c.engine.Generation() {
		return
	}
	switch ev.Kind {
	case player.Finished:
		c.handleFinished()
	case player.Failed:
		c.err = ev.Err
		c.emit(Paused{})
	}
}

// handleFinished advances to the next track; playback stops after the last.
func (c *Component) handleFinished() {
	if !c.Next() {
		c.engine.Stop()
		c.emit(Paused{})
	}
}

// Close asks the owner to dismiss the player.
func (c *Component) Close() {
	c.emit(Closed{})
}

// Destroy stops the engine. The component emits nothing afterwards.
func (c *Component) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.engine.Stop()
}

// Destroyed reports whether Destroy was called.
func (c *Component) Destroyed() bool { return c.destroyed }

func (c *Component) emit(o Output) {
	if c.destroyed {
		return
	}
	c.output(o)
}
