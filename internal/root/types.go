package root

import (
	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
	"github.com/llehouerou/chartwaves/internal/playerview"
	"github.com/llehouerou/chartwaves/internal/route"
)

// Child is a stack entry: its configuration and the live screen built from it.
// Exactly one of Dashboard and Details is set, matching Config.Kind.
type Child struct {
	Config    route.Config
	Dashboard *dashboard.Component
	Details   *chartdetails.Component
}

func (c Child) destroy() {
	switch {
	case c.Dashboard != nil:
		c.Dashboard.Destroy()
	case c.Details != nil:
		c.Details.Destroy()
	}
}

// ChildStack is the observable view of the navigation stack, back to front.
type ChildStack struct {
	Items []Child
}

// Active returns the visible screen.
func (s ChildStack) Active() Child {
	return s.Items[len(s.Items)-1]
}

// Configs returns the configurations, back to front.
func (s ChildStack) Configs() []route.Config {
	out := make([]route.Config, len(s.Items))
	for i, c := range s.Items {
		out[i] = c.Config
	}
	return out
}

// ChildOverlay is the observable view of the overlay slot.
// Both fields are nil when nothing is shown.
type ChildOverlay struct {
	Config *route.PlayerConfig
	Player *playerview.Component
}

// Active reports whether the player is shown.
func (o ChildOverlay) Active() bool {
	return o.Player != nil
}

// PlaybackState is a copy of the playback state shared between screens.
type PlaybackState struct {
	// CurrentTrackID is the last track the player reported, or route.NoTrack.
	CurrentTrackID string
	// PlayerPaused is true after the player reported a pause and until it
	// reports playing again or is dismissed.
	PlayerPaused bool
	// HasPendingResume is true when a screen waits for track updates.
	HasPendingResume bool
	// HasTrackSubscriber is true when a player accepts track selections.
	HasTrackSubscriber bool
}

// Snapshot is the persistable part of the controller state. Resume bindings
// and the overlay are never part of it.
type Snapshot struct {
	Stack          []route.Config
	CurrentTrackID string
}

// BackPolicy decides what the back button does while the player is shown.
type BackPolicy string

const (
	// BackIgnoresOverlay leaves the player alone; back only pops the stack.
	BackIgnoresOverlay BackPolicy = "ignore"
	// BackDismissesOverlay closes the player before popping anything.
	BackDismissesOverlay BackPolicy = "dismiss"
)

// ParseBackPolicy converts a configuration string to a BackPolicy.
// Unknown values fall back to BackIgnoresOverlay.
func ParseBackPolicy(s string) BackPolicy {
	if BackPolicy(s) == BackDismissesOverlay {
		return BackDismissesOverlay
	}
	return BackIgnoresOverlay
}
