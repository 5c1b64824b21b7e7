// Package route defines the configurations the root controller navigates
// between. Configurations are plain values: everything in a stack Config can
// be written to disk and read back.
package route

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

// NoTrack is the playing-track sentinel meaning nothing has played yet.
const NoTrack = "-1"

// Kind identifies a stack screen.
type Kind string

const (
	// KindDashboard is the chart catalog, the permanent stack root.
	KindDashboard Kind = "dashboard"
	// KindDetails shows the tracks of one playlist.
	KindDetails Kind = "details"
)

func (k Kind) String() string { return string(k) }

// ParseKind converts a stored kind back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDashboard, KindDetails:
		return Kind(s), nil
	}
	return "", errors.Newf("unknown screen kind %q", s)
}

var (
	ErrDashboardPayload = errors.New("dashboard configuration carries no payload")
	ErrMissingPlaylist  = errors.New("details configuration needs a playlist id")
	ErrMissingHandle    = errors.New("details configuration needs a resume handle")
)

// Config is one entry of the navigation stack.
//
// ResumeHandle names the resume binding registered by the root controller
// when the Details screen was pushed. The binding itself is never stored
// here; it is looked up when the screen is created and re-registered after
// a restore.
type Config struct {
	Kind           Kind
	PlaylistID     string
	PlayingTrackID string
	ResumeHandle   string
}

// Dashboard returns the root configuration.
func Dashboard() Config {
	return Config{Kind: KindDashboard}
}

// Details returns a playlist screen configuration.
func Details(playlistID, playingTrackID, handle string) Config {
	if playingTrackID == "" {
		playingTrackID = NoTrack
	}
	return Config{
		Kind:           KindDetails,
		PlaylistID:     playlistID,
		PlayingTrackID: playingTrackID,
		ResumeHandle:   handle,
	}
}

// Validate checks the payload invariants of the configuration kind.
func (c Config) Validate() error {
	switch c.Kind {
	case KindDashboard:
		if c.PlaylistID != "" || c.PlayingTrackID != "" || c.ResumeHandle != "" {
			return ErrDashboardPayload
		}
	case KindDetails:
		if c.PlaylistID == "" {
			return ErrMissingPlaylist
		}
		if c.ResumeHandle == "" {
			return ErrMissingHandle
		}
	default:
		return errors.Newf("unknown screen kind %q", c.Kind)
	}
	return nil
}

func (c Config) String() string {
	if c.Kind == KindDetails {
		return fmt.Sprintf("details(%s, %s)", c.PlaylistID, c.PlayingTrackID)
	}
	return c.Kind.String()
}

// PlayerConfig is the overlay configuration. It is never persisted: the
// overlay always starts dismissed.
type PlayerConfig struct {
	Tracks []catalog.Track
}

// TrackIDs returns the ids of the configured tracks.
func (p PlayerConfig) TrackIDs() []string {
	return catalog.TrackIDs(p.Tracks)
}

// TrackSink receives the id of a track.
// Details screens implement it to follow playback; players register one to
// accept track selections.
type TrackSink interface {
	OnTrackUpdated(trackID string)
}

// TrackSinkFunc adapts a function to TrackSink.
type TrackSinkFunc func(trackID string)

func (f TrackSinkFunc) OnTrackUpdated(trackID string) { f(trackID) }
