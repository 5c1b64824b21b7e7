// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"strings"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a track notification stays up, in ms.
const nowPlayingTimeout = 5000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying keeps a single "now playing" notification up to date. Each new
// track replaces the previous notification.
type NowPlaying struct {
	n       Notifier
	trackID string
	id      uint32
}

// NewNowPlaying wraps n. A nil notifier disables notifications.
func NewNowPlaying(n Notifier) *NowPlaying {
	if n == nil {
		n = stubNotifier{}
	}
	return &NowPlaying{n: n}
}

// Update announces t unless it is already the announced track.
func (p *NowPlaying) Update(t catalog.Track) error {
	if t.ID == p.trackID {
		return nil
	}
	id, err := p.n.Notify(Notification{
		Title:      t.Name,
		Body:       trackBody(t),
		Icon:       "audio-x-generic",
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.id,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		return err
	}
	p.trackID = t.ID
	p.id = id
	return nil
}

// Clear closes the current notification, if any.
func (p *NowPlaying) Clear() error {
	if p.id == 0 {
		p.trackID = ""
		return nil
	}
	id := p.id
	p.id = 0
	p.trackID = ""
	return p.n.Close(id)
}

func trackBody(t catalog.Track) string {
	parts := make([]string, 0, 2)
	if a := t.ArtistLine(); a != "" {
		parts = append(parts, a)
	}
	if t.Album != "" {
		parts = append(parts, t.Album)
	}
	return strings.Join(parts, " - ")
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (stubNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (stubNotifier) Close(_ uint32) error { return nil }
