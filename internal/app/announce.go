package app

import (
	"github.com/charmbracelet/log"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/notify"
	"github.com/llehouerou/chartwaves/internal/root"
)

// announcer mirrors the overlay's current track in a desktop notification.
type announcer struct {
	np  *notify.NowPlaying
	log *log.Logger
}

func newAnnouncer(n notify.Notifier, logger *log.Logger) *announcer {
	if n == nil {
		return nil
	}
	return &announcer{np: notify.NewNowPlaying(n), log: logger}
}

func (a *announcer) update(o root.ChildOverlay) {
	if a == nil {
		return
	}
	var err error
	if t, ok := playing(o); ok {
		err = a.np.Update(t)
	} else {
		err = a.np.Clear()
	}
	if err != nil {
		a.log.Debug("now playing notification", "err", err)
	}
}

func playing(o root.ChildOverlay) (catalog.Track, bool) {
	if !o.Active() {
		return catalog.Track{}, false
	}
	return o.Player.Current()
}
