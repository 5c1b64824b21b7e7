package app

import (
	"time"

	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
	"github.com/llehouerou/chartwaves/internal/player"
)

// TickMsg is sent periodically to refresh the progress bar.
type TickMsg time.Time

// ChartsLoadedMsg carries a dashboard fetch back to the UI goroutine.
type ChartsLoadedMsg struct {
	Screen *dashboard.Component
	Result dashboard.LoadResult
}

// PlaylistLoadedMsg carries a details fetch back to the UI goroutine.
type PlaylistLoadedMsg struct {
	Screen *chartdetails.Component
	Result chartdetails.LoadResult
}

// PlayerEventMsg carries an audio engine event to the UI goroutine.
type PlayerEventMsg struct {
	Event player.Event
}
