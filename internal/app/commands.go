package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
)

const fetchTimeout = 30 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// loadChartsCmd runs the dashboard fetch off the UI goroutine.
func loadChartsCmd(ctx context.Context, d *dashboard.Component) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		return ChartsLoadedMsg{Screen: d, Result: d.Load(ctx)}
	}
}

// loadPlaylistCmd runs the details fetch off the UI goroutine.
func loadPlaylistCmd(ctx context.Context, d *chartdetails.Component) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		return PlaylistLoadedMsg{Screen: d, Result: d.Load(ctx)}
	}
}

// WatchPlayerEvents waits for the next engine event: a stream reaching its
// end or failing to load. Manual stops do not notify.
func (m Model) WatchPlayerEvents() tea.Cmd {
	ch := m.engine.Events()
	return func() tea.Msg {
		return PlayerEventMsg{Event: <-ch}
	}
}
