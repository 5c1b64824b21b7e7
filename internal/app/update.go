package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/chartwaves/internal/errmsg"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ChartsLoadedMsg:
		if msg.Result.Err != nil {
			m.log.Error("load charts", "err", msg.Result.Err)
		}
		msg.Screen.Apply(msg.Result)
		return m, m.loadActive()

	case PlaylistLoadedMsg:
		if msg.Result.Err != nil {
			m.log.Error("load playlist", "playlist", msg.Screen.PlaylistID(), "err", msg.Result.Err)
		}
		msg.Screen.Apply(msg.Result)
		return m, m.loadActive()

	case PlayerEventMsg:
		if p := m.player(); p != nil {
			p.HandleEvent(msg.Event)
			m.logPlayerError()
		}
		return m, m.WatchPlayerEvents()

	case TickMsg:
		return m, TickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m.quit()
	}
	m.ErrorMsg = ""

	if !m.handlePlayerKey(msg) {
		m.handleScreenKey(msg)
	}
	return m, m.loadActive()
}

// handlePlayerKey handles keys that act on the overlay and navigation.
func (m *Model) handlePlayerKey(msg tea.KeyMsg) bool {
	p := m.player()
	switch {
	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.back):
		m.ctrl.HandleBackButton()
	case p == nil:
		return false
	case key.Matches(msg, m.keys.toggle):
		p.Toggle()
	case key.Matches(msg, m.keys.next):
		p.Next()
	case key.Matches(msg, m.keys.prev):
		p.Previous()
	case key.Matches(msg, m.keys.close):
		p.Close()
	default:
		return false
	}
	m.logPlayerError()
	return true
}

func (m Model) handleScreenKey(msg tea.KeyMsg) {
	active := m.ctrl.Stack().Get().Active()
	if d := active.Dashboard; d != nil {
		switch {
		case key.Matches(msg, m.keys.up):
			d.Move(-1)
		case key.Matches(msg, m.keys.down):
			d.Move(1)
		case key.Matches(msg, m.keys.enter):
			d.SelectCurrent()
		}
		return
	}

	d := active.Details
	if d == nil {
		return
	}
	switch {
	case key.Matches(msg, m.keys.up):
		d.Move(-1)
	case key.Matches(msg, m.keys.down):
		d.Move(1)
	case key.Matches(msg, m.keys.enter):
		d.SelectCurrent()
		m.logPlayerError()
	case key.Matches(msg, m.keys.playAll):
		d.PlayAll()
		m.logPlayerError()
	}
}

func (m Model) logPlayerError() {
	if p := m.player(); p != nil && p.Err() != nil {
		if t, ok := p.Current(); ok {
			m.log.Warn(errmsg.FormatWith(errmsg.OpPlaybackStart, t.Name, p.Err()))
		}
	}
}
