// Package app hosts the navigation controller in a bubbletea program.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/errmsg"
	"github.com/llehouerou/chartwaves/internal/notify"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/playerview"
	"github.com/llehouerou/chartwaves/internal/root"
	"github.com/llehouerou/chartwaves/internal/state"
)

// Deps are the services the application runs on.
type Deps struct {
	Client     catalog.Client
	Engine     player.Interface
	State      state.Interface
	Logger     *log.Logger
	BackPolicy root.BackPolicy
	// Notifier announces track changes. Nil disables notifications.
	Notifier notify.Notifier
}

// Model is the root application model.
type Model struct {
	ctx     context.Context
	ctrl    *root.Controller
	engine  player.Interface
	persist *persister
	log     *log.Logger
	keys    keyMap
	help    help.Model
	// requested holds the screens whose fetch was started.
	requested map[any]bool
	ErrorMsg  string
	Width     int
	Height    int
}

// persister forwards controller snapshots to the state store until the
// program quits.
type persister struct {
	state   state.Interface
	enabled bool
}

func (p *persister) save(s root.Snapshot) {
	if p.enabled && p.state != nil {
		p.state.SaveSnapshot(s)
	}
}

// final saves s and stops further saves, so tearing the stack down on exit
// does not overwrite the saved navigation.
func (p *persister) final(s root.Snapshot) {
	p.save(s)
	p.enabled = false
}

// New builds the controller, restoring saved navigation when there is any.
func New(ctx context.Context, d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		ctx:       ctx,
		engine:    d.Engine,
		persist:   &persister{state: d.State, enabled: true},
		log:       logger,
		keys:      newKeyMap(),
		help:      help.New(),
		requested: make(map[any]bool),
	}

	announce := newAnnouncer(d.Notifier, logger)
	var ctrl *root.Controller
	opts := []root.Option{
		root.WithLogger(logger.With("component", "root")),
		root.WithBackPolicy(d.BackPolicy),
		root.OnChange(func(s root.Snapshot) {
			m.persist.save(s)
			announce.update(ctrl.Overlay().Get())
		}),
	}
	if d.State != nil {
		snap, err := d.State.LoadSnapshot()
		switch {
		case err != nil:
			logger.Warn("load saved navigation", "err", err)
			m.ErrorMsg = errmsg.Format(errmsg.OpNavigationRestore, err)
		case snap != nil:
			logger.Debug("restoring navigation", "depth", len(snap.Stack), "track", snap.CurrentTrackID)
			opts = append(opts, root.WithRestore(snap))
		}
	}

	ctrl = root.NewWithServices(d.Client, d.Engine, opts...)
	m.ctrl = ctrl
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadActive(), m.WatchPlayerEvents(), TickCmd())
}

// Controller exposes the navigation controller.
func (m Model) Controller() *root.Controller { return m.ctrl }

func (m Model) player() *playerview.Component {
	return m.ctrl.Overlay().Get().Player
}

// loadActive starts the fetch for the visible screen if it has not run yet.
// Screens further down a restored stack load when they become visible.
func (m Model) loadActive() tea.Cmd {
	stack := m.ctrl.Stack().Get()
	m.forgetPopped(stack)
	active := stack.Active()
	switch {
	case active.Dashboard != nil:
		d := active.Dashboard
		if !d.Loading() || m.requested[d] {
			return nil
		}
		m.requested[d] = true
		return loadChartsCmd(m.ctx, d)
	case active.Details != nil:
		d := active.Details
		if !d.Loading() || m.requested[d] {
			return nil
		}
		m.requested[d] = true
		return loadPlaylistCmd(m.ctx, d)
	}
	return nil
}

// forgetPopped drops the fetch bookkeeping of screens no longer on stack.
func (m Model) forgetPopped(stack root.ChildStack) {
	live := make(map[any]bool, len(stack.Items))
	for _, ch := range stack.Items {
		if ch.Dashboard != nil {
			live[ch.Dashboard] = true
		}
		if ch.Details != nil {
			live[ch.Details] = true
		}
	}
	for screen := range m.requested {
		if !live[screen] {
			delete(m.requested, screen)
		}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.persist.final(m.ctrl.Snapshot())
	m.ctrl.Close()
	return m, tea.Quit
}
