package root

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
	"github.com/llehouerou/chartwaves/internal/nav"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/playerview"
	"github.com/llehouerou/chartwaves/internal/route"
)

// ErrNoTrackSubscriber is logged when a track selection arrives while no
// player accepts selections. The selection is dropped.
var ErrNoTrackSubscriber = errors.New("no active track subscriber")

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for routing diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithBackPolicy sets how the back button treats an active player.
func WithBackPolicy(p BackPolicy) Option {
	return func(c *Controller) { c.backPolicy = p }
}

// WithRestore rebuilds the stack from a saved snapshot. An invalid snapshot
// is ignored and the controller starts on the dashboard.
func WithRestore(s *Snapshot) Option {
	return func(c *Controller) { c.restore = s }
}

// OnChange registers fn to receive a snapshot after every handled event.
func OnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// playbackState is exclusively owned by the Controller.
type playbackState struct {
	currentTrackID string
	playerPaused   bool
	// pendingResume receives track updates; pendingOwner is the resume
	// handle of the screen it belongs to.
	pendingResume route.TrackSink
	pendingOwner  string
	// trackSubscriber is a single slot: the last registration wins.
	trackSubscriber route.TrackSink
}

// Controller routes child outputs into navigation and playback state.
type Controller struct {
	factories  Factories
	log        *log.Logger
	backPolicy BackPolicy
	restore    *Snapshot
	onChange   func(Snapshot)
	newHandle  func() string

	stack   *nav.Stack[Child]
	overlay nav.Overlay[ChildOverlay]
	state   playbackState
	// resume maps a Details resume handle to its binding.
	resume map[string]func(route.TrackSink)

	stackValue   *nav.MutableValue[ChildStack]
	overlayValue *nav.MutableValue[ChildOverlay]

	dispatching bool
	queue       []func()
}

// New creates a Controller showing the dashboard, or the restored stack.
func New(f Factories, opts ...Option) *Controller {
	c := &Controller{
		factories:  f,
		log:        log.New(io.Discard),
		backPolicy: BackIgnoresOverlay,
		newHandle:  uuid.NewString,
		resume:     make(map[string]func(route.TrackSink)),
		state:      playbackState{currentTrackID: route.NoTrack},
	}
	for _, opt := range opts {
		opt(c)
	}

	configs := []route.Config{route.Dashboard()}
	if c.restore != nil {
		if err := validateSnapshot(*c.restore); err != nil {
			c.log.Warn("ignoring saved navigation", "err", err)
		} else {
			configs = c.restore.Stack
			if c.restore.CurrentTrackID != "" {
				c.state.currentTrackID = c.restore.CurrentTrackID
			}
		}
		c.restore = nil
	}

	// Outputs emitted while the children are built wait for the stack.
	c.dispatching = true
	c.stack = nav.NewStack(c.createChild(configs[0]))
	for _, cfg := range configs[1:] {
		c.stack.Push(c.createChild(cfg))
	}
	c.drain()
	c.dispatching = false

	c.stackValue = nav.NewValue(ChildStack{Items: c.stack.Items()})
	c.overlayValue = nav.NewValue(ChildOverlay{})
	return c
}

// NewWithServices creates a Controller using DefaultFactories.
func NewWithServices(client catalog.Client, engine player.Interface, opts ...Option) *Controller {
	return New(DefaultFactories(client, engine), opts...)
}

// Stack returns the observable navigation stack.
func (c *Controller) Stack() nav.Value[ChildStack] { return c.stackValue }

// Overlay returns the observable overlay slot.
func (c *Controller) Overlay() nav.Value[ChildOverlay] { return c.overlayValue }

// Playback returns a copy of the shared playback state.
func (c *Controller) Playback() PlaybackState {
	return PlaybackState{
		CurrentTrackID:     c.state.currentTrackID,
		PlayerPaused:       c.state.playerPaused,
		HasPendingResume:   c.state.pendingResume != nil,
		HasTrackSubscriber: c.state.trackSubscriber != nil,
	}
}

// Snapshot returns the persistable state.
func (c *Controller) Snapshot() Snapshot {
	items := c.stack.Items()
	configs := make([]route.Config, len(items))
	for i, ch := range items {
		configs[i] = ch.Config
	}
	return Snapshot{Stack: configs, CurrentTrackID: c.state.currentTrackID}
}

// HandleBackButton pops the stack when it holds more than the dashboard and
// reports whether the event was consumed. With BackDismissesOverlay an
// active player is dismissed first. It must not be called from an output
// handler.
func (c *Controller) HandleBackButton() bool {
	consumed := false
	c.dispatch(func() {
		if c.backPolicy == BackDismissesOverlay && c.overlay.IsActive() {
			consumed = c.dismissOverlay()
			return
		}
		consumed = c.pop()
	})
	return consumed
}

// Close destroys every child. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.dispatch(func() {
		c.dismissOverlay()
		for c.pop() {
		}
		c.stack.Root().destroy()
	})
}

// dispatch runs fn, or queues it when another event is being handled, then
// publishes the resulting state once the queue is empty.
func (c *Controller) dispatch(fn func()) {
	if c.dispatching {
		c.queue = append(c.queue, fn)
		return
	}
	c.dispatching = true
	fn()
	c.drain()
	c.dispatching = false
	c.publish()
}

func (c *Controller) drain() {
	for len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		next()
	}
}

func (c *Controller) publish() {
	c.stackValue.Set(ChildStack{Items: c.stack.Items()})
	active, _ := c.overlay.Active()
	c.overlayValue.Set(active)
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}

// --- children ---

func (c *Controller) createChild(cfg route.Config) Child {
	switch cfg.Kind {
	case route.KindDetails:
		handle := cfg.ResumeHandle
		bind, ok := c.resume[handle]
		if !ok {
			// Restored screens get their binding back here.
			bind = c.bindResume(handle)
		}
		params := chartdetails.Params{
			PlaylistID:     cfg.PlaylistID,
			PlayingTrackID: c.resumePoint(cfg),
			Subscribe:      bind,
		}
		details := c.factories.Details(params, func(o chartdetails.Output) {
			c.dispatch(func() { c.onDetailsOutput(handle, o) })
		})
		return Child{Config: cfg, Details: details}
	default:
		dash := c.factories.Dashboard(func(o dashboard.Output) {
			c.dispatch(func() { c.onDashboardOutput(o) })
		})
		return Child{Config: cfg, Dashboard: dash}
	}
}

// resumePoint is the track a new Details screen starts on: whatever is
// playing now, or the track stored in its configuration.
func (c *Controller) resumePoint(cfg route.Config) string {
	if c.state.currentTrackID != route.NoTrack {
		return c.state.currentTrackID
	}
	return cfg.PlayingTrackID
}

func (c *Controller) bindResume(handle string) func(route.TrackSink) {
	bind := func(sink route.TrackSink) { c.setPendingResume(handle, sink) }
	c.resume[handle] = bind
	return bind
}

func (c *Controller) setPendingResume(owner string, sink route.TrackSink) {
	c.state.pendingResume = sink
	c.state.pendingOwner = owner
}

func (c *Controller) push(cfg route.Config) {
	c.log.Debug("push", "config", cfg)
	c.stack.Push(c.createChild(cfg))
}

func (c *Controller) pop() bool {
	popped, ok := c.stack.Pop()
	if !ok {
		return false
	}
	c.log.Debug("pop", "config", popped.Config)
	popped.destroy()
	if handle := popped.Config.ResumeHandle; handle != "" {
		delete(c.resume, handle)
		if c.state.pendingOwner == handle {
			c.setPendingResume("", nil)
		}
	}
	return true
}

func (c *Controller) activatePlayer(tracks []catalog.Track) {
	if old, ok := c.overlay.Dismiss(); ok {
		old.Player.Destroy()
	}
	cfg := &route.PlayerConfig{Tracks: tracks}
	c.log.Debug("activate player", "tracks", len(tracks))
	p := c.factories.Player(tracks, func(o playerview.Output) {
		c.dispatch(func() { c.onPlayerOutput(o) })
	})
	c.overlay.Activate(ChildOverlay{Config: cfg, Player: p})
}

func (c *Controller) dismissOverlay() bool {
	old, ok := c.overlay.Dismiss()
	if !ok {
		return false
	}
	c.log.Debug("dismiss player")
	old.Player.Destroy()
	c.state.trackSubscriber = nil
	c.state.playerPaused = false
	return true
}

// --- output routing ---

func (c *Controller) onDashboardOutput(o dashboard.Output) {
	switch o := o.(type) {
	case dashboard.PlaylistSelected:
		handle := c.newHandle()
		c.bindResume(handle)
		c.push(route.Details(o.PlaylistID, c.state.currentTrackID, handle))
	}
}

func (c *Controller) onDetailsOutput(handle string, o chartdetails.Output) {
	switch o := o.(type) {
	case chartdetails.GoBack:
		c.pop()
	case chartdetails.PlayAllSelected:
		c.activatePlayer(o.Tracks)
	case chartdetails.TrackSelected:
		if c.state.trackSubscriber == nil {
			c.log.Debug("dropping track selection", "track", o.TrackID, "err", ErrNoTrackSubscriber)
			return
		}
		c.state.trackSubscriber.OnTrackUpdated(o.TrackID)
	case chartdetails.PlayerEvent:
		c.setPendingResume(handle, o.Sink)
	}
}

func (c *Controller) onPlayerOutput(o playerview.Output) {
	switch o := o.(type) {
	case playerview.Paused:
		c.state.playerPaused = true
	case playerview.Played:
		c.state.playerPaused = false
	case playerview.TrackUpdated:
		c.state.currentTrackID = o.TrackID
		if c.state.pendingResume != nil {
			c.state.pendingResume.OnTrackUpdated(o.TrackID)
		}
	case playerview.RegisterCallbacks:
		c.state.trackSubscriber = o.Sink
	case playerview.Closed:
		c.dismissOverlay()
	}
}

func validateSnapshot(s Snapshot) error {
	if len(s.Stack) == 0 {
		return nav.ErrEmptyStack
	}
	if s.Stack[0].Kind != route.KindDashboard {
		return errors.Newf("stack root is %s, want dashboard", s.Stack[0].Kind)
	}
	seen := make(map[string]bool)
	for i, cfg := range s.Stack {
		if err := cfg.Validate(); err != nil {
			return errors.Wrapf(err, "stack entry %d", i)
		}
		if i > 0 && cfg.Kind != route.KindDetails {
			return errors.Newf("stack entry %d is %s, want details", i, cfg.Kind)
		}
		if cfg.ResumeHandle != "" {
			if seen[cfg.ResumeHandle] {
				return errors.Newf("stack entry %d reuses resume handle", i)
			}
			seen[cfg.ResumeHandle] = true
		}
	}
	return nil
}
