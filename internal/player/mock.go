package player

import "time"

// Mock is a test double for Player.
type Mock struct {
	state      State
	position   time.Duration
	duration   time.Duration
	playErr    error
	playCalls  []string
	pauseCalls int
	closed     bool
	generation int
	events     chan Event
}

// NewMock creates a new mock engine for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		events: make(chan Event, eventBuffer),
	}
}

func (m *Mock) Play(url string) error {
	m.playCalls = append(m.playCalls, url)
	m.generation++
	if m.playErr != nil {
		m.state = Stopped
		return m.playErr
	}
	m.state = Playing
	m.position = 0
	return nil
}

func (m *Mock) Stop() {
	if m.state != Stopped {
		m.generation++
	}
	m.state = Stopped
}

func (m *Mock) Pause() {
	if m.state == Playing {
		m.pauseCalls++
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() time.Duration { return m.duration }

func (m *Mock) Generation() int { return m.generation }

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

func (m *Mock) SetState(s State) { m.state = s }

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SetDuration(d time.Duration) { m.duration = d }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

func (m *Mock) IsClosed() bool { return m.closed }

// SimulateFinished simulates the current stream reaching its end and
// returns the event it queued.
func (m *Mock) SimulateFinished() Event {
	return m.send(Event{Kind: Finished, Generation: m.generation})
}

// SimulateFailure simulates the current stream failing to load.
func (m *Mock) SimulateFailure(err error) Event {
	m.state = Stopped
	return m.send(Event{Kind: Failed, Generation: m.generation, Err: err})
}

func (m *Mock) send(ev Event) Event {
	select {
	case m.events <- ev:
	default:
	}
	return ev
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
