package player

import (
	"errors"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMock_Transitions(t *testing.T) {
	m := NewMock()

	m.Pause()
	if m.State() != Stopped {
		t.Fatalf("Pause when Stopped: state = %v, want Stopped", m.State())
	}

	if err := m.Play("http://x/a.mp3"); err != nil {
		t.Fatalf("Play: %v", err)
	}
	m.Pause()
	if m.State() != Paused {
		t.Errorf("state after Pause = %v, want Paused", m.State())
	}
	m.Resume()
	if m.State() != Playing {
		t.Errorf("state after Resume = %v, want Playing", m.State())
	}
	m.Stop()
	if m.State() != Stopped {
		t.Errorf("state after Stop = %v, want Stopped", m.State())
	}
}

func TestMock_PlayError(t *testing.T) {
	m := NewMock()
	boom := errors.New("boom")
	m.SetPlayError(boom)

	if err := m.Play("u"); !errors.Is(err, boom) {
		t.Fatalf("Play error = %v, want %v", err, boom)
	}
	if m.State() != Stopped {
		t.Errorf("state = %v, want Stopped", m.State())
	}
}

func TestMock_SimulateFinished(t *testing.T) {
	m := NewMock()
	_ = m.Play("u")

	m.SimulateFinished()

	select {
	case ev := <-m.Events():
		if ev.Kind != Finished || ev.Generation != m.Generation() {
			t.Errorf("event = %+v, want Finished for generation %d", ev, m.Generation())
		}
	default:
		t.Fatal("expected finished notification")
	}
}

func TestMock_GenerationAdvances(t *testing.T) {
	m := NewMock()
	_ = m.Play("a")
	first := m.Generation()

	m.Stop()
	if m.Generation() == first {
		t.Error("Stop should start a new generation")
	}
	stopped := m.Generation()
	m.Stop()
	if m.Generation() != stopped {
		t.Error("Stop when already stopped should not change the generation")
	}
	_ = m.Play("b")
	if m.Generation() == stopped {
		t.Error("Play should start a new generation")
	}
}
