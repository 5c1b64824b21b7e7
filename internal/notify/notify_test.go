package notify

import (
	"errors"
	"testing"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	m := NewMock()
	np := NewNowPlaying(m)

	one := catalog.Track{ID: "t1", Name: "One", Artists: []string{"A", "B"}, Album: "Hits"}
	two := catalog.Track{ID: "t2", Name: "Two"}

	if err := np.Update(one); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := np.Update(one); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if err := np.Update(two); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	shown := m.Shown()
	if len(shown) != 2 {
		t.Fatalf("shown %d notifications, want 2 (same track is not repeated)", len(shown))
	}
	if shown[0].Title != "One" || shown[0].Body != "A, B - Hits" {
		t.Errorf("first notification = %+v", shown[0])
	}
	if shown[0].ReplacesID != 0 {
		t.Errorf("first ReplacesID = %d, want 0", shown[0].ReplacesID)
	}
	if shown[1].ReplacesID != 1 {
		t.Errorf("second ReplacesID = %d, want 1", shown[1].ReplacesID)
	}
}

func TestNowPlaying_Clear(t *testing.T) {
	m := NewMock()
	np := NewNowPlaying(m)

	if err := np.Clear(); err != nil {
		t.Fatalf("Clear on empty: %v", err)
	}
	if len(m.Closed()) != 0 {
		t.Error("nothing to close yet")
	}

	_ = np.Update(catalog.Track{ID: "t1", Name: "One"})
	if err := np.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if got := m.Closed(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Closed = %v, want [1]", got)
	}

	// The same track is announced again after a clear.
	_ = np.Update(catalog.Track{ID: "t1", Name: "One"})
	if len(m.Shown()) != 2 {
		t.Errorf("shown %d, want 2", len(m.Shown()))
	}
}

func TestNowPlaying_ErrorKeepsState(t *testing.T) {
	m := NewMock()
	np := NewNowPlaying(m)
	m.SetError(errors.New("no server"))

	if err := np.Update(catalog.Track{ID: "t1"}); err == nil {
		t.Fatal("expected error")
	}
	m.SetError(nil)
	if err := np.Update(catalog.Track{ID: "t1"}); err != nil {
		t.Fatalf("retry error: %v", err)
	}
	if len(m.Shown()) != 1 {
		t.Errorf("shown %d, want 1", len(m.Shown()))
	}
}

func TestNowPlaying_NilNotifier(t *testing.T) {
	np := NewNowPlaying(nil)
	if err := np.Update(catalog.Track{ID: "t1"}); err != nil {
		t.Errorf("Update error: %v", err)
	}
	if err := np.Clear(); err != nil {
		t.Errorf("Clear error: %v", err)
	}
}
