package state

import (
	"bytes"
	"database/sql"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/root"
	"github.com/llehouerou/chartwaves/internal/route"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func sampleSnapshot() root.Snapshot {
	return root.Snapshot{
		Stack: []route.Config{
			route.Dashboard(),
			route.Details("playlist42", route.NoTrack, "h1"),
			route.Details("playlist7", "t9", "h2"),
		},
		CurrentTrackID: "t2",
	}
}

func TestLoadSnapshot_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	snap, err := loadSnapshot(db)
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot on empty db, got %+v", snap)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	want := sampleSnapshot()
	if err := saveSnapshot(db, want); err != nil {
		t.Fatalf("saveSnapshot failed: %v", err)
	}

	got, err := loadSnapshot(db)
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if got.CurrentTrackID != want.CurrentTrackID {
		t.Errorf("CurrentTrackID = %q, want %q", got.CurrentTrackID, want.CurrentTrackID)
	}
	if len(got.Stack) != len(want.Stack) {
		t.Fatalf("len(Stack) = %d, want %d", len(got.Stack), len(want.Stack))
	}
	for i := range want.Stack {
		if got.Stack[i] != want.Stack[i] {
			t.Errorf("Stack[%d] = %+v, want %+v", i, got.Stack[i], want.Stack[i])
		}
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSnapshot(db, sampleSnapshot()); err != nil {
		t.Fatalf("saveSnapshot failed: %v", err)
	}
	short := root.Snapshot{Stack: []route.Config{route.Dashboard()}}
	if err := saveSnapshot(db, short); err != nil {
		t.Fatalf("saveSnapshot (update) failed: %v", err)
	}

	got, _ := loadSnapshot(db)
	if len(got.Stack) != 1 {
		t.Errorf("len(Stack) = %d, want 1", len(got.Stack))
	}
	if got.CurrentTrackID != route.NoTrack {
		t.Errorf("CurrentTrackID = %q, want %q", got.CurrentTrackID, route.NoTrack)
	}
}

func TestLoadSnapshot_UnknownKind(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSnapshot(db, sampleSnapshot()); err != nil {
		t.Fatalf("saveSnapshot failed: %v", err)
	}
	if _, err := db.Exec(`UPDATE navigation_stack SET kind = 'library' WHERE position = 1`); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := loadSnapshot(db); err == nil {
		t.Error("expected error for unknown screen kind")
	}
}

func TestClearSnapshot(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := saveSnapshot(db, sampleSnapshot()); err != nil {
		t.Fatalf("saveSnapshot failed: %v", err)
	}
	if err := clearSnapshot(db); err != nil {
		t.Fatalf("clearSnapshot failed: %v", err)
	}

	snap, err := loadSnapshot(db)
	if err != nil {
		t.Fatalf("loadSnapshot failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot after clear, got %+v", snap)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestManager_CloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	logger := log.New(io.Discard)

	m, err := Open(path, logger)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	m.SaveSnapshot(root.Snapshot{Stack: []route.Config{route.Dashboard()}})
	m.SaveSnapshot(sampleSnapshot())
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err = Open(path, logger)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	snap, err := m.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if snap == nil || len(snap.Stack) != 3 {
		t.Fatalf("expected the last saved snapshot, got %+v", snap)
	}
}

func TestManager_DebouncedSave(t *testing.T) {
	m, err := Open(":memory:", log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	m.SaveSnapshot(sampleSnapshot())

	if snap, _ := m.LoadSnapshot(); snap != nil {
		t.Fatal("save should be deferred")
	}

	deadline := time.Now().Add(5 * saveDebounce)
	for time.Now().Before(deadline) {
		if snap, _ := m.LoadSnapshot(); snap != nil {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("debounced save never happened")
}

func TestManager_CloseWaitsForRunningFlush(t *testing.T) {
	for i := range 20 {
		var logs bytes.Buffer
		path := filepath.Join(t.TempDir(), "state.db")
		m, err := Open(path, log.New(&logs))
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		m.SaveSnapshot(sampleSnapshot())

		// A debounced flush firing while the program shuts down.
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.flush()
		}()
		if err := m.Close(); err != nil {
			t.Fatalf("iteration %d: Close failed: %v", i, err)
		}
		wg.Wait()

		if logs.Len() != 0 {
			t.Fatalf("iteration %d: unexpected log output: %s", i, logs.String())
		}

		m, err = Open(path, log.New(io.Discard))
		if err != nil {
			t.Fatalf("reopen failed: %v", err)
		}
		snap, err := m.LoadSnapshot()
		m.Close()
		if err != nil || snap == nil || len(snap.Stack) != 3 {
			t.Fatalf("iteration %d: snapshot = %+v, err = %v", i, snap, err)
		}
	}
}

func TestManager_SaveAfterCloseIsDropped(t *testing.T) {
	m, err := Open(":memory:", log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m.SaveSnapshot(sampleSnapshot())
	m.flush()

	if err := m.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestManager_ClearDropsPending(t *testing.T) {
	m, err := Open(":memory:", log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	m.SaveSnapshot(sampleSnapshot())
	if err := m.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	snap, err := m.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil snapshot, got %+v", snap)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestRestoreThroughController(t *testing.T) {
	m, err := Open(":memory:", log.New(io.Discard))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer m.Close()

	want := sampleSnapshot()
	if err := saveSnapshot(m.DB(), want); err != nil {
		t.Fatalf("saveSnapshot failed: %v", err)
	}
	snap, err := m.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	ctrl := root.New(root.DefaultFactories(catalog.NewMemory(), player.NewMock()), root.WithRestore(snap))
	got := ctrl.Snapshot()
	if len(got.Stack) != len(want.Stack) {
		t.Fatalf("restored depth = %d, want %d", len(got.Stack), len(want.Stack))
	}
	if !ctrl.Playback().HasPendingResume {
		t.Error("restored details screen should be re-bound to track updates")
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	if snap, _ := m.LoadSnapshot(); snap != nil {
		t.Fatal("new mock should have no snapshot")
	}
	m.SaveSnapshot(sampleSnapshot())
	if m.SaveCount() != 1 || m.Saved() == nil {
		t.Error("mock should record saves")
	}
	_ = m.Close()
	if !m.IsClosed() {
		t.Error("mock should record Close")
	}
}
