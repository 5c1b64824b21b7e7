package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/chartwaves/internal/root"
)

const (
	appName      = "chartwaves"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log *log.Logger

	// writeMu serializes database writes so Close and Clear wait for a
	// debounced flush that is already running.
	writeMu sync.Mutex

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *root.Snapshot
	closed    bool
}

// OpenDefault opens the database in the XDG data directory.
func OpenDefault(logger *log.Logger) (*Manager, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(dbPath, logger)
}

// Open opens or creates the database at path. ":memory:" is accepted.
func Open(path string, logger *log.Logger) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrap(err, "create state directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// A single connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init schema")
	}

	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Manager{db: db, log: logger}, nil
}

// Close writes any pending snapshot and closes the database. Saves arriving
// afterwards are dropped.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.closed {
		m.saveMu.Unlock()
		return nil
	}
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if pending != nil {
		if err := saveSnapshot(m.db, *pending); err != nil {
			m.log.Error("flush navigation", "err", err)
		}
	}

	return m.db.Close()
}

// LoadSnapshot returns the saved navigation, or nil on first run.
func (m *Manager) LoadSnapshot() (*root.Snapshot, error) {
	return loadSnapshot(m.db)
}

// SaveSnapshot schedules a write. Bursts of calls collapse into one write.
func (m *Manager) SaveSnapshot(s root.Snapshot) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		return
	}

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, m.flush)
}

func (m *Manager) flush() {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	closed := m.closed
	m.saveMu.Unlock()

	if pending != nil && !closed {
		if err := saveSnapshot(m.db, *pending); err != nil {
			m.log.Error("save navigation", "err", err)
		}
	}
}

// Clear drops any saved or pending navigation.
func (m *Manager) Clear() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.pending = nil
	m.saveMu.Unlock()

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return clearSnapshot(m.db)
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
