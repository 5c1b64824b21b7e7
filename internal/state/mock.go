// internal/state/mock.go
package state

import (
	"database/sql"

	"github.com/llehouerou/chartwaves/internal/root"
)

// Mock is a test double for Manager.
type Mock struct {
	snapshot *root.Snapshot
	saves    int
	loadErr  error
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSnapshot(s root.Snapshot) {
	m.saves++
	m.snapshot = &s
}

func (m *Mock) LoadSnapshot() (*root.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.snapshot, nil
}

func (m *Mock) Clear() error {
	m.snapshot = nil
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSnapshot(s *root.Snapshot) { m.snapshot = s }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

// Saved returns the last saved snapshot.
func (m *Mock) Saved() *root.Snapshot { return m.snapshot }

func (m *Mock) SaveCount() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
