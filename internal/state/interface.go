// internal/state/interface.go
package state

import (
	"database/sql"

	"github.com/llehouerou/chartwaves/internal/root"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SaveSnapshot(s root.Snapshot)
	LoadSnapshot() (*root.Snapshot, error)
	Clear() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
