package catalog

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is wrapped by clients when a playlist does not exist.
var ErrNotFound = errors.New("not found")

// FetchError reports a failed catalog request. Screens keep it and render it;
// the navigation core never sees it.
type FetchError struct {
	Op  string // e.g. "charts", "playlist tracks"
	ID  string // playlist id if applicable
	Err error
}

func (e *FetchError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fetch %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError reports whether err carries a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
