// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpChartsLoad   Op = "load charts"
	OpPlaylistLoad Op = "load playlist"

	// Playback operations
	OpPlaybackStart Op = "start playback"

	// Navigation persistence
	OpNavigationRestore Op = "restore navigation"
	OpNavigationSave    Op = "save navigation"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %s", op, describe(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %s", op, context, describe(err))
}

// describe shortens errors the user cannot act on the details of.
func describe(err error) string {
	if errors.Is(err, catalog.ErrNotFound) {
		return "not found"
	}
	var fe *catalog.FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		return fe.Err.Error()
	}
	return err.Error()
}
