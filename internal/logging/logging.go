// Package logging builds the application logger. The terminal is owned by
// the UI, so logs normally go to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// New creates a logger writing to w at the given level name.
// Unknown level names fall back to info.
func New(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	l.SetLevel(ParseLevel(level))
	return l
}

// Open creates a logger appending to path. An empty path means
// $XDG_STATE_HOME/chartwaves/chartwaves.log. The returned closer releases the
// file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := xdg.StateFile(filepath.Join("chartwaves", "chartwaves.log"))
		if err != nil {
			return nil, nil, errors.Wrap(err, "resolve log path")
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log %s", path)
	}
	return New(f, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel converts a level name, defaulting to info.
func ParseLevel(level string) log.Level {
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}
