// Package player is the audio engine collaborator: it plays one stream at a
// time and reports what happened to it.
package player

import "time"

// EventKind identifies an asynchronous stream outcome.
type EventKind int

const (
	// Finished means the stream played to its end.
	Finished EventKind = iota
	// Failed means the stream could not be fetched or decoded.
	Failed
)

// Event reports the outcome of the stream started with Generation.
type Event struct {
	Kind       EventKind
	Generation int
	Err        error
}

// Interface defines the engine contract for dependency injection and testing.
type Interface interface {
	// Play stops the current stream and starts loading url. It returns before
	// the stream is downloaded; load failures arrive as Failed events.
	Play(url string) error
	Pause()
	Resume()
	Stop()
	State() State
	Position() time.Duration
	Duration() time.Duration
	// Generation identifies the stream of the latest Play or Stop. Events
	// with another generation are stale.
	Generation() int
	Events() <-chan Event
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
