package nav

import "github.com/cockroachdb/errors"

// ErrEmptyStack reports a saved history without its root entry.
var ErrEmptyStack = errors.New("navigation stack cannot be empty")

// Stack is a back-to-front history of configurations.
// The root entry at index 0 is permanent: Pop never removes it.
type Stack[C any] struct {
	entries []C
}

// NewStack creates a stack holding only root.
func NewStack[C any](root C) *Stack[C] {
	return &Stack[C]{entries: []C{root}}
}

// Push appends c on top of the stack.
func (s *Stack[C]) Push(c C) {
	s.entries = append(s.entries, c)
}

// Pop removes the top entry and returns it.
// When only the root remains the stack is unchanged and ok is false.
func (s *Stack[C]) Pop() (popped C, ok bool) {
	if len(s.entries) <= 1 {
		return popped, false
	}
	last := len(s.entries) - 1
	popped = s.entries[last]
	var zero C
	s.entries[last] = zero
	s.entries = s.entries[:last]
	return popped, true
}

// Active returns the top entry, the currently visible screen.
func (s *Stack[C]) Active() C {
	return s.entries[len(s.entries)-1]
}

// Root returns the bottom entry.
func (s *Stack[C]) Root() C {
	return s.entries[0]
}

// Items returns a copy of the entries, back to front.
func (s *Stack[C]) Items() []C {
	out := make([]C, len(s.entries))
	copy(out, s.entries)
	return out
}
