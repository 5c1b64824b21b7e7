package notify

import "sync"

// Mock records notifications for tests.
type Mock struct {
	mu     sync.Mutex
	nextID uint32
	shown  []Notification
	closed []uint32
	err    error
}

// NewMock creates a mock notifier.
func NewMock() *Mock { return &Mock{} }

// SetError makes subsequent Notify calls fail.
func (m *Mock) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.shown = append(m.shown, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Close(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, id)
	return nil
}

// Shown returns the notifications sent so far.
func (m *Mock) Shown() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Notification(nil), m.shown...)
}

// Closed returns the IDs closed so far.
func (m *Mock) Closed() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uint32(nil), m.closed...)
}
