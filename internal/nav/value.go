package nav

// Value is a read-only view of a value that changes over time.
type Value[T any] interface {
	// Get returns the current value.
	Get() T
	// Subscribe registers fn and calls it immediately with the current value,
	// then again synchronously after every change. The returned function
	// removes the subscription.
	Subscribe(fn func(T)) (cancel func())
}

// MutableValue is a Value whose owner can publish new values with Set.
type MutableValue[T any] struct {
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Verify MutableValue implements Value at compile time.
var _ Value[int] = (*MutableValue[int])(nil)

// NewValue creates a MutableValue holding initial.
func NewValue[T any](initial T) *MutableValue[T] {
	return &MutableValue[T]{value: initial}
}

func (v *MutableValue[T]) Get() T { return v.value }

// Set stores value and notifies subscribers in registration order.
func (v *MutableValue[T]) Set(value T) {
	v.value = value
	// Snapshot so a subscriber may cancel itself while being notified.
	subs := append([]subscriber[T](nil), v.subs...)
	for _, s := range subs {
		s.fn(value)
	}
}

func (v *MutableValue[T]) Subscribe(fn func(T)) func() {
	id := v.nextID
	v.nextID++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})
	fn(v.value)
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
