package nav

// Overlay is a single optional slot layered above a Stack.
// It has no history: activating while active replaces the current entry.
type Overlay[C any] struct {
	active C
	set    bool
}

// Activate shows c, replacing whatever was active.
// It returns the replaced entry, if any.
func (o *Overlay[C]) Activate(c C) (replaced C, hadActive bool) {
	replaced, hadActive = o.active, o.set
	o.active = c
	o.set = true
	return replaced, hadActive
}

// Dismiss empties the slot and returns the dismissed entry.
// It is a no-op returning ok=false when nothing is active.
func (o *Overlay[C]) Dismiss() (dismissed C, ok bool) {
	if !o.set {
		return dismissed, false
	}
	dismissed = o.active
	var zero C
	o.active = zero
	o.set = false
	return dismissed, true
}

// Active returns the current entry and whether the slot is occupied.
func (o *Overlay[C]) Active() (C, bool) {
	return o.active, o.set
}

// IsActive reports whether the slot is occupied.
func (o *Overlay[C]) IsActive() bool {
	return o.set
}
