package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_StartsEmpty(t *testing.T) {
	var o Overlay[string]

	_, ok := o.Active()
	assert.False(t, ok)
	assert.False(t, o.IsActive())
}

func TestOverlay_ActivateReplaces(t *testing.T) {
	var o Overlay[string]

	_, had := o.Activate("L")
	assert.False(t, had)

	replaced, had := o.Activate("L2")
	assert.True(t, had)
	assert.Equal(t, "L", replaced)

	active, ok := o.Active()
	assert.True(t, ok)
	assert.Equal(t, "L2", active)
}

func TestOverlay_Dismiss(t *testing.T) {
	var o Overlay[string]

	_, ok := o.Dismiss()
	assert.False(t, ok, "dismissing an empty overlay is a no-op")

	o.Activate("L")
	dismissed, ok := o.Dismiss()
	assert.True(t, ok)
	assert.Equal(t, "L", dismissed)
	assert.False(t, o.IsActive())
}
