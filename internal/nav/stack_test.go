package nav

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_NewHasOnlyRoot(t *testing.T) {
	s := NewStack("root")

	assert.Len(t, s.Items(), 1)
	assert.Equal(t, "root", s.Active())
	assert.Equal(t, "root", s.Root())
}

func TestStack_PushPop(t *testing.T) {
	s := NewStack("root")
	s.Push("a")
	s.Push("b")

	assert.Equal(t, []string{"root", "a", "b"}, s.Items())
	assert.Equal(t, "b", s.Active())

	popped, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", popped)
	assert.Equal(t, "a", s.Active())
}

func TestStack_PopAtRootIsNoop(t *testing.T) {
	s := NewStack("root")

	popped, ok := s.Pop()

	assert.False(t, ok)
	assert.Empty(t, popped)
	assert.Equal(t, []string{"root"}, s.Items())
}

func TestStack_NeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	s := NewStack(0)

	for i := range 1000 {
		if rng.IntN(2) == 0 {
			s.Push(i + 1)
		} else {
			s.Pop()
		}
		require.NotEmpty(t, s.Items(), "step %d", i)
		require.Equal(t, 0, s.Root(), "step %d", i)
	}
}

func TestStack_ItemsIsACopy(t *testing.T) {
	s := NewStack("root")
	items := s.Items()
	items[0] = "changed"

	assert.Equal(t, "root", s.Root())
}
