package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ChartsAndTracks(t *testing.T) {
	m := NewMemory().AddPlaylist(
		Playlist{ID: "p1", Name: "Top"},
		Track{ID: "t1"}, Track{ID: "t2"},
	)

	charts, err := m.Charts(context.Background())
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "Top", charts[0].Name)

	tracks, err := m.PlaylistTracks(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, TrackIDs(tracks))
}

func TestMemory_UnknownPlaylist(t *testing.T) {
	m := NewMemory()

	_, err := m.PlaylistTracks(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, IsFetchError(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_FailWith(t *testing.T) {
	boom := errors.New("boom")
	m := NewMemory().AddPlaylist(Playlist{ID: "p1"}).FailWith("", boom)

	_, err := m.Charts(context.Background())
	assert.ErrorIs(t, err, boom)

	m.FailWith("", nil)
	_, err = m.Charts(context.Background())
	assert.NoError(t, err)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Demo().Charts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIndexOf(t *testing.T) {
	tracks := []Track{{ID: "a"}, {ID: "b"}}

	assert.Equal(t, 1, IndexOf(tracks, "b"))
	assert.Equal(t, -1, IndexOf(tracks, "z"))
}

func TestFetchError_Message(t *testing.T) {
	err := &FetchError{Op: "playlist tracks", ID: "p1", Err: errors.New("timeout")}

	assert.Equal(t, "fetch playlist tracks p1: timeout", err.Error())
	assert.Equal(t, "fetch charts: timeout", (&FetchError{Op: "charts", Err: errors.New("timeout")}).Error())
}
