package playerbar

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/chartwaves/internal/catalog"
	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/playerview"
)

func TestNewState(t *testing.T) {
	_, ok := NewState(nil)
	assert.False(t, ok)

	engine := player.NewMock()
	p := playerview.New([]catalog.Track{
		{ID: "t1", Name: "One", Artists: []string{"A", "B"}, Album: "X", Duration: 30 * time.Second},
		{ID: "t2", Name: "Two"},
	}, engine, func(playerview.Output) {})

	s, ok := NewState(p)
	require.True(t, ok)
	assert.Equal(t, player.Playing, s.Status)
	assert.Equal(t, "One", s.Title)
	assert.Equal(t, "A, B", s.Artist)
	assert.Equal(t, 1, s.Track)
	assert.Equal(t, 2, s.TotalTracks)
	assert.Equal(t, 30*time.Second, s.Duration)
}

func TestRender(t *testing.T) {
	s := State{
		Status:      player.Paused,
		Title:       "Song",
		Artist:      "Artist",
		Track:       2,
		TotalTracks: 5,
		Position:    15 * time.Second,
		Duration:    30 * time.Second,
	}

	out := Render(s, 80)
	plain := ansi.Strip(out)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, Height)
	assert.Contains(t, plain, "Song")
	assert.Contains(t, plain, "2/5")
	assert.Contains(t, plain, pauseSymbol)
	assert.Contains(t, plain, "0:15 / 0:30")
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 80)
	}
}

func TestRender_Error(t *testing.T) {
	s := State{Status: player.Stopped, Title: "Song", Err: errors.New("no stream")}

	plain := ansi.Strip(Render(s, 100))

	assert.Contains(t, plain, stopSymbol)
	assert.Contains(t, plain, "no preview")
}

func TestRenderProgressBar(t *testing.T) {
	got := RenderProgressBar(15*time.Second, 30*time.Second, 30, true)
	assert.True(t, strings.HasPrefix(got, playSymbol))
	assert.Contains(t, got, filledBlock)
	assert.Contains(t, got, emptyBlock)

	narrow := RenderProgressBar(0, 0, 5, false)
	assert.Equal(t, pauseSymbol+"  0:00 / 0:00", narrow)
}
