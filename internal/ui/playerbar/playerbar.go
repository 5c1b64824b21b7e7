// Package playerbar renders the player overlay.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/chartwaves/internal/player"
	"github.com/llehouerou/chartwaves/internal/playerview"
	"github.com/llehouerou/chartwaves/internal/ui/render"
)

// Height is the number of terminal rows the bar occupies.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Status      player.State
	Title       string
	Artist      string
	Album       string
	Track       int // 1-based
	TotalTracks int
	Position    time.Duration
	Duration    time.Duration
	Err         error
}

// NewState reads the player component. ok is false when p is nil.
func NewState(p *playerview.Component) (State, bool) {
	if p == nil {
		return State{}, false
	}
	s := State{
		Status:      p.State(),
		TotalTracks: len(p.Tracks()),
		Position:    p.Position(),
		Duration:    p.Duration(),
		Err:         p.Err(),
	}
	if t, ok := p.Current(); ok {
		s.Title = t.Name
		s.Artist = t.ArtistLine()
		s.Album = t.Album
		s.Track = p.Index() + 1
	}
	return s, true
}

// Render returns the bar for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)

	status := stopSymbol
	switch s.Status {
	case player.Playing:
		status = playSymbol
	case player.Paused:
		status = pauseSymbol
	case player.Stopped:
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	info := strings.Join(infoParts, " · ")
	infoStyle := artistStyle()
	if s.Err != nil {
		info = "no preview: " + s.Err.Error()
		infoStyle = errorStyle()
	}

	trackNum := ""
	if s.Track > 0 {
		trackNum = fmt.Sprintf("%d/%d", s.Track, s.TotalTracks)
	}

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))

	const separator = "   "
	sepWidth := lipgloss.Width(separator)
	fixed := lipgloss.Width(status+"  ") + lipgloss.Width(timeStr) + sepWidth*2
	if trackNum != "" {
		fixed += lipgloss.Width(trackNum) + sepWidth
	}
	const minBarWidth = 10
	available := max(innerWidth-fixed-minBarWidth, 10)

	content := titleStyle().Render(render.Truncate(title, available))
	used := lipgloss.Width(content)
	if info != "" && available-used-sepWidth > 3 {
		content += separator + infoStyle.Render(render.Truncate(info, available-used-sepWidth))
		used = lipgloss.Width(content)
	}

	barWidth := max(innerWidth-used-fixed, 5)
	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	var b strings.Builder
	b.WriteString(content)
	if trackNum != "" {
		b.WriteString(separator)
		b.WriteString(metaStyle().Render(trackNum))
	}
	b.WriteString(separator)
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(progressBarFilled().Render(strings.Repeat("━", filled)))
	b.WriteString(progressBarEmpty().Render(strings.Repeat("─", barWidth-filled)))
	b.WriteString(separator)
	b.WriteString(progressTimeStyle().Render(timeStr))

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).MaxHeight(Height).Render(b.String())
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
