package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chartwaves/internal/chartdetails"
	"github.com/llehouerou/chartwaves/internal/dashboard"
	"github.com/llehouerou/chartwaves/internal/errmsg"
	"github.com/llehouerou/chartwaves/internal/ui/overlay"
	"github.com/llehouerou/chartwaves/internal/ui/playerbar"
	"github.com/llehouerou/chartwaves/internal/ui/render"
	"github.com/llehouerou/chartwaves/internal/ui/styles"
)

const headerHeight = 2 // title + separator

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	s := styles.T().S()

	footer := m.help.View(m.keys)
	if m.ErrorMsg != "" {
		footer = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width)) + "\n" + footer
	}
	footerHeight := lipgloss.Height(footer)
	mainHeight := max(m.Height-footerHeight, 0)

	listHeight := mainHeight - headerHeight
	p := m.player()
	if p != nil {
		// Keep the cursor row clear of the player bar.
		listHeight -= playerbar.Height
	}
	listHeight = max(listHeight, 1)

	active := m.ctrl.Stack().Get().Active()
	var title, body string
	switch {
	case active.Dashboard != nil:
		title = "Charts"
		body = m.renderDashboard(active.Dashboard, listHeight)
	case active.Details != nil:
		title = "Charts › " + detailsTitle(active.Details)
		body = m.renderDetails(active.Details, listHeight)
	}

	main := s.Header.Render(render.Truncate(title, max(m.Width-2, 1))) + "\n" +
		s.Subtle.Render(render.Separator(m.Width)) + "\n" + body

	if st, ok := playerbar.NewState(p); ok {
		main = overlay.Bottom(main, playerbar.Render(st, m.Width), m.Width, mainHeight)
	} else {
		main = fitHeight(main, mainHeight)
	}
	return main + "\n" + footer
}

func detailsTitle(d *chartdetails.Component) string {
	if name := d.Playlist().Name; name != "" {
		return name
	}
	return d.PlaylistID()
}

func (m Model) renderDashboard(d *dashboard.Component, height int) string {
	s := styles.T().S()
	switch {
	case d.Loading():
		return s.Muted.Render(" Loading charts…")
	case d.Err() != nil:
		return s.Error.Render(" " + errmsg.Format(errmsg.OpChartsLoad, d.Err()))
	case len(d.Playlists()) == 0:
		return s.Muted.Render(" No charts available")
	}

	playlists := d.Playlists()
	start, end := visibleRange(d.Cursor(), len(playlists), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		p := playlists[i]
		rank := s.Rank.Render(fmt.Sprintf("%3d ", i+1))
		right := humanize.Comma(int64(p.Followers)) + " followers"
		if p.Owner != "" {
			right = p.Owner + " · " + right
		}
		right = s.Muted.Render(right)
		nameWidth := max(m.Width-lipgloss.Width(rank)-lipgloss.Width(right)-3, 4)
		line := render.Row(rank+render.Truncate(p.Name, nameWidth), right+" ", m.Width)
		lines = append(lines, cursorLine(line, i == d.Cursor(), m.Width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetails(d *chartdetails.Component, height int) string {
	s := styles.T().S()
	switch {
	case d.Loading():
		return s.Muted.Render(" Loading playlist…")
	case d.Err() != nil:
		return s.Error.Render(" " + errmsg.FormatWith(errmsg.OpPlaylistLoad, d.PlaylistID(), d.Err()))
	case len(d.Tracks()) == 0:
		return s.Muted.Render(" This playlist is empty")
	}

	tracks := d.Tracks()
	start, end := visibleRange(d.Cursor(), len(tracks), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		t := tracks[i]
		playing := t.ID == d.PlayingTrackID()

		marker := "  "
		if playing {
			marker = s.Playing.Render("▶ ")
		}
		num := s.Rank.Render(fmt.Sprintf("%3d ", i+1))
		right := formatDuration(t.Duration)
		if !t.Playable() {
			right = "no preview  " + right
		}
		right = s.Muted.Render(right)

		textWidth := max(m.Width-lipgloss.Width(marker+num)-lipgloss.Width(right)-3, 4)
		text := render.Truncate(t.Name+" — "+t.ArtistLine(), textWidth)
		if playing {
			text = s.Playing.Render(text)
		}
		line := render.Row(marker+num+text, right+" ", m.Width)
		lines = append(lines, cursorLine(line, i == d.Cursor(), m.Width))
	}
	return strings.Join(lines, "\n")
}

func cursorLine(line string, selected bool, width int) string {
	if !selected {
		return line
	}
	return styles.T().S().Cursor.Width(width).Render(line)
}

// visibleRange returns the [start, end) window of n rows that keeps the
// cursor centered where possible.
func visibleRange(cursor, n, height int) (start, end int) {
	if n <= 0 || height <= 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	start = min(max(cursor-height/2, 0), n-height)
	return start, start + height
}

func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-:--"
	}
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
