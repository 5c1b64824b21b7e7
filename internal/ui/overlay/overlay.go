// Package overlay draws one rendered view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view, line by line.
// On each overlay line the span between the first and last visible non-space
// character replaces the base; everything else shows through.
// ANSI sequences on either side are preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = composeLine(baseLines[i], line, width)
	}
	return strings.Join(baseLines, "\n")
}

// Bottom fits base to exactly height lines and draws overlay over its last
// lines.
func Bottom(base, overlay string, width, height int) string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	ovLines := strings.Split(overlay, "\n")
	start := max(height-len(ovLines), 0)
	for i, line := range ovLines {
		if start+i >= height {
			break
		}
		lines[start+i] = composeLine(lines[start+i], line, width)
	}
	return strings.Join(lines, "\n")
}

func composeLine(baseLine, overlayLine string, width int) string {
	plain := ansi.Strip(overlayLine)
	if strings.TrimSpace(plain) == "" {
		return baseLine
	}

	// Visible bounds in display columns.
	startCol := 0
	for _, r := range plain {
		if r != ' ' {
			break
		}
		startCol++
	}
	trimmed := strings.TrimRight(plain, " ")
	endCol := startCol + ansi.StringWidth(trimmed[startCol:])

	content := ansi.Cut(overlayLine, startCol, endCol)

	if w := ansi.StringWidth(baseLine); w < width {
		baseLine += strings.Repeat(" ", width-w)
	}

	result := ansi.Cut(baseLine, 0, startCol) + content
	if endCol < width {
		result += ansi.Cut(baseLine, endCol, width)
	}
	return result
}
