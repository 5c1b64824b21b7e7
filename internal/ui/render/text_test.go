package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Today's Top Hits", "Today's Top Hits"},
		{"newline", "line one\nline two", "line one line two"},
		{"nbsp", "a\u00a0b", "a b"},
		{"control", "a\x07b", "ab"},
		{"invalid utf8", "a\xffb", "ab"},
		{"tab kept", "a\tb", "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.LessOrEqual(t, lipgloss.Width(Truncate("日本語の曲名", 5)), 5)
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "ab   ", TruncateAndPad("ab", 5))
	assert.Equal(t, 5, lipgloss.Width(TruncateAndPad("a very long title", 5)))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left     right", Row("left", "right", 14))
	assert.Equal(t, "left right", Row("left", "right", 3), "keeps one space when too narrow")
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
}
