//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"

	"github.com/llehouerou/chartwaves/internal/catalog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpChartsLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpChartsLoad,
			err:      errors.New("connection refused"),
			expected: "Failed to load charts: connection refused",
		},
		{
			name:     "fetch error shows its cause",
			op:       OpPlaylistLoad,
			err:      &catalog.FetchError{Op: "playlist", ID: "p1", Err: errors.New("timeout")},
			expected: "Failed to load playlist: timeout",
		},
		{
			name:     "not found is shortened",
			op:       OpPlaylistLoad,
			err:      &catalog.FetchError{Op: "playlist", ID: "p1", Err: catalog.ErrNotFound},
			expected: "Failed to load playlist: not found",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "navigation restore",
			op:       OpNavigationRestore,
			err:      errors.New("database is locked"),
			expected: "Failed to restore navigation: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaylistLoad,
			context:  "Top 50",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpPlaylistLoad,
			context:  "",
			err:      errors.New("timeout"),
			expected: "Failed to load playlist: timeout",
		},
		{
			name:     "includes context",
			op:       OpPlaylistLoad,
			context:  "Top 50",
			err:      errors.New("timeout"),
			expected: "Failed to load playlist 'Top 50': timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
