//go:build !windows

package stderr

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureForwardsLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	c, err := Start(logger)
	require.NoError(t, err)

	_, _ = os.Stderr.WriteString("ALSA lib pcm.c: underrun occurred\n\n")
	c.Stop()

	out := buf.String()
	assert.Contains(t, out, "audio backend")
	assert.Contains(t, out, "underrun occurred")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("audio backend")), "blank lines are skipped")
}
