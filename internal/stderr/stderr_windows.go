//go:build windows

package stderr

import (
	"os"

	"github.com/charmbracelet/log"
)

// Capture is a no-op on Windows; its audio backends don't write to fd 2.
type Capture struct{}

func Start(*log.Logger) (*Capture, error) { return &Capture{}, nil }

func (c *Capture) WriteOriginal(msg string) { _, _ = os.Stderr.WriteString(msg) }

func (c *Capture) Stop() {}
