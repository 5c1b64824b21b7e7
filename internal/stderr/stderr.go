//go:build !windows

// Package stderr captures output that audio backends (ALSA, minimp3) write
// directly to file descriptor 2, bypassing os.Stderr, and forwards it to the
// log so it cannot corrupt the TUI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// Capture redirects fd 2 into a pipe drained by a goroutine.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	done  chan struct{}
}

// Start redirects stderr. Each non-empty line is logged at warn level.
// It must run before the speaker is initialised. On error the program can
// continue with stderr untouched.
func Start(logger *log.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "create pipe")
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "dup stderr")
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "redirect stderr")
	}

	c := &Capture{orig: orig, read: r, write: w, done: make(chan struct{})}
	go c.drain(logger)
	return c, nil
}

func (c *Capture) drain(logger *log.Logger) {
	defer close(c.done)
	scanner := bufio.NewScanner(c.read)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("audio backend", "msg", line)
		}
	}
}

// WriteOriginal writes to the real stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores stderr and waits for captured lines to be logged.
func (c *Capture) Stop() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.write.Close()
	<-c.done
	c.read.Close()
}
