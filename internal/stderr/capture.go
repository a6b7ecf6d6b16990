//go:build !windows

// Package stderr captures what C code linked into the process (libmpv and
// the audio stack below it) writes straight to file descriptor 2, so it
// does not draw over the terminal UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

const bufferSize = 100

// Capture redirects fd 2 into a pipe until Close.
type Capture struct {
	lines chan string
	orig  int
	r, w  *os.File
	once  sync.Once
	done  chan struct{}
}

// Start redirects fd 2. It must run before the C libraries are loaded.
// When it fails the process keeps its original stderr.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "create pipe")
	}
	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "dup stderr")
	}
	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, errors.Wrap(err, "redirect stderr")
	}

	c := &Capture{
		lines: make(chan string, bufferSize),
		orig:  orig,
		r:     r,
		w:     w,
		done:  make(chan struct{}),
	}
	go c.read()
	return c, nil
}

func (c *Capture) read() {
	defer close(c.done)
	defer close(c.lines)
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// full: drop
		}
	}
}

// Lines delivers captured lines. It is closed after Close.
func (c *Capture) Lines() <-chan string {
	return c.lines
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Close restores fd 2.
func (c *Capture) Close() error {
	var err error
	c.once.Do(func() {
		err = unix.Dup2(c.orig, int(os.Stderr.Fd()))
		unix.Close(c.orig)
		c.w.Close()
		<-c.done
		c.r.Close()
	})
	return errors.Wrap(err, "restore stderr")
}
