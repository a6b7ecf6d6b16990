//go:build windows

package stderr

import "os"

// Capture is inert on Windows, where the audio stack does not write to
// the console.
type Capture struct {
	lines chan string
}

// Start returns a capture that never delivers anything.
func Start() (*Capture, error) {
	return &Capture{lines: make(chan string)}, nil
}

// Lines never delivers.
func (c *Capture) Lines() <-chan string { return c.lines }

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Close does nothing.
func (c *Capture) Close() error { return nil }
