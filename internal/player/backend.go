// Package player defines the media backend the playback controller drives.
package player

import "github.com/cockroachdb/errors"

// ErrNoMedia is returned by operations that need a loaded file.
var ErrNoMedia = errors.New("no media loaded")

// SeekMode selects how a seek offset is interpreted.
type SeekMode string

const (
	SeekRelative SeekMode = "relative"
	SeekAbsolute SeekMode = "absolute"
)

// EndReason tells why playback of a file ended.
type EndReason int

const (
	// EndReasonEOF is a natural end of file.
	EndReasonEOF EndReason = iota
	EndReasonStop
	EndReasonQuit
	EndReasonError
	EndReasonRedirect
)

// EndFileEvent is emitted when the backend stops playing a file.
type EndFileEvent struct {
	Reason EndReason
}

// Backend is an external media engine able to stream a URL.
type Backend interface {
	// Load starts playing url, replacing whatever was playing.
	Load(url string) error
	SetPause(paused bool) error
	Seek(seconds float64, mode SeekMode) error
	// SetVolume takes a value in 0..100.
	SetVolume(volume int) error
	// TimePos returns the playback position in seconds.
	TimePos() (float64, error)
	TimeRemaining() (float64, error)
	Quit()
	// Events delivers end-of-file notifications. It is closed on Quit.
	Events() <-chan EndFileEvent
}
