// Package errmsg formats errors for the status line.
package errmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/subsonic"
)

// Op names an operation that can fail.
type Op string

const (
	// Catalog
	OpSearch      Op = "search"
	OpListenNow   Op = "load listen now"
	OpExpand      Op = "open"
	OpMoreVideos  Op = "load more videos"
	OpStation     Op = "start radio"
	OpEnqueue     Op = "add to queue"
	OpRate        Op = "rate song"
	OpStreamLoad  Op = "load stream"
	OpPlayback    Op = "start playback"
	OpSessionSave Op = "save session"
	OpSessionLoad Op = "restore session"
	OpVolumeSave  Op = "save volume"
	OpInitialize  Op = "initialize application"
)

// Format creates a user-facing message. Catalog API errors are reduced to
// the server's message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	var apiErr *subsonic.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to %s: %s", op, apiErr.Message)
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith is Format with the name of the item involved.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	var apiErr *subsonic.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to %s '%s': %s", op, subject, apiErr.Message)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}
