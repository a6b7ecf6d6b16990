//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/subsonic"
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
			op:       OpSearch,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpSearch,
			err:      errors.New("connection refused"),
			expected: "Failed to search: connection refused",
		},
		{
			name:     "station operation",
			op:       OpStation,
			err:      errors.New("no seed"),
			expected: "Failed to start radio: no seed",
		},
		{
			name:     "api error shows server message",
			op:       OpExpand,
			err:      errors.Wrap(&subsonic.Error{Code: subsonic.CodeNotFound, Message: "Album not found"}, "getAlbum"),
			expected: "Failed to open: Album not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		err      error
		expected string
	}{
		{"nil error", "Abbey Road", nil, ""},
		{"empty subject", "", errors.New("boom"), "Failed to open: boom"},
		{"with subject", "Abbey Road", errors.New("boom"), "Failed to open 'Abbey Road': boom"},
		{
			"api error with subject",
			"Abbey Road",
			&subsonic.Error{Code: subsonic.CodeNotFound, Message: "gone"},
			"Failed to open 'Abbey Road': gone",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(OpExpand, tt.subject, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
