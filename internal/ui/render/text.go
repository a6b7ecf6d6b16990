// Package render provides text helpers for fixed-width terminal cells.
package render

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize/english"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize strips escape sequences and control characters from remote
// metadata so a title cannot move the cursor or recolor the screen.
func Sanitize(s string) string {
	s = ansi.Strip(blanks.Replace(s))
	return strings.Map(func(r rune) rune {
		if r == unicode.ReplacementChar || unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

var blanks = strings.NewReplacer("\t", " ", "\u00a0", " ")

// Truncate shortens plain text to maxWidth cells, ending with an ellipsis
// when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// TruncateStyled shortens text that already carries ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// Fit truncates then pads plain text to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// Row places left and right at the edges of width cells, at least one
// space apart.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator is a horizontal rule of width cells.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine is width spaces.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}

// Duration renders d as m:ss, or h:mm:ss from one hour. Zero and negative
// durations render as "-:--".
func Duration(d time.Duration) string {
	if d <= 0 {
		return "-:--"
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Count renders n with a singular or plural noun: "1 song", "12 songs".
func Count(n int, noun string) string {
	return english.Plural(n, noun, "")
}
