// Package headerbar renders the top line: the app name, the search box and
// the views that can be opened by key.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/ui/render"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab is a view reachable by key.
type Tab struct {
	Key    string
	Name   string
	Active bool
}

// Render returns the header line: "jam  <search>   L Listen now │ H History".
// search is the already rendered search box.
func Render(search string, tabs []Tab, width int) string {
	if width < 20 {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		keyStyle, nameStyle := s.Subtle, s.Muted
		if t.Active {
			keyStyle, nameStyle = s.Key, s.Key
		}
		parts = append(parts, keyStyle.Render(t.Key)+" "+nameStyle.Render(t.Name))
	}
	right := strings.Join(parts, s.Subtle.Render(" │ "))

	left := s.Playing.Render("jam") + "  " + search
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > width {
		return render.TruncateStyled(left, width)
	}
	return render.Row(left, right, width)
}
