// Package helpbindings provides a scrollable overlay listing the active key
// bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/ui"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// CloseMsg asks the parent to hide the overlay.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "playback", "results", "queue"}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"results":  "Results",
	"queue":    "Queue Panel",
}

// Model holds the state for the help overlay.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help overlay for the given bindings.
func New(bindings []keymap.Binding) Model {
	return Model{lines: buildLines(bindings)}
}

// Update scrolls or closes the overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		m.scrollOffset = 0
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View renders the overlay box, centered in the model's size.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	visible := m.lines[min(m.scrollOffset, len(m.lines)):min(m.scrollOffset+m.visibleHeight(), len(m.lines))]

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}

	var b strings.Builder
	b.WriteString(styles.T().S().Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(styles.T().S().Subtle.Render(footer))

	box := styles.PanelStyle(true).Padding(0, 2).Render(b.String())
	return lipgloss.Place(m.Width(), m.Height(), lipgloss.Center, lipgloss.Center, box)
}

// buildLines renders the bindings grouped by context, keys aligned.
func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b.Keys)))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		var group []keymap.Binding
		for _, b := range bindings {
			if b.Context == ctx {
				group = append(group, b)
			}
		}
		if len(group) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			s.Header.Render(categoryLabels[ctx]),
			s.Subtle.Render(strings.Repeat("─", keyWidth+20)))
		for _, b := range group {
			label := keyLabel(b.Keys)
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(label))
			lines = append(lines, s.Key.Render(label)+pad+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

// keyLabel joins keys for display, naming the space bar.
func keyLabel(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, ", ")
}

func (m Model) visibleHeight() int {
	// title, blank, blank, footer, border
	return max(m.Height()-6, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
