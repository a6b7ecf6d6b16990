package queuepanel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/icons"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/ui/render"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - 2
	content := m.renderHeader(innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderItems(innerWidth, m.ListHeight())

	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(content)
}

// renderHeader renders "Queue" with the item count and total length.
func (m Model) renderHeader(innerWidth int) string {
	left := "Queue"
	right := ""
	if len(m.items) > 0 {
		left = fmt.Sprintf("Queue (%d/%d)", m.cursor+1, len(m.items))
		if total := totalDuration(m.items); total > 0 {
			right = render.Duration(total)
		}
	}
	header := styles.T().S().Title.Render(render.Truncate(left, innerWidth))
	if right == "" || lipgloss.Width(left)+len(right)+1 > innerWidth {
		return header
	}
	return render.Row(header, styles.T().S().Muted.Render(right), innerWidth)
}

func (m Model) renderItems(innerWidth, listHeight int) string {
	if len(m.items) == 0 {
		lines := make([]string, max(listHeight, 0))
		for i := range lines {
			lines[i] = render.EmptyLine(innerWidth)
		}
		if len(lines) > 0 {
			lines[0] = styles.T().S().Subtle.Render(render.Fit("  empty", innerWidth))
		}
		return strings.Join(lines, "\n")
	}

	start, end := m.win.Range(len(m.items), listHeight)
	lines := make([]string, 0, listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderItem(idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderItem renders one row: position, title and artist columns, duration.
func (m Model) renderItem(idx, width int) string {
	item := m.items[idx]
	num := fmt.Sprintf("%3d ", idx+1)
	dur := ""
	if s, ok := item.(*music.Song); ok && s.Duration > 0 {
		dur = " " + music.FormatDuration(s.Duration)
	}

	contentWidth := max(width-len(num)-len(dur), 0)
	titleWidth := contentWidth * 3 / 5
	artistWidth := contentWidth - titleWidth

	title := icons.Format(item.Kind(), item.DisplayTitle())
	line := num +
		render.Fit(title, titleWidth) +
		render.Fit(item.DisplayArtist(), artistWidth) +
		dur

	if idx == m.cursor && m.IsFocused() {
		return styles.T().S().Cursor.Render(line)
	}
	return styles.T().S().Base.Render(line)
}

func totalDuration(items []music.Playable) time.Duration {
	var total time.Duration
	for _, it := range items {
		if s, ok := it.(*music.Song); ok {
			total += s.Duration
		}
	}
	return total
}
