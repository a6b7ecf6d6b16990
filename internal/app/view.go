package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/ui"
	"github.com/llehouerou/jam/internal/ui/headerbar"
	"github.com/llehouerou/jam/internal/ui/layout"
	"github.com/llehouerou/jam/internal/ui/playerbar"
	"github.com/llehouerou/jam/internal/ui/render"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// statusHeight covers the status line and the key hint line.
const statusHeight = 2

func chrome() layout.Chrome {
	return layout.Chrome{
		Header:    headerbar.Height,
		PlayerBar: playerbar.Height,
		Status:    statusHeight,
	}
}

func (m Model) layout() layout.Layout {
	return layout.Compute(m.width, m.height, chrome(), ui.QueueWidthDivisor)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 || m.quitting {
		return ""
	}
	if m.showHelp {
		return m.help.View()
	}

	l := m.layout()
	var panels string
	if l.Narrow {
		panels = lipgloss.JoinVertical(lipgloss.Left, m.results.Render(m.nav), m.queue.View())
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.results.Render(m.nav), m.queue.View())
	}

	return strings.Join([]string{
		headerbar.Render(m.searchBox(), m.tabs(), m.width),
		panels,
		playerbar.Render(m.playback.Snapshot(), m.width),
		m.renderStatus(),
		m.renderHints(),
	}, "\n")
}

func (m Model) searchBox() string {
	if m.inSearch {
		return m.search.View()
	}
	return styles.T().S().Subtle.Render(m.firstKey(keymap.ActionSearch) + " search")
}

func (m Model) tabs() []headerbar.Tab {
	return []headerbar.Tab{
		{Key: m.firstKey(keymap.ActionListenNow), Name: "Listen now", Active: m.listening && m.nav.Depth() == 0},
		{Key: m.firstKey(keymap.ActionHistory), Name: "History", Active: m.nav.HistoryView()},
	}
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.status != "" && m.statusErr:
		return s.Error.Render(render.Truncate(m.status, m.width))
	case m.loading > 0:
		return s.Muted.Render("Loading…")
	case m.status != "":
		return s.Success.Render(render.Truncate(m.status, m.width))
	}
	return ""
}

// renderHints lists the main keys of the focused panel.
func (m Model) renderHints() string {
	actions := []keymap.Action{keymap.ActionSelect, keymap.ActionPlay, keymap.ActionEnqueue, keymap.ActionStation}
	names := []string{"open", "play", "add", "radio"}
	if m.focus == FocusQueue {
		actions = []keymap.Action{keymap.ActionSelect, keymap.ActionDelete, keymap.ActionMoveItemUp, keymap.ActionShuffle}
		names = []string{"play", "remove", "move", "shuffle"}
	}
	actions = append(actions, keymap.ActionSwitchFocus, keymap.ActionHelp, keymap.ActionQuit)
	names = append(names, "focus", "help", "quit")

	s := styles.T().S()
	parts := make([]string, 0, len(actions))
	for i, a := range actions {
		key := m.firstKey(a)
		if key == "" {
			continue
		}
		parts = append(parts, s.Key.Render(key)+" "+s.Muted.Render(names[i]))
	}
	return render.TruncateStyled(strings.Join(parts, s.Subtle.Render(" · ")), m.width)
}

// firstKey is the label of the first key bound to a.
func (m Model) firstKey(a keymap.Action) string {
	keys := m.keys.KeysFor(a)
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}
