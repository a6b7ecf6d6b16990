package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/keymap"
)

// keyHandler attempts to handle an action.
type keyHandler func(keymap.Action) (bool, tea.Cmd)

// chain runs handlers in order until one handles the action.
func chain(action keymap.Action, handlers ...keyHandler) tea.Cmd {
	for _, h := range handlers {
		if ok, cmd := h(action); ok {
			return cmd
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.inSearch {
		return m.handleSearchInput(msg)
	}

	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	if action == keymap.ActionQuit {
		m.shutdown()
		return m, tea.Quit
	}

	list := m.handleResultsKeys
	if m.focus == FocusQueue {
		list = m.handleQueueKeys
	}
	cmd := chain(action,
		m.handleGlobalKeys,
		m.handlePlaybackKeys,
		m.handleListKeys,
		list,
	)
	return m, cmd
}

func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeSearch()
		return *m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.search.Value())
		m.closeSearch()
		m.search.SetValue("")
		if query == "" {
			cmd := m.requestListenNow()
			return *m, cmd
		}
		cmd := m.requestSearch(query)
		return *m, cmd
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return *m, cmd
}

func (m *Model) openSearch() tea.Cmd {
	m.inSearch = true
	return m.search.Focus()
}

func (m *Model) closeSearch() {
	m.inSearch = false
	m.search.Blur()
}

func (m *Model) handleGlobalKeys(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionSwitchFocus:
		m.switchFocus()
		return true, nil
	case keymap.ActionSearch:
		return true, m.openSearch()
	case keymap.ActionHelp:
		m.showHelp = true
		return true, nil
	case keymap.ActionListenNow:
		return true, m.requestListenNow()
	case keymap.ActionHistory:
		m.showHistory()
		return true, nil
	case keymap.ActionUndo:
		return true, m.undoQueue()
	case keymap.ActionRedo:
		return true, m.redoQueue()
	}
	return false, nil
}

// handleListKeys moves the cursor of the focused panel.
func (m *Model) handleListKeys(a keymap.Action) (bool, tea.Cmd) {
	if m.focus == FocusQueue {
		switch a {
		case keymap.ActionMoveUp:
			m.queue.MoveCursor(-1)
		case keymap.ActionMoveDown:
			m.queue.MoveCursor(1)
		case keymap.ActionPageUp:
			m.queue.MoveCursor(-m.queue.PageSize())
		case keymap.ActionPageDown:
			m.queue.MoveCursor(m.queue.PageSize())
		case keymap.ActionJumpStart:
			m.queue.SetCursor(0)
		case keymap.ActionJumpEnd:
			m.queue.SetCursor(m.queue.Len() - 1)
		default:
			return false, nil
		}
		return true, nil
	}

	switch a {
	case keymap.ActionMoveUp:
		m.nav.MoveFocus(-1)
	case keymap.ActionMoveDown:
		m.nav.MoveFocus(1)
	case keymap.ActionPageUp:
		m.nav.MoveFocus(-m.results.PageSize())
	case keymap.ActionPageDown:
		m.nav.MoveFocus(m.results.PageSize())
	case keymap.ActionJumpStart:
		m.nav.SetFocus(0)
		m.nav.MoveFocus(1)
	case keymap.ActionJumpEnd:
		m.nav.SetFocus(m.nav.Results().Len() - 1)
	default:
		return false, nil
	}
	m.results.Follow(m.nav)
	return true, nil
}

func (m *Model) switchFocus() {
	if m.focus == FocusResults {
		m.focus = FocusQueue
	} else {
		m.focus = FocusResults
	}
	m.results.SetFocused(m.focus == FocusResults)
	m.queue.SetFocused(m.focus == FocusQueue)
}
