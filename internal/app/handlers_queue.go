package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/keymap"
)

func (m *Model) handleQueueKeys(a keymap.Action) (bool, tea.Cmd) {
	q := m.playback.Queue()
	cursor := m.queue.Cursor()
	if q.Empty() {
		switch a {
		case keymap.ActionSelect, keymap.ActionDelete, keymap.ActionMoveItemUp,
			keymap.ActionMoveItemDown, keymap.ActionMoveToFront, keymap.ActionMoveToBack,
			keymap.ActionShuffle, keymap.ActionClear:
			return true, nil
		}
	}

	switch a {
	case keymap.ActionSelect:
		if q.MoveToFront(cursor) {
			m.queueEdited()
			m.playback.PlayNext(context.Background())
			m.syncQueue()
			m.queue.SetCursor(0)
		}
	case keymap.ActionBack:
		m.switchFocus()
	case keymap.ActionDelete:
		if q.Remove(cursor) {
			m.queueEdited()
		}
	case keymap.ActionMoveItemUp:
		if q.Swap(cursor, cursor-1) {
			m.queueEdited()
			m.queue.SetCursor(cursor - 1)
		}
	case keymap.ActionMoveItemDown:
		if q.Swap(cursor, cursor+1) {
			m.queueEdited()
			m.queue.SetCursor(cursor + 1)
		}
	case keymap.ActionMoveToFront:
		if q.MoveToFront(cursor) {
			m.queueEdited()
			m.queue.SetCursor(0)
		}
	case keymap.ActionMoveToBack:
		if q.MoveToBack(cursor) {
			m.queueEdited()
			m.queue.SetCursor(q.Len() - 1)
		}
	case keymap.ActionShuffle:
		q.Shuffle()
		m.queueEdited()
		return true, m.setStatus("Queue shuffled")
	case keymap.ActionClear:
		m.playback.ClearQueue()
		m.undo.Record(q.Items())
		m.syncQueue()
		return true, m.setStatus("Queue cleared")
	default:
		return false, nil
	}
	return true, nil
}

func (m *Model) undoQueue() tea.Cmd {
	items, ok := m.undo.Undo()
	if !ok {
		return m.setStatus("Nothing to undo")
	}
	m.playback.Queue().Replace(items)
	m.playback.QueueChanged()
	m.syncQueue()
	return nil
}

func (m *Model) redoQueue() tea.Cmd {
	items, ok := m.undo.Redo()
	if !ok {
		return m.setStatus("Nothing to redo")
	}
	m.playback.Queue().Replace(items)
	m.playback.QueueChanged()
	m.syncQueue()
	return nil
}
