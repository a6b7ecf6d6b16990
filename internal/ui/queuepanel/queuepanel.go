// Package queuepanel renders the play queue and tracks the queue cursor.
package queuepanel

import (
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/ui"
)

// Model represents the queue panel state. The queue itself lives in the
// playback controller; the panel holds a copy refreshed with SetItems.
type Model struct {
	ui.Base
	items  []music.Playable
	cursor int
	win    ui.Window
}

// New creates an empty queue panel.
func New() Model {
	return Model{win: ui.NewWindow(ui.ScrollMargin)}
}

// SetItems replaces the displayed queue and clamps the cursor.
func (m *Model) SetItems(items []music.Playable) {
	m.items = items
	m.cursor = max(0, min(m.cursor, len(items)-1))
	m.follow()
}

// Len returns the number of queued items.
func (m Model) Len() int {
	return len(m.items)
}

// Cursor returns the cursor index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the item under the cursor, or nil when empty.
func (m Model) Selected() music.Playable {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

// MoveCursor moves the cursor by delta, clamped to the list.
func (m *Model) MoveCursor(delta int) {
	m.SetCursor(m.cursor + delta)
}

// SetCursor moves the cursor to index, clamped to the list.
func (m *Model) SetCursor(index int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(index, len(m.items)-1))
	m.follow()
}

// PageSize is the number of visible rows.
func (m Model) PageSize() int {
	return max(m.ListHeight(), 1)
}

// SetSize sets the panel dimensions and keeps the cursor in view.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.follow()
}

func (m *Model) follow() {
	m.win.Follow(m.cursor, len(m.items), m.ListHeight())
}
