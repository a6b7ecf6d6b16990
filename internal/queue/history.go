package queue

import "github.com/llehouerou/jam/internal/music"

// HistoryLimit is the number of played items remembered.
const HistoryLimit = 100

// History lists played items, most recent first.
type History struct {
	items []music.Playable
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{items: make([]music.Playable, 0, HistoryLimit)}
}

// Push records item as the most recently played, dropping the oldest entry
// past HistoryLimit.
func (h *History) Push(item music.Playable) {
	if isNil(item) {
		return
	}
	h.items = append([]music.Playable{item}, h.items...)
	if len(h.items) > HistoryLimit {
		h.items = h.items[:HistoryLimit]
	}
}

// PopFront removes and returns the most recent item.
func (h *History) PopFront() (music.Playable, bool) {
	if len(h.items) == 0 {
		return nil, false
	}
	head := h.items[0]
	h.items = h.items[1:]
	return head, true
}

// Front returns the most recent item without removing it.
func (h *History) Front() music.Playable {
	if len(h.items) == 0 {
		return nil
	}
	return h.items[0]
}

// Replace sets the history contents, most recent first.
func (h *History) Replace(items []music.Playable) {
	h.items = make([]music.Playable, 0, min(len(items), HistoryLimit))
	for _, it := range items {
		if len(h.items) == HistoryLimit {
			break
		}
		if !isNil(it) {
			h.items = append(h.items, it)
		}
	}
}

// Items returns a copy of the history, most recent first.
func (h *History) Items() []music.Playable {
	out := make([]music.Playable, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of remembered items.
func (h *History) Len() int {
	return len(h.items)
}
