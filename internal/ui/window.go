package ui

// Window tracks the first visible row of a scrolled list. The focused row
// and the list length are passed in since the owner keeps them.
type Window struct {
	offset int
	margin int
}

// NewWindow creates a window keeping margin rows around the focus.
func NewWindow(margin int) Window {
	return Window{margin: margin}
}

// Offset returns the first visible row.
func (w Window) Offset() int {
	return w.offset
}

// Follow scrolls so that pos stays visible with the margin when possible.
func (w *Window) Follow(pos, listLen, height int) {
	if height <= 0 || listLen == 0 {
		w.offset = 0
		return
	}
	margin := min(w.margin, (height-1)/2)
	if pos < w.offset+margin {
		w.offset = pos - margin
	}
	if pos >= w.offset+height-margin {
		w.offset = pos - height + margin + 1
	}
	w.offset = max(0, min(w.offset, listLen-height))
}

// Range returns the visible rows [start, end).
func (w Window) Range(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(w.offset, listLen)
	return start, min(start+height, listLen)
}

// Reset scrolls back to the top.
func (w *Window) Reset() {
	w.offset = 0
}
