// Package navigator holds the result view the user is browsing, the stack
// of views they came from, and the drill-down rules that derive a new view
// from a selected entity.
package navigator

import (
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
)

// DefaultFocus is the row focused after new results are shown: the first
// entity below the first bucket header.
const DefaultFocus = 1

type frame struct {
	focus   int
	results results.Results
}

// Navigator is the state behind the results panel.
// It is not safe for concurrent use.
type Navigator struct {
	current      results.Results
	stack        []frame
	historyView  bool
	title        string
	defaultTitle string
	focus        int
}

// New creates an empty navigator.
func New(defaultTitle string) *Navigator {
	return &Navigator{
		title:        defaultTitle,
		defaultTitle: defaultTitle,
		focus:        DefaultFocus,
	}
}

// ShowInitial replaces the view without remembering the previous one.
// Used for the first screen.
func (n *Navigator) ShowInitial(batch results.Batch, title string) {
	n.current = results.Classify(batch, false)
	n.historyView = false
	n.title = title
	n.focus = DefaultFocus
}

// ShowResults replaces the current view. The view being replaced is pushed
// on the back-stack unless it is the history view.
func (n *Navigator) ShowResults(batch results.Batch, title string, historyView bool) {
	if !n.historyView {
		n.stack = append(n.stack, frame{focus: n.focus, results: n.current})
	}
	n.historyView = historyView
	n.current = results.Classify(batch, historyView)
	n.title = title
	n.focus = DefaultFocus
}

// Replace swaps the contents of the current view, keeping its title, mode,
// back-stack and focus.
func (n *Navigator) Replace(batch results.Batch) {
	n.current = results.Classify(batch, n.historyView)
	n.SetFocus(n.focus)
}

// ShowHistory shows recently played items without truncation.
func (n *Navigator) ShowHistory(items []music.Playable) {
	n.ShowResults(results.PlayableBatch(items), "Recently played", true)
}

// GoBack restores the previous view. It returns false when there is nothing
// to go back to.
func (n *Navigator) GoBack() bool {
	if len(n.stack) == 0 {
		return false
	}
	prev := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]

	n.current = prev.results
	n.historyView = false
	n.title = n.defaultTitle
	n.focus = DefaultFocus
	if prev.focus >= 0 && prev.focus < n.current.Len() {
		n.focus = prev.focus
	}
	return true
}

// Results returns the current view.
func (n *Navigator) Results() results.Results { return n.current }

// Title returns the panel title.
func (n *Navigator) Title() string { return n.title }

// HistoryView reports whether the history view is shown.
func (n *Navigator) HistoryView() bool { return n.historyView }

// Depth returns the number of views that GoBack can restore.
func (n *Navigator) Depth() int { return len(n.stack) }

// Focus returns the focused row.
func (n *Navigator) Focus() int { return n.focus }

// Resolve returns the entity at row, or nil for headers and invalid rows.
func (n *Navigator) Resolve(row int) music.Entity {
	return n.current.Resolve(row)
}

// Focused returns the entity under the focus, or nil.
func (n *Navigator) Focused() music.Entity {
	return n.current.Resolve(n.focus)
}

// SetFocus moves the focus to row, clamped to the layout.
func (n *Navigator) SetFocus(row int) {
	last := n.current.Len() - 1
	if last < 0 {
		n.focus = DefaultFocus
		return
	}
	n.focus = max(0, min(row, last))
}

// MoveFocus moves the focus by delta rows, stepping over header rows when
// an entity row lies further in the same direction.
func (n *Navigator) MoveFocus(delta int) {
	if delta == 0 || n.current.Empty() {
		return
	}
	n.SetFocus(n.focus + delta)

	step := 1
	if delta < 0 {
		step = -1
	}
	for row := n.focus; row >= 0 && row < n.current.Len(); row += step {
		if n.current.Resolve(row) != nil {
			n.focus = row
			return
		}
	}
}
