// Package layout computes panel dimensions from the terminal size.
package layout

// NarrowThreshold is the terminal width below which the queue panel is
// stacked under the results panel instead of beside it.
const NarrowThreshold = 100

// Chrome holds the heights of the fixed rows around the panels.
type Chrome struct {
	Header    int // search line
	PlayerBar int
	Status    int // status and key hint lines
}

// Layout is the size of each panel.
type Layout struct {
	Narrow        bool
	ResultsWidth  int
	ResultsHeight int
	QueueWidth    int
	QueueHeight   int
}

// IsNarrowMode returns true if the terminal width is below the narrow
// threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// ContentHeight is the height left for the panels.
func ContentHeight(windowHeight int, c Chrome) int {
	return max(windowHeight-c.Header-c.PlayerBar-c.Status, 0)
}

// Compute splits the content area between the results and queue panels.
// Wide terminals put the queue on the right with 1/queueDivisor of the
// width; narrow ones give it the bottom third.
func Compute(width, height int, c Chrome, queueDivisor int) Layout {
	content := ContentHeight(height, c)
	if IsNarrowMode(width) {
		queueHeight := content / 3
		return Layout{
			Narrow:        true,
			ResultsWidth:  width,
			ResultsHeight: content - queueHeight,
			QueueWidth:    width,
			QueueHeight:   queueHeight,
		}
	}
	queueWidth := width / max(queueDivisor, 1)
	return Layout{
		ResultsWidth:  width - queueWidth,
		ResultsHeight: content,
		QueueWidth:    queueWidth,
		QueueHeight:   content,
	}
}
