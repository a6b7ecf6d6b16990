package playerbar

import (
	"strings"
	"time"

	"github.com/llehouerou/jam/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders a bar of width cells, the filled part drawn
// with the theme's progress gradient.
func RenderProgressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	filled := Filled(position, duration, width)
	t := styles.T()
	return styles.ApplyGradient(strings.Repeat(filledBlock, filled), t.ProgressFrom, t.ProgressTo) +
		t.S().Subtle.Render(strings.Repeat(emptyBlock, width-filled))
}

// Filled returns how many of width cells represent position.
func Filled(position, duration time.Duration, width int) int {
	if duration <= 0 || position <= 0 {
		return 0
	}
	ratio := float64(position) / float64(duration)
	return min(int(float64(width)*ratio), width)
}
