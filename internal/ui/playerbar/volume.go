package playerbar

import (
	"strings"

	"github.com/llehouerou/jam/internal/icons"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// RenderVolume renders the volume level as one cell per step.
// Format: "vol ▮▮▮▮▮▯▯▯"
func RenderVolume(level int) string {
	level = max(0, min(level, playback.MaxVolume))
	icon := icons.Volume()
	if level == 0 {
		icon = icons.Mute()
	}
	bar := strings.Repeat("▮", level) + strings.Repeat("▯", playback.MaxVolume-level)
	return styles.T().S().Muted.Render(icon + " " + bar)
}
