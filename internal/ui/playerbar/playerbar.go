// Package playerbar renders the now-playing line at the bottom of the
// screen.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/ui"
	"github.com/llehouerou/jam/internal/ui/render"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// Height is the total height of the bar: border, content, border.
const Height = 3

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
	separator   = "  "
	minBarWidth = 10
)

// Render returns the player bar for a controller snapshot.
func Render(s playback.Snapshot, width int) string {
	innerWidth := max(width-6, 0) // border and padding
	return styles.PanelStyle(false).
		Padding(0, 2).
		Width(max(width-2, 0)).
		Render(content(s, innerWidth))
}

func content(s playback.Snapshot, width int) string {
	vol := RenderVolume(s.Volume)
	if s.Track == nil {
		idle := styles.T().S().Muted.Render("Nothing playing")
		if s.QueueLen > 0 {
			idle = styles.T().S().Muted.Render("Stopped · " + render.Count(s.QueueLen, "song") + " queued")
		}
		return render.Row(idle, vol, width)
	}

	status := statusSymbol(s.State)
	times := render.Duration(s.Position) + " / " + render.Duration(s.Duration)
	rating := ""
	if s.Track.Kind == music.KindSong {
		rating = ratingStyle(s.Track.Rating).Render(s.Track.Rating.Glyph()) + separator
	}

	fixed := lipgloss.Width(status) + 1 + len(separator)*3 + lipgloss.Width(times) +
		lipgloss.Width(rating) + lipgloss.Width(vol)
	textWidth := width - fixed - minBarWidth
	text := trackText(s.Track, textWidth)
	barWidth := max(width-fixed-lipgloss.Width(text), ui.MinProgressBarWidth)

	var b strings.Builder
	b.WriteString(text)
	b.WriteString(separator)
	b.WriteString(status)
	b.WriteString(" ")
	b.WriteString(RenderProgressBar(s.Position, s.Duration, barWidth))
	b.WriteString(separator)
	b.WriteString(styles.T().S().Muted.Render(times))
	b.WriteString(separator)
	b.WriteString(rating)
	b.WriteString(vol)
	return render.TruncateStyled(b.String(), width)
}

// trackText renders "Title · Artist · Album" styled, fitting maxWidth.
func trackText(t *playback.TrackInfo, maxWidth int) string {
	title := t.Title
	if title == "" {
		title = "Unknown"
	}
	var info []string
	if t.Artist != "" {
		info = append(info, t.Artist)
	}
	if t.Album != "" {
		info = append(info, t.Album)
	}
	rest := strings.Join(info, " · ")

	titleWidth := lipgloss.Width(title)
	switch {
	case maxWidth <= 0:
		return ""
	case rest == "" || titleWidth+3 >= maxWidth:
		return styles.T().S().Title.Render(render.Truncate(title, maxWidth))
	default:
		return styles.T().S().Title.Render(title) +
			styles.T().S().Muted.Render(" · "+render.Truncate(rest, maxWidth-titleWidth-3))
	}
}

func statusSymbol(s playback.State) string {
	switch s {
	case playback.StatePlaying:
		return styles.T().S().Playing.Render(playSymbol)
	case playback.StatePaused:
		return styles.T().S().Warning.Render(pauseSymbol)
	default:
		return styles.T().S().Muted.Render(stopSymbol)
	}
}

func ratingStyle(r music.Rating) lipgloss.Style {
	switch r.Glyph() {
	case "▲":
		return styles.T().S().Success
	case "▼":
		return styles.T().S().Error
	default:
		return styles.T().S().Subtle
	}
}
