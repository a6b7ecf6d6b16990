// Package resultsview renders the navigator's current result view: one
// header per bucket and one row per entity, with the focused row
// highlighted.
package resultsview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/jam/internal/icons"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
	"github.com/llehouerou/jam/internal/ui"
	"github.com/llehouerou/jam/internal/ui/render"
	"github.com/llehouerou/jam/internal/ui/styles"
)

// View is the subset of the navigator the panel renders.
type View interface {
	Results() results.Results
	Title() string
	Focus() int
	Depth() int
	HistoryView() bool
}

// Model holds the panel size, focus and scroll position.
type Model struct {
	ui.Base
	win ui.Window
}

// New creates a results panel.
func New() Model {
	return Model{win: ui.NewWindow(ui.ScrollMargin)}
}

// PageSize is the number of visible rows.
func (m Model) PageSize() int {
	return max(m.ListHeight(), 1)
}

// Follow scrolls to keep the view's focused row visible. Call it after
// the focus or the results change.
func (m *Model) Follow(v View) {
	m.win.Follow(v.Focus(), v.Results().Len(), m.ListHeight())
}

// Render draws the panel.
func (m Model) Render(v View) string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.Width() - 2
	content := m.renderHeader(v, innerWidth) + "\n" +
		render.Separator(innerWidth) + "\n" +
		m.renderRows(v, innerWidth, m.ListHeight())
	return styles.PanelStyle(m.IsFocused()).Width(innerWidth).Render(content)
}

func (m Model) renderHeader(v View, width int) string {
	title := v.Title()
	if title == "" {
		title = "Results"
	}
	right := render.Count(v.Results().Count(), "item")
	if v.Depth() > 0 {
		right = "← " + strconv.Itoa(v.Depth()) + " · " + right
	}
	left := styles.T().S().Title.Render(render.Truncate(title, max(width-len(right)-1, 1)))
	return render.Row(left, styles.T().S().Muted.Render(right), width)
}

func (m Model) renderRows(v View, width, height int) string {
	res := v.Results()
	lines := make([]string, 0, height)
	if res.Empty() {
		msg := "No results"
		if v.HistoryView() {
			msg = "Nothing played yet"
		}
		lines = append(lines, styles.T().S().Subtle.Render(render.Fit("  "+msg, width)))
	} else {
		rows := res.Rows()
		start, end := m.win.Range(len(rows), height)
		for i := start; i < end; i++ {
			lines = append(lines, renderRow(rows[i], width, i == v.Focus() && m.IsFocused()))
		}
	}
	for len(lines) < height {
		lines = append(lines, render.EmptyLine(width))
	}
	return strings.Join(lines[:min(len(lines), max(height, 0))], "\n")
}

func renderRow(r results.Row, width int, focused bool) string {
	if r.Header {
		return styles.T().S().Header.Render(render.Fit(BucketLabel(r.Kind), width))
	}
	line := "  " + Line(r.Entity, width-2)
	if focused {
		return styles.T().S().Cursor.Render(line)
	}
	return styles.T().S().Base.Render(line)
}

// BucketLabel is the header text of a bucket.
func BucketLabel(k music.Kind) string {
	switch k {
	case music.KindArtist:
		return "Artists"
	case music.KindAlbum:
		return "Albums"
	case music.KindSong:
		return "Songs"
	case music.KindSituation:
		return "Mixes"
	case music.KindRadioStation:
		return "Radio stations"
	case music.KindPlaylist:
		return "Playlists"
	case music.KindVideo:
		return "Videos"
	default:
		return "Other"
	}
}

// Line renders an entity in exactly width cells.
func Line(e music.Entity, width int) string {
	switch v := e.(type) {
	case *music.Song:
		suffix := " " + music.FormatDuration(v.Duration) + " " + v.Rating.Glyph()
		return columns(width, suffix,
			icons.Format(music.KindSong, v.Title), v.Artist, v.Album)
	case *music.Video:
		return columns(width, "", icons.Format(music.KindVideo, v.Title), v.Channel)
	case *music.Album:
		year := ""
		if v.Year > 0 {
			year = " " + strconv.Itoa(v.Year)
		}
		return columns(width, year, icons.Format(music.KindAlbum, v.Title), v.Artist)
	case *music.Artist:
		return columns(width, "", icons.Format(music.KindArtist, v.Name))
	case *music.RadioStation:
		return columns(width, "", icons.Format(music.KindRadioStation, v.Title))
	case *music.Situation:
		return columns(width, " "+render.Count(len(v.Stations), "station"),
			icons.Format(music.KindSituation, v.Title), v.Description)
	case *music.Playlist:
		return columns(width, " "+render.Count(len(v.Songs), "song"),
			icons.Format(music.KindPlaylist, v.Name))
	default:
		return render.Fit(fmt.Sprint(e), width)
	}
}

// columns splits width minus the suffix between cols: the first column
// gets half, the others share the rest.
func columns(width int, suffix string, cols ...string) string {
	width = max(width, 0)
	suffix = render.Truncate(suffix, width)
	avail := width - lipgloss.Width(suffix)
	if len(cols) == 1 {
		return render.Fit(cols[0], avail) + suffix
	}
	first := avail / 2
	rest := avail - first
	var b strings.Builder
	b.WriteString(render.Fit(cols[0], first))
	others := cols[1:]
	for i, c := range others {
		w := rest / len(others)
		if i == len(others)-1 {
			w = rest - w*(len(others)-1)
		}
		b.WriteString(render.Fit(c, w))
	}
	b.WriteString(suffix)
	return b.String()
}
