package resultsview

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/navigator"
	"github.com/llehouerou/jam/internal/results"
)

func sampleBatch() results.Batch {
	return results.Batch{
		Artists: []*music.Artist{{ID: "ar1", Name: "The Beatles"}},
		Albums:  []*music.Album{{ID: "al1", Title: "Abbey Road", Artist: "The Beatles", Year: 1969}},
		Songs: []*music.Song{
			{ID: "s1", Title: "Come Together", Artist: "The Beatles", Album: "Abbey Road", Duration: 259 * time.Second, Rating: music.ThumbsUp},
			{ID: "s2", Title: "Something", Artist: "The Beatles", Album: "Abbey Road", Duration: 182 * time.Second},
		},
		Videos: []*music.Video{{ID: "v1", Title: "Live", Channel: "chan"}},
	}
}

func TestRender_HeadersAndRows(t *testing.T) {
	nav := navigator.New("Listen now")
	nav.ShowInitial(sampleBatch(), "beatles")

	m := New()
	m.SetSize(100, 20)
	m.SetFocused(true)
	m.Follow(nav)

	out := ansi.Strip(m.Render(nav))
	for _, want := range []string{
		"beatles", "5 items",
		"Artists", "Albums", "Songs", "Videos",
		"The Beatles", "Abbey Road", "1969",
		"Come Together", "4:19", "▲", "Something", "3:02",
		"Live", "chan",
	} {
		assert.Contains(t, out, want)
	}

	// Buckets appear in the fixed order.
	assert.Less(t, strings.Index(out, "Artists"), strings.Index(out, "Albums"))
	assert.Less(t, strings.Index(out, "Albums"), strings.Index(out, "Songs"))
	assert.Less(t, strings.Index(out, "Songs"), strings.Index(out, "Videos"))
}

func TestRender_LinesFitWidth(t *testing.T) {
	nav := navigator.New("")
	nav.ShowInitial(sampleBatch(), strings.Repeat("very long title ", 10))

	m := New()
	m.SetSize(50, 12)
	lines := strings.Split(m.Render(nav), "\n")
	require.Len(t, lines, 12)
	for i, l := range lines {
		assert.Equal(t, 50, lipgloss.Width(l), "line %d", i)
	}
}

func TestRender_Empty(t *testing.T) {
	nav := navigator.New("Search")
	m := New()
	m.SetSize(40, 8)
	assert.Contains(t, ansi.Strip(m.Render(nav)), "No results")

	nav.ShowHistory(nil)
	assert.Contains(t, ansi.Strip(m.Render(nav)), "Nothing played yet")
}

func TestRender_BackHint(t *testing.T) {
	nav := navigator.New("Listen now")
	nav.ShowInitial(sampleBatch(), "Listen now")
	nav.ShowResults(sampleBatch(), "Abbey Road", false)

	m := New()
	m.SetSize(80, 10)
	assert.Contains(t, ansi.Strip(m.Render(nav)), "← 1")
}

func TestFollow_ScrollsToFocus(t *testing.T) {
	songs := make([]*music.Song, 25)
	for i := range songs {
		songs[i] = &music.Song{ID: string(rune('a' + i)), Title: "track-" + string(rune('a'+i))}
	}
	nav := navigator.New("")
	nav.ShowInitial(results.Batch{Songs: songs}, "many")
	nav.SetFocus(25)

	m := New()
	m.SetSize(60, 10)
	m.SetFocused(true)
	m.Follow(nav)

	out := ansi.Strip(m.Render(nav))
	assert.Contains(t, out, "track-y")
	assert.NotContains(t, out, "track-a ")
}

func TestLine_EveryKindFitsWidth(t *testing.T) {
	entities := []music.Entity{
		&music.Song{ID: "s", Title: "t", Duration: time.Minute},
		&music.Video{ID: "v", Title: "t"},
		&music.Album{ID: "a", Title: "t", Year: 2001},
		&music.Artist{ID: "r", Name: "n"},
		&music.RadioStation{Title: "st"},
		&music.Situation{ID: "x", Title: "Mixes", Stations: []*music.RadioStation{{Title: "a"}}},
		&music.Playlist{ID: "p", Name: "p", Songs: []*music.Song{{ID: "1"}}},
	}
	for _, e := range entities {
		for _, width := range []int{10, 40, 90} {
			assert.Equal(t, width, lipgloss.Width(Line(e, width)), "%T at %d", e, width)
		}
	}
}

func TestBucketLabel(t *testing.T) {
	for _, k := range results.Order {
		assert.NotEqual(t, "Other", BucketLabel(k), k.String())
	}
}
