package queuepanel

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/jam/internal/music"
)

// testSong creates a song with the given title and artist.
func testSong(title, artist string) *music.Song {
	return &music.Song{ID: title, Title: title, Artist: artist, Duration: 3 * time.Minute}
}

func newPanel(width, height int, items ...music.Playable) Model {
	m := New()
	m.SetSize(width, height)
	m.SetItems(items)
	return m
}

func TestView_EmptyQueue(t *testing.T) {
	m := newPanel(60, 10)

	stripped := ansi.Strip(m.View())
	if !strings.Contains(stripped, "Queue") || !strings.Contains(stripped, "empty") {
		t.Errorf("empty queue should show header and placeholder, got: %s", stripped)
	}
}

func TestView_Items(t *testing.T) {
	m := newPanel(70, 10,
		testSong("Come Together", "The Beatles"),
		&music.Video{ID: "v", Title: "Live at Pompeii", Channel: "floyd"},
	)

	stripped := ansi.Strip(m.View())
	for _, want := range []string{"Queue (1/2)", "Come Together", "The Beatles", "Live at Pompeii", "floyd", "3:00"} {
		if !strings.Contains(stripped, want) {
			t.Errorf("view missing %q:\n%s", want, stripped)
		}
	}
}

func TestView_LinesFitWidth(t *testing.T) {
	m := newPanel(40, 8, testSong(strings.Repeat("long title ", 10), strings.Repeat("artist ", 10)))
	m.SetFocused(true)

	out := m.View()
	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Errorf("got %d lines, want 8", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d has width %d, want 40", i, w)
		}
	}
}

func TestView_ZeroSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("zero-size panel must render nothing")
	}
}

func TestCursor_ClampsOnShrink(t *testing.T) {
	m := newPanel(60, 10, testSong("a", ""), testSong("b", ""), testSong("c", ""))
	m.SetCursor(2)
	if got := m.Selected(); got == nil || got.Key() != "c" {
		t.Fatalf("Selected() = %v, want c", got)
	}

	m.SetItems([]music.Playable{testSong("a", "")})
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d after shrink, want 0", m.Cursor())
	}

	m.SetItems(nil)
	if m.Selected() != nil {
		t.Error("Selected() on empty queue should be nil")
	}
}

func TestCursor_ScrollsWithLongQueue(t *testing.T) {
	items := make([]music.Playable, 50)
	for i := range items {
		items[i] = testSong(strings.Repeat("x", i+1), "")
	}
	m := newPanel(60, 10, items...)
	m.SetCursor(40)

	stripped := ansi.Strip(m.View())
	if !strings.Contains(stripped, " 41 ") {
		t.Errorf("cursor row not visible:\n%s", stripped)
	}
	if strings.Contains(stripped, "  1 ") {
		t.Error("first row should have scrolled out")
	}
}
