package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/jam/internal/keymap"
)

func newTestHelp(width, height int) Model {
	m := New(keymap.Bindings)
	m.SetSize(width, height)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, k := range []string{"esc", "q", "?"} {
		m := newTestHelp(80, 24)
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected command, got nil", k)
		}
		if _, ok := cmd().(CloseMsg); !ok {
			t.Errorf("%s: expected CloseMsg", k)
		}
	}
}

func TestHelpBindings_ShowsCategoriesAndKeys(t *testing.T) {
	m := newTestHelp(120, 200)
	out := ansi.Strip(m.View())

	for _, want := range []string{"Global", "Playback", "Results", "Queue Panel", "space", "Play/pause", "Start radio"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q", want)
		}
	}
	if strings.Contains(out, "j/k scroll") {
		t.Error("everything fits; scroll hint should be hidden")
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m := newTestHelp(80, 15)
	if m.maxScroll() == 0 {
		t.Fatal("expected content taller than the overlay")
	}

	before := ansi.Strip(m.View())
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("down"))
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}
	if ansi.Strip(m.View()) == before {
		t.Error("view did not change after scrolling")
	}

	m, _ = m.Update(key("k"))
	m, _ = m.Update(key("k"))
	m, _ = m.Update(key("k"))
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", m.scrollOffset)
	}
}

func TestHelpBindings_OverridesShown(t *testing.T) {
	bindings, err := keymap.WithOverrides(keymap.Bindings, map[string][]string{"toggle": {"ctrl+p"}})
	if err != nil {
		t.Fatal(err)
	}
	m := New(bindings)
	m.SetSize(120, 200)
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "ctrl+p") {
		t.Error("override key not listed")
	}
}
