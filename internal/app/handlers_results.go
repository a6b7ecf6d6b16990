package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/ui/render"
)

func (m *Model) handleResultsKeys(a keymap.Action) (bool, tea.Cmd) {
	switch a {
	case keymap.ActionSelect:
		return true, m.drillIntoFocused()
	case keymap.ActionBack:
		m.goBack()
		return true, nil
	case keymap.ActionPlay:
		return true, m.playFocused()
	case keymap.ActionEnqueue:
		return true, m.enqueueFocused(false)
	case keymap.ActionEnqueueNext:
		return true, m.enqueueFocused(true)
	case keymap.ActionEnqueueAll:
		return true, m.enqueueAll()
	case keymap.ActionStation:
		return true, m.startStation()
	case keymap.ActionMoreVideos:
		return true, m.requestMoreVideos()
	}
	return false, nil
}

func (m *Model) drillIntoFocused() tea.Cmd {
	e := m.nav.Focused()
	if e == nil {
		return nil
	}
	m.loading++
	return expandCmd(m.catalog, e)
}

func (m *Model) goBack() {
	if !m.nav.GoBack() {
		return
	}
	if m.nav.Depth() < m.searchDepth {
		m.searchDepth = 0
	}
	m.listening = false
	m.results.Follow(m.nav)
}

// playFocused plays a song or video right away. Browsable entities are
// fetched, put at the head of the queue and started.
func (m *Model) playFocused() tea.Cmd {
	e := m.nav.Focused()
	if e == nil {
		return nil
	}
	if p, ok := e.(music.Playable); ok {
		// Failures come back as a controller error event.
		_ = m.playback.Play(context.Background(), p)
		m.syncQueue()
		return nil
	}
	if !queueable(e) {
		return m.setStatus("Cannot play " + e.Kind().String() + "s")
	}
	m.loading++
	return enqueueCmd(m.catalog, e, m.stationSize(), true, true)
}

func (m *Model) enqueueFocused(toFront bool) tea.Cmd {
	e := m.nav.Focused()
	if e == nil {
		return nil
	}
	if p, ok := e.(music.Playable); ok {
		m.playback.Queue().Enqueue(p, toFront)
		m.queueEdited()
		return m.setStatus("Added '" + p.DisplayTitle() + "' to the queue")
	}
	if !queueable(e) {
		return m.setStatus("Cannot add " + e.Kind().String() + "s to the queue")
	}
	m.loading++
	return enqueueCmd(m.catalog, e, m.stationSize(), toFront, false)
}

// enqueueAll appends every song and video of the view.
func (m *Model) enqueueAll() tea.Cmd {
	items := m.nav.Results().Playables()
	if len(items) == 0 {
		return m.setStatus("Nothing to add")
	}
	m.playback.Queue().EnqueueMany(items, false)
	m.queueEdited()
	return m.setStatus("Added " + render.Count(len(items), "item") + " to the queue")
}

func (m *Model) startStation() tea.Cmd {
	e := m.nav.Focused()
	if e == nil {
		return nil
	}
	switch e.(type) {
	case *music.Song, *music.Album, *music.Artist, *music.RadioStation:
	default:
		return m.setStatus("Cannot start a radio from " + e.Kind().String() + "s")
	}
	m.loading++
	return stationCmd(m.catalog, e, m.stationSize())
}

func (m *Model) requestSearch(query string) tea.Cmd {
	if m.paging {
		return m.setStatus("A search is already running")
	}
	m.paging = true
	m.loading++
	return searchCmd(m.catalog, query)
}

func (m *Model) requestListenNow() tea.Cmd {
	m.loading++
	return listenNowCmd(m.catalog, false)
}

func (m *Model) requestMoreVideos() tea.Cmd {
	if m.paging {
		return nil
	}
	if !m.inSearchView() || !m.catalog.HasMoreVideos() {
		return m.setStatus("No more videos")
	}
	m.paging = true
	m.loading++
	return moreVideosCmd(m.catalog)
}

// inSearchView reports whether the latest search results are shown.
func (m *Model) inSearchView() bool {
	return m.searchDepth > 0 && m.nav.Depth() == m.searchDepth && !m.nav.HistoryView()
}

func (m *Model) showHistory() {
	m.nav.ShowHistory(m.playback.History().Items())
	m.listening = false
	m.results.Follow(m.nav)
}

func (m *Model) stationSize() int {
	return m.cfg.Playback.StationSize
}

// queueable reports whether e resolves to songs or videos.
func queueable(e music.Entity) bool {
	switch e.(type) {
	case *music.Song, *music.Video, *music.Album, *music.Playlist, *music.RadioStation:
		return true
	}
	return false
}
