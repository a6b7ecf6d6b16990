package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/errmsg"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
	"github.com/llehouerou/jam/internal/ui/render"
)

func (m Model) handleCatalogMsg(msg CatalogMessage) (tea.Model, tea.Cmd) {
	m.loading = max(m.loading-1, 0)
	switch msg := msg.(type) {
	case SearchResultMsg:
		m.paging = false
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Str("query", msg.Query).Msg("search failed")
			cmd := m.setError(errmsg.Format(errmsg.OpSearch, msg.Err))
			return m, cmd
		}
		m.listening = false
		m.nav.ShowResults(msg.Batch, "Results for '"+msg.Query+"'", false)
		m.searchDepth = m.nav.Depth()
		m.results.Follow(m.nav)
		return m, nil

	case ListenNowMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Msg("listen now failed")
			cmd := m.setError(errmsg.Format(errmsg.OpListenNow, msg.Err))
			return m, cmd
		}
		m.listening = true
		if msg.Initial {
			m.nav.ShowInitial(msg.Batch, listenNowTitle)
		} else {
			m.nav.ShowResults(msg.Batch, listenNowTitle, false)
		}
		m.results.Follow(m.nav)
		return m, nil

	case ExpandedMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Str("subject", msg.Subject).Msg("expand failed")
			cmd := m.setError(errmsg.FormatWith(errmsg.OpExpand, msg.Subject, msg.Err))
			return m, cmd
		}
		m.listening = false
		m.nav.ShowResults(msg.Batch, msg.Title, false)
		m.results.Follow(m.nav)
		return m, nil

	case MoreVideosMsg:
		m.paging = false
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Msg("more videos failed")
			cmd := m.setError(errmsg.Format(errmsg.OpMoreVideos, msg.Err))
			return m, cmd
		}
		return m.replaceVideos(msg)

	case EnqueueMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Str("subject", msg.Subject).Str("op", string(msg.Op)).Msg("enqueue failed")
			cmd := m.setError(errmsg.FormatWith(msg.Op, msg.Subject, msg.Err))
			return m, cmd
		}
		return m.enqueueItems(msg)
	}
	return m, nil
}

// replaceVideos swaps the video bucket of the search view for the next
// page.
func (m Model) replaceVideos(msg MoreVideosMsg) (tea.Model, tea.Cmd) {
	if len(msg.Videos) == 0 {
		cmd := m.setStatus("No more videos")
		return m, cmd
	}
	var kept []music.Entity
	for _, b := range m.nav.Results().Buckets() {
		if b.Kind != music.KindVideo {
			kept = append(kept, b.Entities...)
		}
	}
	batch := results.FromEntities(kept)
	batch.Videos = msg.Videos
	m.nav.Replace(batch)
	m.results.Follow(m.nav)
	cmd := m.setStatus("Showing " + render.Count(len(msg.Videos), "more video"))
	return m, cmd
}

func (m Model) enqueueItems(msg EnqueueMsg) (tea.Model, tea.Cmd) {
	if len(msg.Items) == 0 {
		cmd := m.setStatus("Nothing to add from '" + msg.Subject + "'")
		return m, cmd
	}
	q := m.playback.Queue()
	q.EnqueueMany(msg.Items, msg.ToFront || msg.Play)
	m.queueEdited()
	if msg.Play {
		return m.playNext()
	}
	cmd := m.setStatus("Added " + render.Count(len(msg.Items), "item") + " to the queue")
	return m, cmd
}
