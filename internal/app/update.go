package app

import (
	"context"
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/mpris"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/ui/helpbindings"
)

// Update handles messages and returns the updated model and commands.
// A panic is logged, the session saved and the program stopped.
func (m Model) Update(msg tea.Msg) (res tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("recovered panic in update")
			m.shutdown()
			res, cmd = m, tea.Quit
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil

	case mpris.Request:
		return m.handleMprisRequest(msg)

	case CatalogMessage:
		return m.handleCatalogMsg(msg)

	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)

	case StderrMsg:
		log.Debug().Str("line", string(msg)).Msg("stderr")
		errCmd := m.setError(string(msg))
		return m, tea.Batch(errCmd, watchStderr(m.stderr))

	case StatusTimeoutMsg:
		if msg.Seq == m.statusSeq {
			m.status, m.statusErr = "", false
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMprisRequest(r mpris.Request) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	log.Debug().Stringer("cmd", r.Cmd).Msg("mpris request")
	switch r.Cmd {
	case mpris.CmdNext:
		m.playback.PlayNext(ctx)
	case mpris.CmdPrevious:
		m.playback.PlayPrevious(ctx)
	case mpris.CmdPlayPause:
		m.playback.Toggle(ctx)
	case mpris.CmdPlay:
		if m.playback.State() != playback.StatePlaying {
			m.playback.Toggle(ctx)
		}
	case mpris.CmdPause:
		if m.playback.State() == playback.StatePlaying {
			m.playback.Toggle(ctx)
		}
	case mpris.CmdStop:
		m.playback.Stop()
	case mpris.CmdSeek:
		m.playback.Seek(r.Offset.Seconds())
	case mpris.CmdSetVolume:
		m.playback.SetVolume(r.Volume)
		m.stateMgr.SaveVolume(m.playback.Volume())
	}
	m.syncQueue()
	return m, nil
}

// resize lays the panels out for the current window size.
func (m *Model) resize() {
	l := m.layout()
	m.results.SetSize(l.ResultsWidth, l.ResultsHeight)
	m.results.Follow(m.nav)
	m.queue.SetSize(l.QueueWidth, l.QueueHeight)
	m.help.SetSize(m.width, m.height)
	m.search.Width = max(m.width/3, 10)
}

// shutdown stops playback and saves the session.
func (m *Model) shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.playback.Stop()
	m.saveSession()
}
