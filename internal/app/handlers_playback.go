package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/errmsg"
	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
)

const rateTimeout = 5 * time.Second

func (m *Model) handlePlaybackKeys(a keymap.Action) (bool, tea.Cmd) {
	ctx := context.Background()
	switch a {
	case keymap.ActionPlayPause:
		m.playback.Toggle(ctx)
		m.syncQueue()
	case keymap.ActionNextTrack:
		m.playback.PlayNext(ctx)
		m.syncQueue()
	case keymap.ActionPrevTrack:
		m.playback.PlayPrevious(ctx)
		m.syncQueue()
	case keymap.ActionSeekForward:
		m.playback.Seek(playback.SeekStep)
	case keymap.ActionSeekBack:
		m.playback.Seek(-playback.SeekStep)
	case keymap.ActionVolumeUp:
		m.playback.VolumeUp()
		m.stateMgr.SaveVolume(m.playback.Volume())
	case keymap.ActionVolumeDown:
		m.playback.VolumeDown()
		m.stateMgr.SaveVolume(m.playback.Volume())
	case keymap.ActionRateUp:
		return true, m.rate(music.ThumbsUp)
	case keymap.ActionRateDown:
		return true, m.rate(music.ThumbsDown)
	default:
		return false, nil
	}
	return true, nil
}

// rate sends the rating synchronously; the request is short and bounded.
func (m *Model) rate(r music.Rating) tea.Cmd {
	if _, ok := m.playback.Current().(*music.Song); !ok {
		return m.setStatus("Only songs can be rated")
	}
	ctx, cancel := context.WithTimeout(context.Background(), rateTimeout)
	defer cancel()
	if err := m.playback.RateCurrent(ctx, r); err != nil {
		return m.setError(errmsg.Format(errmsg.OpRate, err))
	}
	return nil
}

func (m *Model) playNext() (tea.Model, tea.Cmd) {
	m.playback.PlayNext(context.Background())
	m.syncQueue()
	return *m, nil
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.playback.Refresh(context.Background())
		// Refresh may have advanced to the next item.
		m.syncQueue()
		return m, nil

	case EndFileMsg:
		m.playback.HandleEndFile(msg.Event)
		return m, watchEndFile(m.endFile)

	case ServiceTrackChangedMsg:
		m.syncQueue()
		return m, m.watchService()

	case ServiceQueueChangedMsg:
		m.syncQueue()
		return m, m.watchService()

	case ServiceErrorMsg:
		op := errmsg.OpPlayback
		if msg.Event.Operation == "rate" {
			op = errmsg.OpRate
		}
		cmd := m.setError(errmsg.Format(op, msg.Event.Err))
		return m, tea.Batch(cmd, m.watchService())

	case ServiceClosedMsg:
		return m, nil
	}
	return m, nil
}
