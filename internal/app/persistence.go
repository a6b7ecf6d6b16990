package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/state"
)

const saveTimeout = 5 * time.Second

// saveSession persists the queue, with the current item first, and the
// history. The current item is not repeated in the history.
func (m *Model) saveSession() {
	if !m.cfg.ShouldPersistQueue() {
		return
	}
	queued, played := m.playback.Session()
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := m.stateMgr.SaveSession(ctx, state.Session{Queue: queued, History: played}); err != nil {
		log.Error().Err(err).Msg("save session")
		return
	}
	log.Info().Int("queued", len(queued)).Int("history", len(played)).Msg("session saved")
}

// syncQueue copies the controller's queue into the queue panel.
func (m *Model) syncQueue() {
	m.queue.SetItems(m.playback.Queue().Items())
}

// queueEdited must follow every user edit of the queue: it notifies the
// controller, records an undo step and refreshes the panel.
func (m *Model) queueEdited() {
	m.playback.QueueChanged()
	m.undo.Record(m.playback.Queue().Items())
	m.syncQueue()
}
