package state

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// DefaultVolume is returned when no volume was saved.
const DefaultVolume = 8

// GetVolume returns the saved volume level.
func (m *Manager) GetVolume() (int, error) {
	var volume int
	err := m.db.QueryRow(`SELECT volume FROM settings WHERE id = 1`).Scan(&volume)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultVolume, nil
	}
	if err != nil {
		return DefaultVolume, errors.Wrap(err, "get volume")
	}
	return volume, nil
}

// SaveVolume stores the volume level. Writes are debounced; Close flushes
// the last one.
func (m *Manager) SaveVolume(level int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &level

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := saveVolume(m.db, *pending); err != nil {
				log.Warn().Err(err).Msg("save volume")
			}
		}
	})
}

func saveVolume(db *sql.DB, level int) error {
	_, err := db.Exec(`
		INSERT INTO settings (id, volume) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET volume = excluded.volume
	`, level)
	return errors.Wrap(err, "save volume")
}
