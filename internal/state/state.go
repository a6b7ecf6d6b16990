// Package state persists the listening session, the station registry,
// settings and the Last.fm link in a local sqlite database.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "jam"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *int
}

// Open opens the database at path, or at the default data location when
// path is empty.
func Open(path string) (*Manager, error) {
	if path == "" {
		p, err := getDBPath()
		if err != nil {
			return nil, errors.Wrap(err, "resolve state path")
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create state directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open state db")
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("state store opened")
	return &Manager{db: db}, nil
}

// Close flushes a pending volume save and closes the database.
func (m *Manager) Close() error {
	m.flushVolume()
	return m.db.Close()
}

func (m *Manager) flushVolume() {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := saveVolume(m.db, *pending); err != nil {
			log.Warn().Err(err).Msg("flush volume")
		}
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
