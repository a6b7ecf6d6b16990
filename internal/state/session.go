package state

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	dbutil "github.com/llehouerou/jam/internal/db"
	"github.com/llehouerou/jam/internal/music"
)

const (
	listQueue   = "queue"
	listHistory = "history"
)

// Session is the saved listening session. Queue starts with the item that
// was current when the session was saved.
type Session struct {
	Queue   []music.Playable
	History []music.Playable
}

// Empty reports whether there is nothing to restore.
func (s Session) Empty() bool {
	return len(s.Queue) == 0 && len(s.History) == 0
}

// SaveSession replaces the saved session. Items that cannot be encoded are
// logged and left out.
func (m *Manager) SaveSession(ctx context.Context, s Session) error {
	return dbutil.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM saved_items`); err != nil {
			return errors.Wrap(err, "clear saved items")
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO saved_items (list, position, kind, data)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return errors.Wrap(err, "prepare insert")
		}
		defer stmt.Close()

		for _, l := range []struct {
			name  string
			items []music.Playable
		}{
			{listQueue, s.Queue},
			{listHistory, s.History},
		} {
			pos := 0
			for _, it := range l.items {
				if it == nil {
					continue
				}
				rec, err := music.EncodeRecord(it)
				if err != nil {
					log.Warn().Err(err).Str("list", l.name).Msg("not saving item")
					continue
				}
				if _, err := stmt.ExecContext(ctx, l.name, pos, rec.Kind, string(rec.Data)); err != nil {
					return errors.Wrapf(err, "save %s item %d", l.name, pos)
				}
				pos++
			}
		}
		return nil
	})
}

// LoadSession returns the saved session. Unreadable records are skipped; if
// the table cannot be read at all the error is logged and the session is
// empty.
func (m *Manager) LoadSession(ctx context.Context) Session {
	s, err := loadSession(ctx, m.db)
	if err != nil {
		log.Error().Err(err).Msg("load session")
		return Session{}
	}
	return s
}

func loadSession(ctx context.Context, db *sql.DB) (Session, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT list, position, kind, data
		FROM saved_items
		ORDER BY list, position
	`)
	if err != nil {
		return Session{}, errors.Wrap(err, "query saved items")
	}
	defer rows.Close()

	var s Session
	for rows.Next() {
		var (
			list, kind, data string
			pos              int
		)
		if err := rows.Scan(&list, &pos, &kind, &data); err != nil {
			return Session{}, errors.Wrap(err, "scan saved item")
		}

		item, err := music.DecodeRecord(music.Record{Kind: kind, Data: []byte(data)})
		if err != nil {
			log.Warn().Err(err).Str("list", list).Int("position", pos).Msg("skipping saved item")
			continue
		}

		switch list {
		case listQueue:
			s.Queue = append(s.Queue, item)
		case listHistory:
			s.History = append(s.History, item)
		}
	}
	return s, errors.Wrap(rows.Err(), "read saved items")
}
