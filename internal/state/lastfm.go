package state

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	dbutil "github.com/llehouerou/jam/internal/db"
)

// LastfmSession is the stored Last.fm link.
type LastfmSession struct {
	Username   string
	SessionKey string
	LinkedAt   time.Time
}

// PendingScrobble is a scrobble that failed and waits to be resent.
type PendingScrobble struct {
	ID        int64
	Artist    string
	Track     string
	Album     string
	Duration  time.Duration
	StartedAt time.Time
	Attempts  int
	LastError string
}

// GetLastfmSession returns the stored session, or nil when not linked.
func (m *Manager) GetLastfmSession() (*LastfmSession, error) {
	var (
		s        LastfmSession
		linkedAt int64
	)
	err := m.db.QueryRow(`
		SELECT username, session_key, linked_at FROM lastfm_session WHERE id = 1
	`).Scan(&s.Username, &s.SessionKey, &linkedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // nil session means not linked
	}
	if err != nil {
		return nil, errors.Wrap(err, "get lastfm session")
	}
	s.LinkedAt = time.Unix(linkedAt, 0)
	return &s, nil
}

// SaveLastfmSession stores the session obtained after authentication.
func (m *Manager) SaveLastfmSession(username, sessionKey string) error {
	_, err := m.db.Exec(`
		INSERT INTO lastfm_session (id, username, session_key, linked_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			session_key = excluded.session_key,
			linked_at = excluded.linked_at
	`, username, sessionKey, time.Now().Unix())
	return errors.Wrap(err, "save lastfm session")
}

// DeleteLastfmSession unlinks the account.
func (m *Manager) DeleteLastfmSession() error {
	_, err := m.db.Exec(`DELETE FROM lastfm_session WHERE id = 1`)
	return errors.Wrap(err, "delete lastfm session")
}

// AddPendingScrobble queues a scrobble for a later attempt.
func (m *Manager) AddPendingScrobble(s PendingScrobble) error {
	_, err := m.db.Exec(`
		INSERT INTO pending_scrobbles
		(artist, track, album, duration_seconds, started_at, attempts, last_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.Artist, s.Track, dbutil.NullString(s.Album), int(s.Duration.Seconds()),
		s.StartedAt.Unix(), s.Attempts, dbutil.NullString(s.LastError), time.Now().Unix())
	return errors.Wrap(err, "add pending scrobble")
}

// GetPendingScrobbles returns the pending scrobbles, oldest first.
func (m *Manager) GetPendingScrobbles() ([]PendingScrobble, error) {
	rows, err := m.db.Query(`
		SELECT id, artist, track, album, duration_seconds, started_at, attempts, last_error
		FROM pending_scrobbles
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query pending scrobbles")
	}
	defer rows.Close()

	var scrobbles []PendingScrobble
	for rows.Next() {
		var (
			s              PendingScrobble
			album, lastErr sql.NullString
			secs, started  int64
		)
		if err := rows.Scan(&s.ID, &s.Artist, &s.Track, &album, &secs, &started, &s.Attempts, &lastErr); err != nil {
			return nil, errors.Wrap(err, "scan pending scrobble")
		}
		s.Album = dbutil.NullStringValue(album)
		s.LastError = dbutil.NullStringValue(lastErr)
		s.Duration = time.Duration(secs) * time.Second
		s.StartedAt = time.Unix(started, 0)
		scrobbles = append(scrobbles, s)
	}
	return scrobbles, errors.Wrap(rows.Err(), "read pending scrobbles")
}

// DeletePendingScrobble removes a scrobble that was sent.
func (m *Manager) DeletePendingScrobble(id int64) error {
	_, err := m.db.Exec(`DELETE FROM pending_scrobbles WHERE id = ?`, id)
	return errors.Wrap(err, "delete pending scrobble")
}

// UpdatePendingScrobbleAttempt records a failed resend.
func (m *Manager) UpdatePendingScrobbleAttempt(id int64, errMsg string) error {
	_, err := m.db.Exec(`
		UPDATE pending_scrobbles
		SET attempts = attempts + 1, last_error = ?
		WHERE id = ?
	`, errMsg, id)
	return errors.Wrap(err, "update pending scrobble")
}

// DeleteOldPendingScrobbles drops pending scrobbles queued more than maxAge
// ago; Last.fm rejects listens older than two weeks.
func (m *Manager) DeleteOldPendingScrobbles(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge).Unix()
	_, err := m.db.Exec(`DELETE FROM pending_scrobbles WHERE created_at < ?`, cutoff)
	return errors.Wrap(err, "delete old pending scrobbles")
}
