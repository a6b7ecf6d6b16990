package state

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
)

// ErrUnknownStation is returned for a station id that was never saved.
var ErrUnknownStation = errors.New("unknown station")

// FindStation returns the id of the station built on seed, or "" when none
// was saved.
func (m *Manager) FindStation(ctx context.Context, seed music.Seed) (string, error) {
	var id string
	err := m.db.QueryRowContext(ctx, `
		SELECT id FROM stations WHERE seed_kind = ? AND seed_id = ?
	`, string(seed.Kind), seed.ID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "find station")
	}
	return id, nil
}

// SaveStation registers a station. Saving a seed twice keeps the first id.
func (m *Manager) SaveStation(ctx context.Context, id string, seed music.Seed, title string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO stations (id, seed_kind, seed_id, title, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(seed_kind, seed_id) DO UPDATE SET title = excluded.title
	`, id, string(seed.Kind), seed.ID, title, time.Now().Unix())
	return errors.Wrap(err, "save station")
}

// StationSeed returns the seed of a saved station.
func (m *Manager) StationSeed(ctx context.Context, id string) (music.Seed, error) {
	var kind, seedID string
	err := m.db.QueryRowContext(ctx, `
		SELECT seed_kind, seed_id FROM stations WHERE id = ?
	`, id).Scan(&kind, &seedID)
	if errors.Is(err, sql.ErrNoRows) {
		return music.Seed{}, errors.Wrapf(ErrUnknownStation, "%q", id)
	}
	if err != nil {
		return music.Seed{}, errors.Wrap(err, "station seed")
	}
	return music.Seed{Kind: music.SeedKind(kind), ID: seedID}, nil
}

// SavedStation is a row of the station registry.
type SavedStation struct {
	ID        string
	Seed      music.Seed
	Title     string
	CreatedAt time.Time
}

// ListStations returns the saved stations, newest first.
func (m *Manager) ListStations(ctx context.Context) ([]SavedStation, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, seed_kind, seed_id, title, created_at
		FROM stations
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "list stations")
	}
	defer rows.Close()

	var out []SavedStation
	for rows.Next() {
		var (
			st      SavedStation
			kind    string
			created int64
		)
		if err := rows.Scan(&st.ID, &kind, &st.Seed.ID, &st.Title, &created); err != nil {
			return nil, errors.Wrap(err, "scan station")
		}
		st.Seed.Kind = music.SeedKind(kind)
		st.CreatedAt = time.Unix(created, 0)
		out = append(out, st)
	}
	return out, errors.Wrap(rows.Err(), "read stations")
}
