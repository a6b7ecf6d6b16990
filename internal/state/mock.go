package state

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
)

// Mock is an in-memory test double for Manager. It is safe for concurrent
// use.
type Mock struct {
	mu       sync.Mutex
	session  Session
	stations []SavedStation
	volume   int
	lastfm   *LastfmSession
	pending  []PendingScrobble
	nextID   int64
	closed   bool

	// SaveErr, when set, is returned by SaveSession.
	SaveErr error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{volume: DefaultVolume}
}

func (m *Mock) SaveSession(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.session = Session{Queue: slices.Clone(s.Queue), History: slices.Clone(s.History)}
	return nil
}

func (m *Mock) LoadSession(context.Context) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *Mock) FindStation(_ context.Context, seed music.Seed) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.stations {
		if st.Seed == seed {
			return st.ID, nil
		}
	}
	return "", nil
}

func (m *Mock) SaveStation(_ context.Context, id string, seed music.Seed, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, st := range m.stations {
		if st.Seed == seed {
			m.stations[i].Title = title
			return nil
		}
	}
	m.stations = append(m.stations, SavedStation{ID: id, Seed: seed, Title: title, CreatedAt: time.Now()})
	return nil
}

func (m *Mock) StationSeed(_ context.Context, id string) (music.Seed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range m.stations {
		if st.ID == id {
			return st.Seed, nil
		}
	}
	return music.Seed{}, errors.Wrapf(ErrUnknownStation, "%q", id)
}

func (m *Mock) ListStations(context.Context) ([]SavedStation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.stations)
	slices.Reverse(out)
	return out, nil
}

func (m *Mock) GetVolume() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *Mock) SaveVolume(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = level
}

func (m *Mock) GetLastfmSession() (*LastfmSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastfm, nil
}

func (m *Mock) SaveLastfmSession(username, sessionKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastfm = &LastfmSession{Username: username, SessionKey: sessionKey, LinkedAt: time.Now()}
	return nil
}

func (m *Mock) DeleteLastfmSession() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastfm = nil
	return nil
}

func (m *Mock) AddPendingScrobble(s PendingScrobble) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	m.pending = append(m.pending, s)
	return nil
}

func (m *Mock) GetPendingScrobbles() ([]PendingScrobble, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.pending), nil
}

func (m *Mock) DeletePendingScrobble(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = slices.DeleteFunc(m.pending, func(s PendingScrobble) bool { return s.ID == id })
	return nil
}

func (m *Mock) UpdatePendingScrobbleAttempt(id int64, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.pending {
		if m.pending[i].ID == id {
			m.pending[i].Attempts++
			m.pending[i].LastError = errMsg
		}
	}
	return nil
}

func (m *Mock) DeleteOldPendingScrobbles(time.Duration) error { return nil }

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSession(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
