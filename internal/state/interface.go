package state

import (
	"context"
	"time"

	"github.com/llehouerou/jam/internal/music"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSession(ctx context.Context, s Session) error
	LoadSession(ctx context.Context) Session

	FindStation(ctx context.Context, seed music.Seed) (string, error)
	SaveStation(ctx context.Context, id string, seed music.Seed, title string) error
	StationSeed(ctx context.Context, id string) (music.Seed, error)
	ListStations(ctx context.Context) ([]SavedStation, error)

	GetVolume() (int, error)
	SaveVolume(level int)

	GetLastfmSession() (*LastfmSession, error)
	SaveLastfmSession(username, sessionKey string) error
	DeleteLastfmSession() error
	AddPendingScrobble(s PendingScrobble) error
	GetPendingScrobbles() ([]PendingScrobble, error)
	DeletePendingScrobble(id int64) error
	UpdatePendingScrobbleAttempt(id int64, errMsg string) error
	DeleteOldPendingScrobbles(maxAge time.Duration) error

	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
