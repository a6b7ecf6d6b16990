package lastfm

import (
	"time"

	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/state"
)

// ScrobbleTrack contains track metadata for scrobbling.
type ScrobbleTrack struct {
	Artist    string
	Track     string
	Album     string
	Duration  time.Duration
	Timestamp time.Time // When playback started
}

// TrackOf converts controller track metadata.
func TrackOf(t playback.TrackInfo, startedAt time.Time) ScrobbleTrack {
	return ScrobbleTrack{
		Artist:    t.Artist,
		Track:     t.Title,
		Album:     t.Album,
		Duration:  t.Duration,
		Timestamp: startedAt,
	}
}

func (t ScrobbleTrack) pending(lastErr string) state.PendingScrobble {
	return state.PendingScrobble{
		Artist:    t.Artist,
		Track:     t.Track,
		Album:     t.Album,
		Duration:  t.Duration,
		StartedAt: t.Timestamp,
		LastError: lastErr,
	}
}

func fromPending(p state.PendingScrobble) ScrobbleTrack {
	return ScrobbleTrack{
		Artist:    p.Artist,
		Track:     p.Track,
		Album:     p.Album,
		Duration:  p.Duration,
		Timestamp: p.StartedAt,
	}
}
