package playback

import "time"

const (
	// MinScrobbleDuration is the shortest track that can be scrobbled.
	MinScrobbleDuration = 30 * time.Second
	// ScrobbleAfter caps the listening time needed for long tracks.
	ScrobbleAfter = 4 * time.Minute
)

// Scrobbler reports listens to an external service. Implementations must
// not block the caller.
type Scrobbler interface {
	NowPlaying(t TrackInfo)
	Scrobble(t TrackInfo, startedAt time.Time)
}

// Notifier shows a now-playing notification.
type Notifier interface {
	NowPlaying(t TrackInfo)
}

// ShouldScrobble reports whether a track of the given duration has been
// played long enough: at least half of it or four minutes, and never for
// tracks under 30 seconds.
func ShouldScrobble(duration, played time.Duration) bool {
	if duration < MinScrobbleDuration {
		return false
	}
	return played > duration/2 || played > ScrobbleAfter
}
