package lastfm

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/state"
)

const (
	maxAttempts = 10
	// Last.fm rejects listens older than two weeks.
	maxPendingAge = 14 * 24 * time.Hour
)

// Service is the part of Client the Scrobbler uses.
type Service interface {
	UpdateNowPlaying(track ScrobbleTrack) error
	Scrobble(track ScrobbleTrack) error
}

// PendingStore keeps scrobbles that could not be sent.
type PendingStore interface {
	AddPendingScrobble(s state.PendingScrobble) error
	GetPendingScrobbles() ([]state.PendingScrobble, error)
	DeletePendingScrobble(id int64) error
	UpdatePendingScrobbleAttempt(id int64, errMsg string) error
	DeleteOldPendingScrobbles(maxAge time.Duration) error
}

// Scrobbler implements playback.Scrobbler. Every call runs on its own
// goroutine; failed scrobbles are stored and resent after the next one that
// succeeds.
type Scrobbler struct {
	svc   Service
	store PendingStore

	wg      sync.WaitGroup
	retryMu sync.Mutex
}

// NewScrobbler creates a Scrobbler.
func NewScrobbler(svc Service, store PendingStore) *Scrobbler {
	return &Scrobbler{svc: svc, store: store}
}

var _ playback.Scrobbler = (*Scrobbler)(nil)

// NowPlaying announces the track. Failures are only logged.
func (s *Scrobbler) NowPlaying(t playback.TrackInfo) {
	if t.Kind != music.KindSong {
		return
	}
	track := TrackOf(t, time.Now())
	s.wg.Go(func() {
		if err := s.svc.UpdateNowPlaying(track); err != nil {
			log.Debug().Err(err).Stringer("track", track).Msg("now playing not sent")
		}
	})
}

// Scrobble submits a listen that started at startedAt.
func (s *Scrobbler) Scrobble(t playback.TrackInfo, startedAt time.Time) {
	if t.Kind != music.KindSong || t.Duration < playback.MinScrobbleDuration {
		return
	}
	track := TrackOf(t, startedAt)
	s.wg.Go(func() {
		if err := s.svc.Scrobble(track); err != nil {
			log.Warn().Err(err).Stringer("track", track).Msg("scrobble failed, queued for retry")
			if err := s.store.AddPendingScrobble(track.pending(err.Error())); err != nil {
				log.Error().Err(err).Msg("store pending scrobble")
			}
			return
		}
		log.Debug().Stringer("track", track).Msg("scrobbled")
		s.retryPending()
	})
}

// RetryPending resends stored scrobbles in the background.
func (s *Scrobbler) RetryPending() {
	s.wg.Go(s.retryPending)
}

// Wait blocks until all background calls are done.
func (s *Scrobbler) Wait() {
	s.wg.Wait()
}

func (s *Scrobbler) retryPending() {
	// A pass already running will see what this one would.
	if !s.retryMu.TryLock() {
		return
	}
	defer s.retryMu.Unlock()

	if err := s.store.DeleteOldPendingScrobbles(maxPendingAge); err != nil {
		log.Warn().Err(err).Msg("prune pending scrobbles")
	}

	pending, err := s.store.GetPendingScrobbles()
	if err != nil {
		log.Error().Err(err).Msg("load pending scrobbles")
		return
	}

	var sent, failed int
	for _, p := range pending {
		if p.Attempts >= maxAttempts {
			continue
		}
		if err := s.svc.Scrobble(fromPending(p)); err != nil {
			failed++
			_ = s.store.UpdatePendingScrobbleAttempt(p.ID, err.Error())
			continue
		}
		sent++
		_ = s.store.DeletePendingScrobble(p.ID)
	}
	if sent+failed > 0 {
		log.Info().Int("sent", sent).Int("failed", failed).Msg("pending scrobbles retried")
	}
}
