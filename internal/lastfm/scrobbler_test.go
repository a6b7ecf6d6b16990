package lastfm

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/state"
)

type fakeService struct {
	mu         sync.Mutex
	fail       bool
	nowPlaying []ScrobbleTrack
	scrobbled  []ScrobbleTrack
}

func (f *fakeService) UpdateNowPlaying(t ScrobbleTrack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nowPlaying = append(f.nowPlaying, t)
	return nil
}

func (f *fakeService) Scrobble(t ScrobbleTrack) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("service unavailable")
	}
	f.scrobbled = append(f.scrobbled, t)
	return nil
}

func (f *fakeService) setFail(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = v
}

func track(title string, d time.Duration) playback.TrackInfo {
	return playback.TrackInfo{
		Kind:     music.KindSong,
		ID:       title,
		Title:    title,
		Artist:   "Artist",
		Album:    "Album",
		Duration: d,
	}
}

func TestScrobbler_Scrobble(t *testing.T) {
	svc := &fakeService{}
	store := state.NewMock()
	s := NewScrobbler(svc, store)

	started := time.Unix(1700000000, 0)
	s.Scrobble(track("one", 3*time.Minute), started)
	s.Wait()

	require.Len(t, svc.scrobbled, 1)
	got := svc.scrobbled[0]
	assert.Equal(t, "one", got.Track)
	assert.Equal(t, "Artist", got.Artist)
	assert.Equal(t, "Album", got.Album)
	assert.True(t, got.Timestamp.Equal(started))
}

func TestScrobbler_SkipsShortTracksAndVideos(t *testing.T) {
	svc := &fakeService{}
	s := NewScrobbler(svc, state.NewMock())

	s.Scrobble(track("short", 29*time.Second), time.Now())
	video := track("clip", 5*time.Minute)
	video.Kind = music.KindVideo
	s.Scrobble(video, time.Now())
	s.NowPlaying(video)
	s.Wait()

	assert.Empty(t, svc.scrobbled)
	assert.Empty(t, svc.nowPlaying)
}

func TestScrobbler_NowPlaying(t *testing.T) {
	svc := &fakeService{}
	s := NewScrobbler(svc, state.NewMock())

	s.NowPlaying(track("one", time.Minute))
	s.Wait()

	require.Len(t, svc.nowPlaying, 1)
	assert.Equal(t, "one", svc.nowPlaying[0].Track)
}

func TestScrobbler_FailureIsStoredAndRetried(t *testing.T) {
	svc := &fakeService{fail: true}
	store := state.NewMock()
	s := NewScrobbler(svc, store)

	s.Scrobble(track("one", 3*time.Minute), time.Now())
	s.Wait()

	pending, err := store.GetPendingScrobbles()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "one", pending[0].Track)
	assert.Equal(t, "service unavailable", pending[0].LastError)

	svc.setFail(false)
	s.Scrobble(track("two", 3*time.Minute), time.Now())
	s.Wait()

	pending, err = store.GetPendingScrobbles()
	require.NoError(t, err)
	assert.Empty(t, pending)

	titles := make([]string, 0, len(svc.scrobbled))
	for _, tr := range svc.scrobbled {
		titles = append(titles, tr.Track)
	}
	assert.ElementsMatch(t, []string{"one", "two"}, titles)
}

func TestScrobbler_RetryPendingCountsAttempts(t *testing.T) {
	svc := &fakeService{fail: true}
	store := state.NewMock()
	require.NoError(t, store.AddPendingScrobble(state.PendingScrobble{Artist: "a", Track: "t"}))
	require.NoError(t, store.AddPendingScrobble(state.PendingScrobble{Artist: "a", Track: "dead", Attempts: maxAttempts}))
	s := NewScrobbler(svc, store)

	s.RetryPending()
	s.Wait()

	pending, err := store.GetPendingScrobbles()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, maxAttempts, pending[1].Attempts, "exhausted scrobbles are not resent")
}
