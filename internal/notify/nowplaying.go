package notify

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
)

const nowPlayingTimeout = 5000

// NowPlaying shows a notification for each new track, replacing the
// previous one. It implements playback.Notifier.
type NowPlaying struct {
	n Notifier

	mu     sync.Mutex
	lastID uint32
	wg     sync.WaitGroup
}

// NewNowPlaying wraps n.
func NewNowPlaying(n Notifier) *NowPlaying {
	return &NowPlaying{n: n}
}

var _ playback.Notifier = (*NowPlaying)(nil)

// NowPlaying sends the notification in the background.
func (p *NowPlaying) NowPlaying(t playback.TrackInfo) {
	notif := trackNotification(t)
	p.wg.Go(func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		notif.ReplacesID = p.lastID
		id, err := p.n.Notify(notif)
		if err != nil {
			log.Debug().Err(err).Msg("now playing notification")
			return
		}
		p.lastID = id
	})
}

// Wait blocks until pending notifications are sent.
func (p *NowPlaying) Wait() {
	p.wg.Wait()
}

func trackNotification(t playback.TrackInfo) Notification {
	var parts []string
	for _, s := range []string{t.Artist, t.Album} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	icon := "audio-x-generic"
	if t.Kind == music.KindVideo {
		icon = "video-x-generic"
	}
	return Notification{
		Summary:   t.Title,
		Body:      strings.Join(parts, " - "),
		Icon:      icon,
		Timeout:   nowPlayingTimeout,
		Transient: true,
	}
}
