// Package mpv implements player.Backend on top of libmpv.
package mpv

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	libmpv "github.com/wildeyedskies/go-mpv/mpv"

	"github.com/llehouerou/jam/internal/player"
)

// Options configures the mpv instance.
type Options struct {
	// Video enables the video output window for video items.
	Video bool
}

// Player streams URLs through an embedded mpv instance.
type Player struct {
	m      *libmpv.Mpv
	events chan player.EndFileEvent
	cancel context.CancelFunc
	done   chan struct{}

	mu sync.Mutex
	// replacing counts end-file events caused by loading a new file over
	// the current one; those are reported as EndReasonStop.
	replacing int
	loaded    bool
	quitting  bool
}

// New creates and initializes an mpv instance and starts its event loop.
func New(opts Options) (*Player, error) {
	m := libmpv.Create()

	_ = m.SetOptionString("audio-display", "no")
	_ = m.SetOptionString("terminal", "no")
	_ = m.SetOptionString("ytdl", "yes")
	if !opts.Video {
		_ = m.SetOptionString("video", "no")
	}

	if err := m.Initialize(); err != nil {
		m.TerminateDestroy()
		return nil, errors.Wrap(err, "initialize mpv")
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Player{
		m:      m,
		events: make(chan player.EndFileEvent, 4),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go p.listen(ctx)
	return p, nil
}

func (p *Player) listen(ctx context.Context) {
	defer close(p.done)
	defer close(p.events)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		e := p.m.WaitEvent(1)
		if e == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		switch e.Event_Id {
		case libmpv.EVENT_END_FILE:
			ev := player.EndFileEvent{Reason: p.endReason()}
			log.Debug().Int("reason", int(ev.Reason)).Msg("mpv end of file")
			select {
			case p.events <- ev:
			case <-ctx.Done():
				return
			}
		case libmpv.EVENT_SHUTDOWN:
			return
		}
	}
}

func (p *Player) endReason() player.EndReason {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch {
	case p.quitting:
		return player.EndReasonQuit
	case p.replacing > 0:
		p.replacing--
		return player.EndReasonStop
	default:
		p.loaded = false
		return player.EndReasonEOF
	}
}

// Load replaces the current file with url and unpauses.
func (p *Player) Load(url string) error {
	p.mu.Lock()
	if p.loaded {
		p.replacing++
	}
	p.loaded = true
	p.mu.Unlock()

	if err := p.m.Command([]string{"loadfile", url, "replace"}); err != nil {
		p.mu.Lock()
		if p.replacing > 0 {
			p.replacing--
		}
		p.mu.Unlock()
		return errors.Wrapf(err, "mpv loadfile %s", url)
	}
	return p.SetPause(false)
}

func (p *Player) SetPause(paused bool) error {
	v := "no"
	if paused {
		v = "yes"
	}
	return errors.Wrap(p.m.Command([]string{"set", "pause", v}), "mpv set pause")
}

func (p *Player) Seek(seconds float64, mode player.SeekMode) error {
	arg := strconv.FormatFloat(seconds, 'f', -1, 64)
	if err := p.m.Command([]string{"seek", arg, string(mode)}); err != nil {
		return errors.Wrap(err, "mpv seek")
	}
	return nil
}

func (p *Player) SetVolume(volume int) error {
	volume = max(0, min(volume, 100))
	return errors.Wrap(p.m.Command([]string{"set", "volume", strconv.Itoa(volume)}), "mpv set volume")
}

func (p *Player) TimePos() (float64, error) {
	return p.double("time-pos")
}

func (p *Player) TimeRemaining() (float64, error) {
	return p.double("time-remaining")
}

func (p *Player) double(name string) (float64, error) {
	v, err := p.m.GetProperty(name, libmpv.FORMAT_DOUBLE)
	if err != nil {
		return 0, errors.Wrapf(player.ErrNoMedia, "mpv %s: %v", name, err)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errors.Newf("mpv %s: unexpected %T", name, v)
	}
	return f, nil
}

// Events delivers end-of-file notifications until Quit.
func (p *Player) Events() <-chan player.EndFileEvent {
	return p.events
}

// Quit stops playback and destroys the mpv instance.
func (p *Player) Quit() {
	p.mu.Lock()
	if p.quitting {
		p.mu.Unlock()
		return
	}
	p.quitting = true
	p.mu.Unlock()

	_ = p.m.Command([]string{"quit"})
	p.cancel()
	<-p.done
	p.m.TerminateDestroy()
}

var _ player.Backend = (*Player)(nil)
