//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/playback"
)

// Adapter connects the controller to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	sub    *playback.Subscription
	done   chan struct{}
}

// New starts serving on the session bus. Commands are handed to send;
// sub delivers the controller events that trigger property signals.
func New(src Source, sub *playback.Subscription, send func(Request), opts Options) (*Adapter, error) {
	name := opts.Name
	if name == "" {
		name = "jam"
	}

	a := &Adapter{
		sub:  sub,
		done: make(chan struct{}),
	}
	a.server = server.NewServer(name, &rootAdapter{}, &playerAdapter{src: src, send: send, cover: opts.CoverURL})
	a.events = events.NewEventHandler(a.server)

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()
	go a.signal()

	return a, nil
}

// signal emits PropertiesChanged for controller events.
func (a *Adapter) signal() {
	for {
		var err error
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case <-a.sub.StateChanged:
			err = a.events.Player.OnPlayPause()
		case <-a.sub.TrackChanged:
			err = a.events.Player.OnTitle()
		case <-a.sub.VolumeChanged:
			err = a.events.Player.OnVolume()
		case ev := <-a.sub.PositionChanged:
			err = a.events.Player.OnSeek(types.Microseconds(ev.Position.Microseconds()))
		case <-a.sub.QueueChanged:
			err = a.events.Player.OnOptions()
		case <-a.sub.Error:
		}
		if err != nil {
			log.Debug().Err(err).Msg("mpris signal")
		}
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "jam", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	src   Source
	send  func(Request)
	cover func(string) string
}

func (p *playerAdapter) post(cmd Command) error {
	p.send(Request{Cmd: cmd})
	return nil
}

func (p *playerAdapter) Next() error      { return p.post(CmdNext) }
func (p *playerAdapter) Previous() error  { return p.post(CmdPrevious) }
func (p *playerAdapter) Pause() error     { return p.post(CmdPause) }
func (p *playerAdapter) PlayPause() error { return p.post(CmdPlayPause) }
func (p *playerAdapter) Stop() error      { return p.post(CmdStop) }
func (p *playerAdapter) Play() error      { return p.post(CmdPlay) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.send(Request{Cmd: CmdSeek, Offset: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	target := time.Duration(position) * time.Microsecond
	p.send(Request{Cmd: CmdSeek, Offset: target - p.src.Snapshot().Position})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.src.Snapshot().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.src.Snapshot()
	t := snap.Track
	if t == nil {
		return types.Metadata{TrackId: dbus.ObjectPath(trackPath(nil))}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackPath(t)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   t.Title,
		Album:   t.Album,
		ArtUrl:  artURL(t, p.cover),
	}
	if t.Artist != "" {
		meta.Artist = []string{t.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return volumeOf(p.src.Snapshot().Volume), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.send(Request{Cmd: CmdSetVolume, Volume: levelOf(v)})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.src.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.src.Snapshot().QueueLen > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	s := p.src.Snapshot()
	return s.History > 1 || (s.Track == nil && s.History > 0), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s := p.src.Snapshot()
	return s.Track != nil || s.QueueLen > 0, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return true, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }
