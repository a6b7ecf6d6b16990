// Package mpris exposes the player on the MPRIS2 D-Bus interface so media
// keys and desktop widgets can control it.
package mpris

import (
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
)

// Command is a control request received over D-Bus.
type Command int

const (
	CmdNext Command = iota
	CmdPrevious
	CmdPlay
	CmdPause
	CmdPlayPause
	CmdStop
	CmdSeek
	CmdSetVolume
)

func (c Command) String() string {
	switch c {
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "previous"
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdPlayPause:
		return "play-pause"
	case CmdStop:
		return "stop"
	case CmdSeek:
		return "seek"
	case CmdSetVolume:
		return "set-volume"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Request is posted to the event loop, which owns the controller.
type Request struct {
	Cmd    Command
	Offset time.Duration // CmdSeek, relative
	Volume int           // CmdSetVolume, a controller level
}

// Source reads the player state from D-Bus goroutines.
type Source interface {
	Snapshot() playback.Snapshot
}

// Options configure the adapter.
type Options struct {
	// Name is the bus name suffix (org.mpris.MediaPlayer2.<Name>).
	Name string
	// CoverURL maps a song's cover art reference to a URL.
	CoverURL func(ref string) string
}

// volumeOf maps a controller level to the 0..1 MPRIS scale.
func volumeOf(level int) float64 {
	return float64(level) / float64(playback.MaxVolume)
}

// levelOf maps an MPRIS volume to the nearest controller level.
func levelOf(v float64) int {
	level := int(math.Round(v * float64(playback.MaxVolume)))
	return max(0, min(playback.MaxVolume, level))
}

func trackPath(t *playback.TrackInfo) string {
	if t == nil {
		return "/org/mpris/MediaPlayer2/TrackList/NoTrack"
	}
	h := fnv.New64a()
	h.Write([]byte(t.Kind.String() + ":" + t.ID))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

func artURL(t *playback.TrackInfo, cover func(string) string) string {
	if t == nil || t.ArtRef == "" {
		return ""
	}
	if t.Kind == music.KindVideo {
		return t.ArtRef
	}
	if cover == nil {
		return ""
	}
	return cover(t.ArtRef)
}
