// Package icons provides the glyphs shown next to catalog entries.
package icons

import "github.com/llehouerou/jam/internal/music"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Song      string
	Video     string
	Artist    string
	Album     string
	Playlist  string
	Station   string
	Situation string
	Volume    string
	Mute      string
	Shuffle   string
}

var (
	nerdIcons = Icons{
		Song:      "\uf001 ",     // nf-fa-music
		Video:     "\uf16a ",     // nf-fa-youtube_play
		Artist:    "\uf007 ",     // nf-fa-user
		Album:     "\U000f0025 ", // nf-md-album
		Playlist:  "\U000f0cb8 ", // nf-md-playlist_music
		Station:   "\uf519 ",     // nf-fa-broadcast_tower
		Situation: "\uf07c ",     // nf-fa-folder_open
		Volume:    "\U000f057e",  // nf-md-volume_high
		Mute:      "\U000f075f",  // nf-md-volume_off
		Shuffle:   "\U000f049f",  // nf-md-shuffle
	}

	unicodeIcons = Icons{
		Song:      "🎵 ",
		Video:     "🎬 ",
		Artist:    "👤 ",
		Album:     "💿 ",
		Playlist:  "📋 ",
		Station:   "📻 ",
		Situation: "🗂 ",
		Volume:    "🔊",
		Mute:      "🔇",
		Shuffle:   "🔀",
	}

	noneIcons = Icons{
		Volume:  "vol",
		Mute:    "mute",
		Shuffle: "[S]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon style. Call it once at startup with the config
// value; unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// ForKind returns the prefix icon of an entity kind, empty for none.
func ForKind(k music.Kind) string {
	switch k {
	case music.KindSong:
		return current.Song
	case music.KindVideo:
		return current.Video
	case music.KindAlbum:
		return current.Album
	case music.KindArtist:
		return current.Artist
	case music.KindRadioStation:
		return current.Station
	case music.KindSituation:
		return current.Situation
	case music.KindPlaylist:
		return current.Playlist
	default:
		return ""
	}
}

// Format prefixes name with the icon of its kind.
func Format(k music.Kind, name string) string {
	return ForKind(k) + name
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}

// Mute returns the muted volume icon.
func Mute() string {
	return current.Mute
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}
