// Package music defines the catalog entities shown in result views and
// carried by the play queue.
package music

import (
	"fmt"
	"time"
)

// Kind identifies one of the seven entity variants.
type Kind int

const (
	KindSong Kind = iota
	KindVideo
	KindAlbum
	KindArtist
	KindRadioStation
	KindSituation
	KindPlaylist
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSong:
		return "song"
	case KindVideo:
		return "video"
	case KindAlbum:
		return "album"
	case KindArtist:
		return "artist"
	case KindRadioStation:
		return "station"
	case KindSituation:
		return "situation"
	case KindPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Entity is implemented by exactly the seven entity types of this package.
type Entity interface {
	Kind() Kind
	// Key is the stable identity used for equality and dedup.
	Key() string
	entity()
}

// Playable is an entity that can be handed to the media backend.
// Only *Song and *Video implement it.
type Playable interface {
	Entity
	DisplayTitle() string
	DisplayArtist() string
	playable()
}

// Source tells where a song comes from.
type Source int

const (
	SourceLibrary Source = iota
	SourceStore
)

func (s Source) String() string {
	if s == SourceStore {
		return "store"
	}
	return "library"
}

// Song is a playable catalog track.
type Song struct {
	ID          string
	Title       string
	Album       string
	AlbumID     string
	AlbumArtRef string
	Artist      string
	ArtistID    string
	Source      Source
	TrackType   string
	Duration    time.Duration
	Rating      Rating

	// StreamURL is resolved right before playback and never persisted.
	StreamURL string
	Scrobbled bool
}

// Video is a playable video search hit.
type Video struct {
	ID           string
	Title        string
	Channel      string
	ThumbnailURL string
	StreamURL    string
}

// Album expands to its tracks.
type Album struct {
	ID       string
	Title    string
	Artist   string
	ArtistID string
	Year     int
}

// Artist expands to top tracks, albums and related artists.
type Artist struct {
	ID   string
	Name string
}

// SeedKind is the kind of entity a radio station is built around.
type SeedKind string

const (
	SeedTrack   SeedKind = "track"
	SeedAlbum   SeedKind = "album"
	SeedArtist  SeedKind = "artist"
	SeedCurated SeedKind = "curated"
)

// Seed identifies what a station generates songs from.
type Seed struct {
	Kind SeedKind
	ID   string
}

// RadioStation resolves to a station id, then to a generated song list.
type RadioStation struct {
	Title     string
	Seeds     []Seed
	CuratedID string
	// StationID is set once the station has been created or reused.
	StationID string
}

// Situation groups radio stations under a theme.
type Situation struct {
	ID          string
	Title       string
	Description string
	Stations    []*RadioStation
}

// Playlist is a named list of songs.
type Playlist struct {
	ID    string
	Name  string
	Songs []*Song
}

func (*Song) Kind() Kind         { return KindSong }
func (*Video) Kind() Kind        { return KindVideo }
func (*Album) Kind() Kind        { return KindAlbum }
func (*Artist) Kind() Kind       { return KindArtist }
func (*RadioStation) Kind() Kind { return KindRadioStation }
func (*Situation) Kind() Kind    { return KindSituation }
func (*Playlist) Kind() Kind     { return KindPlaylist }

func (s *Song) Key() string      { return s.ID }
func (v *Video) Key() string     { return v.ID }
func (a *Album) Key() string     { return a.ID }
func (a *Artist) Key() string    { return a.ID }
func (s *Situation) Key() string { return s.ID }
func (p *Playlist) Key() string  { return p.ID }

// Key returns the station id when known, otherwise the curated id or a key
// derived from the first seed.
func (r *RadioStation) Key() string {
	switch {
	case r.StationID != "":
		return r.StationID
	case r.CuratedID != "":
		return r.CuratedID
	case len(r.Seeds) > 0:
		return fmt.Sprintf("%s:%s", r.Seeds[0].Kind, r.Seeds[0].ID)
	default:
		return ""
	}
}

func (*Song) entity()         {}
func (*Video) entity()        {}
func (*Album) entity()        {}
func (*Artist) entity()       {}
func (*RadioStation) entity() {}
func (*Situation) entity()    {}
func (*Playlist) entity()     {}

func (*Song) playable()  {}
func (*Video) playable() {}

func (s *Song) DisplayTitle() string  { return s.Title }
func (s *Song) DisplayArtist() string { return s.Artist }

func (v *Video) DisplayTitle() string  { return v.Title }
func (v *Video) DisplayArtist() string { return v.Channel }

// SameEntity reports whether a and b have the same kind and id.
func SameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.Key() == b.Key()
}

// VideoURL returns the stream URL for a video id.
func VideoURL(id string) string {
	return "https://youtu.be/" + id
}

// FormatDuration renders a duration as m:ss.
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
