package music

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// ErrMissingField is returned by the constructors when a remote record lacks
// a field the entity cannot exist without.
var ErrMissingField = errors.New("missing required field")

// RawSong is a song record as decoded from a catalog response.
type RawSong struct {
	ID          string
	Title       string
	Album       string
	AlbumID     string
	AlbumArtRef string
	Artist      string
	ArtistID    string
	TrackType   string
	Store       bool
	Seconds     int
	Rating      int
}

// RawVideo is a video search hit.
type RawVideo struct {
	ID           string
	Title        string
	Channel      string
	ThumbnailURL string
}

// RawAlbum is an album record.
type RawAlbum struct {
	ID       string
	Title    string
	Artist   string
	ArtistID string
	Year     int
}

// RawArtist is an artist record.
type RawArtist struct {
	ID   string
	Name string
}

// RawStation is a radio station record.
type RawStation struct {
	Title     string
	CuratedID string
	Seeds     []Seed
}

// RawSituation is a situation record, possibly nesting other situations.
type RawSituation struct {
	ID          string
	Title       string
	Description string
	Stations    []RawStation
	Situations  []RawSituation
}

// RawPlaylist is a playlist record with its entries.
type RawPlaylist struct {
	ID    string
	Name  string
	Songs []RawSong
}

func missing(kind Kind, field string) error {
	return errors.Wrapf(ErrMissingField, "%s: %s", kind, field)
}

// NewSong builds a Song from a catalog record.
func NewSong(r RawSong) (*Song, error) {
	if r.ID == "" {
		return nil, missing(KindSong, "id")
	}
	if r.Title == "" {
		return nil, missing(KindSong, "title")
	}
	src := SourceLibrary
	if r.Store {
		src = SourceStore
	}
	rating := Rating(r.Rating)
	if !rating.Valid() {
		rating = NoRating
	}
	return &Song{
		ID:          r.ID,
		Title:       r.Title,
		Album:       r.Album,
		AlbumID:     r.AlbumID,
		AlbumArtRef: r.AlbumArtRef,
		Artist:      r.Artist,
		ArtistID:    r.ArtistID,
		Source:      src,
		TrackType:   r.TrackType,
		Duration:    time.Duration(r.Seconds) * time.Second,
		Rating:      rating,
	}, nil
}

// NewVideo builds a Video from a search hit.
func NewVideo(r RawVideo) (*Video, error) {
	if r.ID == "" {
		return nil, missing(KindVideo, "id")
	}
	if r.Title == "" {
		return nil, missing(KindVideo, "title")
	}
	return &Video{
		ID:           r.ID,
		Title:        r.Title,
		Channel:      r.Channel,
		ThumbnailURL: r.ThumbnailURL,
	}, nil
}

// NewAlbum builds an Album from a catalog record.
func NewAlbum(r RawAlbum) (*Album, error) {
	if r.ID == "" {
		return nil, missing(KindAlbum, "id")
	}
	if r.Title == "" {
		return nil, missing(KindAlbum, "title")
	}
	return &Album{
		ID:       r.ID,
		Title:    r.Title,
		Artist:   r.Artist,
		ArtistID: r.ArtistID,
		Year:     r.Year,
	}, nil
}

// NewArtist builds an Artist from a catalog record.
func NewArtist(r RawArtist) (*Artist, error) {
	if r.ID == "" {
		return nil, missing(KindArtist, "id")
	}
	if r.Name == "" {
		return nil, missing(KindArtist, "name")
	}
	return &Artist{ID: r.ID, Name: r.Name}, nil
}

// NewStation builds a RadioStation. A station needs a title and something
// to generate songs from: a curated id or at least one seed.
func NewStation(r RawStation) (*RadioStation, error) {
	if r.Title == "" {
		return nil, missing(KindRadioStation, "title")
	}
	if r.CuratedID == "" && len(r.Seeds) == 0 {
		return nil, missing(KindRadioStation, "seed")
	}
	seeds := make([]Seed, 0, len(r.Seeds))
	for _, s := range r.Seeds {
		if s.ID != "" {
			seeds = append(seeds, s)
		}
	}
	if r.CuratedID == "" && len(seeds) == 0 {
		return nil, missing(KindRadioStation, "seed id")
	}
	return &RadioStation{
		Title:     r.Title,
		Seeds:     seeds,
		CuratedID: r.CuratedID,
	}, nil
}

// NewSituation builds a Situation, flattening the stations of every nested
// situation into a single list (parent stations first, then children depth
// first).
func NewSituation(r RawSituation) (*Situation, error) {
	if r.ID == "" {
		return nil, missing(KindSituation, "id")
	}
	if r.Title == "" {
		return nil, missing(KindSituation, "title")
	}
	return &Situation{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Stations:    flattenStations(r),
	}, nil
}

func flattenStations(r RawSituation) []*RadioStation {
	out := Stations(r.Stations)
	for _, child := range r.Situations {
		out = append(out, flattenStations(child)...)
	}
	return out
}

// NewPlaylist builds a Playlist. Malformed entries are dropped.
func NewPlaylist(r RawPlaylist) (*Playlist, error) {
	if r.ID == "" {
		return nil, missing(KindPlaylist, "id")
	}
	if r.Name == "" {
		return nil, missing(KindPlaylist, "name")
	}
	return &Playlist{
		ID:    r.ID,
		Name:  r.Name,
		Songs: Songs(r.Songs),
	}, nil
}

// Songs converts a batch of records, logging and skipping malformed ones.
func Songs(raws []RawSong) []*Song { return collect(KindSong, raws, NewSong) }

// Videos converts a batch of records, logging and skipping malformed ones.
func Videos(raws []RawVideo) []*Video { return collect(KindVideo, raws, NewVideo) }

// Albums converts a batch of records, logging and skipping malformed ones.
func Albums(raws []RawAlbum) []*Album { return collect(KindAlbum, raws, NewAlbum) }

// Artists converts a batch of records, logging and skipping malformed ones.
func Artists(raws []RawArtist) []*Artist { return collect(KindArtist, raws, NewArtist) }

// Stations converts a batch of records, logging and skipping malformed ones.
func Stations(raws []RawStation) []*RadioStation {
	return collect(KindRadioStation, raws, NewStation)
}

// Situations converts a batch of records, logging and skipping malformed ones.
func Situations(raws []RawSituation) []*Situation {
	return collect(KindSituation, raws, NewSituation)
}

// Playlists converts a batch of records, logging and skipping malformed ones.
func Playlists(raws []RawPlaylist) []*Playlist {
	return collect(KindPlaylist, raws, NewPlaylist)
}

func collect[R any, E any](kind Kind, raws []R, build func(R) (E, error)) []E {
	out := make([]E, 0, len(raws))
	for _, r := range raws {
		e, err := build(r)
		if err != nil {
			log.Warn().Err(err).Stringer("kind", kind).Msg("dropping malformed catalog record")
			continue
		}
		out = append(out, e)
	}
	return out
}
