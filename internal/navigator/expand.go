package navigator

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
)

// DefaultStationSongs is the number of songs requested from a station.
const DefaultStationSongs = 50

// ErrNotExpandable is returned when an entity lacks the reference needed to
// fetch what it expands to.
var ErrNotExpandable = errors.New("entity cannot be expanded")

// Expander fetches the data entities expand to.
type Expander interface {
	AlbumDetails(ctx context.Context, albumID string) (music.AlbumDetails, error)
	ArtistDetails(ctx context.Context, artistID string) (music.ArtistDetails, error)
	// ResolveStation returns the id of the station built from st, creating
	// it when it does not exist yet.
	ResolveStation(ctx context.Context, st *music.RadioStation) (string, error)
	StationSongs(ctx context.Context, stationID string, count int) ([]*music.Song, error)
}

// Expand computes the result batch e expands to, and a title for it.
func Expand(ctx context.Context, x Expander, e music.Entity) (results.Batch, string, error) {
	switch v := e.(type) {
	case *music.Song:
		seed := seedArtist(v.ArtistID, v.Artist)
		return expandAlbum(ctx, x, v.AlbumID, seed)
	case *music.Album:
		seed := seedArtist(v.ArtistID, v.Artist)
		return expandAlbum(ctx, x, v.ID, seed)
	case *music.Artist:
		if v.ID == "" {
			return results.Batch{}, "", errors.Wrap(ErrNotExpandable, "artist has no id")
		}
		d, err := x.ArtistDetails(ctx, v.ID)
		if err != nil {
			return results.Batch{}, "", errors.Wrapf(err, "artist %s", v.ID)
		}
		artists := make([]*music.Artist, 0, len(d.Related)+1)
		artists = append(artists, v)
		for _, r := range d.Related {
			if r != nil && r.ID != v.ID {
				artists = append(artists, r)
			}
		}
		return results.Batch{
			Songs:   d.TopSongs,
			Albums:  d.Albums,
			Artists: artists,
		}, v.Name, nil
	case *music.Situation:
		return results.Batch{Stations: v.Stations}, v.Title, nil
	case *music.RadioStation:
		// Expand runs off the event loop, so v is only read. ResolveStation
		// returns the same id for the same seed on every call.
		id, err := x.ResolveStation(ctx, v)
		if err != nil {
			return results.Batch{}, "", errors.Wrapf(err, "station %q", v.Title)
		}
		songs, err := x.StationSongs(ctx, id, DefaultStationSongs)
		if err != nil {
			return results.Batch{}, "", errors.Wrapf(err, "station %q songs", v.Title)
		}
		return results.Batch{Songs: songs}, v.Title, nil
	case *music.Playlist:
		return results.Batch{Songs: v.Songs}, v.Name, nil
	case *music.Video:
		return results.Batch{Videos: []*music.Video{v}}, v.Title, nil
	default:
		return results.Batch{}, "", errors.Wrapf(ErrNotExpandable, "%T", e)
	}
}

func expandAlbum(ctx context.Context, x Expander, albumID string, seed *music.Artist) (results.Batch, string, error) {
	if albumID == "" {
		return results.Batch{}, "", errors.Wrap(ErrNotExpandable, "no album id")
	}
	d, err := x.AlbumDetails(ctx, albumID)
	if err != nil {
		return results.Batch{}, "", errors.Wrapf(err, "album %s", albumID)
	}
	batch := results.Batch{Songs: d.Tracks}
	title := ""
	if d.Album != nil {
		batch.Albums = []*music.Album{d.Album}
		title = d.Album.Title
	}
	if seed != nil {
		batch.Artists = []*music.Artist{seed}
	}
	return batch, title, nil
}

func seedArtist(id, name string) *music.Artist {
	if id == "" || name == "" {
		return nil
	}
	return &music.Artist{ID: id, Name: name}
}
