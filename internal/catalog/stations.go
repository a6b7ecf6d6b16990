package catalog

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/subsonic"
)

// SeedOf returns the seed a station is built on. Curated ids win over
// explicit seeds.
func SeedOf(st *music.RadioStation) (music.Seed, error) {
	if st.CuratedID != "" {
		return music.Seed{Kind: music.SeedCurated, ID: st.CuratedID}, nil
	}
	for _, seed := range st.Seeds {
		if seed.ID != "" {
			return seed, nil
		}
	}
	return music.Seed{}, errors.Wrapf(ErrNoStation, "station %q has no seed", st.Title)
}

// StationFor builds a radio station seeded by e.
func StationFor(e music.Entity) (*music.RadioStation, error) {
	switch v := e.(type) {
	case *music.Song:
		return &music.RadioStation{
			Title: v.Title + " radio",
			Seeds: []music.Seed{{Kind: music.SeedTrack, ID: v.ID}},
		}, nil
	case *music.Album:
		return &music.RadioStation{
			Title: v.Title + " radio",
			Seeds: []music.Seed{{Kind: music.SeedAlbum, ID: v.ID}},
		}, nil
	case *music.Artist:
		return &music.RadioStation{
			Title: v.Name + " radio",
			Seeds: []music.Seed{{Kind: music.SeedArtist, ID: v.ID}},
		}, nil
	case *music.RadioStation:
		return v, nil
	default:
		return nil, errors.Wrapf(ErrNoStation, "%T", e)
	}
}

// ResolveStation returns the id of the station built on st's seed, minting
// and registering a new one the first time the seed is used.
func (s *Service) ResolveStation(ctx context.Context, st *music.RadioStation) (string, error) {
	if st.StationID != "" {
		return st.StationID, nil
	}
	seed, err := SeedOf(st)
	if err != nil {
		return "", err
	}
	id, err := s.stations.FindStation(ctx, seed)
	if err != nil {
		return "", errors.Wrap(err, "find station")
	}
	if id != "" {
		return id, nil
	}
	id = s.newID()
	if err := s.stations.SaveStation(ctx, id, seed, st.Title); err != nil {
		return "", errors.Wrap(err, "save station")
	}
	return id, nil
}

// StationSongs generates count songs for a registered station.
func (s *Service) StationSongs(ctx context.Context, stationID string, count int) ([]*music.Song, error) {
	seed, err := s.stations.StationSeed(ctx, stationID)
	if err != nil {
		return nil, errors.Wrapf(err, "station %s", stationID)
	}

	var songs []subsonic.Song
	switch seed.Kind {
	case music.SeedArtist:
		songs, err = s.lib.GetSimilarSongs2(ctx, seed.ID, count)
	case music.SeedTrack, music.SeedAlbum:
		songs, err = s.lib.GetSimilarSongs(ctx, seed.ID, count)
	case music.SeedCurated:
		songs, err = s.lib.GetRandomSongs(ctx, seed.ID, count)
	default:
		return nil, errors.Newf("unknown seed kind %q", seed.Kind)
	}
	if err != nil {
		return nil, err
	}
	return music.Songs(subsonic.RawSongs(songs)), nil
}

// CreateStation builds the station seeded by e and registers it.
func (s *Service) CreateStation(ctx context.Context, e music.Entity) (*music.RadioStation, error) {
	st, err := StationFor(e)
	if err != nil {
		return nil, err
	}
	id, err := s.ResolveStation(ctx, st)
	if err != nil {
		return nil, err
	}
	created := *st
	created.StationID = id
	return &created, nil
}
