package catalog

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
	"github.com/llehouerou/jam/internal/subsonic"
)

const (
	genreStations   = 12
	recentAlbums    = 20
	playlistFetches = 4
)

// ListenNow builds the start screen: a "Mixes" situation with genre and
// starred-artist stations, the starred songs as a playlist, the server
// playlists and recently played albums. Sections that fail are left out;
// an error is returned only when every section failed.
func (s *Service) ListenNow(ctx context.Context) (results.Batch, error) {
	var (
		genres    []subsonic.Genre
		starred   subsonic.Starred
		playlists []subsonic.Playlist
		albums    []subsonic.Album

		mu     sync.Mutex
		failed []error
	)
	section := func(name string, fn func() error) func() error {
		return func() error {
			if err := fn(); err != nil {
				log.Warn().Err(err).Str("section", name).Msg("listen now section unavailable")
				mu.Lock()
				failed = append(failed, err)
				mu.Unlock()
			}
			return nil
		}
	}

	var g errgroup.Group
	g.Go(section("genres", func() (err error) {
		genres, err = s.lib.GetGenres(ctx)
		return err
	}))
	g.Go(section("starred", func() (err error) {
		starred, err = s.lib.GetStarred2(ctx)
		return err
	}))
	g.Go(section("playlists", func() (err error) {
		playlists, err = s.playlists(ctx)
		return err
	}))
	g.Go(section("recent", func() (err error) {
		albums, err = s.lib.GetAlbumList2(ctx, "recent", recentAlbums)
		return err
	}))
	_ = g.Wait()

	if len(failed) == 4 {
		return results.Batch{}, errors.Wrap(errors.Join(failed...), "listen now")
	}

	mixes := music.RawSituation{
		ID:          "mixes",
		Title:       "Mixes",
		Description: "Stations from your library",
		Situations: []music.RawSituation{
			{ID: "genres", Title: "Genres", Stations: genreSeeds(genres)},
			{ID: "starred-artists", Title: "Starred artists", Stations: artistSeeds(starred.Artists)},
		},
	}

	rawPlaylists := make([]music.RawPlaylist, 0, len(playlists)+1)
	if len(starred.Songs) > 0 {
		rawPlaylists = append(rawPlaylists, music.RawPlaylist{
			ID:    "starred",
			Name:  "Starred",
			Songs: subsonic.RawSongs(starred.Songs),
		})
	}
	for _, p := range playlists {
		rawPlaylists = append(rawPlaylists, p.Raw())
	}

	var batch results.Batch
	if sit, err := music.NewSituation(mixes); err == nil && len(sit.Stations) > 0 {
		batch.Situations = []*music.Situation{sit}
	}
	batch.Playlists = music.Playlists(rawPlaylists)
	batch.Albums = music.Albums(subsonic.RawAlbums(albums))
	return batch, nil
}

// playlists fetches every playlist with its entries.
func (s *Service) playlists(ctx context.Context) ([]subsonic.Playlist, error) {
	list, err := s.lib.GetPlaylists(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]subsonic.Playlist, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(playlistFetches)
	for i, p := range list {
		g.Go(func() error {
			full, err := s.lib.GetPlaylist(gctx, p.ID)
			if err != nil {
				return errors.Wrapf(err, "playlist %s", p.ID)
			}
			out[i] = full
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func genreSeeds(genres []subsonic.Genre) []music.RawStation {
	genres = slices.Clone(genres)
	slices.SortStableFunc(genres, func(a, b subsonic.Genre) int {
		return cmp.Compare(b.SongCount, a.SongCount)
	})
	out := make([]music.RawStation, 0, genreStations)
	for _, g := range genres {
		if len(out) == genreStations {
			break
		}
		if g.Value == "" || g.SongCount == 0 {
			continue
		}
		out = append(out, music.RawStation{Title: g.Value, CuratedID: g.Value})
	}
	return out
}

func artistSeeds(artists []subsonic.Artist) []music.RawStation {
	out := make([]music.RawStation, 0, len(artists))
	for _, a := range artists {
		out = append(out, music.RawStation{
			Title: a.Name + " radio",
			Seeds: []music.Seed{{Kind: music.SeedArtist, ID: a.ID}},
		})
	}
	return out
}
