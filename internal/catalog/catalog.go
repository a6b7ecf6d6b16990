// Package catalog answers the questions the client asks the remote music
// catalog: search, drill-down details, radio stations, listen-now and
// streaming URLs. It maps Subsonic responses onto the entity model.
package catalog

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/results"
	"github.com/llehouerou/jam/internal/subsonic"
	"github.com/llehouerou/jam/internal/youtube"
)

const (
	searchArtists  = 10
	searchAlbums   = 20
	topSongs       = 20
	similarArtists = 10
)

// ErrNoStation is returned when an entity cannot seed a radio station.
var ErrNoStation = errors.New("entity cannot seed a station")

// Library is the subset of the Subsonic API the catalog uses.
type Library interface {
	Search3(ctx context.Context, query string, n subsonic.SearchCounts) (subsonic.SearchResult, error)
	GetAlbum(ctx context.Context, id string) (subsonic.Album, error)
	GetArtist(ctx context.Context, id string) (subsonic.Artist, error)
	GetArtistInfo2(ctx context.Context, id string, count int) (subsonic.ArtistInfo, error)
	GetTopSongs(ctx context.Context, artist string, count int) ([]subsonic.Song, error)
	GetSimilarSongs(ctx context.Context, id string, count int) ([]subsonic.Song, error)
	GetSimilarSongs2(ctx context.Context, artistID string, count int) ([]subsonic.Song, error)
	GetRandomSongs(ctx context.Context, genre string, count int) ([]subsonic.Song, error)
	GetGenres(ctx context.Context) ([]subsonic.Genre, error)
	GetPlaylists(ctx context.Context) ([]subsonic.Playlist, error)
	GetPlaylist(ctx context.Context, id string) (subsonic.Playlist, error)
	GetStarred2(ctx context.Context) (subsonic.Starred, error)
	GetAlbumList2(ctx context.Context, listType string, size int) ([]subsonic.Album, error)
	SetRating(ctx context.Context, id string, rating int) error
	StreamURL(id string) string
}

// VideoSource pages through video search results.
type VideoSource interface {
	Search(ctx context.Context, query, pageToken string) (youtube.Page, error)
}

// StationStore remembers which station id was minted for which seed.
type StationStore interface {
	// FindStation returns the id of the station built on seed, or "" when
	// there is none.
	FindStation(ctx context.Context, seed music.Seed) (string, error)
	SaveStation(ctx context.Context, id string, seed music.Seed, title string) error
	StationSeed(ctx context.Context, id string) (music.Seed, error)
}

// Service is the catalog facade used by the application.
// Search and MoreVideos share paging state and must not run concurrently.
type Service struct {
	lib      Library
	videos   VideoSource
	stations StationStore
	newID    func() string

	lastQuery string
	nextToken string
}

// New creates a Service. videos may be nil to disable video search.
func New(lib Library, videos VideoSource, stations StationStore) *Service {
	return &Service{
		lib:      lib,
		videos:   videos,
		stations: stations,
		newID:    uuid.NewString,
	}
}

// Search queries the catalog and, when enabled, the first page of videos.
// A failing video search does not fail the catalog search.
func (s *Service) Search(ctx context.Context, query string) (results.Batch, error) {
	var (
		hits subsonic.SearchResult
		page youtube.Page
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hits, err = s.lib.Search3(gctx, query, subsonic.SearchCounts{
			Artists: searchArtists,
			Albums:  searchAlbums,
			Songs:   results.MaxPerBucket,
		})
		return errors.Wrapf(err, "search %q", query)
	})
	if s.videos != nil {
		g.Go(func() error {
			var err error
			page, err = s.videos.Search(gctx, query, "")
			if err != nil {
				log.Warn().Err(err).Str("query", query).Msg("video search failed")
				page = youtube.Page{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results.Batch{}, err
	}

	s.lastQuery = query
	s.nextToken = page.NextPageToken
	return results.Batch{
		Songs:   music.Songs(subsonic.RawSongs(hits.Songs)),
		Albums:  music.Albums(subsonic.RawAlbums(hits.Albums)),
		Artists: music.Artists(subsonic.RawArtists(hits.Artists)),
		Videos:  page.Videos,
	}, nil
}

// HasMoreVideos reports whether MoreVideos can return anything.
func (s *Service) HasMoreVideos() bool {
	return s.videos != nil && s.lastQuery != "" && s.nextToken != ""
}

// MoreVideos returns the next page of videos for the last search.
func (s *Service) MoreVideos(ctx context.Context) ([]*music.Video, error) {
	if !s.HasMoreVideos() {
		return nil, nil
	}
	page, err := s.videos.Search(ctx, s.lastQuery, s.nextToken)
	if err != nil {
		return nil, errors.Wrap(err, "more videos")
	}
	s.nextToken = page.NextPageToken
	return page.Videos, nil
}

// AlbumDetails returns an album and its tracks.
func (s *Service) AlbumDetails(ctx context.Context, albumID string) (music.AlbumDetails, error) {
	al, err := s.lib.GetAlbum(ctx, albumID)
	if err != nil {
		return music.AlbumDetails{}, err
	}
	album, err := music.NewAlbum(al.Raw())
	if err != nil {
		return music.AlbumDetails{}, err
	}
	return music.AlbumDetails{
		Album:  album,
		Tracks: music.Songs(subsonic.RawSongs(al.Song)),
	}, nil
}

// ArtistDetails returns an artist's albums, top songs and related artists.
// Top songs and related artists are best effort.
func (s *Service) ArtistDetails(ctx context.Context, artistID string) (music.ArtistDetails, error) {
	ar, err := s.lib.GetArtist(ctx, artistID)
	if err != nil {
		return music.ArtistDetails{}, err
	}
	artist, err := music.NewArtist(ar.Raw())
	if err != nil {
		return music.ArtistDetails{}, err
	}
	d := music.ArtistDetails{
		Artist: artist,
		Albums: music.Albums(subsonic.RawAlbums(ar.Album)),
	}

	top, err := s.lib.GetTopSongs(ctx, ar.Name, topSongs)
	if err != nil {
		log.Warn().Err(err).Str("artist", ar.Name).Msg("top songs unavailable")
	}
	d.TopSongs = music.Songs(subsonic.RawSongs(top))

	info, err := s.lib.GetArtistInfo2(ctx, artistID, similarArtists)
	if err != nil {
		log.Warn().Err(err).Str("artist", ar.Name).Msg("similar artists unavailable")
	}
	d.Related = music.Artists(subsonic.RawArtists(info.SimilarArtists))
	return d, nil
}

// StreamURL returns the streaming URL of a song.
func (s *Service) StreamURL(_ context.Context, songID string) (string, error) {
	if songID == "" {
		return "", errors.New("empty song id")
	}
	return s.lib.StreamURL(songID), nil
}

// Rate stores a song rating.
func (s *Service) Rate(ctx context.Context, songID string, rating music.Rating) error {
	return s.lib.SetRating(ctx, songID, int(rating))
}
