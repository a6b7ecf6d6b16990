package subsonic

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cockroachdb/errors"
)

// SearchCounts bounds each section of a search.
type SearchCounts struct {
	Artists int
	Albums  int
	Songs   int
}

// Search3 runs a free-text search over artists, albums and songs.
func (c *Client) Search3(ctx context.Context, query string, n SearchCounts) (SearchResult, error) {
	r, err := c.get(ctx, "search3", url.Values{
		"query":       {query},
		"artistCount": {strconv.Itoa(n.Artists)},
		"albumCount":  {strconv.Itoa(n.Albums)},
		"songCount":   {strconv.Itoa(n.Songs)},
	})
	if err != nil {
		return SearchResult{}, err
	}
	if r.SearchResult3 == nil {
		return SearchResult{}, nil
	}
	return *r.SearchResult3, nil
}

// GetAlbum returns an album with its songs.
func (c *Client) GetAlbum(ctx context.Context, id string) (Album, error) {
	r, err := c.get(ctx, "getAlbum", url.Values{"id": {id}})
	if err != nil {
		return Album{}, err
	}
	if r.Album == nil {
		return Album{}, errors.WithStack(&Error{Code: CodeNotFound, Message: "album " + id})
	}
	return *r.Album, nil
}

// GetArtist returns an artist with its albums.
func (c *Client) GetArtist(ctx context.Context, id string) (Artist, error) {
	r, err := c.get(ctx, "getArtist", url.Values{"id": {id}})
	if err != nil {
		return Artist{}, err
	}
	if r.Artist == nil {
		return Artist{}, errors.WithStack(&Error{Code: CodeNotFound, Message: "artist " + id})
	}
	return *r.Artist, nil
}

// GetArtistInfo2 returns biography data and up to count similar artists.
func (c *Client) GetArtistInfo2(ctx context.Context, id string, count int) (ArtistInfo, error) {
	r, err := c.get(ctx, "getArtistInfo2", url.Values{
		"id":    {id},
		"count": {strconv.Itoa(count)},
	})
	if err != nil {
		return ArtistInfo{}, err
	}
	if r.ArtistInfo2 == nil {
		return ArtistInfo{}, nil
	}
	return *r.ArtistInfo2, nil
}

// GetTopSongs returns the most popular songs of an artist, by name.
func (c *Client) GetTopSongs(ctx context.Context, artist string, count int) ([]Song, error) {
	r, err := c.get(ctx, "getTopSongs", url.Values{
		"artist": {artist},
		"count":  {strconv.Itoa(count)},
	})
	if err != nil {
		return nil, err
	}
	return songs(r.TopSongs), nil
}

// GetSimilarSongs returns songs similar to a song, album or artist.
func (c *Client) GetSimilarSongs(ctx context.Context, id string, count int) ([]Song, error) {
	r, err := c.get(ctx, "getSimilarSongs", url.Values{
		"id":    {id},
		"count": {strconv.Itoa(count)},
	})
	if err != nil {
		return nil, err
	}
	return songs(r.SimilarSongs), nil
}

// GetSimilarSongs2 returns songs by artists similar to an ID3 artist.
func (c *Client) GetSimilarSongs2(ctx context.Context, artistID string, count int) ([]Song, error) {
	r, err := c.get(ctx, "getSimilarSongs2", url.Values{
		"id":    {artistID},
		"count": {strconv.Itoa(count)},
	})
	if err != nil {
		return nil, err
	}
	return songs(r.SimilarSongs2), nil
}

// GetRandomSongs returns random songs, restricted to genre when not empty.
func (c *Client) GetRandomSongs(ctx context.Context, genre string, count int) ([]Song, error) {
	v := url.Values{"size": {strconv.Itoa(count)}}
	if genre != "" {
		v.Set("genre", genre)
	}
	r, err := c.get(ctx, "getRandomSongs", v)
	if err != nil {
		return nil, err
	}
	return songs(r.RandomSongs), nil
}

// GetGenres returns all genres.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	r, err := c.get(ctx, "getGenres", nil)
	if err != nil {
		return nil, err
	}
	if r.Genres == nil {
		return nil, nil
	}
	return r.Genres.Genre, nil
}

// GetPlaylists returns the playlists visible to the user, without entries.
func (c *Client) GetPlaylists(ctx context.Context) ([]Playlist, error) {
	r, err := c.get(ctx, "getPlaylists", nil)
	if err != nil {
		return nil, err
	}
	if r.Playlists == nil {
		return nil, nil
	}
	return r.Playlists.Playlist, nil
}

// GetPlaylist returns a playlist with its entries.
func (c *Client) GetPlaylist(ctx context.Context, id string) (Playlist, error) {
	r, err := c.get(ctx, "getPlaylist", url.Values{"id": {id}})
	if err != nil {
		return Playlist{}, err
	}
	if r.Playlist == nil {
		return Playlist{}, errors.WithStack(&Error{Code: CodeNotFound, Message: "playlist " + id})
	}
	return *r.Playlist, nil
}

// GetStarred2 returns the starred artists, albums and songs.
func (c *Client) GetStarred2(ctx context.Context) (Starred, error) {
	r, err := c.get(ctx, "getStarred2", nil)
	if err != nil {
		return Starred{}, err
	}
	if r.Starred2 == nil {
		return Starred{}, nil
	}
	return *r.Starred2, nil
}

// GetAlbumList2 returns albums sorted by listType ("newest", "recent",
// "frequent", ...).
func (c *Client) GetAlbumList2(ctx context.Context, listType string, size int) ([]Album, error) {
	r, err := c.get(ctx, "getAlbumList2", url.Values{
		"type": {listType},
		"size": {strconv.Itoa(size)},
	})
	if err != nil {
		return nil, err
	}
	if r.AlbumList2 == nil {
		return nil, nil
	}
	return r.AlbumList2.Album, nil
}

// SetRating sets the user rating of an item, 0 to clear it.
func (c *Client) SetRating(ctx context.Context, id string, rating int) error {
	if rating < 0 || rating > 5 {
		return errors.Newf("rating %d out of range", rating)
	}
	_, err := c.get(ctx, "setRating", url.Values{
		"id":     {id},
		"rating": {strconv.Itoa(rating)},
	})
	return err
}

func songs(l *songList) []Song {
	if l == nil {
		return nil
	}
	return l.Song
}
