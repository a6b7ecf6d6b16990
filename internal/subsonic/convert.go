package subsonic

import "github.com/llehouerou/jam/internal/music"

// Raw converts the song to a catalog record.
func (s Song) Raw() music.RawSong {
	art := s.CoverArt
	if art == "" {
		art = s.AlbumID
	}
	return music.RawSong{
		ID:          s.ID,
		Title:       s.Title,
		Album:       s.Album,
		AlbumID:     s.AlbumID,
		AlbumArtRef: art,
		Artist:      s.Artist,
		ArtistID:    s.ArtistID,
		TrackType:   s.Type,
		Seconds:     s.Duration,
		Rating:      s.UserRating,
	}
}

// Raw converts the album to a catalog record.
func (a Album) Raw() music.RawAlbum {
	return music.RawAlbum{
		ID:       a.ID,
		Title:    a.Name,
		Artist:   a.Artist,
		ArtistID: a.ArtistID,
		Year:     a.Year,
	}
}

// Raw converts the artist to a catalog record.
func (a Artist) Raw() music.RawArtist {
	return music.RawArtist{ID: a.ID, Name: a.Name}
}

// Raw converts the playlist and its entries to a catalog record.
func (p Playlist) Raw() music.RawPlaylist {
	return music.RawPlaylist{ID: p.ID, Name: p.Name, Songs: RawSongs(p.Entry)}
}

// RawSongs converts songs, skipping video entries.
func RawSongs(in []Song) []music.RawSong {
	out := make([]music.RawSong, 0, len(in))
	for _, s := range in {
		if s.IsVideo {
			continue
		}
		out = append(out, s.Raw())
	}
	return out
}

// RawAlbums converts albums.
func RawAlbums(in []Album) []music.RawAlbum {
	out := make([]music.RawAlbum, len(in))
	for i, a := range in {
		out[i] = a.Raw()
	}
	return out
}

// RawArtists converts artists.
func RawArtists(in []Artist) []music.RawArtist {
	out := make([]music.RawArtist, len(in))
	for i, a := range in {
		out[i] = a.Raw()
	}
	return out
}
