package music

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSong(t *testing.T) {
	s, err := NewSong(RawSong{
		ID:       "s1",
		Title:    "Song",
		Album:    "Album",
		AlbumID:  "al1",
		Artist:   "Artist",
		ArtistID: "ar1",
		Seconds:  185,
		Rating:   5,
		Store:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", s.Key())
	assert.Equal(t, 185*time.Second, s.Duration)
	assert.Equal(t, ThumbsUp, s.Rating)
	assert.Equal(t, SourceStore, s.Source)
	assert.Empty(t, s.StreamURL)
}

func TestNewSong_InvalidRatingIsCleared(t *testing.T) {
	s, err := NewSong(RawSong{ID: "s1", Title: "x", Rating: 9})
	require.NoError(t, err)
	assert.Equal(t, NoRating, s.Rating)
}

func TestConstructors_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"song without id", func() error { _, err := NewSong(RawSong{Title: "x"}); return err }},
		{"song without title", func() error { _, err := NewSong(RawSong{ID: "x"}); return err }},
		{"video without id", func() error { _, err := NewVideo(RawVideo{Title: "x"}); return err }},
		{"album without title", func() error { _, err := NewAlbum(RawAlbum{ID: "x"}); return err }},
		{"artist without name", func() error { _, err := NewArtist(RawArtist{ID: "x"}); return err }},
		{"station without seeds", func() error { _, err := NewStation(RawStation{Title: "x"}); return err }},
		{"station with empty seed", func() error {
			_, err := NewStation(RawStation{Title: "x", Seeds: []Seed{{Kind: SeedTrack}}})
			return err
		}},
		{"situation without id", func() error { _, err := NewSituation(RawSituation{Title: "x"}); return err }},
		{"playlist without name", func() error { _, err := NewPlaylist(RawPlaylist{ID: "x"}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))
		})
	}
}

func TestSongs_DropsMalformed(t *testing.T) {
	songs := Songs([]RawSong{
		{ID: "1", Title: "one"},
		{Title: "no id"},
		{ID: "3", Title: "three"},
	})
	require.Len(t, songs, 2)
	assert.Equal(t, "1", songs[0].ID)
	assert.Equal(t, "3", songs[1].ID)
}

func TestNewSituation_FlattensNestedStations(t *testing.T) {
	raw := RawSituation{
		ID:    "root",
		Title: "Mixes",
		Stations: []RawStation{
			{Title: "top", CuratedID: "c0"},
		},
		Situations: []RawSituation{
			{
				ID:       "genres",
				Title:    "Genres",
				Stations: []RawStation{{Title: "Rock", CuratedID: "rock"}, {Title: "bad"}},
				Situations: []RawSituation{
					{ID: "deep", Title: "Deep", Stations: []RawStation{{Title: "Jazz", CuratedID: "jazz"}}},
				},
			},
			{
				ID:       "artists",
				Title:    "Artists",
				Stations: []RawStation{{Title: "Blur", Seeds: []Seed{{Kind: SeedArtist, ID: "ar1"}}}},
			},
		},
	}

	sit, err := NewSituation(raw)
	require.NoError(t, err)

	titles := make([]string, 0, len(sit.Stations))
	for _, st := range sit.Stations {
		titles = append(titles, st.Title)
	}
	assert.Equal(t, []string{"top", "Rock", "Jazz", "Blur"}, titles)
}

func TestNewPlaylist_KeepsValidSongs(t *testing.T) {
	p, err := NewPlaylist(RawPlaylist{
		ID:    "p1",
		Name:  "Mine",
		Songs: []RawSong{{ID: "1", Title: "a"}, {ID: "", Title: "b"}},
	})
	require.NoError(t, err)
	require.Len(t, p.Songs, 1)
	assert.Equal(t, "1", p.Songs[0].ID)
}
