package music

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRating_Glyph(t *testing.T) {
	tests := []struct {
		rating Rating
		want   string
	}{
		{0, "-"},
		{1, "▼"},
		{2, "▼"},
		{3, "-"},
		{4, "▲"},
		{5, "▲"},
		{6, "-"},
		{-1, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.rating.Glyph(), "rating %d", tt.rating)
	}
}

func TestRating_Toggle(t *testing.T) {
	assert.Equal(t, ThumbsUp, NoRating.Toggle(ThumbsUp))
	assert.Equal(t, NoRating, ThumbsUp.Toggle(ThumbsUp))
	assert.Equal(t, ThumbsDown, ThumbsUp.Toggle(ThumbsDown))
}

func TestKinds(t *testing.T) {
	entities := []Entity{
		&Song{}, &Video{}, &Album{}, &Artist{},
		&RadioStation{}, &Situation{}, &Playlist{},
	}
	seen := make(map[Kind]bool)
	for _, e := range entities {
		assert.False(t, seen[e.Kind()], "duplicate kind %s", e.Kind())
		seen[e.Kind()] = true
		assert.NotEqual(t, "unknown", e.Kind().String())
	}
	assert.Len(t, seen, 7)
}

func TestSameEntity(t *testing.T) {
	a := &Song{ID: "1", Title: "A"}
	b := &Song{ID: "1", Title: "renamed"}
	v := &Video{ID: "1"}

	assert.True(t, SameEntity(a, b))
	assert.False(t, SameEntity(a, v))
	assert.False(t, SameEntity(a, nil))
}

func TestRadioStation_Key(t *testing.T) {
	st := &RadioStation{Title: "x", Seeds: []Seed{{Kind: SeedArtist, ID: "ar-1"}}}
	assert.Equal(t, "artist:ar-1", st.Key())

	st.CuratedID = "rock"
	assert.Equal(t, "rock", st.Key())

	st.StationID = "uuid"
	assert.Equal(t, "uuid", st.Key())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "3:05", FormatDuration(185*time.Second))
	assert.Equal(t, "0:00", FormatDuration(0))
	assert.Equal(t, "61:01", FormatDuration(time.Hour+61*time.Second))
}

func TestVideoURL(t *testing.T) {
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", VideoURL("dQw4w9WgXcQ"))
}

func TestPlayableDisplay(t *testing.T) {
	tests := []struct {
		name   string
		item   Playable
		title  string
		artist string
	}{
		{"song", &Song{Title: "One", Artist: "A"}, "One", "A"},
		{"video", &Video{Title: "Clip", Channel: "C"}, "Clip", "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.item.DisplayTitle())
			assert.Equal(t, tt.artist, tt.item.DisplayArtist())
		})
	}
}
