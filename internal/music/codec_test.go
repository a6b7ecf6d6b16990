package music

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_RoundTripKeepsKindsAndFields(t *testing.T) {
	song := &Song{
		ID:          "s1",
		Title:       "Song",
		Album:       "Album",
		AlbumID:     "al1",
		AlbumArtRef: "cover-1",
		Artist:      "Artist",
		ArtistID:    "ar1",
		Source:      SourceStore,
		TrackType:   "music",
		Duration:    3*time.Minute + 5*time.Second,
		Rating:      ThumbsUp,
		StreamURL:   "http://expired",
	}
	video := &Video{
		ID:           "v1",
		Title:        "Video",
		Channel:      "Channel",
		ThumbnailURL: "http://img",
	}

	data, err := MarshalRecords([]Playable{song, video})
	require.NoError(t, err)

	got, err := UnmarshalRecords(data)
	require.NoError(t, err)
	require.Len(t, got, 2)

	gotSong, ok := got[0].(*Song)
	require.True(t, ok, "first record should be a song, got %T", got[0])
	want := *song
	want.StreamURL = ""
	assert.Equal(t, &want, gotSong)

	gotVideo, ok := got[1].(*Video)
	require.True(t, ok, "second record should be a video, got %T", got[1])
	assert.Equal(t, video, gotVideo)
}

func TestUnmarshalRecords_SkipsBadRecords(t *testing.T) {
	data := []byte(`[
		{"kind":"song","data":{"id":"s1","title":"ok","source":"library","duration_ms":1000,"rating":0}},
		{"kind":"album","data":{"id":"a1"}},
		{"kind":"song","data":"not an object"},
		{"kind":"video","data":{"id":"","title":"no id"}},
		{"kind":"video","data":{"id":"v1","title":"ok"}}
	]`)

	got, err := UnmarshalRecords(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].Key())
	assert.Equal(t, "v1", got[1].Key())
}

func TestUnmarshalRecords_Corrupt(t *testing.T) {
	_, err := UnmarshalRecords([]byte("{not json"))
	require.Error(t, err)
}

func TestDecodeRecord_UnknownKind(t *testing.T) {
	_, err := DecodeRecord(Record{Kind: "situation", Data: []byte(`{}`)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestMarshalRecords_SkipsNil(t *testing.T) {
	data, err := MarshalRecords([]Playable{nil, &Video{ID: "v", Title: "t"}})
	require.NoError(t, err)

	got, err := UnmarshalRecords(data)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
