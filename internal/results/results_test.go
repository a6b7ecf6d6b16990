package results

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/jam/internal/music"
)

func songs(n int) []*music.Song {
	out := make([]*music.Song, n)
	for i := range n {
		out[i] = &music.Song{ID: fmt.Sprintf("s%d", i), Title: fmt.Sprintf("Song %d", i)}
	}
	return out
}

func fullBatch() Batch {
	return Batch{
		Songs:      songs(2),
		Albums:     []*music.Album{{ID: "al1", Title: "Album"}},
		Artists:    []*music.Artist{{ID: "ar1", Name: "Artist"}, {ID: "ar2", Name: "Other"}},
		Situations: []*music.Situation{{ID: "sit", Title: "Mixes"}},
		Stations:   []*music.RadioStation{{Title: "Radio", CuratedID: "c"}},
		Playlists:  []*music.Playlist{{ID: "p1", Name: "Mine"}},
		Videos:     []*music.Video{{ID: "v1", Title: "Clip"}},
	}
}

func TestClassify_FixedOrder(t *testing.T) {
	r := Classify(fullBatch(), false)

	kinds := make([]music.Kind, 0, len(r.Buckets()))
	for _, b := range r.Buckets() {
		kinds = append(kinds, b.Kind)
	}
	assert.Equal(t, Order[:], kinds)
}

func TestClassify_SkipsEmptyBuckets(t *testing.T) {
	r := Classify(Batch{
		Songs:  songs(1),
		Videos: []*music.Video{{ID: "v", Title: "t"}},
	}, false)

	require.Len(t, r.Buckets(), 2)
	assert.Equal(t, music.KindSong, r.Buckets()[0].Kind)
	assert.Equal(t, music.KindVideo, r.Buckets()[1].Kind)
	assert.Equal(t, 4, r.Len())
}

func TestClassify_Truncation(t *testing.T) {
	batch := Batch{Songs: songs(45)}

	r := Classify(batch, false)
	assert.Len(t, r.Bucket(music.KindSong), MaxPerBucket)

	r = Classify(batch, true)
	assert.Len(t, r.Bucket(music.KindSong), 45)
}

func TestClassify_FiltersNilBeforeTruncating(t *testing.T) {
	list := append([]*music.Song{nil, nil}, songs(30)...)
	r := Classify(Batch{Songs: list}, false)

	got := r.Bucket(music.KindSong)
	require.Len(t, got, 30)
	assert.Equal(t, "s0", got[0].Key())
	assert.Equal(t, "s29", got[29].Key())
}

func TestClassify_Empty(t *testing.T) {
	r := Classify(Batch{Songs: []*music.Song{nil}}, false)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Rows())
}

func TestFromEntities_ClassifiesByKind(t *testing.T) {
	batch := FromEntities([]music.Entity{
		&music.Video{ID: "v"},
		&music.Song{ID: "s"},
		&music.Artist{ID: "a"},
		nil,
		&music.Playlist{ID: "p"},
	})
	assert.Len(t, batch.Videos, 1)
	assert.Len(t, batch.Songs, 1)
	assert.Len(t, batch.Artists, 1)
	assert.Len(t, batch.Playlists, 1)
}

func TestResolve_IsLeftInverseOfRows(t *testing.T) {
	r := Classify(fullBatch(), false)
	rows := r.Rows()
	require.Len(t, rows, r.Len())

	for i, row := range rows {
		got := r.Resolve(i)
		if row.Header {
			assert.Nil(t, got, "row %d is a header", i)
			continue
		}
		assert.Same(t, row.Entity, got, "row %d", i)
	}
}

func TestResolve_Layout(t *testing.T) {
	r := Classify(fullBatch(), false)

	// Row 0 is the artists header, rows 1-2 the artists, row 3 the albums header.
	assert.Nil(t, r.Resolve(0))
	assert.Equal(t, "ar1", r.Resolve(1).Key())
	assert.Equal(t, "ar2", r.Resolve(2).Key())
	assert.Nil(t, r.Resolve(3))
	assert.Equal(t, "al1", r.Resolve(4).Key())
	assert.Nil(t, r.Resolve(5))
	assert.Equal(t, "s0", r.Resolve(6).Key())
}

func TestResolve_OutOfRange(t *testing.T) {
	r := Classify(fullBatch(), false)
	assert.Nil(t, r.Resolve(-1))
	assert.Nil(t, r.Resolve(r.Len()))
	assert.Nil(t, r.Resolve(1000))
}

func TestPlayables(t *testing.T) {
	r := Classify(fullBatch(), false)
	got := r.Playables()
	require.Len(t, got, 3)
	assert.Equal(t, "s0", got[0].Key())
	assert.Equal(t, "v1", got[2].Key())
}
