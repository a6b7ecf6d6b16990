package queue

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/llehouerou/jam/internal/music"
)

func song(id string) *music.Song {
	return &music.Song{ID: id, Title: id}
}

func keys(items []music.Playable) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}

func queueOf(ids ...string) *Queue {
	q := New()
	for _, id := range ids {
		q.Enqueue(song(id), false)
	}
	return q
}

func TestEnqueue(t *testing.T) {
	q := New()
	q.Enqueue(song("a"), false)
	q.Enqueue(song("b"), false)
	q.Enqueue(song("c"), true)

	if got := keys(q.Items()); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("Items() = %v, want [c a b]", got)
	}
}

func TestEnqueue_Nil(t *testing.T) {
	q := New()
	q.Enqueue(nil, false)
	var s *music.Song
	q.Enqueue(s, true)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestEnqueueMany(t *testing.T) {
	abc := []music.Playable{song("a"), song("b"), song("c")}

	tests := []struct {
		name    string
		initial []string
		toFront bool
		want    []string
	}{
		{"back after existing", []string{"x"}, false, []string{"x", "a", "b", "c"}},
		{"front on empty", nil, true, []string{"a", "b", "c"}},
		{"front before existing", []string{"x", "y"}, true, []string{"a", "b", "c", "x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queueOf(tt.initial...)
			q.EnqueueMany(abc, tt.toFront)
			if got := keys(q.Items()); !slices.Equal(got, tt.want) {
				t.Errorf("Items() = %v, want %v", got, tt.want)
			}
		})
	}
}

type albumFetcher struct {
	tracks []*music.Song
	err    error
}

func (f albumFetcher) AlbumDetails(context.Context, string) (music.AlbumDetails, error) {
	return music.AlbumDetails{Tracks: f.tracks}, f.err
}

func TestEnqueueAlbum_KeepsAlbumOrderAtFront(t *testing.T) {
	q := queueOf("x")
	f := albumFetcher{tracks: []*music.Song{song("1"), song("2"), song("3")}}

	if err := q.EnqueueAlbum(context.Background(), f, &music.Album{ID: "al"}, true); err != nil {
		t.Fatalf("EnqueueAlbum() error = %v", err)
	}
	if got := keys(q.Items()); !slices.Equal(got, []string{"1", "2", "3", "x"}) {
		t.Errorf("Items() = %v, want [1 2 3 x]", got)
	}
}

func TestEnqueueAlbum_Error(t *testing.T) {
	q := queueOf("x")
	f := albumFetcher{err: errors.New("boom")}

	if err := q.EnqueueAlbum(context.Background(), f, &music.Album{ID: "al"}, false); err == nil {
		t.Fatal("EnqueueAlbum() should fail")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestRemove(t *testing.T) {
	q := queueOf("a", "b", "c")

	if !q.Remove(1) {
		t.Error("Remove(1) should succeed")
	}
	if got := keys(q.Items()); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Items() = %v, want [a c]", got)
	}
	for _, idx := range []int{-1, 2, 10} {
		if q.Remove(idx) {
			t.Errorf("Remove(%d) should fail", idx)
		}
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}

func TestSwap_IsItsOwnInverse(t *testing.T) {
	q := queueOf("a", "b", "c", "d")
	before := keys(q.Items())

	q.Swap(0, 3)
	if got := keys(q.Items()); !slices.Equal(got, []string{"d", "b", "c", "a"}) {
		t.Errorf("after one swap Items() = %v", got)
	}
	q.Swap(0, 3)
	if got := keys(q.Items()); !slices.Equal(got, before) {
		t.Errorf("after two swaps Items() = %v, want %v", got, before)
	}
}

func TestSwap_OutOfRange(t *testing.T) {
	q := queueOf("a", "b")
	if q.Swap(0, 2) || q.Swap(-1, 1) {
		t.Error("Swap with invalid index should fail")
	}
	if got := keys(q.Items()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Items() = %v, want [a b]", got)
	}
}

func TestMoveToFrontAndBack(t *testing.T) {
	q := queueOf("a", "b", "c", "d")

	q.MoveToFront(2)
	if got := keys(q.Items()); !slices.Equal(got, []string{"c", "a", "b", "d"}) {
		t.Errorf("after MoveToFront Items() = %v", got)
	}

	q.MoveToBack(1)
	if got := keys(q.Items()); !slices.Equal(got, []string{"c", "b", "d", "a"}) {
		t.Errorf("after MoveToBack Items() = %v", got)
	}

	if q.MoveToFront(4) || q.MoveToBack(-1) {
		t.Error("move with invalid index should fail")
	}
}

func TestShuffle_PreservesContents(t *testing.T) {
	q := NewWithRand(rand.New(rand.NewPCG(1, 2)))
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, id := range ids {
		q.Enqueue(song(id), false)
	}

	q.Shuffle()

	got := keys(q.Items())
	if len(got) != len(ids) {
		t.Fatalf("Len() = %d, want %d", len(got), len(ids))
	}
	slices.Sort(got)
	if !slices.Equal(got, ids) {
		t.Errorf("shuffled contents = %v, want permutation of %v", got, ids)
	}
}

func TestShuffle_Empty(t *testing.T) {
	q := New()
	q.Shuffle()
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestDequeueHead(t *testing.T) {
	q := queueOf("a", "b")

	head, ok := q.DequeueHead()
	if !ok || head.Key() != "a" {
		t.Fatalf("DequeueHead() = %v, %v; want a, true", head, ok)
	}
	q.DequeueHead()
	if _, ok := q.DequeueHead(); ok {
		t.Error("DequeueHead() on empty queue should report false")
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	q := queueOf("a")
	items := q.Items()
	items[0] = song("z")

	if q.At(0).Key() != "a" {
		t.Error("modifying Items() result changed the queue")
	}
	if q.At(5) != nil {
		t.Error("At(5) should be nil")
	}
}
