// Package queue holds the ordered list of items waiting to be played and the
// list of items already played.
package queue

import (
	"context"
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
)

// Queue is an ordered list of playable items; index 0 plays next.
// Out-of-range indexes are ignored rather than reported.
type Queue struct {
	items []music.Playable
	rng   *rand.Rand
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{items: make([]music.Playable, 0)}
}

// NewWithRand creates an empty queue that shuffles with rng.
func NewWithRand(rng *rand.Rand) *Queue {
	q := New()
	q.rng = rng
	return q
}

// Enqueue inserts item at the front or appends it at the back.
func (q *Queue) Enqueue(item music.Playable, toFront bool) {
	if isNil(item) {
		return
	}
	if toFront {
		q.items = append([]music.Playable{item}, q.items...)
		return
	}
	q.items = append(q.items, item)
}

// EnqueueMany adds items keeping their relative order: when toFront is set
// the queue starts with items in their original order.
func (q *Queue) EnqueueMany(items []music.Playable, toFront bool) {
	if toFront {
		for i := len(items) - 1; i >= 0; i-- {
			q.Enqueue(items[i], true)
		}
		return
	}
	for _, it := range items {
		q.Enqueue(it, false)
	}
}

// AlbumFetcher returns the tracks of an album.
type AlbumFetcher interface {
	AlbumDetails(ctx context.Context, albumID string) (music.AlbumDetails, error)
}

// EnqueueAlbum fetches the tracks of album and enqueues them in album order.
func (q *Queue) EnqueueAlbum(ctx context.Context, f AlbumFetcher, album *music.Album, toFront bool) error {
	if album == nil {
		return nil
	}
	d, err := f.AlbumDetails(ctx, album.ID)
	if err != nil {
		return errors.Wrapf(err, "fetch album %s", album.ID)
	}
	q.EnqueueMany(Songs(d.Tracks), toFront)
	return nil
}

// Songs converts a song list to playable items.
func Songs(songs []*music.Song) []music.Playable {
	out := make([]music.Playable, 0, len(songs))
	for _, s := range songs {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Remove deletes the item at index.
func (q *Queue) Remove(index int) bool {
	if !q.valid(index) {
		return false
	}
	q.items = append(q.items[:index], q.items[index+1:]...)
	return true
}

// Swap exchanges the items at i and j.
func (q *Queue) Swap(i, j int) bool {
	if !q.valid(i) || !q.valid(j) {
		return false
	}
	q.items[i], q.items[j] = q.items[j], q.items[i]
	return true
}

// MoveToFront relocates the item at index to the head of the queue.
func (q *Queue) MoveToFront(index int) bool {
	return q.move(index, 0)
}

// MoveToBack relocates the item at index to the end of the queue.
func (q *Queue) MoveToBack(index int) bool {
	return q.move(index, len(q.items)-1)
}

func (q *Queue) move(from, to int) bool {
	if !q.valid(from) || !q.valid(to) {
		return false
	}
	if from == to {
		return true
	}
	item := q.items[from]
	q.items = append(q.items[:from], q.items[from+1:]...)
	q.items = append(q.items[:to], append([]music.Playable{item}, q.items[to:]...)...)
	return true
}

// Shuffle puts the queue in a uniformly random order.
func (q *Queue) Shuffle() {
	for i := len(q.items) - 1; i > 0; i-- {
		j := q.intN(i + 1)
		q.items[i], q.items[j] = q.items[j], q.items[i]
	}
}

func (q *Queue) intN(n int) int {
	if q.rng != nil {
		return q.rng.IntN(n)
	}
	return rand.IntN(n)
}

// DequeueHead removes and returns the item at index 0.
func (q *Queue) DequeueHead() (music.Playable, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.items = q.items[:0]
}

// Replace sets the queue contents, dropping nil items.
func (q *Queue) Replace(items []music.Playable) {
	q.items = make([]music.Playable, 0, len(items))
	for _, it := range items {
		q.Enqueue(it, false)
	}
}

// Items returns a copy of the queue contents.
func (q *Queue) Items() []music.Playable {
	out := make([]music.Playable, len(q.items))
	copy(out, q.items)
	return out
}

// At returns the item at index, or nil.
func (q *Queue) At(index int) music.Playable {
	if !q.valid(index) {
		return nil
	}
	return q.items[index]
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	return len(q.items)
}

// Empty reports whether the queue has no items.
func (q *Queue) Empty() bool {
	return len(q.items) == 0
}

func (q *Queue) valid(index int) bool {
	return index >= 0 && index < len(q.items)
}

func isNil(p music.Playable) bool {
	switch v := p.(type) {
	case nil:
		return true
	case *music.Song:
		return v == nil
	case *music.Video:
		return v == nil
	}
	return false
}
