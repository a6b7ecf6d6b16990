package queue

import (
	"slices"

	"github.com/llehouerou/jam/internal/music"
)

// Undo keeps snapshots of queue contents for undo and redo. The last entry
// of done is the queue as it is now.
type Undo struct {
	done   [][]music.Playable
	undone [][]music.Playable
	limit  int
}

// NewUndo creates an undo log holding at most limit snapshots.
func NewUndo(limit int) *Undo {
	return &Undo{limit: limit}
}

// Record saves a snapshot of items and forgets anything that could be redone.
func (u *Undo) Record(items []music.Playable) {
	u.done = append(u.done, slices.Clone(items))
	u.undone = u.undone[:0]
	if over := len(u.done) - u.limit; over > 0 {
		u.done = slices.Delete(u.done, 0, over)
	}
}

// Undo steps back one snapshot and returns it.
func (u *Undo) Undo() ([]music.Playable, bool) {
	if !u.CanUndo() {
		return nil, false
	}
	last := len(u.done) - 1
	u.undone = append(u.undone, u.done[last])
	u.done = u.done[:last]
	return slices.Clone(u.done[last-1]), true
}

// Redo reapplies the most recently undone snapshot and returns it.
func (u *Undo) Redo() ([]music.Playable, bool) {
	if !u.CanRedo() {
		return nil, false
	}
	last := len(u.undone) - 1
	s := u.undone[last]
	u.undone = u.undone[:last]
	u.done = append(u.done, s)
	return slices.Clone(s), true
}

// CanUndo reports whether an earlier snapshot exists.
func (u *Undo) CanUndo() bool { return len(u.done) > 1 }

// CanRedo reports whether a later snapshot exists.
func (u *Undo) CanRedo() bool { return len(u.undone) > 0 }
