package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/state"
)

type sessionStore interface {
	LoadSession(ctx context.Context) state.Session
	SaveSession(ctx context.Context, s state.Session) error
}

// writeRecords prints the saved queue, or the history, as a JSON array of
// records.
func writeRecords(ctx context.Context, w io.Writer, store sessionStore, history bool) error {
	session := store.LoadSession(ctx)
	items := session.Queue
	if history {
		items = session.History
	}
	data, err := music.MarshalRecords(items)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.Wrap(err, "write records")
}

// appendRecords adds the decoded records to the end of the saved queue and
// returns how many were added.
func appendRecords(ctx context.Context, data []byte, store sessionStore) (int, error) {
	items, err := music.UnmarshalRecords(data)
	if err != nil {
		return 0, err
	}
	session := store.LoadSession(ctx)
	session.Queue = append(session.Queue, items...)
	if err := store.SaveSession(ctx, session); err != nil {
		return 0, err
	}
	return len(items), nil
}
