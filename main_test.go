package main

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/state"
)

func openState(t *testing.T) *state.Manager {
	t.Helper()
	m, err := state.Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestProgramSender_DropsBeforeAttach(t *testing.T) {
	var s programSender

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Send(struct{}{})
		}()
	}
	wg.Wait()

	if s.prog.Load() != nil {
		t.Error("program set without Attach")
	}
}

func TestProgramSender_AttachWhileSending(t *testing.T) {
	var s programSender
	// A cancelled program drops messages instead of blocking.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := tea.NewProgram(nil, tea.WithContext(ctx))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			s.Send(nil)
		}
	}()
	s.Attach(p)
	<-done

	if s.prog.Load() != p {
		t.Error("Attach did not store the program")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openState(t)
	err := src.SaveSession(ctx, state.Session{
		Queue: []music.Playable{
			&music.Song{ID: "s1", Title: "One", Artist: "A"},
			&music.Video{ID: "v1", Title: "Clip", Channel: "C"},
		},
		History: []music.Playable{&music.Song{ID: "h1", Title: "Old"}},
	})
	if err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeRecords(ctx, &buf, src, false); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}

	dst := openState(t)
	if err := dst.SaveSession(ctx, state.Session{
		Queue: []music.Playable{&music.Song{ID: "x", Title: "Existing"}},
	}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	n, err := appendRecords(ctx, buf.Bytes(), dst)
	if err != nil {
		t.Fatalf("appendRecords failed: %v", err)
	}
	if n != 2 {
		t.Errorf("appended %d, want 2", n)
	}

	got := dst.LoadSession(ctx).Queue
	keys := make([]string, 0, len(got))
	for _, p := range got {
		keys = append(keys, p.Key())
	}
	want := []string{"x", "s1", "v1"}
	if len(keys) != len(want) {
		t.Fatalf("queue = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("queue[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestExport_History(t *testing.T) {
	ctx := context.Background()
	m := openState(t)
	if err := m.SaveSession(ctx, state.Session{
		Queue:   []music.Playable{&music.Song{ID: "q"}},
		History: []music.Playable{&music.Song{ID: "h1"}},
	}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeRecords(ctx, &buf, m, true); err != nil {
		t.Fatalf("writeRecords failed: %v", err)
	}
	items, err := music.UnmarshalRecords(buf.Bytes())
	if err != nil {
		t.Fatalf("UnmarshalRecords failed: %v", err)
	}
	if len(items) != 1 || items[0].Key() != "h1" {
		t.Errorf("exported %v, want only h1", items)
	}
}

func TestImport_MalformedLeavesQueue(t *testing.T) {
	ctx := context.Background()
	m := openState(t)
	if err := m.SaveSession(ctx, state.Session{
		Queue: []music.Playable{&music.Song{ID: "keep"}},
	}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	if _, err := appendRecords(ctx, []byte("not json"), m); err == nil {
		t.Fatal("expected error for malformed input")
	}
	if q := m.LoadSession(ctx).Queue; len(q) != 1 || q[0].Key() != "keep" {
		t.Errorf("queue changed after failed import: %v", q)
	}
}
