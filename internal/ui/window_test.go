package ui

import "testing"

func TestWindow_Follow(t *testing.T) {
	tests := []struct {
		name       string
		start      int
		pos        int
		listLen    int
		height     int
		wantOffset int
	}{
		{"fits", 0, 5, 8, 10, 0},
		{"scroll down keeps margin", 0, 9, 50, 10, 3},
		{"scroll up keeps margin", 20, 21, 50, 10, 18},
		{"clamped at end", 0, 49, 50, 10, 40},
		{"empty list", 7, 0, 0, 10, 0},
		{"tiny viewport", 0, 5, 50, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(ScrollMargin)
			w.offset = tt.start
			w.Follow(tt.pos, tt.listLen, tt.height)
			if w.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", w.Offset(), tt.wantOffset)
			}
			if tt.listLen > 0 {
				start, end := w.Range(tt.listLen, tt.height)
				if tt.pos < start || tt.pos >= end {
					t.Errorf("pos %d outside visible range [%d,%d)", tt.pos, start, end)
				}
			}
		})
	}
}

func TestWindow_Range(t *testing.T) {
	w := NewWindow(0)
	if s, e := w.Range(0, 5); s != 0 || e != 0 {
		t.Errorf("empty Range() = %d,%d", s, e)
	}
	if s, e := w.Range(3, 5); s != 0 || e != 3 {
		t.Errorf("short Range() = %d,%d, want 0,3", s, e)
	}
}
