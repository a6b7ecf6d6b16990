package playback

import (
	"testing"
	"time"
)

func TestOffer_DeliversInOrder(t *testing.T) {
	sub := newSubscription()

	offer(sub.track, TrackChange{Current: &TrackInfo{ID: "s1"}})
	offer(sub.track, TrackChange{Current: &TrackInfo{ID: "s2"}})
	offer(sub.position, PositionChange{Position: 30 * time.Second})

	for _, want := range []string{"s1", "s2"} {
		if got := <-sub.TrackChanged; got.Current.ID != want {
			t.Errorf("TrackChanged = %s, want %s", got.Current.ID, want)
		}
	}
	if got := <-sub.PositionChanged; got.Position != 30*time.Second {
		t.Errorf("PositionChanged = %v, want 30s", got.Position)
	}
}

func TestOffer_DropsWhenFull(t *testing.T) {
	sub := newSubscription()
	for i := range eventBufferSize + 3 {
		offer(sub.volume, VolumeChange{Level: i})
	}

	if n := len(sub.VolumeChanged); n != eventBufferSize {
		t.Fatalf("buffered %d events, want %d", n, eventBufferSize)
	}
	if first := <-sub.VolumeChanged; first.Level != 0 {
		t.Errorf("first event level = %d, want 0 (oldest kept)", first.Level)
	}
}

func TestSubscription_CloseTwice(t *testing.T) {
	sub := newSubscription()
	sub.close()
	sub.close()

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done not closed")
	}
}
