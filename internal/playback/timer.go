package playback

import (
	"sync"
	"time"
)

const (
	// RefreshInterval is the period of progress refreshes while playing.
	RefreshInterval = 500 * time.Millisecond
	// EndOfTrackDelay is how soon the next item starts after a natural end
	// of file.
	EndOfTrackDelay = 10 * time.Millisecond
)

// Timer drives Controller.Refresh. Start and Stop bracket the Playing state;
// Nudge requests one extra refresh after d regardless of state.
type Timer interface {
	Start()
	Stop()
	Nudge(d time.Duration)
}

// Ticker is a cancellable repeating Timer. fire runs on the timer goroutine
// and is expected to post a message to the event loop rather than touch
// controller state.
type Ticker struct {
	interval time.Duration
	fire     func()

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	running bool
}

// NewTicker creates a stopped ticker.
func NewTicker(interval time.Duration, fire func()) *Ticker {
	return &Ticker{interval: interval, fire: fire}
}

// Start begins firing every interval. Starting a running ticker is a no-op.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.gen++
	t.schedule(t.gen)
}

func (t *Ticker) schedule(gen uint64) {
	t.timer = time.AfterFunc(t.interval, func() {
		t.mu.Lock()
		if !t.running || t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.schedule(gen)
		t.mu.Unlock()
		t.fire()
	})
}

// Stop cancels pending ticks. Ticks already delivered are not recalled.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Nudge fires once after d.
func (t *Ticker) Nudge(d time.Duration) {
	time.AfterFunc(d, t.fire)
}

// Running reports whether the ticker is started.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

var _ Timer = (*Ticker)(nil)
