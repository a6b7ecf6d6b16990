package player

import "sync"

// Mock is a test double for Backend.
type Mock struct {
	mu          sync.Mutex
	url         string
	paused      bool
	volume      int
	pos         float64
	remaining   float64
	loadErr     error
	seekErr     error
	posErr      error
	loadCalls   []string
	seekCalls   []float64
	volumeCalls []int
	quit        bool
	events      chan EndFileEvent
}

// NewMock creates a mock backend with nothing loaded.
func NewMock() *Mock {
	return &Mock{
		volume: 100,
		events: make(chan EndFileEvent, 8),
	}
}

func (m *Mock) Load(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, url)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.url = url
	m.paused = false
	m.pos = 0
	return nil
}

func (m *Mock) SetPause(paused bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = paused
	return nil
}

func (m *Mock) Seek(seconds float64, mode SeekMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, seconds)
	if m.seekErr != nil {
		return m.seekErr
	}
	if m.url == "" {
		return ErrNoMedia
	}
	if mode == SeekAbsolute {
		m.pos = seconds
	} else {
		m.pos = max(0, m.pos+seconds)
	}
	return nil
}

func (m *Mock) SetVolume(volume int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	m.volumeCalls = append(m.volumeCalls, volume)
	return nil
}

func (m *Mock) TimePos() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.posErr != nil {
		return 0, m.posErr
	}
	return m.pos, nil
}

func (m *Mock) TimeRemaining() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.posErr != nil {
		return 0, m.posErr
	}
	return m.remaining, nil
}

func (m *Mock) Quit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.quit {
		m.quit = true
		close(m.events)
	}
}

func (m *Mock) Events() <-chan EndFileEvent {
	return m.events
}

// Test helpers

func (m *Mock) SetLoadError(err error) { m.mu.Lock(); m.loadErr = err; m.mu.Unlock() }

func (m *Mock) SetSeekError(err error) { m.mu.Lock(); m.seekErr = err; m.mu.Unlock() }

func (m *Mock) SetPositionError(err error) { m.mu.Lock(); m.posErr = err; m.mu.Unlock() }

// SetProgress sets the reported position and remaining time in seconds.
func (m *Mock) SetProgress(pos, remaining float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pos = pos
	m.remaining = remaining
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) SeekCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.volumeCalls...)
}

func (m *Mock) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Mock) Volume() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SimulateEndFile emits an end-of-file event.
func (m *Mock) SimulateEndFile(reason EndReason) {
	select {
	case m.events <- EndFileEvent{Reason: reason}:
	default:
	}
}

// Verify Mock implements Backend at compile time.
var _ Backend = (*Mock)(nil)
