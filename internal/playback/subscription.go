package playback

import "sync"

const eventBufferSize = 16

// Subscription delivers controller events. Done is closed by
// Controller.Close; the event channels themselves are never closed.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	VolumeChanged   <-chan VolumeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	queue    chan QueueChange
	volume   chan VolumeChange
	errs     chan ErrorEvent
	done     chan struct{}
	once     sync.Once
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		queue:    make(chan QueueChange, eventBufferSize),
		volume:   make(chan VolumeChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.PositionChanged = s.state, s.track, s.position
	s.QueueChanged, s.VolumeChanged, s.Error = s.queue, s.volume, s.errs
	s.Done = s.done
	return s
}

func (s *Subscription) close() {
	s.once.Do(func() { close(s.done) })
}

// offer sends v unless ch is full. A subscriber that falls behind loses
// events rather than stalling the event loop.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}
