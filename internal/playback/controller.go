// Package playback drives the media backend from the play queue: the
// Stopped/Playing/Paused state machine, the history of played items, the
// refresh loop and scrobbling.
package playback

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/player"
	"github.com/llehouerou/jam/internal/queue"
)

const (
	// MaxVolume is the top of the volume scale.
	MaxVolume = 8
	// SeekStep is the default seek distance in seconds.
	SeekStep = 10
)

// ErrUnplayable is returned when no stream can be resolved for an item.
var ErrUnplayable = errors.New("item cannot be played")

// StreamResolver returns a stream URL for a catalog song.
type StreamResolver interface {
	StreamURL(ctx context.Context, songID string) (string, error)
}

// Rater stores a song rating in the catalog.
type Rater interface {
	Rate(ctx context.Context, songID string, rating music.Rating) error
}

// Deps are the collaborators of a Controller. Scrobbler, Notifier and Rater
// are optional.
type Deps struct {
	Backend   player.Backend
	Resolver  StreamResolver
	Timer     Timer
	Queue     *queue.Queue
	History   *queue.History
	Scrobbler Scrobbler
	Notifier  Notifier
	Rater     Rater
	Now       func() time.Time
}

// Snapshot is a read-only view of the controller, published after every
// change for readers on other goroutines.
type Snapshot struct {
	State    State
	Track    *TrackInfo
	Volume   int
	Position time.Duration
	Duration time.Duration
	QueueLen int
	History  int
}

// Controller owns the playback state. All methods except Snapshot must be
// called from the event loop goroutine.
type Controller struct {
	backend   player.Backend
	resolver  StreamResolver
	timer     Timer
	queue     *queue.Queue
	history   *queue.History
	scrobbler Scrobbler
	notifier  Notifier
	rater     Rater
	now       func() time.Time

	state      State
	current    music.Playable
	volume     int
	position   time.Duration
	duration   time.Duration
	startedAt  time.Time
	reachedEnd bool

	subs     []*Subscription
	snapshot atomic.Pointer[Snapshot]
}

// New creates a stopped controller at full volume.
func New(d Deps) *Controller {
	c := &Controller{
		backend:   d.Backend,
		resolver:  d.Resolver,
		timer:     d.Timer,
		queue:     d.Queue,
		history:   d.History,
		scrobbler: d.Scrobbler,
		notifier:  d.Notifier,
		rater:     d.Rater,
		now:       d.Now,
		volume:    MaxVolume,
	}
	if c.queue == nil {
		c.queue = queue.New()
	}
	if c.history == nil {
		c.history = queue.NewHistory()
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.publish()
	return c
}

// Subscribe returns a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	s := newSubscription()
	c.subs = append(c.subs, s)
	return s
}

// Close ends all subscriptions and stops the refresh timer.
func (c *Controller) Close() {
	c.timer.Stop()
	for _, s := range c.subs {
		s.close()
	}
	c.subs = nil
}

// Play resolves a stream for item and starts it. On failure nothing changes.
func (c *Controller) Play(ctx context.Context, item music.Playable) error {
	if item == nil {
		return errors.Wrap(ErrUnplayable, "nil item")
	}
	url, err := c.streamURL(ctx, item)
	if err != nil {
		c.fail("play", item, err)
		return err
	}
	if err := c.backend.Load(url); err != nil {
		err = errors.Wrap(err, "load stream")
		c.fail("play", item, err)
		return err
	}

	switch v := item.(type) {
	case *music.Song:
		v.StreamURL = url
		v.Scrobbled = false
	case *music.Video:
		v.StreamURL = url
	}

	prev := InfoOf(c.current)
	c.current = item
	c.history.Push(item)
	c.position = 0
	c.duration = 0
	if s, ok := item.(*music.Song); ok {
		c.duration = s.Duration
	}
	c.startedAt = c.now()
	c.reachedEnd = false
	c.setState(StatePlaying)

	info := InfoOf(item)
	for _, s := range c.subs {
		offer(s.track, TrackChange{Previous: prev, Current: info})
	}
	if c.notifier != nil {
		c.notifier.NowPlaying(*info)
	}
	if _, ok := item.(*music.Song); ok && c.scrobbler != nil {
		c.scrobbler.NowPlaying(*info)
	}
	log.Info().Str("id", info.ID).Str("title", info.Title).Msg("playing")
	c.publish()
	return nil
}

func (c *Controller) streamURL(ctx context.Context, item music.Playable) (string, error) {
	switch v := item.(type) {
	case *music.Song:
		url, err := c.resolver.StreamURL(ctx, v.ID)
		if err != nil {
			return "", errors.Wrapf(err, "resolve stream for %s", v.ID)
		}
		if url == "" {
			return "", errors.Wrapf(ErrUnplayable, "empty stream url for %s", v.ID)
		}
		return url, nil
	case *music.Video:
		return music.VideoURL(v.ID), nil
	default:
		return "", errors.Wrapf(ErrUnplayable, "%T", item)
	}
}

// Stop rewinds and pauses the backend. The current item is left in place.
func (c *Controller) Stop() {
	if err := c.backend.Seek(0, player.SeekAbsolute); err != nil {
		log.Debug().Err(err).Msg("stop: rewind ignored")
	}
	if err := c.backend.SetPause(true); err != nil {
		log.Debug().Err(err).Msg("stop: pause ignored")
	}
	c.position = 0
	c.reachedEnd = false
	c.setState(StateStopped)
	c.publish()
}

// Toggle pauses or resumes. When stopped with nothing loaded it starts the
// next queued item.
func (c *Controller) Toggle(ctx context.Context) {
	switch c.state {
	case StatePlaying:
		c.pause(true)
		c.reachedEnd = false
		c.setState(StatePaused)
	case StatePaused:
		c.pause(false)
		c.setState(StatePlaying)
	case StateStopped:
		if c.current == nil {
			c.PlayNext(ctx)
			return
		}
		c.pause(false)
		c.setState(StatePlaying)
	}
	c.publish()
}

func (c *Controller) pause(paused bool) {
	if err := c.backend.SetPause(paused); err != nil {
		log.Warn().Err(err).Bool("paused", paused).Msg("backend pause failed")
	}
}

// PlayNext plays the first queued item that can be played. Items that fail
// are dropped. When the queue runs out playback stops with no current item.
func (c *Controller) PlayNext(ctx context.Context) {
	defer c.queueChanged()
	for {
		item, ok := c.queue.DequeueHead()
		if !ok {
			prev := InfoOf(c.current)
			c.current = nil
			c.Stop()
			if prev != nil {
				for _, s := range c.subs {
					offer(s.track, TrackChange{Previous: prev})
				}
			}
			return
		}
		if err := c.Play(ctx, item); err != nil {
			log.Warn().Err(err).Str("id", item.Key()).Msg("skipping unplayable item")
			continue
		}
		return
	}
}

// PlayPrevious goes back to the item played before the current one. The
// current item is put back at the head of the queue.
func (c *Controller) PlayPrevious(ctx context.Context) {
	if c.current != nil {
		c.queue.Enqueue(c.current, true)
	}
	prev, ok := c.history.PopFront()
	if ok && c.current != nil && music.SameEntity(prev, c.current) {
		prev, ok = c.history.PopFront()
	}
	if ok {
		c.queue.Enqueue(prev, true)
	}
	c.PlayNext(ctx)
}

// Seek moves the position by delta seconds. Failures, such as seeking with
// nothing loaded, are ignored.
func (c *Controller) Seek(delta float64) {
	if err := c.backend.Seek(delta, player.SeekRelative); err != nil {
		log.Debug().Err(err).Float64("delta", delta).Msg("seek ignored")
		return
	}
	if pos, err := c.backend.TimePos(); err == nil {
		c.position = seconds(pos)
	}
	for _, s := range c.subs {
		offer(s.position, PositionChange{Position: c.position})
	}
	c.publish()
}

// VolumeUp raises the volume one step.
func (c *Controller) VolumeUp() { c.SetVolume(c.volume + 1) }

// VolumeDown lowers the volume one step.
func (c *Controller) VolumeDown() { c.SetVolume(c.volume - 1) }

// SetVolume sets the volume level, clamped to 0..MaxVolume.
func (c *Controller) SetVolume(level int) {
	level = max(0, min(level, MaxVolume))
	if err := c.backend.SetVolume(BackendVolume(level)); err != nil {
		log.Warn().Err(err).Int("level", level).Msg("set volume failed")
		return
	}
	changed := level != c.volume
	c.volume = level
	if changed {
		for _, s := range c.subs {
			offer(s.volume, VolumeChange{Level: level})
		}
	}
	c.publish()
}

// BackendVolume maps a 0..MaxVolume level to the backend's 0..100 range.
func BackendVolume(level int) int {
	return level * 100 / MaxVolume
}

// HandleEndFile records a backend end-of-file event. A natural end while
// playing makes the next refresh advance the queue.
func (c *Controller) HandleEndFile(ev player.EndFileEvent) {
	if ev.Reason != player.EndReasonEOF || c.current == nil || c.state != StatePlaying {
		return
	}
	c.reachedEnd = true
	c.timer.Nudge(EndOfTrackDelay)
}

// Refresh is called on every timer tick. It advances the queue after a
// natural end of file, otherwise updates progress and scrobbles when due.
func (c *Controller) Refresh(ctx context.Context) {
	if c.reachedEnd && c.state == StatePlaying {
		c.reachedEnd = false
		c.PlayNext(ctx)
		return
	}
	if c.state != StatePlaying {
		return
	}
	if pos, err := c.backend.TimePos(); err == nil {
		c.position = seconds(pos)
		if rem, err := c.backend.TimeRemaining(); err == nil && rem >= 0 {
			total := seconds(pos + rem)
			if total > 0 {
				c.duration = total
			}
		}
	}
	c.maybeScrobble()
	c.publish()
}

func (c *Controller) maybeScrobble() {
	s, ok := c.current.(*music.Song)
	if !ok || s.Scrobbled || c.scrobbler == nil {
		return
	}
	if !ShouldScrobble(c.duration, c.position) {
		return
	}
	s.Scrobbled = true
	info := *InfoOf(s)
	info.Duration = c.duration
	c.scrobbler.Scrobble(info, c.startedAt)
}

// RateCurrent applies rating to the current song; applying the rating the
// song already has clears it.
func (c *Controller) RateCurrent(ctx context.Context, rating music.Rating) error {
	s, ok := c.current.(*music.Song)
	if !ok || c.rater == nil {
		return nil
	}
	next := s.Rating.Toggle(rating)
	if err := c.rater.Rate(ctx, s.ID, next); err != nil {
		err = errors.Wrapf(err, "rate %s", s.ID)
		c.fail("rate", s, err)
		return err
	}
	s.Rating = next
	c.publish()
	return nil
}

// ClearQueue empties the queue.
func (c *Controller) ClearQueue() {
	c.queue.Clear()
	c.queueChanged()
}

// QueueChanged must be called after the queue was edited directly.
func (c *Controller) QueueChanged() {
	c.queueChanged()
}

func (c *Controller) queueChanged() {
	for _, s := range c.subs {
		offer(s.queue, QueueChange{Len: c.queue.Len()})
	}
	c.publish()
}

// Session returns what to persist: the queue with the current item at its
// head, and the history without that item.
func (c *Controller) Session() (queued, played []music.Playable) {
	queued = c.queue.Items()
	played = c.history.Items()
	if c.current == nil {
		return queued, played
	}
	queued = append([]music.Playable{c.current}, queued...)
	if len(played) > 0 && music.SameEntity(played[0], c.current) {
		played = played[1:]
	}
	return queued, played
}

// Restore replaces queue and history with persisted contents.
func (c *Controller) Restore(queued, played []music.Playable) {
	c.queue.Replace(queued)
	c.history.Replace(played)
	c.queueChanged()
}

// State returns the playback state.
func (c *Controller) State() State { return c.state }

// Current returns the item being played or paused, or nil.
func (c *Controller) Current() music.Playable { return c.current }

// Volume returns the volume level in 0..MaxVolume.
func (c *Controller) Volume() int { return c.volume }

// Progress returns the position and total duration of the current item.
func (c *Controller) Progress() (position, duration time.Duration) {
	return c.position, c.duration
}

// Queue returns the play queue.
func (c *Controller) Queue() *queue.Queue { return c.queue }

// History returns the played items.
func (c *Controller) History() *queue.History { return c.history }

// Snapshot returns the latest published state. Safe for concurrent use.
func (c *Controller) Snapshot() Snapshot {
	return *c.snapshot.Load()
}

func (c *Controller) setState(s State) {
	prev := c.state
	if prev == s {
		return
	}
	c.state = s
	switch {
	case s == StatePlaying:
		c.timer.Start()
	case prev == StatePlaying:
		c.timer.Stop()
	}
	for _, sub := range c.subs {
		offer(sub.state, StateChange{Previous: prev, Current: s})
	}
}

func (c *Controller) publish() {
	c.snapshot.Store(&Snapshot{
		State:    c.state,
		Track:    InfoOf(c.current),
		Volume:   c.volume,
		Position: c.position,
		Duration: c.duration,
		QueueLen: c.queue.Len(),
		History:  c.history.Len(),
	})
}

func (c *Controller) fail(op string, item music.Playable, err error) {
	log.Warn().Err(err).Str("op", op).Str("id", item.Key()).Msg("playback operation failed")
	for _, s := range c.subs {
		offer(s.errs, ErrorEvent{Operation: op, ID: item.Key(), Err: err})
	}
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}
