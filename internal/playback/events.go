package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different item starts playing, or when the
// queue runs out (Current is nil then).
type TrackChange struct {
	Previous *TrackInfo
	Current  *TrackInfo
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Len int
}

// VolumeChange is emitted when the volume level changes.
type VolumeChange struct {
	Level int
}

// PositionChange is emitted when a seek succeeds.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when an operation fails.
type ErrorEvent struct {
	Operation string // e.g., "play", "rate"
	ID        string // item id if applicable
	Err       error
}
