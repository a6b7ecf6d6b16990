package playback

// State is the playback state.
//
//	┌──────────┐   play / toggle   ┌──────────┐
//	│ Stopped  │ ─────────────────▶│ Playing  │
//	└──────────┘                   └──────────┘
//	     ▲                           │      ▲
//	     │ stop / queue exhausted    │      │ toggle
//	     │                    toggle ▼      │
//	     │                         ┌──────────┐
//	     └─────────────────────────│  Paused  │
//	                 stop          └──────────┘
//
// The refresh timer runs only while Playing.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
