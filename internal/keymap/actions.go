// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"
	ActionHelp        Action = "help"
	ActionListenNow   Action = "listen_now"
	ActionHistory     Action = "history"
	ActionUndo        Action = "undo"
	ActionRedo        Action = "redo"

	// Playback actions
	ActionPlayPause   Action = "toggle"
	ActionNextTrack   Action = "next"
	ActionPrevTrack   Action = "previous"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionRateUp      Action = "rate_up"
	ActionRateDown    Action = "rate_down"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Results actions
	ActionSelect      Action = "select" // enter - drill down, or play in the queue
	ActionBack        Action = "back"
	ActionPlay        Action = "play"
	ActionEnqueue     Action = "enqueue"
	ActionEnqueueNext Action = "enqueue_next"
	ActionEnqueueAll  Action = "enqueue_all"
	ActionStation     Action = "station"
	ActionMoreVideos  Action = "more_videos"

	// Queue actions
	ActionDelete       Action = "delete"
	ActionMoveItemUp   Action = "move_item_up"
	ActionMoveItemDown Action = "move_item_down"
	ActionMoveToFront  Action = "move_to_front"
	ActionMoveToBack   Action = "move_to_back"
	ActionShuffle      Action = "shuffle"
	ActionClear        Action = "clear"
)
