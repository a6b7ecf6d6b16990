package keymap

// Binding maps keys to an action in a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "results", "queue"
}

// Bindings are the default key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionListenNow, []string{"L"}, "Listen now", "global"},
	{ActionHistory, []string{"H"}, "Recently played", "global"},
	{ActionUndo, []string{"ctrl+z"}, "Undo queue change", "global"},
	{ActionRedo, []string{"ctrl+y"}, "Redo queue change", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n"}, "Next", "playback"},
	{ActionPrevTrack, []string{"N"}, "Previous", "playback"},
	{ActionSeekForward, []string{".", "shift+right"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{",", "shift+left"}, "Seek back", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionRateUp, []string{"t"}, "Thumbs up", "playback"},
	{ActionRateDown, []string{"T"}, "Thumbs down", "playback"},

	// Shared list navigation
	{ActionMoveUp, []string{"k", "up"}, "Move up", "results"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "results"},
	{ActionPageUp, []string{"pgup"}, "Page up", "results"},
	{ActionPageDown, []string{"pgdown"}, "Page down", "results"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "results"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "results"},

	// Results
	{ActionSelect, []string{"enter", "l", "right"}, "Open", "results"},
	{ActionBack, []string{"backspace", "h", "left", "esc"}, "Back", "results"},
	{ActionPlay, []string{"p"}, "Play now", "results"},
	{ActionEnqueue, []string{"a"}, "Add to queue", "results"},
	{ActionEnqueueNext, []string{"A"}, "Play next", "results"},
	{ActionEnqueueAll, []string{"e"}, "Add all to queue", "results"},
	{ActionStation, []string{"r"}, "Start radio", "results"},
	{ActionMoreVideos, []string{"m"}, "More videos", "results"},

	// Queue panel
	{ActionSelect, []string{"enter"}, "Play item", "queue"},
	{ActionDelete, []string{"d", "delete"}, "Remove", "queue"},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move up", "queue"},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move down", "queue"},
	{ActionMoveToFront, []string{"f"}, "Move to front", "queue"},
	{ActionMoveToBack, []string{"B"}, "Move to back", "queue"},
	{ActionShuffle, []string{"s"}, "Shuffle", "queue"},
	{ActionClear, []string{"c"}, "Clear", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
