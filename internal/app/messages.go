package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/jam/internal/errmsg"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/player"
	"github.com/llehouerou/jam/internal/results"
)

// Message category interfaces for type-based routing in Update().
// Messages from other packages (tea.KeyMsg, mpris.Request, ...) cannot
// implement these and are matched directly.

// CatalogMessage is implemented by results of catalog requests.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// PlaybackMessage is implemented by messages driving the controller.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// SearchResultMsg carries the outcome of a free-text search.
type SearchResultMsg struct {
	Query string
	Batch results.Batch
	Err   error
}

func (SearchResultMsg) catalogMessage() {}

// ListenNowMsg carries the listen-now recommendations. Initial is set for
// the first screen, which is not pushed on the back-stack.
type ListenNowMsg struct {
	Batch   results.Batch
	Initial bool
	Err     error
}

func (ListenNowMsg) catalogMessage() {}

// ExpandedMsg carries the view an entity drilled into.
type ExpandedMsg struct {
	Subject string
	Batch   results.Batch
	Title   string
	Err     error
}

func (ExpandedMsg) catalogMessage() {}

// MoreVideosMsg carries the next page of video results.
type MoreVideosMsg struct {
	Videos []*music.Video
	Err    error
}

func (MoreVideosMsg) catalogMessage() {}

// EnqueueMsg carries items fetched for the queue: album tracks, playlist
// songs or station songs. Play starts the first of them right away.
type EnqueueMsg struct {
	Op      errmsg.Op
	Subject string
	Items   []music.Playable
	ToFront bool
	Play    bool
	Err     error
}

func (EnqueueMsg) catalogMessage() {}

// RefreshMsg is posted by the playback refresh timer.
type RefreshMsg struct{}

func (RefreshMsg) playbackMessage() {}

// EndFileMsg wraps a backend end-of-file event.
type EndFileMsg struct {
	Event player.EndFileEvent
}

func (EndFileMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when the controller moves to another item.
type ServiceTrackChangedMsg struct {
	Change playback.TrackChange
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServiceQueueChangedMsg is sent when the controller's queue changes.
type ServiceQueueChangedMsg struct {
	Len int
}

func (ServiceQueueChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when a playback operation fails.
type ServiceErrorMsg struct {
	Event playback.ErrorEvent
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the controller subscription ends.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) playbackMessage() {}

// StderrMsg carries a line written to stderr by C code.
type StderrMsg string

// StatusTimeoutMsg clears the status line if it still shows message Seq.
type StatusTimeoutMsg struct {
	Seq int
}
