// Package app is the root bubbletea model: it routes keys to the
// navigator, the queue and the playback controller, runs catalog requests
// as commands and renders the panels.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/config"
	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/navigator"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/player"
	"github.com/llehouerou/jam/internal/queue"
	"github.com/llehouerou/jam/internal/results"
	"github.com/llehouerou/jam/internal/state"
	"github.com/llehouerou/jam/internal/ui/helpbindings"
	"github.com/llehouerou/jam/internal/ui/queuepanel"
	"github.com/llehouerou/jam/internal/ui/resultsview"
)

const (
	listenNowTitle = "Listen now"
	undoDepth      = 50
	statusTimeout  = 5 * time.Second
)

// Catalog is what the app asks of the remote catalog.
// *catalog.Service implements it.
type Catalog interface {
	navigator.Expander
	queue.AlbumFetcher
	Search(ctx context.Context, query string) (results.Batch, error)
	HasMoreVideos() bool
	MoreVideos(ctx context.Context) ([]*music.Video, error)
	ListenNow(ctx context.Context) (results.Batch, error)
	CreateStation(ctx context.Context, e music.Entity) (*music.RadioStation, error)
}

// FocusTarget is the panel receiving list keys.
type FocusTarget int

const (
	FocusResults FocusTarget = iota
	FocusQueue
)

// Deps are the collaborators of the model.
type Deps struct {
	Config   *config.Config
	Catalog  Catalog
	Playback *playback.Controller
	State    state.Interface
	Bindings []keymap.Binding
	// EndFile delivers backend end-of-file events.
	EndFile <-chan player.EndFileEvent
	// Stderr delivers lines captured from C libraries. May be nil.
	Stderr <-chan string
}

// Model is the root application model.
type Model struct {
	cfg      *config.Config
	catalog  Catalog
	playback *playback.Controller
	sub      *playback.Subscription
	stateMgr state.Interface
	keys     *keymap.Resolver
	endFile  <-chan player.EndFileEvent
	stderr   <-chan string

	search    textinput.Model
	inSearch  bool
	nav       *navigator.Navigator
	results   resultsview.Model
	queue     queuepanel.Model
	help      helpbindings.Model
	showHelp  bool
	focus     FocusTarget
	undo      *queue.Undo
	listening bool // the current view is listen-now
	// searchDepth is the navigator depth of the latest search view, 0
	// once that view is gone.
	searchDepth int

	status    string
	statusErr bool
	statusSeq int
	loading   int
	paging    bool // a search or video page request is in flight

	width, height int
	quitting      bool
}

// New restores the saved session and volume and builds the model.
func New(d Deps) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search"
	ti.CharLimit = 200

	m := Model{
		cfg:       d.Config,
		catalog:   d.Catalog,
		playback:  d.Playback,
		sub:       d.Playback.Subscribe(),
		stateMgr:  d.State,
		keys:      keymap.NewResolver(d.Bindings),
		endFile:   d.EndFile,
		stderr:    d.Stderr,
		search:    ti,
		nav:       navigator.New(listenNowTitle),
		results:   resultsview.New(),
		queue:     queuepanel.New(),
		help:      helpbindings.New(d.Bindings),
		undo:      queue.NewUndo(undoDepth),
		listening: true,
		loading:   1, // the initial listen-now request
	}
	m.restore()
	m.results.SetFocused(true)
	m.syncQueue()
	m.undo.Record(m.playback.Queue().Items())
	return m
}

// restore loads the volume and, when enabled, the saved session.
func (m *Model) restore() {
	if level, err := m.stateMgr.GetVolume(); err != nil {
		log.Warn().Err(err).Msg("load volume")
	} else {
		m.playback.SetVolume(level)
	}
	if !m.cfg.ShouldPersistQueue() {
		return
	}
	s := m.stateMgr.LoadSession(context.Background())
	if s.Empty() {
		return
	}
	m.playback.Restore(s.Queue, s.History)
	log.Info().Int("queued", len(s.Queue)).Int("history", len(s.History)).Msg("session restored")
}

// Init loads the first screen and starts the event watchers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listenNowCmd(m.catalog, true),
		m.watchService(),
		watchEndFile(m.endFile),
		watchStderr(m.stderr),
	)
}
