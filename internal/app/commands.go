package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"github.com/llehouerou/jam/internal/errmsg"
	"github.com/llehouerou/jam/internal/music"
	"github.com/llehouerou/jam/internal/navigator"
	"github.com/llehouerou/jam/internal/player"
	"github.com/llehouerou/jam/internal/queue"
)

const requestTimeout = 20 * time.Second

// ErrNotQueueable is returned for entities that do not resolve to songs.
var ErrNotQueueable = errors.New("cannot be added to the queue")

func searchCmd(c Catalog, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		batch, err := c.Search(ctx, query)
		return SearchResultMsg{Query: query, Batch: batch, Err: err}
	}
}

func listenNowCmd(c Catalog, initial bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		batch, err := c.ListenNow(ctx)
		return ListenNowMsg{Batch: batch, Initial: initial, Err: err}
	}
}

func expandCmd(c Catalog, e music.Entity) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		batch, title, err := navigator.Expand(ctx, c, e)
		return ExpandedMsg{Subject: displayName(e), Batch: batch, Title: title, Err: err}
	}
}

func moreVideosCmd(c Catalog) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		videos, err := c.MoreVideos(ctx)
		return MoreVideosMsg{Videos: videos, Err: err}
	}
}

// enqueueCmd fetches the songs e stands for.
func enqueueCmd(c Catalog, e music.Entity, stationSize int, toFront, play bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := playablesFor(ctx, c, e, stationSize)
		return EnqueueMsg{
			Op:      errmsg.OpEnqueue,
			Subject: displayName(e),
			Items:   items,
			ToFront: toFront,
			Play:    play,
			Err:     err,
		}
	}
}

// stationCmd builds a radio station from e and fetches its songs.
func stationCmd(c Catalog, e music.Entity, stationSize int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		msg := EnqueueMsg{Op: errmsg.OpStation, Subject: displayName(e)}
		st, err := c.CreateStation(ctx, e)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Items, msg.Err = stationSongs(ctx, c, st, stationSize)
		return msg
	}
}

// playablesFor expands e into the items it queues as.
func playablesFor(ctx context.Context, c Catalog, e music.Entity, stationSize int) ([]music.Playable, error) {
	switch v := e.(type) {
	case *music.Song:
		return []music.Playable{v}, nil
	case *music.Video:
		return []music.Playable{v}, nil
	case *music.Album:
		// Fetch into a scratch queue; the real one is only touched on the
		// event loop.
		scratch := queue.New()
		if err := scratch.EnqueueAlbum(ctx, c, v, false); err != nil {
			return nil, err
		}
		return scratch.Items(), nil
	case *music.Playlist:
		return queue.Songs(v.Songs), nil
	case *music.RadioStation:
		return stationSongs(ctx, c, v, stationSize)
	default:
		return nil, errors.Wrapf(ErrNotQueueable, "%s", e.Kind())
	}
}

func stationSongs(ctx context.Context, c Catalog, st *music.RadioStation, n int) ([]music.Playable, error) {
	id, err := c.ResolveStation(ctx, st)
	if err != nil {
		return nil, err
	}
	songs, err := c.StationSongs(ctx, id, n)
	if err != nil {
		return nil, err
	}
	return queue.Songs(songs), nil
}

// watchService turns controller events into messages. Each message re-arms
// the watch.
func (m Model) watchService() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case e := <-sub.TrackChanged:
				return ServiceTrackChangedMsg{Change: e}
			case e := <-sub.QueueChanged:
				return ServiceQueueChangedMsg{Len: e.Len}
			case e := <-sub.Error:
				return ServiceErrorMsg{Event: e}
			case <-sub.StateChanged:
			case <-sub.PositionChanged:
			case <-sub.VolumeChanged:
			case <-sub.Done:
				return ServiceClosedMsg{}
			}
		}
	}
}

func watchEndFile(ch <-chan player.EndFileEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return EndFileMsg{Event: ev}
	}
}

func watchStderr(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

func statusTimeoutCmd(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return StatusTimeoutMsg{Seq: seq}
	})
}

// displayName is the name of e used in status messages.
func displayName(e music.Entity) string {
	switch v := e.(type) {
	case *music.Song:
		return v.Title
	case *music.Video:
		return v.Title
	case *music.Album:
		return v.Title
	case *music.Artist:
		return v.Name
	case *music.RadioStation:
		return v.Title
	case *music.Situation:
		return v.Title
	case *music.Playlist:
		return v.Name
	}
	return ""
}
