// Package results groups heterogeneous catalog entities into per-kind
// buckets and lays them out as the rows of a result view.
package results

import "github.com/llehouerou/jam/internal/music"

// MaxPerBucket is the number of entries kept per bucket outside the
// history view.
const MaxPerBucket = 30

// Order is the rendering order of buckets.
var Order = [...]music.Kind{
	music.KindArtist,
	music.KindAlbum,
	music.KindSong,
	music.KindSituation,
	music.KindRadioStation,
	music.KindPlaylist,
	music.KindVideo,
}

// Batch is a set of homogeneous entity lists as returned by the catalog.
type Batch struct {
	Songs      []*music.Song
	Albums     []*music.Album
	Artists    []*music.Artist
	Situations []*music.Situation
	Stations   []*music.RadioStation
	Playlists  []*music.Playlist
	Videos     []*music.Video
}

// FromEntities sorts a flat list into a Batch by runtime kind.
func FromEntities(entities []music.Entity) Batch {
	var b Batch
	for _, e := range entities {
		b.Add(e)
	}
	return b
}

// Add appends e to the list matching its kind. Nil entities are ignored.
func (b *Batch) Add(e music.Entity) {
	switch v := e.(type) {
	case *music.Song:
		b.Songs = append(b.Songs, v)
	case *music.Video:
		b.Videos = append(b.Videos, v)
	case *music.Album:
		b.Albums = append(b.Albums, v)
	case *music.Artist:
		b.Artists = append(b.Artists, v)
	case *music.RadioStation:
		b.Stations = append(b.Stations, v)
	case *music.Situation:
		b.Situations = append(b.Situations, v)
	case *music.Playlist:
		b.Playlists = append(b.Playlists, v)
	}
}

// PlayableBatch builds a Batch from queue or history items.
func PlayableBatch(items []music.Playable) Batch {
	var b Batch
	for _, it := range items {
		b.Add(it)
	}
	return b
}

// Bucket is the list of entities of one kind.
type Bucket struct {
	Kind     music.Kind
	Entities []music.Entity
}

// Results is a classified batch. The zero value is an empty result set.
type Results struct {
	buckets []Bucket
}

// Classify drops nil entries and, unless historyView is set, truncates every
// bucket to MaxPerBucket entries.
func Classify(batch Batch, historyView bool) Results {
	limit := MaxPerBucket
	if historyView {
		limit = -1
	}

	lists := map[music.Kind][]music.Entity{
		music.KindArtist:       entities(batch.Artists, limit),
		music.KindAlbum:        entities(batch.Albums, limit),
		music.KindSong:         entities(batch.Songs, limit),
		music.KindSituation:    entities(batch.Situations, limit),
		music.KindRadioStation: entities(batch.Stations, limit),
		music.KindPlaylist:     entities(batch.Playlists, limit),
		music.KindVideo:        entities(batch.Videos, limit),
	}

	var r Results
	for _, kind := range Order {
		if list := lists[kind]; len(list) > 0 {
			r.buckets = append(r.buckets, Bucket{Kind: kind, Entities: list})
		}
	}
	return r
}

func entities[E interface {
	*T
	music.Entity
}, T any](list []E, limit int) []music.Entity {
	out := make([]music.Entity, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		if limit >= 0 && len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}

// Buckets returns the non-empty buckets in rendering order.
func (r Results) Buckets() []Bucket {
	return r.buckets
}

// Bucket returns the entities of the given kind.
func (r Results) Bucket(kind music.Kind) []music.Entity {
	for _, b := range r.buckets {
		if b.Kind == kind {
			return b.Entities
		}
	}
	return nil
}

// Empty reports whether there is nothing to show.
func (r Results) Empty() bool {
	return len(r.buckets) == 0
}

// Count returns the number of entities across all buckets.
func (r Results) Count() int {
	n := 0
	for _, b := range r.buckets {
		n += len(b.Entities)
	}
	return n
}

// Row is one line of the result layout. Entity is nil on header rows.
type Row struct {
	Kind   music.Kind
	Header bool
	Entity music.Entity
}

// Rows lays the buckets out: a header row per bucket followed by one row
// per entity.
func (r Results) Rows() []Row {
	rows := make([]Row, 0, r.Len())
	for _, b := range r.buckets {
		rows = append(rows, Row{Kind: b.Kind, Header: true})
		for _, e := range b.Entities {
			rows = append(rows, Row{Kind: b.Kind, Entity: e})
		}
	}
	return rows
}

// Len returns the number of rows in the layout.
func (r Results) Len() int {
	n := 0
	for _, b := range r.buckets {
		n += 1 + len(b.Entities)
	}
	return n
}

// Resolve returns the entity rendered at row, or nil for header rows and
// rows out of range.
func (r Results) Resolve(row int) music.Entity {
	if row < 0 {
		return nil
	}
	for _, b := range r.buckets {
		if row == 0 {
			return nil
		}
		row--
		if row < len(b.Entities) {
			return b.Entities[row]
		}
		row -= len(b.Entities)
	}
	return nil
}

// Playables returns every Song and Video in rendering order.
func (r Results) Playables() []music.Playable {
	var out []music.Playable
	for _, b := range r.buckets {
		for _, e := range b.Entities {
			if p, ok := e.(music.Playable); ok {
				out = append(out, p)
			}
		}
	}
	return out
}
