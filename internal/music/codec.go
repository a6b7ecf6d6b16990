package music

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// ErrUnknownKind is returned when a record carries a kind that cannot be
// restored as a playable entity.
var ErrUnknownKind = errors.New("unknown record kind")

// Record is the stored form of a playable entity: an explicit kind
// discriminator plus the entity's fields.
type Record struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type songRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Album       string `json:"album,omitempty"`
	AlbumID     string `json:"album_id,omitempty"`
	AlbumArtRef string `json:"album_art_ref,omitempty"`
	Artist      string `json:"artist,omitempty"`
	ArtistID    string `json:"artist_id,omitempty"`
	Source      string `json:"source"`
	TrackType   string `json:"track_type,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
	Rating      int    `json:"rating"`
}

type videoRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Channel      string `json:"channel,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// EncodeRecord converts a playable entity to its stored form.
// Stream URLs are not kept: they are resolved again at play time.
func EncodeRecord(p Playable) (Record, error) {
	var (
		kind Kind
		v    any
	)
	switch e := p.(type) {
	case *Song:
		kind = KindSong
		v = songRecord{
			ID:          e.ID,
			Title:       e.Title,
			Album:       e.Album,
			AlbumID:     e.AlbumID,
			AlbumArtRef: e.AlbumArtRef,
			Artist:      e.Artist,
			ArtistID:    e.ArtistID,
			Source:      e.Source.String(),
			TrackType:   e.TrackType,
			DurationMS:  e.Duration.Milliseconds(),
			Rating:      int(e.Rating),
		}
	case *Video:
		kind = KindVideo
		v = videoRecord{
			ID:           e.ID,
			Title:        e.Title,
			Channel:      e.Channel,
			ThumbnailURL: e.ThumbnailURL,
		}
	default:
		return Record{}, errors.Wrapf(ErrUnknownKind, "%T", p)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Record{}, errors.Wrapf(err, "encode %s", kind)
	}
	return Record{Kind: kind.String(), Data: data}, nil
}

// DecodeRecord restores the entity stored in r with its original kind.
func DecodeRecord(r Record) (Playable, error) {
	switch r.Kind {
	case KindSong.String():
		var sr songRecord
		if err := json.Unmarshal(r.Data, &sr); err != nil {
			return nil, errors.Wrap(err, "decode song")
		}
		if sr.ID == "" {
			return nil, missing(KindSong, "id")
		}
		src := SourceLibrary
		if sr.Source == SourceStore.String() {
			src = SourceStore
		}
		return &Song{
			ID:          sr.ID,
			Title:       sr.Title,
			Album:       sr.Album,
			AlbumID:     sr.AlbumID,
			AlbumArtRef: sr.AlbumArtRef,
			Artist:      sr.Artist,
			ArtistID:    sr.ArtistID,
			Source:      src,
			TrackType:   sr.TrackType,
			Duration:    time.Duration(sr.DurationMS) * time.Millisecond,
			Rating:      Rating(sr.Rating),
		}, nil
	case KindVideo.String():
		var vr videoRecord
		if err := json.Unmarshal(r.Data, &vr); err != nil {
			return nil, errors.Wrap(err, "decode video")
		}
		if vr.ID == "" {
			return nil, missing(KindVideo, "id")
		}
		return &Video{
			ID:           vr.ID,
			Title:        vr.Title,
			Channel:      vr.Channel,
			ThumbnailURL: vr.ThumbnailURL,
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", r.Kind)
	}
}

// MarshalRecords encodes a list of playable entities as a JSON array of
// records.
func MarshalRecords(items []Playable) ([]byte, error) {
	records := make([]Record, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		rec, err := EncodeRecord(it)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "marshal records")
	}
	return data, nil
}

// UnmarshalRecords decodes a JSON array of records. Records that cannot be
// decoded are logged and skipped; only a malformed array is an error.
func UnmarshalRecords(data []byte) ([]Playable, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrap(err, "unmarshal records")
	}
	out := make([]Playable, 0, len(records))
	for i, rec := range records {
		p, err := DecodeRecord(rec)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping stored record")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
