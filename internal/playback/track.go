package playback

import (
	"time"

	"github.com/llehouerou/jam/internal/music"
)

// TrackInfo is a copy of the metadata of a playable item, safe to hand to
// other goroutines.
type TrackInfo struct {
	Kind     music.Kind
	ID       string
	Title    string
	Artist   string
	Album    string
	ArtRef   string
	Duration time.Duration
	Rating   music.Rating
}

// InfoOf copies the metadata of p. It returns nil for a nil item.
func InfoOf(p music.Playable) *TrackInfo {
	switch v := p.(type) {
	case *music.Song:
		if v == nil {
			return nil
		}
		return &TrackInfo{
			Kind:     music.KindSong,
			ID:       v.ID,
			Title:    v.Title,
			Artist:   v.Artist,
			Album:    v.Album,
			ArtRef:   v.AlbumArtRef,
			Duration: v.Duration,
			Rating:   v.Rating,
		}
	case *music.Video:
		if v == nil {
			return nil
		}
		return &TrackInfo{
			Kind:   music.KindVideo,
			ID:     v.ID,
			Title:  v.Title,
			Artist: v.Channel,
			ArtRef: v.ThumbnailURL,
		}
	default:
		return nil
	}
}
