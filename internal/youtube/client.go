// Package youtube searches videos through the YouTube Data API v3.
package youtube

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/cache"
	"github.com/llehouerou/jam/internal/music"
)

const (
	// DefaultSearchURL is the search endpoint of the Data API.
	DefaultSearchURL = "https://www.googleapis.com/youtube/v3/search"
	// PageSize is the number of videos per page.
	PageSize = 25
)

// ErrNoAPIKey is returned when searching without an API key.
var ErrNoAPIKey = errors.New("youtube api key not configured")

// Page is one page of search results.
type Page struct {
	Videos        []*music.Video
	NextPageToken string
}

// Client searches videos.
type Client struct {
	apiKey    string
	searchURL string
	http      *http.Client
	cache     cache.Cache
}

// NewClient creates a client. A nil cache disables caching.
func NewClient(apiKey string, c cache.Cache) *Client {
	if c == nil {
		c = cache.Nop{}
	}
	return &Client{
		apiKey:    apiKey,
		searchURL: DefaultSearchURL,
		http:      &http.Client{Timeout: 10 * time.Second},
		cache:     c,
	}
}

// WithSearchURL points the client at another endpoint.
func (c *Client) WithSearchURL(u string) *Client {
	c.searchURL = u
	return c
}

type searchResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns a page of videos for query. An empty pageToken asks for the
// first page.
func (c *Client) Search(ctx context.Context, query, pageToken string) (Page, error) {
	if c.apiKey == "" {
		return Page{}, ErrNoAPIKey
	}
	key := "yt:" + url.QueryEscape(query) + ":" + pageToken

	body, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Warn().Err(err).Msg("video cache unavailable")
		}
		body, err = c.fetch(ctx, query, pageToken)
		if err != nil {
			return Page{}, err
		}
		if err := c.cache.Set(ctx, key, body); err != nil {
			log.Warn().Err(err).Msg("caching video search failed")
		}
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Page{}, errors.Wrap(err, "decode youtube response")
	}
	return Page{
		Videos:        music.Videos(rawVideos(resp)),
		NextPageToken: resp.NextPageToken,
	}, nil
}

func (c *Client) fetch(ctx context.Context, query, pageToken string) ([]byte, error) {
	val := url.Values{}
	val.Set("part", "snippet")
	val.Set("type", "video")
	val.Set("maxResults", strconv.Itoa(PageSize))
	val.Set("q", query)
	val.Set("key", c.apiKey)
	if pageToken != "" {
		val.Set("pageToken", pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+val.Encode(), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "youtube search")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("youtube status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return body, nil
}

func rawVideos(resp searchResponse) []music.RawVideo {
	out := make([]music.RawVideo, 0, len(resp.Items))
	for _, it := range resp.Items {
		thumbs := it.Snippet.Thumbnails
		thumb := thumbs.High.URL
		if thumb == "" {
			thumb = thumbs.Medium.URL
		}
		if thumb == "" {
			thumb = thumbs.Default.URL
		}
		out = append(out, music.RawVideo{
			ID:           it.ID.VideoID,
			Title:        it.Snippet.Title,
			Channel:      it.Snippet.ChannelTitle,
			ThumbnailURL: thumb,
		})
	}
	return out
}
