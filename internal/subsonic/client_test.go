//nolint:bodyclose // mock responses carry in-memory bodies
package subsonic

import (
	"context"
	"crypto/md5" //nolint:gosec // matches the client
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/synctest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(method string, q url.Values) string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := strings.TrimPrefix(r.URL.Path, "/rest/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, handler(method, r.URL.Query()))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{URL: srv.URL + "/", Username: "alice", Password: "sesame"})
	c.salt = func() string { return "c19b2d" }
	return c, srv
}

func ok(body string) string {
	if body == "" {
		return `{"subsonic-response":{"status":"ok","version":"1.16.1"}}`
	}
	return `{"subsonic-response":{"status":"ok","version":"1.16.1",` + body + `}}`
}

func TestClient_AuthParams(t *testing.T) {
	var got url.Values
	c, _ := newTestServer(t, func(_ string, q url.Values) string {
		got = q
		return ok("")
	})

	require.NoError(t, c.Ping(context.Background()))

	sum := md5.Sum([]byte("sesamec19b2d")) //nolint:gosec // test
	assert.Equal(t, "alice", got.Get("u"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got.Get("t"))
	assert.Equal(t, "c19b2d", got.Get("s"))
	assert.Equal(t, "json", got.Get("f"))
	assert.Equal(t, "jam", got.Get("c"))
	assert.Equal(t, apiVersion, got.Get("v"))
}

func TestClient_Search3(t *testing.T) {
	c, _ := newTestServer(t, func(method string, q url.Values) string {
		assert.Equal(t, "search3", method)
		assert.Equal(t, "beatles", q.Get("query"))
		assert.Equal(t, "20", q.Get("songCount"))
		return ok(`"searchResult3":{
			"artist":[{"id":"ar1","name":"The Beatles"}],
			"album":[{"id":"al1","name":"Abbey Road","artist":"The Beatles","artistId":"ar1","year":1969}],
			"song":[{"id":"s1","title":"Come Together","album":"Abbey Road","albumId":"al1","artist":"The Beatles","artistId":"ar1","duration":259,"userRating":5,"type":"music"}]
		}`)
	})

	res, err := c.Search3(context.Background(), "beatles", SearchCounts{Artists: 5, Albums: 5, Songs: 20})
	require.NoError(t, err)

	require.Len(t, res.Songs, 1)
	assert.Equal(t, "Come Together", res.Songs[0].Title)
	assert.Equal(t, 259, res.Songs[0].Duration)
	assert.Equal(t, 5, res.Songs[0].UserRating)
	require.Len(t, res.Albums, 1)
	assert.Equal(t, 1969, res.Albums[0].Year)
	require.Len(t, res.Artists, 1)
}

func TestClient_FailedResponse(t *testing.T) {
	c, _ := newTestServer(t, func(string, url.Values) string {
		return `{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":70,"message":"Album not found"}}}`
	})

	_, err := c.GetAlbum(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, CodeNotFound, apiErr.Code)
	assert.True(t, IsNotFound(err))
}

func TestClient_GetAlbum(t *testing.T) {
	c, _ := newTestServer(t, func(_ string, q url.Values) string {
		assert.Equal(t, "al1", q.Get("id"))
		return ok(`"album":{"id":"al1","name":"LP","artist":"A","artistId":"ar","song":[
			{"id":"1","title":"one","duration":60},
			{"id":"2","title":"two","duration":61}
		]}`)
	})

	al, err := c.GetAlbum(context.Background(), "al1")
	require.NoError(t, err)
	assert.Equal(t, "LP", al.Name)
	require.Len(t, al.Song, 2)
	assert.Equal(t, "two", al.Song[1].Title)
}

func TestClient_GetRandomSongsGenre(t *testing.T) {
	var got url.Values
	c, _ := newTestServer(t, func(_ string, q url.Values) string {
		got = q
		return ok(`"randomSongs":{"song":[{"id":"1","title":"x"}]}`)
	})

	songs, err := c.GetRandomSongs(context.Background(), "Jazz", 50)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
	assert.Equal(t, "Jazz", got.Get("genre"))
	assert.Equal(t, "50", got.Get("size"))
}

func TestClient_EmptyPayloads(t *testing.T) {
	c, _ := newTestServer(t, func(string, url.Values) string { return ok("") })
	ctx := context.Background()

	songs, err := c.GetSimilarSongs2(ctx, "ar", 10)
	require.NoError(t, err)
	assert.Empty(t, songs)

	genres, err := c.GetGenres(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)

	_, err = c.GetPlaylist(ctx, "p")
	assert.True(t, IsNotFound(err))
}

func TestClient_SetRatingRange(t *testing.T) {
	c := NewClient(Config{URL: "http://127.0.0.1:0"})
	require.Error(t, c.SetRating(context.Background(), "s", 6))
	require.Error(t, c.SetRating(context.Background(), "s", -1))
}

func TestClient_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()
	c := NewClient(Config{URL: srv.URL})

	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_StreamURL(t *testing.T) {
	c := NewClient(Config{URL: "https://music.example.com/", Username: "bob", Password: "pw"})
	c.salt = func() string { return "aa" }

	u, err := url.Parse(c.StreamURL("song-1"))
	require.NoError(t, err)
	assert.Equal(t, "/rest/stream", u.Path)
	assert.Equal(t, "song-1", u.Query().Get("id"))
	assert.Equal(t, "bob", u.Query().Get("u"))
	assert.NotEmpty(t, u.Query().Get("t"))
}

type mockTransport struct {
	statuses  []int
	body      string
	callCount int
}

func (m *mockTransport) RoundTrip(*http.Request) (*http.Response, error) {
	idx := m.callCount
	m.callCount++
	status := http.StatusOK
	if idx < len(m.statuses) {
		status = m.statuses[idx]
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(m.body)),
	}, nil
}

func TestClient_RetriesServerErrors(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		mock := &mockTransport{
			statuses: []int{http.StatusBadGateway, http.StatusServiceUnavailable},
			body:     ok(""),
		}
		c := NewClient(Config{URL: "http://subsonic.test"})
		c.httpClient = &http.Client{Transport: mock}

		require.NoError(t, c.Ping(context.Background()))
		assert.Equal(t, 3, mock.callCount)
	})
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		mock := &mockTransport{
			statuses: []int{500, 500, 500, 500},
		}
		c := NewClient(Config{URL: "http://subsonic.test"})
		c.httpClient = &http.Client{Transport: mock}

		require.Error(t, c.Ping(context.Background()))
		assert.Equal(t, maxRetries+1, mock.callCount)
	})
}

func TestSongRaw_CoverFallsBackToAlbum(t *testing.T) {
	raw := Song{ID: "s", Title: "t", AlbumID: "al"}.Raw()
	assert.Equal(t, "al", raw.AlbumArtRef)

	got := RawSongs([]Song{{ID: "v", Title: "clip", IsVideo: true}, {ID: "s", Title: "t"}})
	require.Len(t, got, 1)
	assert.Equal(t, "s", got[0].ID)
}
