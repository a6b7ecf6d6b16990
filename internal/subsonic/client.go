// Package subsonic is a client for the Subsonic REST API, as served by
// Navidrome, Gonic, Airsonic and friends.
package subsonic

import (
	"context"
	"crypto/md5" //nolint:gosec // the Subsonic token scheme mandates md5
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

const (
	apiVersion = "1.16.1"

	// Retry configuration
	maxRetries   = 2
	initialDelay = 500 * time.Millisecond
	maxDelay     = 5 * time.Second
)

// Error codes defined by the API.
const (
	CodeGeneric          = 0
	CodeMissingParameter = 10
	CodeWrongCredentials = 40
	CodeNotAuthorized    = 50
	CodeNotFound         = 70
)

// Error is a failed API response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("subsonic error %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a "data not found" API error.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == CodeNotFound
}

// Config holds the server location and credentials.
type Config struct {
	URL      string
	Username string
	Password string
	Client   string
}

// Client provides access to a Subsonic server.
type Client struct {
	baseURL    string
	username   string
	password   string
	clientName string
	httpClient *http.Client
	// salt is replaceable in tests.
	salt func() string
}

// NewClient creates a new client.
func NewClient(cfg Config) *Client {
	name := cfg.Client
	if name == "" {
		name = "jam"
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		clientName: name,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		salt:       randomSalt,
	}
}

func randomSalt() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// params returns the authentication parameters merged with extra.
func (c *Client) params(extra url.Values) url.Values {
	salt := c.salt()
	sum := md5.Sum([]byte(c.password + salt)) //nolint:gosec // see import
	p := url.Values{}
	p.Set("u", c.username)
	p.Set("t", hex.EncodeToString(sum[:]))
	p.Set("s", salt)
	p.Set("v", apiVersion)
	p.Set("c", c.clientName)
	p.Set("f", "json")
	for k, vs := range extra {
		for _, v := range vs {
			p.Add(k, v)
		}
	}
	return p
}

func (c *Client) endpoint(method string, extra url.Values) string {
	return fmt.Sprintf("%s/rest/%s?%s", c.baseURL, method, c.params(extra).Encode())
}

// get calls method and returns the decoded response payload.
func (c *Client) get(ctx context.Context, method string, extra url.Values) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(method, extra), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doRequestWithRetry(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", method)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("%s: API status %d: %s", method, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrapf(err, "%s: decode response", method)
	}
	r := &env.Response
	if r.Status != "ok" {
		if r.Error != nil {
			return nil, errors.WithStack(r.Error)
		}
		return nil, errors.WithStack(&Error{Code: CodeGeneric, Message: "status " + r.Status})
	}
	return r, nil
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry.
// Retries on 5xx errors and network errors.
func (c *Client) doRequestWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	var lastErr error
	delay := initialDelay

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			log.Debug().Err(lastErr).Int("attempt", attempt).Msg("retrying subsonic request")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
			delay = min(delay*2, maxDelay)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if resp.StatusCode < 500 {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = errors.Newf("server returned status %d", resp.StatusCode)
	}

	return nil, errors.Wrapf(lastErr, "request failed after %d attempts", maxRetries+1)
}

// Ping checks connectivity and credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.get(ctx, "ping", nil)
	return err
}

// StreamURL returns a URL streaming the song. Building it makes no request.
func (c *Client) StreamURL(id string) string {
	return c.endpoint("stream", url.Values{"id": {id}})
}

// CoverArtURL returns a URL for cover art at the given size in pixels.
func (c *Client) CoverArtURL(id string, size int) string {
	v := url.Values{"id": {id}}
	if size > 0 {
		v.Set("size", fmt.Sprint(size))
	}
	return c.endpoint("getCoverArt", v)
}
