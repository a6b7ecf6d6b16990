package lastfm

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

const (
	// AuthCallbackPort is the port of the local authorization callback.
	AuthCallbackPort = 9847
	// AuthTimeout bounds the wait for the user to authorize.
	AuthTimeout = 5 * time.Minute
)

// ErrAuthTimeout is returned when the user did not authorize in time.
var ErrAuthTimeout = errors.New("timed out waiting for authorization")

const callbackPage = `<!DOCTYPE html>
<html>
<head><title>jam - Last.fm</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 50px;">
<h1>%s</h1>
<p>%s</p>
</body>
</html>`

// AuthServer receives the redirect Last.fm sends after authorization.
type AuthServer struct {
	server   *http.Server
	listener net.Listener
	tokens   chan string
	done     chan struct{}
}

// StartAuthServer listens on addr, ":0" picking a free port.
func StartAuthServer(addr string) (*AuthServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", addr)
	}

	mux := http.NewServeMux()
	as := &AuthServer{
		server:   &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second},
		listener: listener,
		tokens:   make(chan string, 1),
		done:     make(chan struct{}),
	}

	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")

		w.Header().Set("Content-Type", "text/html")
		if token == "" {
			fmt.Fprintf(w, callbackPage, "Authorization failed", "No token received. Please try again.")
			return
		}
		fmt.Fprintf(w, callbackPage, "Authorization successful", "You can close this window.")

		select {
		case as.tokens <- token:
		default:
		}
	})

	go func() {
		_ = as.server.Serve(listener)
		close(as.done)
	}()

	return as, nil
}

// CallbackURL is the URL to pass to Last.fm as the redirect target.
func (as *AuthServer) CallbackURL() string {
	return fmt.Sprintf("http://%s/callback", as.listener.Addr().String())
}

// Tokens receives the token of each successful callback.
func (as *AuthServer) Tokens() <-chan string {
	return as.tokens
}

// Shutdown stops the auth server.
func (as *AuthServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = as.server.Shutdown(ctx)
	<-as.done
}

// Authenticator is the part of Client used to link an account.
type Authenticator interface {
	GetToken() (string, error)
	GetAuthURL(token, callback string) string
	GetSession(token string) (username, sessionKey string, err error)
}

// SessionStore keeps the linked session.
type SessionStore interface {
	SaveLastfmSession(username, sessionKey string) error
}

// LinkParams configures Link.
type LinkParams struct {
	Client Authenticator
	Store  SessionStore
	Out    io.Writer
	// Callback, when set, is the redirect target and delivers the token.
	Callback    string
	CallbackTok <-chan string
	// Confirm fires when the user says authorization is done.
	Confirm <-chan struct{}
	Open    func(url string) error
	Timeout time.Duration
}

// Link runs the Last.fm desktop authorization: it requests a token, sends
// the user to the authorization page, waits for the callback or the user's
// confirmation, then exchanges the token for a session and stores it.
func Link(ctx context.Context, p LinkParams) (string, error) {
	token, err := p.Client.GetToken()
	if err != nil {
		return "", err
	}

	authURL := p.Client.GetAuthURL(token, p.Callback)
	fmt.Fprintf(p.Out, "Authorize jam on Last.fm:\n\n  %s\n\nthen press Enter.\n", authURL)
	if p.Open != nil {
		if err := p.Open(authURL); err != nil {
			log.Debug().Err(err).Msg("open browser")
		}
	}

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = AuthTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return "", ErrAuthTimeout
	case <-p.Confirm:
	case cbToken := <-p.CallbackTok:
		if cbToken != "" {
			token = cbToken
		}
	}

	username, key, err := p.Client.GetSession(token)
	if err != nil {
		return "", err
	}
	if err := p.Store.SaveLastfmSession(username, key); err != nil {
		return "", err
	}
	return username, nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return errors.Newf("unsupported platform: %s", runtime.GOOS)
	}

	return errors.Wrap(cmd.Start(), "open browser")
}
