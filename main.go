// Package main is the jam terminal music client.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/jam/internal/app"
	"github.com/llehouerou/jam/internal/cache"
	"github.com/llehouerou/jam/internal/catalog"
	"github.com/llehouerou/jam/internal/config"
	"github.com/llehouerou/jam/internal/icons"
	"github.com/llehouerou/jam/internal/keymap"
	"github.com/llehouerou/jam/internal/lastfm"
	"github.com/llehouerou/jam/internal/logging"
	"github.com/llehouerou/jam/internal/mpris"
	"github.com/llehouerou/jam/internal/notify"
	"github.com/llehouerou/jam/internal/playback"
	"github.com/llehouerou/jam/internal/player/mpv"
	"github.com/llehouerou/jam/internal/state"
	"github.com/llehouerou/jam/internal/stderr"
	"github.com/llehouerou/jam/internal/subsonic"
	"github.com/llehouerou/jam/internal/youtube"
)

const coverSize = 300

var (
	cli        = kingpin.New("jam", "Terminal client for Subsonic music servers")
	configPath = cli.Flag("config", "Config file path").Short('c').Envar("JAM_CONFIG").String()
	logLevel   = cli.Flag("log-level", "Log level (debug, info, warn, error)").Envar("JAM_LOG_LEVEL").String()
	logFile    = cli.Flag("log-file", "Log file path, - for stderr").Envar("JAM_LOG_FILE").String()
	verbose    = cli.Flag("verbose", "Shorthand for --log-level=debug").Short('v').Bool()

	runCmd    = cli.Command("run", "Start the player").Default()
	lastfmCmd = cli.Command("configure-lastfm", "Link a Last.fm account for scrobbling")

	exportCmd   = cli.Command("export-queue", "Print the saved queue as JSON records")
	exportWhich = exportCmd.Flag("history", "Export the play history instead").Bool()
	importCmd   = cli.Command("import-queue", "Append JSON records to the saved queue")
	importFile  = importCmd.Arg("file", "Records file, - for stdin").Required().String()
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	command := kingpin.MustParse(cli.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	closer, err := logging.Init(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	switch command {
	case runCmd.FullCommand():
		err = run(cfg)
	case lastfmCmd.FullCommand():
		err = configureLastfm(cfg)
	case exportCmd.FullCommand():
		err = exportQueue(os.Stdout, *exportWhich)
	case importCmd.FullCommand():
		err = importQueue(*importFile)
	}
	if err != nil {
		log.Error().Err(err).Str("command", command).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
}

func run(cfg *config.Config) error {
	icons.Init(cfg.UI.Icons)

	bindings, err := keymap.WithOverrides(keymap.Bindings, cfg.Keys)
	if err != nil {
		return errors.Wrap(err, "key bindings")
	}

	stateMgr, err := state.Open("")
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	// mpv and D-Bus libraries write to stderr, which would corrupt the screen.
	capture, err := stderr.Start()
	if err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	} else {
		defer capture.Close()
	}

	client := subsonic.NewClient(subsonic.Config{
		URL:      cfg.Subsonic.URL,
		Username: cfg.Subsonic.Username,
		Password: cfg.Subsonic.Password,
		Client:   cfg.Subsonic.Client,
	})

	var videos catalog.VideoSource
	if cfg.HasYouTube() {
		var c cache.Cache = cache.Nop{}
		if cfg.Cache.RedisURL != "" {
			r, err := cache.NewRedis(cfg.Cache.RedisURL, cfg.Cache.TTL)
			if err != nil {
				log.Warn().Err(err).Msg("video cache disabled")
			} else {
				defer r.Close()
				c = r
			}
		}
		videos = youtube.NewClient(cfg.YouTube.APIKey, c)
	}
	svc := catalog.New(client, videos, stateMgr)

	backend, err := mpv.New(mpv.Options{Video: cfg.Playback.Video})
	if err != nil {
		return errors.Wrap(err, "start mpv")
	}
	defer backend.Quit()

	var sender programSender
	send := sender.Send

	deps := playback.Deps{
		Backend:  backend,
		Resolver: svc,
		Timer:    playback.NewTicker(playback.RefreshInterval, func() { send(app.RefreshMsg{}) }),
		Rater:    svc,
	}
	if scrobbler := newScrobbler(cfg, stateMgr); scrobbler != nil {
		defer scrobbler.Wait()
		deps.Scrobbler = scrobbler
	}
	if n, err := notify.New(); err != nil {
		log.Debug().Err(err).Msg("notifications disabled")
	} else {
		nowPlaying := notify.NewNowPlaying(n)
		defer nowPlaying.Wait()
		deps.Notifier = nowPlaying
	}
	ctrl := playback.New(deps)
	defer ctrl.Close()

	adapter, err := mpris.New(ctrl, ctrl.Subscribe(), func(r mpris.Request) { send(r) }, mpris.Options{
		Name: "jam",
		CoverURL: func(ref string) string {
			return client.CoverArtURL(ref, coverSize)
		},
	})
	if err != nil {
		log.Warn().Err(err).Msg("mpris unavailable")
	} else {
		defer adapter.Close()
	}

	appDeps := app.Deps{
		Config:   cfg,
		Catalog:  svc,
		Playback: ctrl,
		State:    stateMgr,
		Bindings: bindings,
		EndFile:  backend.Events(),
	}
	if capture != nil {
		appDeps.Stderr = capture.Lines()
	}

	prog := tea.NewProgram(app.New(appDeps), tea.WithAltScreen())
	sender.Attach(prog)
	if _, err := prog.Run(); err != nil {
		return errors.Wrap(err, "run program")
	}
	return nil
}

// newScrobbler returns nil unless Last.fm is configured and linked.
func newScrobbler(cfg *config.Config, stateMgr *state.Manager) *lastfm.Scrobbler {
	if !cfg.HasLastfmConfig() {
		return nil
	}
	session, err := stateMgr.GetLastfmSession()
	if err != nil {
		log.Warn().Err(err).Msg("load last.fm session")
		return nil
	}
	if session == nil {
		log.Info().Msg("last.fm configured but not linked, run jam configure-lastfm")
		return nil
	}
	client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
	client.SetSessionKey(session.SessionKey)
	s := lastfm.NewScrobbler(client, stateMgr)
	s.RetryPending()
	log.Info().Str("user", session.Username).Msg("scrobbling enabled")
	return s
}

func configureLastfm(cfg *config.Config) error {
	if !cfg.HasLastfmConfig() {
		return errors.New("set lastfm.api_key and lastfm.api_secret in the config first")
	}

	stateMgr, err := state.Open("")
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	params := lastfm.LinkParams{
		Client:  lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret),
		Store:   stateMgr,
		Out:     os.Stdout,
		Confirm: waitEnter(os.Stdin),
		Open:    lastfm.OpenBrowser,
	}
	server, err := lastfm.StartAuthServer("127.0.0.1:" + strconv.Itoa(lastfm.AuthCallbackPort))
	if err != nil {
		log.Warn().Err(err).Msg("auth callback server unavailable")
	} else {
		defer server.Shutdown()
		params.Callback = server.CallbackURL()
		params.CallbackTok = server.Tokens()
	}

	username, err := lastfm.Link(ctx, params)
	if err != nil {
		return errors.Wrap(err, "link last.fm account")
	}
	fmt.Printf("Linked Last.fm account %s.\n", username)
	return nil
}

// waitEnter closes the returned channel when a line is read from r.
func waitEnter(r io.Reader) <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(r).ReadString('\n')
		close(ch)
	}()
	return ch
}

func exportQueue(w io.Writer, history bool) error {
	stateMgr, err := state.Open("")
	if err != nil {
		return err
	}
	defer stateMgr.Close()
	return writeRecords(context.Background(), w, stateMgr, history)
}

func importQueue(path string) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	stateMgr, err := state.Open("")
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	n, err := appendRecords(context.Background(), data, stateMgr)
	if err != nil {
		return err
	}
	fmt.Printf("Queued %d items.\n", n)
	return nil
}
