// Package config loads the TOML configuration.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "jam"

type Config struct {
	Subsonic SubsonicConfig `koanf:"subsonic"`

	// YouTube video search (enabled when an API key is set)
	YouTube YouTubeConfig `koanf:"youtube"`

	// Last.fm scrobbling (enabled when configured and linked)
	Lastfm LastfmConfig `koanf:"lastfm"`

	Cache    CacheConfig    `koanf:"cache"`
	Playback PlaybackConfig `koanf:"playback"`
	UI       UIConfig       `koanf:"ui"`
	Log      LogConfig      `koanf:"log"`

	// Keys overrides key bindings: action name -> keys.
	Keys map[string][]string `koanf:"keys"`
}

// SubsonicConfig locates the music server.
type SubsonicConfig struct {
	URL      string `koanf:"url" validate:"required,url"`
	Username string `koanf:"username" validate:"required"`
	Password string `koanf:"password"`
	Client   string `koanf:"client" default:"jam"`
}

// YouTubeConfig holds the YouTube Data API settings.
type YouTubeConfig struct {
	APIKey  string `koanf:"api_key"`
	Enabled *bool  `koanf:"enabled" default:"true"`
}

// LastfmConfig holds Last.fm scrobbling configuration.
type LastfmConfig struct {
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
}

// CacheConfig configures the video search cache. An empty RedisURL
// disables caching; a zero TTL keeps entries until Redis evicts them.
type CacheConfig struct {
	RedisURL string        `koanf:"redis_url" validate:"omitempty,url"`
	TTL      time.Duration `koanf:"ttl" default:"24h" validate:"gte=0"`
}

// PlaybackConfig holds player settings.
type PlaybackConfig struct {
	PersistQueue *bool `koanf:"persist_queue" default:"true"`
	Video        bool  `koanf:"video"`
	StationSize  int   `koanf:"station_size" default:"50" validate:"gte=1,lte=500"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Icons string `koanf:"icons" default:"unicode" validate:"oneof=nerd unicode none"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"`
}

// Load reads path, or the default locations when path is empty, applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	} else {
		// Later files override earlier ones.
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, "load %s", p)
			}
		}
	}

	// Defaults go in first so explicit zero values in the file survive
	// and reach validation.
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "set defaults")
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg.overrideFromEnv()

	cfg.Subsonic.URL = strings.TrimSuffix(cfg.Subsonic.URL, "/")
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// overrideFromEnv lets secrets live outside the config file.
func (c *Config) overrideFromEnv() {
	for _, o := range []struct {
		env string
		dst *string
	}{
		{"JAM_SUBSONIC_URL", &c.Subsonic.URL},
		{"JAM_SUBSONIC_USERNAME", &c.Subsonic.Username},
		{"JAM_SUBSONIC_PASSWORD", &c.Subsonic.Password},
		{"JAM_YOUTUBE_API_KEY", &c.YouTube.APIKey},
		{"JAM_LASTFM_API_KEY", &c.Lastfm.APIKey},
		{"JAM_LASTFM_API_SECRET", &c.Lastfm.APISecret},
		{"JAM_REDIS_URL", &c.Cache.RedisURL},
	} {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// ./config.toml has the highest priority
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasYouTube reports whether video search is configured.
func (c *Config) HasYouTube() bool {
	return c.YouTube.APIKey != "" && (c.YouTube.Enabled == nil || *c.YouTube.Enabled)
}

// HasLastfmConfig returns true if Last.fm scrobbling is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != "" && c.Lastfm.APISecret != ""
}

// ShouldPersistQueue reports whether the session is saved on exit.
func (c *Config) ShouldPersistQueue() bool {
	return c.Playback.PersistQueue == nil || *c.Playback.PersistQueue
}
