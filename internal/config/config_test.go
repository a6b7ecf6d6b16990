//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimal = `
[subsonic]
url = "https://music.example.com/"
username = "alice"
password = "sesame"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/jam.log", filepath.Join(home, "jam.log")},
		{"absolute path unchanged", "/var/log/jam.log", "/var/log/jam.log"},
		{"relative path unchanged", "logs/jam.log", "logs/jam.log"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[len(paths)-1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[len(paths)-1], "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under %q", paths[0], appName)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Subsonic.URL != "https://music.example.com" {
		t.Errorf("Subsonic.URL = %q, want trailing slash removed", cfg.Subsonic.URL)
	}
	if cfg.Subsonic.Client != "jam" {
		t.Errorf("Subsonic.Client = %q, want jam", cfg.Subsonic.Client)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
	}
	if cfg.Playback.StationSize != 50 {
		t.Errorf("Playback.StationSize = %d, want 50", cfg.Playback.StationSize)
	}
	if !cfg.ShouldPersistQueue() {
		t.Error("ShouldPersistQueue() = false, want true by default")
	}
	if cfg.UI.Icons != "unicode" {
		t.Errorf("UI.Icons = %q, want unicode", cfg.UI.Icons)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.HasYouTube() || cfg.HasLastfmConfig() {
		t.Error("optional services should be off without keys")
	}
}

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal+`
[youtube]
api_key = "yt-key"

[lastfm]
api_key = "lf-key"
api_secret = "lf-secret"

[cache]
redis_url = "redis://localhost:6379/0"
ttl = "2h"

[playback]
persist_queue = false
video = true
station_size = 25

[ui]
icons = "nerd"

[keys]
toggle = ["p"]
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.HasYouTube() {
		t.Error("HasYouTube() = false, want true")
	}
	if !cfg.HasLastfmConfig() {
		t.Error("HasLastfmConfig() = false, want true")
	}
	if cfg.Cache.TTL != 2*time.Hour {
		t.Errorf("Cache.TTL = %v, want 2h", cfg.Cache.TTL)
	}
	if cfg.ShouldPersistQueue() {
		t.Error("ShouldPersistQueue() = true, want false")
	}
	if !cfg.Playback.Video {
		t.Error("Playback.Video = false, want true")
	}
	if cfg.Playback.StationSize != 25 {
		t.Errorf("Playback.StationSize = %d, want 25", cfg.Playback.StationSize)
	}
	if cfg.UI.Icons != "nerd" {
		t.Errorf("UI.Icons = %q, want nerd", cfg.UI.Icons)
	}
	if got := cfg.Keys["toggle"]; len(got) != 1 || got[0] != "p" {
		t.Errorf("Keys[toggle] = %v, want [p]", got)
	}
}

func TestLoad_YouTubeDisabled(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal+`
[youtube]
api_key = "yt-key"
enabled = false
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HasYouTube() {
		t.Error("HasYouTube() = true with enabled = false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JAM_SUBSONIC_PASSWORD", "from-env")
	t.Setenv("JAM_YOUTUBE_API_KEY", "env-key")

	cfg, err := Load(writeConfig(t, minimal))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Subsonic.Password != "from-env" {
		t.Errorf("Subsonic.Password = %q, want from-env", cfg.Subsonic.Password)
	}
	if cfg.YouTube.APIKey != "env-key" {
		t.Errorf("YouTube.APIKey = %q, want env-key", cfg.YouTube.APIKey)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing server", ``},
		{"missing username", "[subsonic]\nurl = \"https://x.test\"\n"},
		{"bad url", "[subsonic]\nurl = \"not a url\"\nusername = \"a\"\n"},
		{"bad icons", minimal + "[ui]\nicons = \"emoji\"\n"},
		{"bad station size", minimal + "[playback]\nstation_size = 0\n"},
		{"bad log level", minimal + "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Error("Load() expected validation error, got nil")
			}
		})
	}
}

func TestLoad_ExplicitZeroKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimal+"[cache]\nttl = \"0s\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Cache.TTL != 0 {
		t.Errorf("Cache.TTL = %v, want 0", cfg.Cache.TTL)
	}
	if cfg.Playback.StationSize != 50 {
		t.Errorf("Playback.StationSize = %d, want default 50", cfg.Playback.StationSize)
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	_, err := Load(writeConfig(t, "invalid = [[["))
	if err == nil {
		t.Error("Load() expected error for invalid TOML, got nil")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_DefaultLocations(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	if err := os.WriteFile("config.toml", []byte(minimal), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// ./config.toml wins over the user config.
	if cfg.Subsonic.Username != "alice" {
		t.Errorf("Subsonic.Username = %q, want alice", cfg.Subsonic.Username)
	}
}
