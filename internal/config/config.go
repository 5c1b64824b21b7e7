package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "chartwaves"

type Config struct {
	Spotify SpotifyConfig `koanf:"spotify"`

	// Chart playlists shown on the dashboard, as ids or open.spotify.com URLs.
	// Empty means the featured playlists.
	Charts []string `koanf:"charts"`

	Overlay OverlayConfig `koanf:"overlay"`

	// StatePath is the SQLite file for saved navigation. Empty means the XDG
	// data directory.
	StatePath string `koanf:"state_path"`

	Log LogConfig `koanf:"log"`

	// DisableNotifications turns off the desktop "now playing" notification.
	DisableNotifications bool `koanf:"disable_notifications"`
}

// SpotifyConfig holds Web API credentials for the client credentials flow.
type SpotifyConfig struct {
	ClientID          string  `koanf:"client_id"`
	ClientSecret      string  `koanf:"client_secret"`
	Market            string  `koanf:"market" default:"US" validate:"omitempty,len=2"`
	RequestsPerSecond float64 `koanf:"requests_per_second" default:"5" validate:"gt=0,lte=50"`
}

// OverlayConfig controls the player overlay.
type OverlayConfig struct {
	// BackPolicy is "ignore" (back never closes the player) or "dismiss".
	BackPolicy string `koanf:"back_policy" default:"ignore" validate:"oneof=ignore dismiss"`
}

// LogConfig controls the diagnostic log. The terminal belongs to the UI, so
// logs go to a file.
type LogConfig struct {
	Level string `koanf:"level" default:"info" validate:"oneof=debug info warn error"`
	File  string `koanf:"file"`
}

// Load reads the config files, applies environment overrides and defaults,
// and validates the result. A non-empty path replaces the search list and
// must exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(expandPath(path)), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, p := range getConfigPaths() {
			if _, err := os.Stat(p); err == nil {
				if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
					return nil, errors.Wrapf(err, "load %s", p)
				}
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	cfg.overrideFromEnv()

	if err := defaults.Set(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Default returns a configuration with only defaults applied.
func Default() *Config {
	cfg := &Config{}
	_ = defaults.Set(cfg)
	return cfg
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// overrideFromEnv applies the variables the Spotify SDK documents.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("SPOTIFY_ID"); v != "" {
		c.Spotify.ClientID = v
	}
	if v := os.Getenv("SPOTIFY_SECRET"); v != "" {
		c.Spotify.ClientSecret = v
	}
}

func (c *Config) normalize() {
	c.Spotify.Market = strings.ToUpper(c.Spotify.Market)
	c.Overlay.BackPolicy = strings.ToLower(c.Overlay.BackPolicy)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.StatePath = expandPath(c.StatePath)
	c.Log.File = expandPath(c.Log.File)

	charts := c.Charts[:0]
	for _, ch := range c.Charts {
		if ch = strings.TrimSpace(ch); ch != "" {
			charts = append(charts, ch)
		}
	}
	c.Charts = charts
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/chartwaves/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
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

// HasSpotifyConfig returns true if Spotify credentials are configured.
func (c *Config) HasSpotifyConfig() bool {
	return c.Spotify.ClientID != "" && c.Spotify.ClientSecret != ""
}
