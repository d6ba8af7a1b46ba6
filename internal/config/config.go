package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // dashboard time zones must resolve on minimal hosts

	"github.com/pelletier/go-toml/v2"

	"github.com/ewilliams-labs/spotify-insights/internal/core/services"
)

//go:embed sample_config.toml
var sampleConfig string

// Spotify contains the registered app credentials and API location.
type Spotify struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	BaseURL      string `toml:"base_url"`
}

// Server contains the HTTP bind address and token database location.
type Server struct {
	Bind   string `toml:"bind"`
	DBPath string `toml:"db_path"`
}

// Dashboard contains rendering settings shared by every page.
type Dashboard struct {
	Timezone  string  `toml:"timezone"`
	Seed      int64   `toml:"seed"`
	MaxRadius float64 `toml:"max_radius"`
}

// Limits contains the item counts requested from Spotify.
type Limits struct {
	RecentlyPlayed int `toml:"recently_played"`
	TopArtists     int `toml:"top_artists"`
	GenreArtists   int `toml:"genre_artists"`
	TopTracks      int `toml:"top_tracks"`
}

// Config encapsulates all configuration values for spotify insights.
type Config struct {
	Spotify   Spotify   `toml:"spotify"`
	Server    Server    `toml:"server"`
	Dashboard Dashboard `toml:"dashboard"`
	Limits    Limits    `toml:"limits"`
}

// Default returns the built-in configuration.
func Default() Config {
	limits := services.DefaultLimits()
	return Config{
		Spotify: Spotify{
			RedirectURI: "http://127.0.0.1:8080/callback",
			BaseURL:     "https://api.spotify.com/v1",
		},
		Server: Server{
			Bind:   "127.0.0.1:8080",
			DBPath: "~/.local/share/spotify-insights/insights.db",
		},
		Dashboard: Dashboard{
			Timezone:  "Asia/Kuala_Lumpur",
			Seed:      services.DefaultSeed,
			MaxRadius: services.DefaultMaxRadius,
		},
		Limits: Limits{
			RecentlyPlayed: limits.RecentEvents,
			TopArtists:     limits.TopArtists,
			GenreArtists:   limits.GenreArtists,
			TopTracks:      limits.TopTracks,
		},
	}
}

// SampleConfig returns a commented config file with the default values.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/spotify-insights/config.toml")
}

// Load builds the configuration in layers: defaults, the TOML file at path
// (or the default location when path is empty), a .env file in the working
// directory, then the process environment. It returns the resolved file path
// and whether that file existed.
func Load(path string) (*Config, string, bool, error) {
	return load(path, ".env", os.LookupEnv)
}

func load(path, dotEnvPath string, lookup func(string) (string, bool)) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	env, err := readDotEnv(dotEnvPath)
	if err != nil {
		return nil, "", false, err
	}
	if err := cfg.applyEnv(layered(lookup, env)); err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Spotify.ClientID = strings.TrimSpace(c.Spotify.ClientID)
	c.Spotify.ClientSecret = strings.TrimSpace(c.Spotify.ClientSecret)
	c.Spotify.BaseURL = strings.TrimRight(strings.TrimSpace(c.Spotify.BaseURL), "/")
	c.Dashboard.Timezone = strings.TrimSpace(c.Dashboard.Timezone)

	var err error
	if c.Server.DBPath, err = expandPath(c.Server.DBPath); err != nil {
		return fmt.Errorf("server.db_path: %w", err)
	}
	return nil
}

// Location loads the dashboard time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Dashboard.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dashboard.timezone: %w", err)
	}
	return loc, nil
}

// Credentials returns the Spotify app credentials for the resolver.
func (c *Config) Credentials() services.Credentials {
	return services.Credentials{
		ClientID:     c.Spotify.ClientID,
		ClientSecret: c.Spotify.ClientSecret,
		RedirectURI:  c.Spotify.RedirectURI,
	}
}

// ResolverLimits converts the configured request sizes.
func (c *Config) ResolverLimits() services.Limits {
	return services.Limits{
		RecentEvents: c.Limits.RecentlyPlayed,
		TopArtists:   c.Limits.TopArtists,
		GenreArtists: c.Limits.GenreArtists,
		TopTracks:    c.Limits.TopTracks,
	}
}

// EnsureDirectories creates the directory holding the token database.
func (c *Config) EnsureDirectories() error {
	if c.Server.DBPath == "" || c.Server.DBPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(c.Server.DBPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" || pathValue == ":memory:" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes the sample configuration to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
