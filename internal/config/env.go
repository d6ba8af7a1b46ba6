package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised on top of the config file.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
	EnvRedirectURI  = "SPOTIFY_REDIRECT_URI"
	EnvTimezone     = "INSIGHTS_TIMEZONE"
	EnvSeed         = "INSIGHTS_SEED"
	EnvBind         = "INSIGHTS_BIND"
	EnvDBPath       = "INSIGHTS_DB_PATH"
)

// readDotEnv parses a .env file without touching the process environment.
// A missing file is not an error.
func readDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// layered looks a key up in the process environment first, then in the
// values read from .env.
func layered(lookup func(string) (string, bool), dotEnv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotEnv[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str(EnvClientID, &c.Spotify.ClientID)
	str(EnvClientSecret, &c.Spotify.ClientSecret)
	str(EnvRedirectURI, &c.Spotify.RedirectURI)
	str(EnvTimezone, &c.Dashboard.Timezone)
	str(EnvBind, &c.Server.Bind)
	str(EnvDBPath, &c.Server.DBPath)

	if v, ok := lookup(EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Dashboard.Seed = seed
	}
	return nil
}
