package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// maxRequestLimit is the largest page size the Web API accepts.
const maxRequestLimit = 50

// Validate ensures the configuration is usable. Missing Spotify credentials
// are allowed: every page then shows sample data.
func (c *Config) Validate() error {
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Server.Bind) == "" {
		return errors.New("server.bind must be set")
	}
	return nil
}

func (c *Config) validateDashboard() error {
	if c.Dashboard.Timezone == "" {
		return errors.New("dashboard.timezone must be set")
	}
	if _, err := time.LoadLocation(c.Dashboard.Timezone); err != nil {
		return fmt.Errorf("dashboard.timezone %q is not a known time zone: %w", c.Dashboard.Timezone, err)
	}
	if c.Dashboard.MaxRadius <= 0 {
		return errors.New("dashboard.max_radius must be positive")
	}
	return nil
}

func (c *Config) validateLimits() error {
	for _, l := range []struct {
		name  string
		value int
	}{
		{"limits.recently_played", c.Limits.RecentlyPlayed},
		{"limits.top_artists", c.Limits.TopArtists},
		{"limits.genre_artists", c.Limits.GenreArtists},
		{"limits.top_tracks", c.Limits.TopTracks},
	} {
		if l.value < 1 || l.value > maxRequestLimit {
			return fmt.Errorf("%s must be between 1 and %d", l.name, maxRequestLimit)
		}
	}
	return nil
}
