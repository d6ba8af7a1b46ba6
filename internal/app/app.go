// Package app wires the adapters and core services from a loaded Config.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/ewilliams-labs/spotify-insights/internal/adapters/spotify"
	"github.com/ewilliams-labs/spotify-insights/internal/adapters/sqlite"
	"github.com/ewilliams-labs/spotify-insights/internal/config"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
	"github.com/ewilliams-labs/spotify-insights/internal/core/services"
)

// App holds the wired dependencies shared by the server and the CLI.
type App struct {
	Config   *config.Config
	Insights *services.Insights
	// Auth is nil when no Spotify credentials are configured.
	Auth  *spotify.Authenticator
	store *sqlite.Adapter
}

// New builds the dependency graph. Without credentials nothing touches the
// network or the token database and every page falls back to sample data.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg}
	creds := cfg.Credentials()

	var provider ports.ListeningProvider
	if creds.Present() {
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, err
		}
		store, err := sqlite.NewAdapter(cfg.Server.DBPath)
		if err != nil {
			return nil, fmt.Errorf("app: token store: %w", err)
		}
		a.store = store
		a.Auth = spotify.NewAuthenticator(creds.ClientID, creds.ClientSecret, creds.RedirectURI, store)
		provider = spotify.NewClient(a.Auth.Client(ctx), cfg.Spotify.BaseURL)
	} else {
		log.Printf("WARN app: %s and %s are not set, every page shows sample data", config.EnvClientID, config.EnvClientSecret)
		provider = spotify.NewClient(http.DefaultClient, cfg.Spotify.BaseURL)
	}

	resolver := services.NewResolver(provider, creds, services.NewNormalizer(loc), cfg.ResolverLimits())
	a.Insights = services.NewInsights(resolver, cfg.Dashboard.Seed, cfg.Dashboard.MaxRadius)
	return a, nil
}

// Close releases the token database.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
