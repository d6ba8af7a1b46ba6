package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ewilliams-labs/spotify-insights/internal/config"
	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func TestNew_WithoutCredentialsUsesSamples(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.Timezone = "UTC"
	cfg.Server.DBPath = filepath.Join(t.TempDir(), "never-created.db")

	a, err := New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if a.Auth != nil {
		t.Fatal("expected no authenticator without credentials")
	}
	page, err := a.Insights.Page(context.Background(), domain.KindTopArtists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !page.IsFallback || len(page.Artists) != 10 {
		t.Fatalf("expected sample artists, got %+v", page.Dataset)
	}
}

func TestNew_WithCredentialsOpensTokenStore(t *testing.T) {
	cfg := config.Default()
	cfg.Dashboard.Timezone = "UTC"
	cfg.Spotify.ClientID = "id"
	cfg.Spotify.ClientSecret = "secret"
	cfg.Server.DBPath = filepath.Join(t.TempDir(), "nested", "insights.db")

	a, err := New(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if a.Auth == nil || a.store == nil {
		t.Fatal("expected authenticator and token store")
	}

	// no token has been stored yet, so the page falls back
	page, err := a.Insights.Page(context.Background(), domain.KindTopTracks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !page.IsFallback {
		t.Fatal("expected fallback before login")
	}
}
