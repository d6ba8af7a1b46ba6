package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/spotify-insights/internal/adapters/sqlite"
	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

func setupCLITestEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "INSIGHTS_TIMEZONE", "INSIGHTS_SEED", "INSIGHTS_DB_PATH"} {
		t.Setenv(key, "")
	}
	return home
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, out)
	}
}

func TestCLIStatCommandsShowSamples(t *testing.T) {
	setupCLITestEnv(t)

	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"artists"}, want: []string{"my top artists", "note: ", "Frank Ocean", "leads the pack with a popularity of 95"}},
		{args: []string{"tracks"}, want: []string{"my top spotify tracks", "Pink + White", "3.50"}},
		{args: []string{"habits"}, want: []string{"my listening habits", "Monday", "12 AM", "most listening happens on"}},
		{args: []string{"genres"}, want: []string{"my genre galaxy", "indie pop", "brightest planet"}},
		{args: []string{"aura"}, want: []string{"my spotify aura", "Aura values are simulated", "Electric Feel"}},
		{args: []string{"top_artists"}, want: []string{"my top artists"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, "")
			if err != nil {
				t.Fatalf("run %v: %v", tt.args, err)
			}
			for _, want := range tt.want {
				requireContains(t, out, want)
			}
		})
	}
}

func TestCLIStatCommandJSON(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"tracks", "--json"}, "")
	if err != nil {
		t.Fatalf("tracks --json: %v", err)
	}

	var page struct {
		Kind    string               `json:"kind"`
		Source  string               `json:"source"`
		Notice  string               `json:"notice"`
		Count   int                  `json:"count"`
		Records []domain.TrackRecord `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if page.Kind != "top_tracks" || page.Source != "sample" || page.Notice == "" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Count != 10 || len(page.Records) != 10 {
		t.Fatalf("records: count %d, got %d", page.Count, len(page.Records))
	}
}

func TestCLIHabitsJSONCarriesHeatmap(t *testing.T) {
	setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"habits", "--json"}, "")
	if err != nil {
		t.Fatalf("habits --json: %v", err)
	}

	var page struct {
		Kind    string          `json:"kind"`
		Count   int             `json:"count"`
		Heatmap *domain.Heatmap `json:"heatmap"`
	}
	if err := json.Unmarshal([]byte(out), &page); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if page.Kind != "recent_events" || page.Heatmap == nil {
		t.Fatalf("unexpected page: %+v", page)
	}
	if got := page.Heatmap.Total(); got != page.Count {
		t.Fatalf("heatmap total %d, count %d", got, page.Count)
	}
}

func TestCLIRender(t *testing.T) {
	setupCLITestEnv(t)
	dir := t.TempDir()

	target := filepath.Join(dir, "galaxy.html")
	out, _, err := runCLI(t, []string{"render", "genres", "--out", target}, "")
	if err != nil {
		t.Fatalf("render genres: %v", err)
	}
	requireContains(t, out, "Wrote "+target)

	html, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	requireContains(t, string(html), "indie pop")

	dashboard := filepath.Join(dir, "all.html")
	if _, _, err := runCLI(t, []string{"render", "dashboard", "-o", dashboard}, ""); err != nil {
		t.Fatalf("render dashboard: %v", err)
	}
	if _, err := os.Stat(dashboard); err != nil {
		t.Fatalf("expected dashboard file: %v", err)
	}

	if _, _, err := runCLI(t, []string{"render", "podcasts"}, ""); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	home := setupCLITestEnv(t)
	target := filepath.Join(home, "conf", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}

	t.Setenv("SPOTIFY_CLIENT_ID", "my-client")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "supersecret")
	out, _, err = runCLI(t, []string{"config", "show"}, target)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "my-client")
	requireContains(t, out, "*******cret")
	if strings.Contains(out, "supersecret") {
		t.Fatalf("secret leaked:\n%s", out)
	}
}

func TestNumericAlignments(t *testing.T) {
	table := domain.Table{
		Columns: []string{"Track", "Popularity", "Duration (min)"},
		Rows: [][]string{
			{"505", "89", "3.80"},
			{"Nights", "92", "4.00"},
		},
	}

	got := numericAlignments(table)
	want := []columnAlignment{alignLeft, alignRight, alignRight}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d: got %v want %v", i, got[i], want[i])
		}
	}

	if got := numericAlignments(domain.Table{Columns: []string{"Day"}}); got[0] != alignLeft {
		t.Fatalf("empty table: got %v", got[0])
	}
}

func TestCLILogout(t *testing.T) {
	t.Run("without credentials", func(t *testing.T) {
		setupCLITestEnv(t)
		if _, _, err := runCLI(t, []string{"logout"}, ""); err == nil {
			t.Fatal("expected error without credentials")
		}
	})

	t.Run("forgets stored token", func(t *testing.T) {
		home := setupCLITestEnv(t)
		dbPath := filepath.Join(home, "tokens.db")
		t.Setenv("SPOTIFY_CLIENT_ID", "client-id")
		t.Setenv("SPOTIFY_CLIENT_SECRET", "client-secret")
		t.Setenv("INSIGHTS_DB_PATH", dbPath)

		ctx := context.Background()
		store, err := sqlite.NewAdapter(dbPath)
		if err != nil {
			t.Fatalf("open store: %v", err)
		}
		if err := store.SaveToken(ctx, "client-id", &oauth2.Token{AccessToken: "a1", RefreshToken: "r1"}); err != nil {
			t.Fatalf("seed token: %v", err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}

		out, _, err := runCLI(t, []string{"logout"}, "")
		if err != nil {
			t.Fatalf("logout: %v", err)
		}
		requireContains(t, out, "Logged out of Spotify")

		store, err = sqlite.NewAdapter(dbPath)
		if err != nil {
			t.Fatalf("reopen store: %v", err)
		}
		defer store.Close()
		if _, err := store.LoadToken(ctx, "client-id"); !errors.Is(err, ports.ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized after logout, got %v", err)
		}
	})
}
