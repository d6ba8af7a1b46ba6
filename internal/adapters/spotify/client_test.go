package spotify_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/adapters/spotify"
	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

// --- Helpers ---

func intPtr(v int) *int { return &v }

func newTestServer(t *testing.T, wantPath, wantLimit string, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("path: got %s, want %s", r.URL.Path, wantPath)
		}
		if got := r.URL.Query().Get("limit"); got != wantLimit {
			t.Errorf("limit: got %q, want %q", got, wantLimit)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

// --- Tests ---

func TestClient_RecentlyPlayed(t *testing.T) {
	body := `{"items":[
		{"track":{"name":"505","artists":[{"name":"Arctic Monkeys"}]},"played_at":"2024-03-04T07:05:30.123Z"},
		{"track":null,"played_at":"2024-03-04T08:00:00Z"}
	]}`
	ts := newTestServer(t, "/me/player/recently-played", "50", http.StatusOK, body)
	client := spotify.NewClient(ts.Client(), ts.URL)

	got, err := client.RecentlyPlayed(context.Background(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.PlayedItem{
		{
			Track:    &domain.ProviderTrack{Name: "505", Artists: []domain.ProviderArtist{{Name: "Arctic Monkeys"}}},
			PlayedAt: "2024-03-04T07:05:30.123Z",
		},
		{PlayedAt: "2024-03-04T08:00:00Z"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClient_TopArtists(t *testing.T) {
	body := `{"items":[
		{"name":"SZA","popularity":88,"genres":["r&b","pop"]},
		{"name":"Unrated","genres":[]}
	]}`
	ts := newTestServer(t, "/me/top/artists", "10", http.StatusOK, body)
	client := spotify.NewClient(ts.Client(), ts.URL+"/")

	got, err := client.TopArtists(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.ProviderArtist{
		{Name: "SZA", Popularity: intPtr(88), Genres: []string{"r&b", "pop"}},
		{Name: "Unrated"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClient_TopTracks(t *testing.T) {
	body := `{"items":[{"name":"Pink + White","artists":[{"name":"Frank Ocean"}],"popularity":95,"duration_ms":210000}]}`
	ts := newTestServer(t, "/me/top/tracks", "15", http.StatusOK, body)
	client := spotify.NewClient(ts.Client(), ts.URL)

	got, err := client.TopTracks(context.Background(), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.ProviderTrack{{
		Name:       "Pink + White",
		Artists:    []domain.ProviderArtist{{Name: "Frank Ocean"}},
		Popularity: intPtr(95),
		DurationMs: intPtr(210000),
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantStatus     int
		wantRetryAfter time.Duration
		wantNotAuth    bool
	}{
		{
			name:           "rate limited",
			status:         http.StatusTooManyRequests,
			body:           `{"error":{"status":429,"message":"API rate limit exceeded"}}`,
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: 3 * time.Second,
		},
		{
			name:        "expired token",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"status":401,"message":"The access token expired"}}`,
			wantStatus:  http.StatusUnauthorized,
			wantNotAuth: true,
		},
		{
			name:       "server error",
			status:     http.StatusBadGateway,
			body:       `bad gateway`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "malformed body",
			status: http.StatusOK,
			body:   `{"items": [`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if tt.wantRetryAfter > 0 {
					w.Header().Set("Retry-After", "3")
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client := spotify.NewClient(ts.Client(), ts.URL)
			_, err := client.TopTracks(context.Background(), 15)
			if err == nil {
				t.Fatalf("expected error")
			}
			if calls != 1 {
				t.Fatalf("attempts: got %d, want 1", calls)
			}

			var statusErr *spotify.StatusError
			if tt.wantStatus == 0 {
				if errors.As(err, &statusErr) {
					t.Fatalf("unexpected status error: %v", err)
				}
				return
			}
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if statusErr.StatusCode != tt.wantStatus {
				t.Errorf("status: got %d, want %d", statusErr.StatusCode, tt.wantStatus)
			}
			if statusErr.RetryAfter != tt.wantRetryAfter {
				t.Errorf("retry after: got %v, want %v", statusErr.RetryAfter, tt.wantRetryAfter)
			}
			if got := errors.Is(err, ports.ErrNotAuthorized); got != tt.wantNotAuth {
				t.Errorf("errors.Is(ErrNotAuthorized): got %v, want %v", got, tt.wantNotAuth)
			}
		})
	}
}
