package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func testPages() []domain.Page {
	events := []domain.ListeningEvent{
		{Day: "Monday", Hour: "03 PM", PlayedAt: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)},
		{Day: "Monday", Hour: "03 PM", PlayedAt: time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)},
	}
	hm := domain.BuildHeatmap(events)
	genres := domain.LayoutSpiral([]domain.GenreRecord{{Genre: "indie pop", Count: 10}, {Genre: "lo-fi", Count: 4}}, 1)

	return []domain.Page{
		{
			Title:   "my listening habits",
			Heatmap: &hm,
			Dataset: domain.Dataset{
				Kind:       domain.KindRecentEvents,
				IsFallback: true,
				Notice:     "showing sample listening patterns instead",
				Events:     events,
			},
		},
		{
			Title:   "my top artists",
			Dataset: domain.Dataset{Kind: domain.KindTopArtists, Artists: []domain.ArtistRecord{{Artist: "Lorde", Popularity: 83}}},
		},
		{
			Title:   "my top spotify tracks",
			Dataset: domain.Dataset{Kind: domain.KindTopTracks, Tracks: []domain.TrackRecord{{Track: "Supercut", Artist: "Lorde", Popularity: 87, DurationMinutes: 3.2}}},
		},
		{
			Title:   "my genre galaxy",
			Dataset: domain.Dataset{Kind: domain.KindTopGenres, Genres: genres},
		},
		{
			Title:   "my spotify aura",
			Dataset: domain.Dataset{Kind: domain.KindMood, Moods: []domain.MoodRecord{{Track: "Bags", Artist: "Clairo", Energy: 0.5, Valence: 0.4, Danceability: 0.6}}},
		},
	}
}

func TestRenderer_RenderPage(t *testing.T) {
	r := NewRenderer()

	for _, page := range testPages() {
		t.Run(string(page.Kind), func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.RenderPage(&buf, page); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "echarts") {
				t.Fatalf("expected echarts script in output")
			}
			if !strings.Contains(out, page.Title) {
				t.Fatalf("expected title %q in output", page.Title)
			}
			if page.IsFallback && !strings.Contains(out, page.Notice) {
				t.Fatalf("expected fallback notice in output")
			}
		})
	}
}

func TestRenderer_RenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderDashboard(&buf, testPages()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, title := range []string{"my listening habits", "my top artists", "my genre galaxy", "my spotify aura"} {
		if !strings.Contains(out, title) {
			t.Errorf("dashboard missing %q", title)
		}
	}
	if !strings.Contains(out, "indie pop") {
		t.Errorf("dashboard missing genre series")
	}
}

func TestRenderer_UnknownKind(t *testing.T) {
	err := NewRenderer().RenderPage(&bytes.Buffer{}, domain.Page{Dataset: domain.Dataset{Kind: "podcasts"}})
	if !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestSubtitle(t *testing.T) {
	tests := []struct {
		name string
		page domain.Page
		want string
	}{
		{
			name: "live page",
			page: domain.Page{Description: "desc", Insight: "insight"},
			want: "desc\ninsight",
		},
		{
			name: "fallback notice comes first",
			page: domain.Page{Description: "desc", Dataset: domain.Dataset{IsFallback: true, Notice: "sample"}},
			want: "sample\ndesc",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subtitle(tt.page); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
