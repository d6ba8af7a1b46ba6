package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

func TestNormalizer_Tracks(t *testing.T) {
	artists := []domain.ProviderArtist{{Name: "Frank Ocean"}, {Name: "André 3000"}}
	tests := []struct {
		name    string
		item    domain.ProviderTrack
		want    domain.TrackRecord
		skipped bool
	}{
		{
			name: "converts milliseconds to minutes",
			item: domain.ProviderTrack{Name: "Pink + White", Artists: artists, Popularity: intPtr(95), DurationMs: intPtr(210000)},
			want: domain.TrackRecord{Track: "Pink + White", Artist: "Frank Ocean", Popularity: 95, DurationMinutes: 3.5},
		},
		{
			name:    "skips track without artists",
			item:    domain.ProviderTrack{Name: "Solo", Popularity: intPtr(50), DurationMs: intPtr(1000)},
			skipped: true,
		},
		{
			name:    "skips track without duration",
			item:    domain.ProviderTrack{Name: "Nights", Artists: artists, Popularity: intPtr(92)},
			skipped: true,
		},
		{
			name:    "skips zero duration",
			item:    domain.ProviderTrack{Name: "Silence", Artists: artists, Popularity: intPtr(1), DurationMs: intPtr(0)},
			skipped: true,
		},
		{
			name:    "skips out of range popularity",
			item:    domain.ProviderTrack{Name: "Loud", Artists: artists, Popularity: intPtr(101), DurationMs: intPtr(1000)},
			skipped: true,
		},
	}

	n := NewNormalizer(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Tracks([]domain.ProviderTrack{tt.item})
			if tt.skipped {
				if len(got) != 0 {
					t.Fatalf("expected record to be skipped, got %+v", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("records: got %d, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Fatalf("got %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestNormalizer_Events(t *testing.T) {
	kl, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		t.Skipf("time zone database unavailable: %v", err)
	}
	n := NewNormalizer(kl)
	track := &domain.ProviderTrack{Name: "505", Artists: []domain.ProviderArtist{{Name: "Arctic Monkeys"}}}

	got := n.Events([]domain.PlayedItem{
		// 07:05 UTC is 15:05 in Kuala Lumpur
		{Track: track, PlayedAt: "2024-03-04T07:05:30.123Z"},
		// Sunday 20:00 UTC is Monday 04:00 local
		{Track: track, PlayedAt: "2024-03-10T20:00:00Z"},
		{Track: track, PlayedAt: "yesterday"},
		{Track: nil, PlayedAt: "2024-03-04T07:05:30Z"},
	})

	if len(got) != 2 {
		t.Fatalf("events: got %d, want 2", len(got))
	}
	if got[0].Day != "Monday" || got[0].Hour != "03 PM" {
		t.Fatalf("first event: got %s %s", got[0].Day, got[0].Hour)
	}
	if got[1].Day != "Monday" || got[1].Hour != "04 AM" {
		t.Fatalf("second event: got %s %s", got[1].Day, got[1].Hour)
	}
	if got[0].PlayedAt.Location() != kl {
		t.Fatalf("played_at not converted to target zone")
	}
	if got[0].Track != "505" || got[0].Artist != "Arctic Monkeys" {
		t.Fatalf("track fields: got %+v", got[0])
	}
}

func TestNormalizer_Artists(t *testing.T) {
	n := NewNormalizer(nil)
	got := n.Artists([]domain.ProviderArtist{
		{Name: "SZA", Popularity: intPtr(88), Genres: []string{"r&b"}},
		{Name: "", Popularity: intPtr(10)},
		{Name: "Unknown"},
	})

	if len(got) != 1 || got[0] != (domain.ArtistRecord{Artist: "SZA", Popularity: 88}) {
		t.Fatalf("got %+v", got)
	}
}

func TestNormalizer_GenresKeepsTopTwelve(t *testing.T) {
	var artists []domain.ProviderArtist
	// genre-0 appears 15 times, genre-1 14 times, ... genre-14 once
	for g := 0; g < 15; g++ {
		for i := 0; i < 15-g; i++ {
			artists = append(artists, domain.ProviderArtist{Name: "a", Genres: []string{fmt.Sprintf("genre-%d", g), "secondary"}})
		}
	}
	artists = append(artists, domain.ProviderArtist{Name: "no genres"})

	got := NewNormalizer(nil).Genres(artists)

	if len(got) != MaxGenres {
		t.Fatalf("genres: got %d, want %d", len(got), MaxGenres)
	}
	for i, g := range got {
		if want := fmt.Sprintf("genre-%d", i); g.Genre != want || g.Count != 15-i {
			t.Fatalf("genre[%d]: got %s x%d, want %s x%d", i, g.Genre, g.Count, want, 15-i)
		}
	}
}

func TestNormalizer_GenresTiesKeepFirstSeen(t *testing.T) {
	got := NewNormalizer(nil).Genres([]domain.ProviderArtist{
		{Genres: []string{"lo-fi"}},
		{Genres: []string{"synthwave"}},
		{Genres: []string{"synthwave"}},
		{Genres: []string{"alt-pop"}},
	})

	want := []string{"synthwave", "lo-fi", "alt-pop"}
	for i, g := range got {
		if g.Genre != want[i] {
			t.Fatalf("order: got %v, want %v", got, want)
		}
	}
}
