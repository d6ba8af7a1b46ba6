package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// DefaultMaxRadius is the outer radius of the genre galaxy.
const DefaultMaxRadius = 1.0

// Insights runs the page pipeline: resolve, augment, attach encoding.
// Each call builds its page from scratch; nothing is shared between renders.
type Insights struct {
	resolver  *Resolver
	seed      int64
	maxRadius float64
	now       func() time.Time
	newID     func() string
}

// NewInsights constructs an Insights service. seed drives the sample data of
// every render.
func NewInsights(resolver *Resolver, seed int64, maxRadius float64) *Insights {
	if maxRadius <= 0 {
		maxRadius = DefaultMaxRadius
	}
	return &Insights{
		resolver:  resolver,
		seed:      seed,
		maxRadius: maxRadius,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Page renders the data for one statistic.
func (s *Insights) Page(ctx context.Context, kind domain.StatisticKind) (domain.Page, error) {
	ds, err := s.resolver.Resolve(ctx, kind, NewRand(s.seed))
	if err != nil {
		return domain.Page{}, fmt.Errorf("service: %w", err)
	}

	page := domain.Page{
		RenderID:    s.newID(),
		GeneratedAt: s.now(),
		Encoding:    EncodingFor(kind),
		Dataset:     ds,
	}
	page.Title, page.Description = pageCopy(kind)

	switch kind {
	case domain.KindRecentEvents:
		hm := domain.BuildHeatmap(ds.Events)
		page.Heatmap = &hm
		if peak := hm.Peak(); peak.Count > 0 {
			page.Insight = fmt.Sprintf("most listening happens on %s around %s, out of %d recent plays.",
				hm.Days[peak.Day], hm.Hours[peak.Hour], hm.Total())
		}
	case domain.KindTopGenres:
		page.Genres = domain.LayoutSpiral(ds.Genres, s.maxRadius)
		if len(page.Genres) > 0 {
			page.Insight = fmt.Sprintf("my core sound orbits around %s, the brightest planet in my galaxy.", page.Genres[0].Genre)
		}
	case domain.KindTopArtists:
		if top, ok := mostPopularArtist(ds.Artists); ok {
			page.Insight = fmt.Sprintf("%s leads the pack with a popularity of %d.", top.Artist, top.Popularity)
		}
	}

	return page, nil
}

// Dashboard renders every page in dashboard order, one after another.
func (s *Insights) Dashboard(ctx context.Context) ([]domain.Page, error) {
	kinds := domain.Kinds()
	pages := make([]domain.Page, 0, len(kinds))
	for _, kind := range kinds {
		page, err := s.Page(ctx, kind)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// EncodingFor returns the chart channels used for a statistic.
func EncodingFor(kind domain.StatisticKind) domain.Encoding {
	switch kind {
	case domain.KindRecentEvents:
		return domain.Encoding{X: "hour", Y: "day", Color: "count"}
	case domain.KindTopArtists:
		return domain.Encoding{X: "Artist", Y: "Popularity"}
	case domain.KindTopTracks:
		return domain.Encoding{X: "Duration (min)", Y: "Popularity", Color: "Popularity", Hover: []string{"Track", "Artist"}}
	case domain.KindTopGenres:
		return domain.Encoding{X: "x", Y: "y", Color: "color", Size: "marker_size", Hover: []string{"genre", "count"}}
	case domain.KindMood:
		return domain.Encoding{
			X: "Danceability", Y: "Energy", Color: "Valence", Size: "Energy",
			Hover: []string{"Track", "Artist", "Energy", "Valence", "Danceability"},
		}
	default:
		return domain.Encoding{}
	}
}

func pageCopy(kind domain.StatisticKind) (title, description string) {
	switch kind {
	case domain.KindRecentEvents:
		return "my listening habits", "A visual timeline of when I listen the most, based on my Spotify activity."
	case domain.KindTopArtists:
		return "my top artists", "My top artists on Spotify based on my listening habits."
	case domain.KindTopTracks:
		return "my top spotify tracks", "Popularity vs duration of my most-played songs."
	case domain.KindTopGenres:
		return "my genre galaxy", "Each genre plotted as an orbiting planet, based on my top artists' genres."
	case domain.KindMood:
		return "my spotify aura", "My music mood: colour is valence, size is energy, position is how lively and danceable it feels."
	default:
		return string(kind), ""
	}
}

func mostPopularArtist(artists []domain.ArtistRecord) (domain.ArtistRecord, bool) {
	if len(artists) == 0 {
		return domain.ArtistRecord{}, false
	}
	top := artists[0]
	for _, a := range artists[1:] {
		if a.Popularity > top.Popularity {
			top = a
		}
	}
	return top, true
}
