package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// MaxGenres is how many genres the galaxy keeps.
const MaxGenres = 12

const msPerMinute = 60000.0

// Normalizer turns provider items into fixed-schema records. Items missing a
// required field are dropped whole so rows never arrive half-populated.
type Normalizer struct {
	Location *time.Location
}

// NewNormalizer returns a Normalizer converting timestamps to loc. A nil
// location means UTC.
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{Location: loc}
}

func (n Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.UTC
	}
	return n.Location
}

// Events keeps the play time of each item, converted to the configured zone
// and labelled with its weekday and 12-hour clock hour.
func (n Normalizer) Events(items []domain.PlayedItem) []domain.ListeningEvent {
	events := make([]domain.ListeningEvent, 0, len(items))
	for _, item := range items {
		if item.Track == nil {
			continue
		}
		name := strings.TrimSpace(item.Track.Name)
		artist := strings.TrimSpace(item.Track.PrimaryArtist())
		if name == "" || artist == "" {
			continue
		}
		playedAt, err := time.Parse(time.RFC3339, strings.TrimSpace(item.PlayedAt))
		if err != nil {
			continue
		}
		local := playedAt.In(n.location())
		events = append(events, domain.ListeningEvent{
			Track:    name,
			Artist:   artist,
			PlayedAt: local,
			Day:      local.Weekday().String(),
			Hour:     local.Format(domain.HourLabelLayout),
		})
	}
	return events
}

// Tracks extracts name, primary artist, popularity and duration in minutes.
func (n Normalizer) Tracks(items []domain.ProviderTrack) []domain.TrackRecord {
	records := make([]domain.TrackRecord, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		artist := strings.TrimSpace(item.PrimaryArtist())
		if name == "" || artist == "" || item.Popularity == nil || item.DurationMs == nil {
			continue
		}
		if !validPopularity(*item.Popularity) || *item.DurationMs <= 0 {
			continue
		}
		records = append(records, domain.TrackRecord{
			Track:           name,
			Artist:          artist,
			Popularity:      *item.Popularity,
			DurationMinutes: float64(*item.DurationMs) / msPerMinute,
		})
	}
	return records
}

// Artists extracts name and popularity.
func (n Normalizer) Artists(items []domain.ProviderArtist) []domain.ArtistRecord {
	records := make([]domain.ArtistRecord, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" || item.Popularity == nil || !validPopularity(*item.Popularity) {
			continue
		}
		records = append(records, domain.ArtistRecord{Artist: name, Popularity: *item.Popularity})
	}
	return records
}

// Genres counts each artist's first listed genre and keeps the MaxGenres most
// frequent. Equal counts keep the order in which the genre was first seen.
// Only Genre and Count are set; the spiral layout fills in the rest.
func (n Normalizer) Genres(items []domain.ProviderArtist) []domain.GenreRecord {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, item := range items {
		if len(item.Genres) == 0 {
			continue
		}
		genre := strings.TrimSpace(item.Genres[0])
		if genre == "" {
			continue
		}
		if _, seen := counts[genre]; !seen {
			order = append(order, genre)
		}
		counts[genre]++
	}

	records := make([]domain.GenreRecord, 0, len(order))
	for _, genre := range order {
		records = append(records, domain.GenreRecord{Genre: genre, Count: counts[genre]})
	}
	sortGenresByCount(records)
	if len(records) > MaxGenres {
		records = records[:MaxGenres]
	}
	return records
}

func sortGenresByCount(records []domain.GenreRecord) {
	slices.SortStableFunc(records, func(a, b domain.GenreRecord) int {
		return cmp.Compare(b.Count, a.Count)
	})
}

func validPopularity(p int) bool {
	return p >= 0 && p <= 100
}
