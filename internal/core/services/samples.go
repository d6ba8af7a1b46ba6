package services

import (
	"math/rand"
	"time"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// DefaultSeed seeds the sample data generators.
const DefaultSeed int64 = 42

// SampleEventCount is the number of simulated plays in the habits fallback.
const SampleEventCount = 80

// NewRand returns a generator for sample data. Callers create one per render
// so every render of the same seed draws the same samples.
func NewRand(seed int64) *rand.Rand {
	// #nosec G404 -- reproducible sample data, not security-sensitive
	return rand.New(rand.NewSource(seed))
}

// samplePlayTime dates a simulated play in the week starting Monday
// 2024-01-01.
func samplePlayTime(day, hour int, loc *time.Location) time.Time {
	return time.Date(2024, time.January, 1+day, hour, 0, 0, 0, loc)
}

// SampleEvents draws SampleEventCount plays uniformly over the weekdays and
// hour labels. All days are drawn before any hour.
func SampleEvents(rng *rand.Rand, loc *time.Location) []domain.ListeningEvent {
	if loc == nil {
		loc = time.UTC
	}
	days := domain.Weekdays()
	hours := domain.HourLabels()

	dayIdx := make([]int, SampleEventCount)
	for i := range dayIdx {
		dayIdx[i] = rng.Intn(len(days))
	}
	hourIdx := make([]int, SampleEventCount)
	for i := range hourIdx {
		hourIdx[i] = rng.Intn(len(hours))
	}

	events := make([]domain.ListeningEvent, SampleEventCount)
	for i := range events {
		events[i] = domain.ListeningEvent{
			PlayedAt: samplePlayTime(dayIdx[i], hourIdx[i], loc),
			Day:      days[dayIdx[i]],
			Hour:     hours[hourIdx[i]],
		}
	}
	return events
}

// SampleArtists is the illustrative top artists list.
func SampleArtists() []domain.ArtistRecord {
	return []domain.ArtistRecord{
		{Artist: "Frank Ocean", Popularity: 95},
		{Artist: "SZA", Popularity: 88},
		{Artist: "Lorde", Popularity: 83},
		{Artist: "Arctic Monkeys", Popularity: 90},
		{Artist: "Tame Impala", Popularity: 87},
		{Artist: "The Weeknd", Popularity: 92},
		{Artist: "LANY", Popularity: 78},
		{Artist: "Clairo", Popularity: 75},
		{Artist: "Kali Uchis", Popularity: 80},
		{Artist: "Post Malone", Popularity: 85},
	}
}

// SampleTracks is the illustrative top tracks list.
func SampleTracks() []domain.TrackRecord {
	return []domain.TrackRecord{
		{Track: "Pink + White", Artist: "Frank Ocean", Popularity: 95, DurationMinutes: 3.5},
		{Track: "Cool With You", Artist: "NewJeans", Popularity: 90, DurationMinutes: 2.8},
		{Track: "Supercut", Artist: "Lorde", Popularity: 87, DurationMinutes: 3.2},
		{Track: "505", Artist: "Arctic Monkeys", Popularity: 89, DurationMinutes: 3.8},
		{Track: "Nights", Artist: "Frank Ocean", Popularity: 92, DurationMinutes: 4.0},
		{Track: "Die For You", Artist: "The Weeknd", Popularity: 94, DurationMinutes: 3.9},
		{Track: "Golden Hour", Artist: "JVKE", Popularity: 88, DurationMinutes: 3.1},
		{Track: "Kill Bill", Artist: "SZA", Popularity: 85, DurationMinutes: 2.9},
		{Track: "Electric Feel", Artist: "MGMT", Popularity: 86, DurationMinutes: 4.2},
		{Track: "ILYSB", Artist: "LANY", Popularity: 84, DurationMinutes: 3.7},
	}
}

// SampleGenres is the illustrative genre count list, already ordered by count.
func SampleGenres() []domain.GenreRecord {
	return []domain.GenreRecord{
		{Genre: "indie pop", Count: 18},
		{Genre: "bedroom pop", Count: 14},
		{Genre: "electropop", Count: 12},
		{Genre: "alt-pop", Count: 10},
		{Genre: "lo-fi", Count: 8},
		{Genre: "synthwave", Count: 6},
		{Genre: "r&b", Count: 5},
		{Genre: "indie rock", Count: 4},
	}
}

var moodTracks = []struct{ track, artist string }{
	{"Pink + White", "Frank Ocean"},
	{"Cigarette Daydreams", "Cage The Elephant"},
	{"Golden Hour", "JVKE"},
	{"The Less I Know The Better", "Tame Impala"},
	{"Supercut", "Lorde"},
	{"Kill Bill", "SZA"},
	{"505", "Arctic Monkeys"},
	{"Nights", "Frank Ocean"},
	{"Die For You", "The Weeknd"},
	{"Electric Feel", "MGMT"},
	{"Cool With You", "NewJeans"},
	{"Lover Is A Day", "Cuco"},
	{"Some", "Soyou"},
	{"ILYSB", "LANY"},
	{"Bags", "Clairo"},
	{"After Dark", "Mr.Kitty"},
	{"Moonlight", "Kali Uchis"},
	{"Sunflower", "Post Malone"},
	{"Blue Lights", "Jorja Smith"},
	{"Borderline", "Tame Impala"},
}

// Mood value ranges for the simulated aura.
var (
	energyRange       = [2]float64{0.4, 1.0}
	valenceRange      = [2]float64{0.2, 1.0}
	danceabilityRange = [2]float64{0.3, 1.0}
)

// SampleMoods simulates mood values for the fixed aura track list. Every
// energy value is drawn first, then valence, then danceability.
func SampleMoods(rng *rand.Rand) []domain.MoodRecord {
	between := func(r [2]float64) float64 {
		return r[0] + rng.Float64()*(r[1]-r[0])
	}

	moods := make([]domain.MoodRecord, len(moodTracks))
	for i, mt := range moodTracks {
		moods[i] = domain.MoodRecord{Track: mt.track, Artist: mt.artist}
	}
	for i := range moods {
		moods[i].Energy = between(energyRange)
	}
	for i := range moods {
		moods[i].Valence = between(valenceRange)
	}
	for i := range moods {
		moods[i].Danceability = between(danceabilityRange)
	}
	return moods
}
