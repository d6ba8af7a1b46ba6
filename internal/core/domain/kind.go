package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a statistic kind name is not recognised.
var ErrUnknownKind = errors.New("domain: unknown statistic kind")

// StatisticKind names one of the statistics a dashboard page can show.
type StatisticKind string

const (
	KindRecentEvents StatisticKind = "recent_events"
	KindTopArtists   StatisticKind = "top_artists"
	KindTopTracks    StatisticKind = "top_tracks"
	KindTopGenres    StatisticKind = "top_genres"
	KindMood         StatisticKind = "mood"
)

// Kinds lists every statistic kind in dashboard order.
func Kinds() []StatisticKind {
	return []StatisticKind{KindRecentEvents, KindTopArtists, KindTopTracks, KindTopGenres, KindMood}
}

var kindAliases = map[string]StatisticKind{
	"recent_events": KindRecentEvents,
	"recent":        KindRecentEvents,
	"habits":        KindRecentEvents,
	"top_artists":   KindTopArtists,
	"artists":       KindTopArtists,
	"top_tracks":    KindTopTracks,
	"tracks":        KindTopTracks,
	"top_genres":    KindTopGenres,
	"genres":        KindTopGenres,
	"galaxy":        KindTopGenres,
	"mood":          KindMood,
	"aura":          KindMood,
}

// ParseStatisticKind accepts canonical kind names as well as the page aliases
// used in URLs and CLI commands (habits, artists, tracks, genres, aura).
func ParseStatisticKind(raw string) (StatisticKind, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	if kind, ok := kindAliases[key]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// Slug is the short page name used in URLs.
func (k StatisticKind) Slug() string {
	switch k {
	case KindRecentEvents:
		return "habits"
	case KindTopArtists:
		return "artists"
	case KindTopTracks:
		return "tracks"
	case KindTopGenres:
		return "genres"
	case KindMood:
		return "aura"
	default:
		return string(k)
	}
}

func (k StatisticKind) String() string {
	return string(k)
}
