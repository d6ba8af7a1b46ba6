package spotify

import "github.com/ewilliams-labs/spotify-insights/internal/core/domain"

// mapArtist copies the wire artist; a missing popularity stays nil.
func mapArtist(wa wireArtist) domain.ProviderArtist {
	var genres []string
	if len(wa.Genres) > 0 {
		genres = append([]string(nil), wa.Genres...)
	}
	return domain.ProviderArtist{
		Name:       wa.Name,
		Popularity: wa.Popularity,
		Genres:     genres,
	}
}

func mapArtists(items []wireArtist) []domain.ProviderArtist {
	out := make([]domain.ProviderArtist, 0, len(items))
	for _, wa := range items {
		out = append(out, mapArtist(wa))
	}
	return out
}

func mapTrack(wt wireTrack) domain.ProviderTrack {
	artists := make([]domain.ProviderArtist, 0, len(wt.Artists))
	for _, wa := range wt.Artists {
		artists = append(artists, mapArtist(wa))
	}
	return domain.ProviderTrack{
		Name:       wt.Name,
		Artists:    artists,
		Popularity: wt.Popularity,
		DurationMs: wt.DurationMs,
	}
}

func mapTracks(items []wireTrack) []domain.ProviderTrack {
	out := make([]domain.ProviderTrack, 0, len(items))
	for _, wt := range items {
		out = append(out, mapTrack(wt))
	}
	return out
}

// mapPlayedItems keeps items with a null track so the normalizer decides
// what to skip.
func mapPlayedItems(items []wirePlayHistory) []domain.PlayedItem {
	out := make([]domain.PlayedItem, 0, len(items))
	for _, it := range items {
		played := domain.PlayedItem{PlayedAt: it.PlayedAt}
		if it.Track != nil {
			track := mapTrack(*it.Track)
			played.Track = &track
		}
		out = append(out, played)
	}
	return out
}
