package domain

// Provider items are the raw shapes handed over by a listening provider
// before normalization. Optional fields are pointers so that a missing value
// can be told apart from a zero one.

// ProviderArtist is an artist object as returned by the provider.
type ProviderArtist struct {
	Name       string
	Popularity *int
	Genres     []string
}

// ProviderTrack is a track object as returned by the provider.
type ProviderTrack struct {
	Name       string
	Artists    []ProviderArtist
	Popularity *int
	DurationMs *int
}

// PlayedItem is one entry of the recently-played history.
type PlayedItem struct {
	Track    *ProviderTrack
	PlayedAt string
}

// PrimaryArtist returns the first credited artist name, or "" if none.
func (t ProviderTrack) PrimaryArtist() string {
	if len(t.Artists) == 0 {
		return ""
	}
	return t.Artists[0].Name
}
