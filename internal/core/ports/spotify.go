package ports

import (
	"context"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
)

// ListeningProvider reads account-bound listening statistics. Each method is
// a single unpaginated read.
type ListeningProvider interface {
	RecentlyPlayed(ctx context.Context, limit int) ([]domain.PlayedItem, error)
	TopArtists(ctx context.Context, limit int) ([]domain.ProviderArtist, error)
	TopTracks(ctx context.Context, limit int) ([]domain.ProviderTrack, error)
}
