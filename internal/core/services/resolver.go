package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

// Credentials identify the app to the listening provider. ClientID and
// ClientSecret gate any network attempt; RedirectURI is only needed for login.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// Present reports whether both the client ID and secret are set.
func (c Credentials) Present() bool {
	return strings.TrimSpace(c.ClientID) != "" && strings.TrimSpace(c.ClientSecret) != ""
}

// Limits are the item counts requested from the provider per statistic.
type Limits struct {
	RecentEvents int
	TopArtists   int
	GenreArtists int
	TopTracks    int
}

// DefaultLimits returns the request sizes each page uses.
func DefaultLimits() Limits {
	return Limits{RecentEvents: 50, TopArtists: 10, GenreArtists: 50, TopTracks: 15}
}

// FailureKind says why live data could not be used.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureMissingCredentials: no attempt was made.
	FailureMissingCredentials
	// FailureProvider covers network, auth and rate-limit errors alike.
	FailureProvider
	// FailureEmptyResult: the call succeeded but yielded no usable records.
	FailureEmptyResult
	// FailureSimulatedOnly: the statistic has no live source at all.
	FailureSimulatedOnly
)

func (f FailureKind) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureMissingCredentials:
		return "missing_credentials"
	case FailureProvider:
		return "provider_error"
	case FailureEmptyResult:
		return "empty_result"
	case FailureSimulatedOnly:
		return "simulated_only"
	default:
		return fmt.Sprintf("failure(%d)", int(f))
	}
}

// Outcome is the result of one provider call: either items, or the reason
// there are none.
type Outcome[T any] struct {
	Items   []T
	Failure FailureKind
	Err     error
}

// Resolution is a record set together with where it came from.
type Resolution[T any] struct {
	Records    []T
	IsFallback bool
	Notice     string
	Failure    FailureKind
}

// Resolver fetches a statistic from the provider once and substitutes a
// sample dataset when that is not possible. It never retries and keeps no
// state between calls.
type Resolver struct {
	provider   ports.ListeningProvider
	creds      Credentials
	limits     Limits
	normalizer Normalizer
	logf       func(format string, v ...any)
	debugf     func(format string, v ...any)
}

// NewResolver constructs a Resolver. provider may be nil when no credentials
// are configured.
func NewResolver(provider ports.ListeningProvider, creds Credentials, normalizer Normalizer, limits Limits) *Resolver {
	return &Resolver{
		provider:   provider,
		creds:      creds,
		limits:     limits,
		normalizer: normalizer,
		logf:       log.Printf,
		debugf:     log.Printf,
	}
}

// attempt makes the single provider call, or none without credentials.
func attempt[T any](ctx context.Context, r *Resolver, call func(ctx context.Context, p ports.ListeningProvider) ([]T, error)) Outcome[T] {
	if !r.creds.Present() || r.provider == nil {
		return Outcome[T]{Failure: FailureMissingCredentials}
	}
	items, err := call(ctx, r.provider)
	if err != nil {
		return Outcome[T]{Failure: FailureProvider, Err: err}
	}
	if len(items) == 0 {
		return Outcome[T]{Failure: FailureEmptyResult}
	}
	return Outcome[T]{Items: items}
}

// resolve runs attempt, normalizes, and falls back on any failure.
func resolve[T, R any](
	ctx context.Context,
	r *Resolver,
	kind domain.StatisticKind,
	call func(ctx context.Context, p ports.ListeningProvider) ([]T, error),
	normalize func([]T) []R,
	fallback func() []R,
) Resolution[R] {
	out := attempt(ctx, r, call)

	var records []R
	if out.Failure == FailureNone {
		records = normalize(out.Items)
		if len(records) == 0 {
			out.Failure = FailureEmptyResult
		}
	}

	switch out.Failure {
	case FailureNone:
		return Resolution[R]{Records: records}
	default:
		// The warning reads the same for every failure; the cause is debug detail.
		r.logf("WARN insights: %s: spotify data unavailable, showing sample data", kind)
		r.debugf("DEBUG insights: %s: fallback cause %s: %v", kind, out.Failure, out.Err)
		return Resolution[R]{
			Records:    fallback(),
			IsFallback: true,
			Notice:     FallbackNotice(kind),
			Failure:    out.Failure,
		}
	}
}

// RecentEvents resolves the recently played history. rng feeds the sample
// data and is only consumed on fallback.
func (r *Resolver) RecentEvents(ctx context.Context, rng *rand.Rand) Resolution[domain.ListeningEvent] {
	return resolve(ctx, r, domain.KindRecentEvents,
		func(ctx context.Context, p ports.ListeningProvider) ([]domain.PlayedItem, error) {
			return p.RecentlyPlayed(ctx, r.limits.RecentEvents)
		},
		r.normalizer.Events,
		func() []domain.ListeningEvent { return SampleEvents(ensureRand(rng), r.normalizer.location()) },
	)
}

// TopArtists resolves the top artists by popularity.
func (r *Resolver) TopArtists(ctx context.Context) Resolution[domain.ArtistRecord] {
	return resolve(ctx, r, domain.KindTopArtists,
		func(ctx context.Context, p ports.ListeningProvider) ([]domain.ProviderArtist, error) {
			return p.TopArtists(ctx, r.limits.TopArtists)
		},
		r.normalizer.Artists,
		SampleArtists,
	)
}

// TopTracks resolves the top tracks.
func (r *Resolver) TopTracks(ctx context.Context) Resolution[domain.TrackRecord] {
	return resolve(ctx, r, domain.KindTopTracks,
		func(ctx context.Context, p ports.ListeningProvider) ([]domain.ProviderTrack, error) {
			return p.TopTracks(ctx, r.limits.TopTracks)
		},
		r.normalizer.Tracks,
		SampleTracks,
	)
}

// TopGenres resolves genre counts from the primary genre of the top artists.
func (r *Resolver) TopGenres(ctx context.Context) Resolution[domain.GenreRecord] {
	return resolve(ctx, r, domain.KindTopGenres,
		func(ctx context.Context, p ports.ListeningProvider) ([]domain.ProviderArtist, error) {
			return p.TopArtists(ctx, r.limits.GenreArtists)
		},
		r.normalizer.Genres,
		SampleGenres,
	)
}

// Moods returns the simulated aura. The provider has no mood data, so this
// is always a fallback and never touches the network.
func (r *Resolver) Moods(rng *rand.Rand) Resolution[domain.MoodRecord] {
	return Resolution[domain.MoodRecord]{
		Records:    SampleMoods(ensureRand(rng)),
		IsFallback: true,
		Notice:     FallbackNotice(domain.KindMood),
		Failure:    FailureSimulatedOnly,
	}
}

// Resolve dispatches on kind and returns the resolved records as a Dataset.
func (r *Resolver) Resolve(ctx context.Context, kind domain.StatisticKind, rng *rand.Rand) (domain.Dataset, error) {
	ds := domain.Dataset{Kind: kind}
	switch kind {
	case domain.KindRecentEvents:
		res := r.RecentEvents(ctx, rng)
		ds.Events, ds.IsFallback, ds.Notice = res.Records, res.IsFallback, res.Notice
	case domain.KindTopArtists:
		res := r.TopArtists(ctx)
		ds.Artists, ds.IsFallback, ds.Notice = res.Records, res.IsFallback, res.Notice
	case domain.KindTopTracks:
		res := r.TopTracks(ctx)
		ds.Tracks, ds.IsFallback, ds.Notice = res.Records, res.IsFallback, res.Notice
	case domain.KindTopGenres:
		res := r.TopGenres(ctx)
		ds.Genres, ds.IsFallback, ds.Notice = res.Records, res.IsFallback, res.Notice
	case domain.KindMood:
		res := r.Moods(rng)
		ds.Moods, ds.IsFallback, ds.Notice = res.Records, res.IsFallback, res.Notice
	default:
		return domain.Dataset{}, fmt.Errorf("resolver: %w: %q", domain.ErrUnknownKind, kind)
	}
	return ds, nil
}

// FallbackNotice is the message shown above a page drawn from sample data.
func FallbackNotice(kind domain.StatisticKind) string {
	const prefix = "Spotify data can't be fetched, showing sample listening patterns instead. "
	switch kind {
	case domain.KindRecentEvents:
		return prefix + "Add your own Spotify credentials to see your personal listening patterns!"
	case domain.KindTopArtists:
		return prefix + "Add your own Spotify credentials to see your top artists!"
	case domain.KindTopTracks:
		return prefix + "Add your own Spotify credentials to see your top tracks!"
	case domain.KindTopGenres:
		return prefix + "Add your own Spotify credentials to see your own genre galaxy!"
	case domain.KindMood:
		return "Aura values are simulated: Spotify does not expose mood data for these tracks."
	default:
		return prefix
	}
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(DefaultSeed)
	}
	return rng
}
