package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ewilliams-labs/spotify-insights/internal/core/domain"
	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

// DefaultBaseURL is the Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// Client is an HTTP client for the Spotify adapter. The http.Client is
// expected to attach the user's bearer token (see Authenticator.Client).
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// compile-time interface assertion
var _ ports.ListeningProvider = (*Client)(nil)

// NewClient constructs a new Spotify client. An empty baseURL selects
// DefaultBaseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// RecentlyPlayed returns the user's most recent plays, newest first.
func (c *Client) RecentlyPlayed(ctx context.Context, limit int) ([]domain.PlayedItem, error) {
	var page recentlyPlayedResponse
	if err := c.getJSON(ctx, "/me/player/recently-played", limit, &page); err != nil {
		return nil, fmt.Errorf("spotify adapter: recently played: %w", err)
	}
	return mapPlayedItems(page.Items), nil
}

// TopArtists returns the user's top artists.
func (c *Client) TopArtists(ctx context.Context, limit int) ([]domain.ProviderArtist, error) {
	var page topArtistsResponse
	if err := c.getJSON(ctx, "/me/top/artists", limit, &page); err != nil {
		return nil, fmt.Errorf("spotify adapter: top artists: %w", err)
	}
	return mapArtists(page.Items), nil
}

// TopTracks returns the user's top tracks.
func (c *Client) TopTracks(ctx context.Context, limit int) ([]domain.ProviderTrack, error) {
	var page topTracksResponse
	if err := c.getJSON(ctx, "/me/top/tracks", limit, &page); err != nil {
		return nil, fmt.Errorf("spotify adapter: top tracks: %w", err)
	}
	return mapTracks(page.Items), nil
}

func (c *Client) getJSON(ctx context.Context, path string, limit int, out any) error {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	endpoint := c.baseURL + path
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
