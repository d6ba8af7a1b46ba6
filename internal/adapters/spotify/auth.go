package spotify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

// Endpoint is the Spotify accounts service.
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://accounts.spotify.com/authorize",
	TokenURL:  "https://accounts.spotify.com/api/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// Scopes needed to read listening history and top items.
var Scopes = []string{"user-read-recently-played", "user-top-read"}

// Authenticator runs the authorization-code flow and hands out HTTP clients
// that authorize with the stored token.
type Authenticator struct {
	config *oauth2.Config
	store  ports.TokenStore
	// generation changes whenever the stored token is replaced or removed.
	generation atomic.Uint64
}

// NewAuthenticator constructs an Authenticator for one registered app.
func NewAuthenticator(clientID, clientSecret, redirectURI string, store ports.TokenStore) *Authenticator {
	return &Authenticator{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Endpoint:     Endpoint,
			Scopes:       Scopes,
		},
		store: store,
	}
}

// AuthCodeURL returns the consent page URL for the given state.
func (a *Authenticator) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token and stores it.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: exchange code: %w", err)
	}
	if err := a.store.SaveToken(ctx, a.config.ClientID, tok); err != nil {
		return nil, fmt.Errorf("spotify adapter: save token: %w", err)
	}
	a.generation.Add(1)
	return tok, nil
}

// Logout removes the stored token. Clients handed out earlier stop
// authorizing until the next Exchange.
func (a *Authenticator) Logout(ctx context.Context) error {
	if err := a.store.DeleteToken(ctx, a.config.ClientID); err != nil {
		return fmt.Errorf("spotify adapter: delete token: %w", err)
	}
	a.generation.Add(1)
	return nil
}

// Client returns an HTTP client that loads the stored token on first use,
// refreshes it when it expires and writes refreshed tokens back to the store.
func (a *Authenticator) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, a.TokenSource(ctx))
}

// TokenSource is the persisting source behind Client.
func (a *Authenticator) TokenSource(ctx context.Context) oauth2.TokenSource {
	return &persistingTokenSource{ctx: ctx, auth: a}
}

// persistingTokenSource keeps one refreshing source built from the stored
// token. The source is rebuilt after Exchange or Logout, and a failed refresh
// rereads the store so a login saved by another process is picked up too.
type persistingTokenSource struct {
	ctx  context.Context
	auth *Authenticator

	mu   sync.Mutex
	base oauth2.TokenSource
	last string
	gen  uint64
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.base != nil && s.gen != s.auth.generation.Load() {
		s.base = nil
	}
	if s.base == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}

	tok, err := s.base.Token()
	if err != nil {
		failed := s.last
		s.base = nil
		if loadErr := s.load(); loadErr != nil || s.last == failed {
			s.base = nil
			return nil, err
		}
		log.Printf("DEBUG spotify adapter: refresh failed, retrying with newly stored token")
		if tok, err = s.base.Token(); err != nil {
			s.base = nil
			return nil, err
		}
	}
	if tok.AccessToken != s.last {
		if err := s.auth.store.SaveToken(s.ctx, s.auth.config.ClientID, tok); err != nil {
			log.Printf("WARN spotify adapter: persist refreshed token: %v", err)
		} else {
			s.last = tok.AccessToken
		}
	}
	return tok, nil
}

// load rebuilds the refreshing source from the store.
func (s *persistingTokenSource) load() error {
	s.gen = s.auth.generation.Load()
	stored, err := s.auth.store.LoadToken(s.ctx, s.auth.config.ClientID)
	if err != nil {
		if errors.Is(err, ports.ErrNotAuthorized) {
			return err
		}
		return fmt.Errorf("spotify adapter: load token: %w", err)
	}
	s.base = s.auth.config.TokenSource(s.ctx, stored)
	s.last = stored.AccessToken
	return nil
}
