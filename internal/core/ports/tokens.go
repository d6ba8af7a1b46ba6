package ports

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
)

// ErrNotAuthorized indicates no OAuth token has been stored for a client yet.
var ErrNotAuthorized = errors.New("not authorized: no stored token")

// TokenStore persists OAuth tokens between runs, keyed by client ID.
type TokenStore interface {
	LoadToken(ctx context.Context, clientID string) (*oauth2.Token, error)
	SaveToken(ctx context.Context, clientID string, token *oauth2.Token) error
	DeleteToken(ctx context.Context, clientID string) error
}
