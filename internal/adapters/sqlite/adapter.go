// Package sqlite provides a SQLite-backed implementation of the token store port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
	"golang.org/x/oauth2"

	"github.com/ewilliams-labs/spotify-insights/internal/core/ports"
)

// Adapter implements ports.TokenStore for SQLite. It only ever holds OAuth
// credentials; listening data is fetched fresh on every render.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.TokenStore = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	// Auto-migrate on startup
	if err := adapter.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// LoadToken returns the stored token for clientID, or ports.ErrNotAuthorized.
func (a *Adapter) LoadToken(ctx context.Context, clientID string) (*oauth2.Token, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT access_token, refresh_token, token_type, expiry
		FROM oauth_tokens
		WHERE client_id = ?
	`, clientID)

	var tok oauth2.Token
	var refresh sql.NullString
	var expiry sql.NullInt64
	if err := row.Scan(&tok.AccessToken, &refresh, &tok.TokenType, &expiry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ports.ErrNotAuthorized
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if refresh.Valid {
		tok.RefreshToken = refresh.String
	}
	if expiry.Valid && expiry.Int64 > 0 {
		tok.Expiry = time.Unix(expiry.Int64, 0).UTC()
	}
	return &tok, nil
}

// SaveToken upserts the token for clientID. A refresh response without a new
// refresh token keeps the one already stored.
func (a *Adapter) SaveToken(ctx context.Context, clientID string, token *oauth2.Token) error {
	if token == nil || token.AccessToken == "" {
		return fmt.Errorf("failed to save token: empty access token")
	}

	var refresh sql.NullString
	if token.RefreshToken != "" {
		refresh = sql.NullString{String: token.RefreshToken, Valid: true}
	}
	var expiry sql.NullInt64
	if !token.Expiry.IsZero() {
		expiry = sql.NullInt64{Int64: token.Expiry.Unix(), Valid: true}
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO oauth_tokens (client_id, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(client_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = COALESCE(excluded.refresh_token, oauth_tokens.refresh_token),
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			updated_at = CURRENT_TIMESTAMP
	`, clientID, token.AccessToken, refresh, token.Type(), expiry)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// DeleteToken forgets the stored token, forcing a new login.
func (a *Adapter) DeleteToken(ctx context.Context, clientID string) error {
	if _, err := a.db.ExecContext(ctx, "DELETE FROM oauth_tokens WHERE client_id = ?", clientID); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS oauth_tokens (
		client_id TEXT PRIMARY KEY,
		access_token TEXT NOT NULL,
		refresh_token TEXT,
		token_type TEXT NOT NULL,
		expiry INTEGER,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}
	return nil
}
