package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dcastano/notas-cli/internal/client/repositories/sessionstore"
)

// TokenSource reads the persisted bearer token for the transport. It goes to
// storage on every call so a cleared session is picked up immediately.
type TokenSource struct {
	db *sql.DB
}

func NewTokenSource(db *sql.DB) *TokenSource {
	return &TokenSource{db: db}
}

func (t *TokenSource) Token(ctx context.Context) (string, error) {
	raw, err := sessionstore.NewSQLiteRepository(t.db).Get(ctx, sessionstore.KeyToken)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// TokenExpiresAt reads the expiry claim out of the stored token without
// verifying the signature (the client has no key; the server remains the
// authority). Returns ErrNoSession when no token is stored and the zero time
// when the token simply carries no exp claim.
func (s *Service) TokenExpiresAt(ctx context.Context) (time.Time, error) {
	raw, err := sessionstore.NewSQLiteRepository(s.db).Get(ctx, sessionstore.KeyToken)
	if err != nil {
		return time.Time{}, err
	}
	if len(raw) == 0 {
		return time.Time{}, ErrNoSession
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(string(raw), &claims); err != nil {
		return time.Time{}, fmt.Errorf("parsing token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
