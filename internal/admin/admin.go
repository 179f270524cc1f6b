// Package admin guards the operator endpoints. An operator proves access with
// the configured admin key, either directly on each request or once through
// Login in exchange for a short-lived token.
package admin

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/sulat/internal/pkg/security"
	"github.com/ferdiebergado/sulat/internal/platform/jwt"
)

const (
	HeaderAdminKey = "X-Admin-Key"
	QueryAdminKey  = "adminKey"

	TokenSubject  = "admin"
	TokenAudience = "sulat-admin"
)

var ErrInvalidKey = errors.New("admin: invalid admin key")

// Guard checks admin credentials.
type Guard struct {
	key    string
	signer jwt.Signer
	ttl    time.Duration
}

func NewGuard(key string, signer jwt.Signer, ttl time.Duration) *Guard {
	return &Guard{
		key:    key,
		signer: signer,
		ttl:    ttl,
	}
}

// Issue exchanges the admin key for a signed token.
func (g *Guard) Issue(key string) (token string, expiresAt time.Time, err error) {
	if !security.KeysMatch(key, g.key) {
		return "", time.Time{}, ErrInvalidKey
	}

	expiresAt = time.Now().Add(g.ttl)
	token, err = g.signer.Sign(TokenSubject, []string{TokenAudience}, g.ttl)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}

	return token, expiresAt, nil
}

// Authenticate accepts a bearer token from Issue, the admin key header or
// the admin key query parameter, in that order.
func (g *Guard) Authenticate(r *http.Request) error {
	if token, err := security.ExtractBearerToken(r); err == nil && token != "" {
		claims, err := g.signer.Verify(token, TokenAudience)
		if err == nil && claims.Subject == TokenSubject {
			return nil
		}
		slog.Debug("Rejected admin token.", "reason", err)
	}

	if key := r.Header.Get(HeaderAdminKey); key != "" && security.KeysMatch(key, g.key) {
		return nil
	}

	if key := r.URL.Query().Get(QueryAdminKey); key != "" && security.KeysMatch(key, g.key) {
		return nil
	}

	return ErrInvalidKey
}
