package jwt

import (
	"fmt"
	"time"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/pkg/security"
	"github.com/golang-jwt/jwt/v5"
)

// golangJWTSigner implements the Signer interface using the golang-jwt library.
type golangJWTSigner struct {
	method jwt.SigningMethod
	key    []byte
	jtiLen uint32
	issuer string
}

var _ Signer = (*golangJWTSigner)(nil)

// NewGolangJWTSigner creates a Signer with the provided JWT config and HMAC key.
func NewGolangJWTSigner(cfg *config.JWT, key string) Signer {
	return &golangJWTSigner{
		method: jwt.SigningMethodHS256,
		key:    []byte(key),
		jtiLen: cfg.JTILength,
		issuer: cfg.Issuer,
	}
}

// Sign generates a signed JWT token with the given subject, audience, and duration.
func (s *golangJWTSigner) Sign(sub string, audience []string, duration time.Duration) (string, error) {
	jti, err := security.GenerateRandomBytesURLEncoded(s.jtiLen)
	if err != nil {
		return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    s.issuer,
		Audience:  audience,
		Subject:   sub,
		ID:        jti,
	}

	token := jwt.NewWithClaims(s.method, claims)
	signedToken, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// Verify parses tokenString, checks its signature, issuer, expiry and
// audience, and returns its claims.
func (s *golangJWTSigner) Verify(tokenString, audience string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse with claims: %w", err)
	}

	registered, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, fmt.Errorf("unknown claims type: %T", token.Claims)
	}

	claims := &Claims{
		Subject:  registered.Subject,
		Audience: registered.Audience,
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}

	return claims, nil
}
