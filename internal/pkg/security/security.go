package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrMissingBearer     = errors.New("missing Bearer prefix")
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

// KeysMatch compares two secrets in constant time after trimming surrounding
// whitespace. An empty expected key never matches.
func KeysMatch(provided, expected string) bool {
	provided, expected = strings.TrimSpace(provided), strings.TrimSpace(expected)
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

func ExtractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}
