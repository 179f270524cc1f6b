package security_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/sulat/internal/pkg/security"
)

func TestGenerateRandomBytes(t *testing.T) {
	t.Parallel()

	const length = 16

	b, err := security.GenerateRandomBytes(length)
	if err != nil {
		t.Fatal(err)
	}

	if len(b) != length {
		t.Errorf("len(b) = %d, want: %d", len(b), length)
	}

	s1, err := security.GenerateRandomBytesURLEncoded(length)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := security.GenerateRandomBytesURLEncoded(length)
	if err != nil {
		t.Fatal(err)
	}
	if s1 == s2 {
		t.Errorf("two random strings are equal: %q", s1)
	}
}

func TestKeysMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, provided, expected string
		want                     bool
	}{
		{"Exact match", "secret", "secret", true},
		{"Surrounding whitespace", "  secret\n", "secret ", true},
		{"Mismatch", "secret", "Secret", false},
		{"Prefix only", "sec", "secret", false},
		{"Empty expected", "", "", false},
		{"Empty provided", "", "secret", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := security.KeysMatch(tt.provided, tt.expected); got != tt.want {
				t.Errorf("security.KeysMatch(%q, %q) = %v, want: %v", tt.provided, tt.expected, got, tt.want)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, header, token string
		err                 error
	}{
		{"Valid header", "Bearer abc.def", "abc.def", nil},
		{"Missing header", "", "", security.ErrMissingAuthHeader},
		{"Basic scheme", "Basic Zm9vOmJhcg==", "", security.ErrMissingBearer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := security.ExtractBearerToken(req)
			if !errors.Is(err, tt.err) {
				t.Errorf("security.ExtractBearerToken(req) error = %v, want: %v", err, tt.err)
			}
			if token != tt.token {
				t.Errorf("token = %q, want: %q", token, tt.token)
			}
		})
	}
}
