package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/sulat/internal/middleware"
)

func TestMiddleware_CORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, allowed, method string
		code                  int
		wantOrigin, wantVary  string
	}{
		{"GET with any origin", "*", http.MethodGet, http.StatusOK, "*", ""},
		{"Default origin", "", http.MethodGet, http.StatusOK, "*", ""},
		{"POST with fixed origin", "https://letters.example.com", http.MethodPost, http.StatusOK, "https://letters.example.com", "Origin"},
		{"Preflight", "*", http.MethodOptions, http.StatusNoContent, "*", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/", http.NoBody)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()
			middleware.CORS(tt.allowed)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if called == (tt.method == http.MethodOptions) {
				t.Errorf("handler called = %v on %s", called, tt.method)
			}

			want := map[string]string{
				middleware.HeaderAllowOrigin:  tt.wantOrigin,
				middleware.HeaderAllowMethods: middleware.AllowedMethods,
				middleware.HeaderAllowHeaders: middleware.AllowedHeaders,
				"Vary":                        tt.wantVary,
			}
			for header, val := range want {
				if got := rec.Header().Get(header); got != val {
					t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, val)
				}
			}
		})
	}
}
