package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/sulat/internal/middleware"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

func TestMiddleware_CheckContentType(t *testing.T) {
	t.Parallel()

	const (
		defaultContent = "test"
		errContent     = `{"error":"Invalid input."}`
	)

	var tests = []struct {
		name, method, contentType, wantBody string
		wantCode                            int
	}{
		{"Correct Content-Type Post", http.MethodPost, web.MimeJSON, defaultContent, http.StatusOK},
		{"Correct Content-Type Delete", http.MethodDelete, web.MimeJSON, defaultContent, http.StatusOK},
		{"Correct Content-Type with charset", http.MethodPost, "application/json; charset=utf-8", defaultContent, http.StatusOK},
		{"Other Content-Type", http.MethodPost, "text/html; charset=utf-8", errContent, http.StatusUnsupportedMediaType},
		{"Empty Content-Type", http.MethodPost, "", errContent, http.StatusUnsupportedMediaType},
		{"Malformed Content-Type", http.MethodPost, "application/json;;", errContent, http.StatusUnsupportedMediaType},
		{"Get request", http.MethodGet, "", defaultContent, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(defaultContent))
			})

			req, rec := httptest.NewRequest(tt.method, "/test", http.NoBody), httptest.NewRecorder()
			req.Header.Set(web.HeaderContentType, tt.contentType)

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantCode)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			if gotBody != tt.wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, tt.wantBody)
			}
		})
	}
}
