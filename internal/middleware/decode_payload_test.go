package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ferdiebergado/sulat/internal/middleware"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	const header = "X-Handler-Called"

	type unlock struct {
		Name     string `json:"name"`
		Attempts int    `json:"attempts"`
	}

	tests := []struct {
		name     string
		code     int
		payload  []byte
		bodySize int64
		header   string
		body     string
	}{
		{"Valid payload", http.StatusOK, []byte(`{"name":"Ram","attempts":2}`), 64, "true", ""},
		{"Payload too large", http.StatusRequestEntityTooLarge, []byte(`{"name": "Sophia", "attempts": 13}`), 4, "", ""},
		{
			"Unknown field", http.StatusUnprocessableEntity, []byte(`{"name": "Ram", "password": "x"}`), 64, "",
			`{"error":"Unknown field in payload.","errors":{"field":"password"}}`,
		},
		{"Extra payload", http.StatusBadRequest, []byte(`{"name": "Ram"}{"name": "Sophia"}`), 64, "", ""},
		{"Incorrect data type", http.StatusBadRequest, []byte(`{"name": "Ram", "attempts": "2"}`), 64, "", ""},
		{"Malformed payload", http.StatusBadRequest, []byte(`{"name"`), 64, "", ""},
		{"Empty body", http.StatusBadRequest, []byte(``), 64, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[unlock](r.Context())
				if err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}

				w.Header().Set(header, "true")
				w.WriteHeader(http.StatusOK)
				if err := json.NewEncoder(w).Encode(&params); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
				}
			})

			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			middleware.DecodePayload[unlock](tt.bodySize)(handler).ServeHTTP(rec, req)

			if rec.Code != tt.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.code)
			}

			if got := rec.Header().Get(header); got != tt.header {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, tt.header)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			wantBody := tt.body
			if tt.header == "true" {
				wantBody = string(tt.payload)
			}
			if wantBody != "" && gotBody != wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, wantBody)
			}
		})
	}
}
