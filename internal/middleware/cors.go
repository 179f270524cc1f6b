package middleware

import (
	"net/http"
)

const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"

	AllowedMethods = "GET, POST, DELETE, OPTIONS"
	AllowedHeaders = "Content-Type, Authorization, X-Admin-Key, Cache-Control"
)

// CORS allows cross-origin calls from allowedOrigin, which may be "*".
// Preflight requests are answered here.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			header.Set(HeaderAllowOrigin, allowedOrigin)
			header.Set(HeaderAllowMethods, AllowedMethods)
			header.Set(HeaderAllowHeaders, AllowedHeaders)
			if allowedOrigin != "*" {
				header.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
