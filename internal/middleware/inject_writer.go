package middleware

import "net/http"

// InjectWriter wraps the response writer so later middleware can read the
// status and size of the response.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}
