package middleware

import (
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

// ContextGuard stops requests whose context ended before they reached the
// handler.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
