package admin

import (
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

func RequireAdmin(guard *Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := guard.Authenticate(r); err != nil {
				web.RespondUnauthorized(w, err, message.Unauthorized, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
