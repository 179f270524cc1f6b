package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

// CheckContentType rejects request bodies that are not JSON. Parameters such
// as charset are allowed.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		slog.Debug("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
