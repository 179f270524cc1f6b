package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

// DecodePayload decodes a JSON body of at most bodySize bytes into T and
// stores it in the request context for web.ParamsFromContext.
func DecodePayload[T any](bodySize int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding json payload...")
			r.Body = http.MaxBytesReader(w, r.Body, bodySize)
			decoder := json.NewDecoder(r.Body)
			decoder.DisallowUnknownFields()

			var decoded T
			if err := decoder.Decode(&decoded); err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
					return
				}

				const fieldErr = "json: unknown field "
				if fieldName, ok := strings.CutPrefix(err.Error(), fieldErr); ok {
					details := map[string]string{"field": strings.Trim(fieldName, `"`)}
					web.RespondUnprocessableEntity(w, err, "Unknown field in payload.", details)
					return
				}

				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			slog.Debug("Payload decoded.", slog.Any("payload", decoded))

			ctx := web.NewContextWithParams(r.Context(), decoded)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
