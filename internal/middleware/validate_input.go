package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
	"github.com/ferdiebergado/sulat/internal/platform/validation"
)

// ValidateInput validates the T stored by DecodePayload. Failures list the
// offending fields.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondUnprocessableEntity(w, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
