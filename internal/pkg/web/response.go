package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/errorx"
	"github.com/ferdiebergado/sulat/internal/pkg/message"
)

// ErrorResponse is the body of every failed request.
//
// Error carries a human-readable message. Errors optionally maps payload
// fields to validation messages and is omitted when empty:
//
//	{
//	  "error": "Invalid input.",
//	  "errors": {
//	    "password": "password is required"
//	  }
//	}
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Fail writes an ErrorResponse with the given status and logs reason.
// Cancelled requests are logged at warn level by errorx instead.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	if !errorx.IsContextError(reason) {
		slog.Error("request failed", "status", status, "reason", reason)
	}

	payload := &ErrorResponse{
		Error:  msg,
		Errors: errs,
	}
	JSON(w, status, payload)
}

func RespondBadRequest(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusBadRequest, err, msg, errs)
}

func RespondUnauthorized(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnauthorized, err, msg, errs)
}

func RespondNotFound(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusNotFound, err, msg, errs)
}

func RespondConflict(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusConflict, err, msg, errs)
}

func RespondRequestTimeout(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestTimeout, err, msg, errs)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusRequestEntityTooLarge, err, msg, errs)
}

func RespondUnsupportedMediaType(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnsupportedMediaType, err, msg, errs)
}

func RespondUnprocessableEntity(w http.ResponseWriter, err error, msg string, errs map[string]string) {
	Fail(w, http.StatusUnprocessableEntity, err, msg, errs)
}

func RespondInternalServerError(w http.ResponseWriter, err error) {
	Fail(w, http.StatusInternalServerError, err, message.ServerError, nil)
}
