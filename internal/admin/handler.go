package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/sulat/internal/pkg/logging"
	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
)

type Handler struct {
	guard *Guard
}

func NewHandler(guard *Guard) *Handler {
	return &Handler{guard: guard}
}

type LoginRequest struct {
	Key string `json:"key" validate:"required,max=256"`
}

func (r LoginRequest) LogValue() slog.Value {
	return slog.GroupValue(logging.Masked("key"))
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login serves POST /api/admin/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[LoginRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	token, expiresAt, err := h.guard.Issue(req.Key)
	if err != nil {
		if errors.Is(err, ErrInvalidKey) {
			web.RespondUnauthorized(w, err, message.Unauthorized, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	slog.Info("Admin logged in.")
	web.JSON(w, http.StatusOK, &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	})
}
