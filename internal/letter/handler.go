package letter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/sulat/internal/pkg/errorx"
	"github.com/ferdiebergado/sulat/internal/pkg/logging"
	"github.com/ferdiebergado/sulat/internal/pkg/message"
	"github.com/ferdiebergado/sulat/internal/pkg/web"
	"github.com/ferdiebergado/sulat/internal/roster"
)

type Service interface {
	Opened(ctx context.Context) ([]string, error)
	MarkOpened(ctx context.Context, name string) (opened []string, alreadyOpened bool, err error)
	Unlock(ctx context.Context, name, password string) (roster.Letter, []string, error)
	People(ctx context.Context) ([]PersonView, error)
	Restore(ctx context.Context, name string) ([]string, error)
	Reset(ctx context.Context) error
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// respondError maps service errors to responses shared by all endpoints.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errorx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout, nil)
	case errors.Is(err, ErrNameRequired):
		web.RespondBadRequest(w, err, message.NameRequired, nil)
	case errors.Is(err, roster.ErrNotFound):
		web.RespondNotFound(w, err, MsgPersonNotFound, nil)
	case errors.Is(err, roster.ErrWrongPassword):
		web.RespondUnauthorized(w, err, MsgWrongPassword, nil)
	case errors.Is(err, ErrAlreadyOpened):
		web.RespondConflict(w, err, MsgAlreadyOpened, nil)
	case errors.Is(err, ErrNotOpened):
		web.RespondNotFound(w, err, MsgNotInOpened, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}

// People serves GET /api/people.
func (h *Handler) People(w http.ResponseWriter, r *http.Request) {
	people, err := h.svc.People(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, people)
}

// Opened serves GET /api/opened-letters with a bare array of names.
func (h *Handler) Opened(w http.ResponseWriter, r *http.Request) {
	opened, err := h.svc.Opened(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, opened)
}

type MarkOpenedRequest struct {
	Name string `json:"name" validate:"max=100"`
}

type OpenedResponse struct {
	Message       string   `json:"message"`
	OpenedLetters []string `json:"openedLetters"`
}

// MarkOpened serves POST /api/opened-letters.
func (h *Handler) MarkOpened(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[MarkOpenedRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	opened, already, err := h.svc.MarkOpened(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := MsgMarkedOpened
	if already {
		msg = MsgAlreadyOpened
	}

	web.JSON(w, http.StatusOK, &OpenedResponse{
		Message:       msg,
		OpenedLetters: opened,
	})
}

type UnlockRequest struct {
	Password string `json:"password" validate:"required,max=200"`
}

func (r UnlockRequest) LogValue() slog.Value {
	return slog.GroupValue(logging.Masked("password"))
}

type UnlockResponse struct {
	Message       string        `json:"message"`
	Letter        roster.Letter `json:"letter"`
	OpenedLetters []string      `json:"openedLetters"`
}

// Unlock serves POST /api/letters/{name}/unlock.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UnlockRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	name := r.PathValue("name")
	letter, opened, err := h.svc.Unlock(r.Context(), name, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	web.JSON(w, http.StatusOK, &UnlockResponse{
		Message:       MsgUnlocked,
		Letter:        letter,
		OpenedLetters: opened,
	})
}

type AdminOpenedResponse struct {
	OpenedLetters []string `json:"openedLetters"`
	Count         int      `json:"count"`
}

// AdminOpened serves GET /api/admin/opened-letters.
func (h *Handler) AdminOpened(w http.ResponseWriter, r *http.Request) {
	opened, err := h.svc.Opened(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.JSON(w, http.StatusOK, &AdminOpenedResponse{
		OpenedLetters: opened,
		Count:         len(opened),
	})
}

// Restore serves DELETE /api/admin/opened-letters/{name}.
func (h *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		respondError(w, ErrNameRequired)
		return
	}

	opened, err := h.svc.Restore(r.Context(), name)
	if err != nil {
		respondError(w, err)
		return
	}

	web.JSON(w, http.StatusOK, &OpenedResponse{
		Message:       fmt.Sprintf(MsgFmtRestored, name),
		OpenedLetters: opened,
	})
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Reset serves POST /api/admin/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	web.JSON(w, http.StatusOK, &MessageResponse{Message: MsgAllRestored})
}
