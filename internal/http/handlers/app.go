package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"pagecraft/internal/domain"
	"pagecraft/internal/generation"
	"pagecraft/internal/middleware"
	"pagecraft/internal/storage"
)

// PageGenerator is satisfied by *generation.Orchestrator.
type PageGenerator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// LogoStore is satisfied by *storage.LogoStore.
type LogoStore interface {
	Upload(ctx context.Context, userID string, data []byte) (string, error)
	Open(name string) (*storage.Logo, error)
	MaxBytes() int64
}

type App struct {
	Logger    zerolog.Logger
	Pages     domain.PageRepository
	Generator PageGenerator
	Logos     LogoStore
	// Ping reports database health; nil skips the check.
	Ping func(ctx context.Context) error
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// fail maps domain errors onto HTTP responses. Generation failures stay
// opaque to the caller; the orchestrator has already logged the cause.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingRequiredAnswers):
		a.error(w, http.StatusBadRequest, "missing_required_answers", err.Error())
	case errors.Is(err, domain.ErrInvalidAnswers):
		a.error(w, http.StatusBadRequest, "invalid_answers", err.Error())
	case errors.Is(err, domain.ErrDuplicateBusinessName):
		a.error(w, http.StatusConflict, "duplicate_business_name", "a page for this business name already exists")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "page not found")
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
	case errors.Is(err, domain.ErrLogoTooLarge):
		a.error(w, http.StatusRequestEntityTooLarge, "logo_too_large", err.Error())
	case errors.Is(err, domain.ErrInvalidLogo):
		a.error(w, http.StatusUnsupportedMediaType, "invalid_logo", err.Error())
	case errors.Is(err, context.Canceled):
		// client went away
		a.error(w, 499, "canceled", "request canceled")
	case errors.Is(err, domain.ErrGenerationFailed):
		a.error(w, http.StatusBadGateway, "generation_failed", "page generation failed, please try again")
	default:
		a.Logger.Error().Err(err).
			Str("path", r.URL.Path).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
