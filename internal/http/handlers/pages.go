package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pagecraft/internal/domain"
	"pagecraft/internal/generation"
	"pagecraft/internal/middleware"
	"pagecraft/internal/render"
)

const (
	maxAnswersBytes  = 64 << 10
	defaultListLimit = 20
	maxListLimit     = 100
)

type createPageResponse struct {
	PageID   string       `json:"pageId"`
	Attempts int          `json:"attempts"`
	Repaired bool         `json:"repaired"`
	Page     *domain.Page `json:"page"`
}

// CreatePage runs generation for the wizard answers in the body and returns
// the stored page.
func (a *App) CreatePage(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.fail(w, r, domain.ErrUnauthorized)
		return
	}
	var answers domain.WizardAnswers
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnswersBytes))
	if err := dec.Decode(&answers); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "payload_too_large", "answers payload too large")
			return
		}
		if errors.Is(err, io.EOF) {
			a.fail(w, r, domain.ErrMissingRequiredAnswers)
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	res, err := a.Generator.Generate(r.Context(), generation.Request{
		UserID:    userID,
		Answers:   answers,
		Country:   middleware.CountryFromContext(r.Context()),
		RequestID: middleware.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, createPageResponse{
		PageID:   res.Page.ID,
		Attempts: res.Attempts,
		Repaired: res.Repaired,
		Page:     res.Page,
	})
}

func (a *App) ListPages(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.fail(w, r, domain.ErrUnauthorized)
		return
	}
	limit := defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}
	pages, err := a.Pages.ListByUser(r.Context(), userID, limit)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if pages == nil {
		pages = []domain.Page{}
	}
	a.json(w, http.StatusOK, map[string]any{"items": pages})
}

// GetPage returns a page owned by the caller. Other users' pages read as
// not found.
func (a *App) GetPage(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.fail(w, r, domain.ErrUnauthorized)
		return
	}
	page, err := a.Pages.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if page.UserID != userID {
		a.fail(w, r, domain.ErrNotFound)
		return
	}
	a.json(w, http.StatusOK, page)
}

// RenderPage returns the render plan of a published page. It is public.
func (a *App) RenderPage(w http.ResponseWriter, r *http.Request) {
	page, ok := a.publishedPage(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, render.BuildPlan(page))
}

// PageLogoSVG draws the generated logo of a published page. Pages with an
// uploaded logo get the mark shown when that image fails to load.
func (a *App) PageLogoSVG(w http.ResponseWriter, r *http.Request) {
	page, ok := a.publishedPage(w, r)
	if !ok {
		return
	}
	plan := render.BuildPlan(page)
	logo := plan.Logo
	if plan.LogoFallback != nil {
		logo = *plan.LogoFallback
	}
	svg := render.GeneratedLogoSVG(logo.IconName, logo.Text, plan.PrimaryColor)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, svg)
}

func (a *App) publishedPage(w http.ResponseWriter, r *http.Request) (*domain.Page, bool) {
	page, err := a.Pages.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return nil, false
	}
	if page.Status != domain.PageStatusPublished {
		a.fail(w, r, domain.ErrNotFound)
		return nil, false
	}
	return page, true
}
