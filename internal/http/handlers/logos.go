package handlers

import (
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"pagecraft/internal/domain"
)

const logoFormField = "file"

// UploadLogo accepts a multipart "file" field and returns the public URL
// to place in the wizard's logoUrl.
func (a *App) UploadLogo(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.fail(w, r, domain.ErrUnauthorized)
		return
	}
	maxBytes := a.Logos.MaxBytes()
	// room for multipart framing
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+64<<10)
	file, _, err := r.FormFile(logoFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.fail(w, r, domain.ErrLogoTooLarge)
			return
		}
		a.error(w, http.StatusBadRequest, "bad_request", "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "could not read file")
		return
	}
	url, err := a.Logos.Upload(r.Context(), userID, data)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"url": url, "fileName": path.Base(url)})
}

// ServeLogo streams an uploaded logo with a sandboxing CSP and nosniff.
func (a *App) ServeLogo(w http.ResponseWriter, r *http.Request) {
	logo, err := a.Logos.Open(chi.URLParam(r, "name"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	defer logo.Close()

	h := w.Header()
	h.Set("Content-Type", logo.ContentType)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Security-Policy", "default-src 'none'; sandbox")
	h.Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, logo.Name, logo.ModTime, logo)
}
