package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"pagecraft/internal/domain"
	"pagecraft/internal/render"
	"pagecraft/pkg/zip"
)

// ExportPage downloads the caller's page as a zip of the spec, the render
// plan and the generated logo.
func (a *App) ExportPage(w http.ResponseWriter, r *http.Request) {
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

	plan := render.BuildPlan(page)
	specJSON, err := json.MarshalIndent(page.Spec, "", "  ")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	planJSON, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		a.fail(w, r, err)
		return
	}
	logo := plan.Logo
	if plan.LogoFallback != nil {
		logo = *plan.LogoFallback
	}

	var buf bytes.Buffer
	err = zip.Write(&buf, page.UpdatedAt, []zip.Asset{
		{Filename: "spec.json", Data: specJSON},
		{Filename: "render.json", Data: planJSON},
		{Filename: "logo.svg", Data: []byte(render.GeneratedLogoSVG(logo.IconName, logo.Text, plan.PrimaryColor))},
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, exportName(page)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// exportName slugs the business name: accents are folded, every run of
// other characters becomes one dash. "Café Ünï" gives "cafe-uni".
func exportName(page *domain.Page) string {
	// transform.Chain keeps state, so build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, page.BusinessName)
	if err != nil {
		folded = page.BusinessName
	}
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return page.ID
	}
	return b.String()
}
