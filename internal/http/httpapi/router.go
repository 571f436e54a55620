package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"pagecraft/internal/http/handlers"
	"pagecraft/internal/middleware"
)

type Options struct {
	Logger          zerolog.Logger
	JWTSecret       string
	AllowedOrigins  []string
	RateLimitPerMin int
	// CountryLookup feeds page metadata; nil leaves country empty.
	CountryLookup middleware.CountryLookup
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	// Published pages and their logos are public.
	r.Get("/v1/pages/{id}/render", app.RenderPage)
	r.Get("/v1/pages/{id}/logo.svg", app.PageLogoSVG)
	r.Get("/static/logos/{name}", app.ServeLogo)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(opts.JWTSecret))

		r.Get("/v1/pages", app.ListPages)
		r.Get("/v1/pages/{id}", app.GetPage)
		r.Get("/v1/pages/{id}/export.zip", app.ExportPage)

		r.Group(func(r chi.Router) {
			r.Use(
				middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
				middleware.Country(opts.CountryLookup),
			)
			r.Post("/v1/pages", app.CreatePage)
			r.Post("/v1/logos", app.UploadLogo)
		})
	})

	return r
}
