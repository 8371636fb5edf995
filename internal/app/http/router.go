package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"iq-home/quickquote/internal/app/config"
	"iq-home/quickquote/internal/app/http/handlers"
	"iq-home/quickquote/internal/app/http/middleware"
	"iq-home/quickquote/internal/app/metrics"
)

func NewRouter(cfg config.Config, h *handlers.Handlers, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/catalog", h.ListCatalog)
		r.Get("/rate", h.CurrentRate)
		r.Post("/quotes", h.CreateQuote)
		r.Post("/quotes/pdf", h.CreateQuotePDF)
	})

	return r
}
