package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"resonate/internal/core/port"
	"resonate/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes wizard requests, calls the MatchUseCase and encodes the
// results. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.MatchUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. allowedOrigins
// lists the frontends permitted by CORS; empty allows any origin.
func NewHandler(svc port.MatchUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{svc: svc, logger: logger}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/cities", h.handleListCities)
		r.Route("/cities/{city}", func(r chi.Router) {
			r.Get("/", h.handleGetCity)
			r.Get("/geography", h.handleGeography)
			r.Post("/matches", h.handleMatch)
			r.Post("/mix/optimize", h.handleOptimize)
			r.Post("/mix/summary", h.handleSummary)
		})
		r.Post("/matches/explain", h.handleExplain)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// instrument records request counts and latency by route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Microseconds()) / 1000)
	})
}
