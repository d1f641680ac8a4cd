package http

import (
	"net/http"
	"time"

	"github.com/MarkAnthonyM/BlockPlot/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// operational routes
	router.Get("/health_check", h.healthCheck)
	router.Get("/ready", h.readiness)
	router.Handle("/metrics", metrics.Handler())

	// login flow
	router.Group(func(r chi.Router) {
		if h.server.LoginRateLimit > 0 {
			r.Use(httprate.LimitByIP(h.server.LoginRateLimit, time.Minute))
		}
		r.Get("/auth0", h.startLogin)
		r.Get("/process", h.processLogin)
	})
	router.Get("/logout", h.logout)

	// routes behind a session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Get("/home", h.home)
		r.With(withGZip).Get("/api/skillblocks", h.skillblocks)
		r.Post("/api/new_skillblock", h.newSkillblock)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
