package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http/handlers"
	"github.com/Kevindmm/secret-santa-organizer/internal/infrastructure/http/middleware"
)

// RouterConfig wires handlers and middleware into the router.
type RouterConfig struct {
	Games         *handlers.GamesHandler
	HealthHandler *handlers.HealthHandler
	Log           zerolog.Logger
	Secure        func(http.Handler) http.Handler
	IPRateLimit   func(http.Handler) http.Handler
	CORS          func(http.Handler) http.Handler
	Metrics       bool // expose /metrics
}

// NewRouter builds the chi router for the whole API surface.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", cfg.Games.Create)
		r.Route("/{gameID}", func(r chi.Router) {
			r.Post("/participants", cfg.Games.AddParticipant)
			r.Get("/participants", cfg.Games.ListParticipants)
			r.Post("/assign", cfg.Games.Assign)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
