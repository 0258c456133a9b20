// Package router assembles the HTTP surface: the chat endpoint plus the
// operational endpoints (health, metrics).
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/creativedrywall/chat-assistant/internal/chat"
	httpmiddleware "github.com/creativedrywall/chat-assistant/internal/http/middleware"
	"github.com/creativedrywall/chat-assistant/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger      *logging.Logger
	ChatHandler *chat.Handler

	// MetricsHandler serves the Prometheus scrape endpoint when set.
	MetricsHandler http.Handler

	CORSAllowedOrigins []string

	// RateLimitPerSec/RateLimitBurst bound per-IP traffic on the chat
	// endpoint. Zero disables limiting.
	RateLimitPerSec float64
	RateLimitBurst  int
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(chatRoutes chi.Router) {
		if cfg.RateLimitPerSec > 0 {
			chatRoutes.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))
		}
		// The handler owns method dispatch so OPTIONS preflight and 405
		// replies carry the same CORS headers as POST.
		chatRoutes.Handle("/api/chat", http.HandlerFunc(cfg.ChatHandler.HandleChat))
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
