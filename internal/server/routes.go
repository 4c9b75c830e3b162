package server

import (
	"log/slog"
	"net/http"

	"github.com/lxzugm-boop/lastframe-bot/internal/config"
)

// NewRouter creates a new HTTP router with all routes configured.
// It uses Go 1.22+ ServeMux with method-based routing.
func NewRouter(h *Handlers, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Live)
	mux.HandleFunc("POST "+config.WebhookPath, h.Webhook)

	chain := ChainMiddleware(
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
	)

	return chain(mux)
}
