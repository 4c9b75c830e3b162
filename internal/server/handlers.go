// Package server provides the HTTP surface of the bot: the Telegram
// webhook receiver and a liveness endpoint for the hosting platform.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler processes one decoded Telegram update.
// Implemented by bot.Bot.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Code is the error code for programmatic handling.
	Code string `json:"code"`
}

// Handlers contains the HTTP handlers for the bot.
type Handlers struct {
	bot    UpdateHandler
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(bot UpdateHandler, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		bot:    bot,
		logger: logger,
	}
}

// Live handles GET / requests from the hosting platform's health probe.
func (h *Handlers) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Webhook handles POST /webhook requests from Telegram. The update is
// processed in the background so Telegram gets its 200 immediately and
// never re-delivers because of slow ffmpeg runs.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn("webhook decode failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid update payload", "INVALID_UPDATE")
		return
	}

	// Detach from the request context: processing outlives this response.
	// RecoveryMiddleware cannot see this goroutine, so it carries its own
	// recover; a malformed update must never take the process down.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		h.bot.HandleUpdate(ctx, update)
	}()

	w.WriteHeader(http.StatusOK)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a standard error response.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}
