// Package bot orchestrates one webhook update end to end: resolving
// preferences, materializing the video, extracting the frame, replying,
// and cleaning up transient files on every exit path.
package bot

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
	"github.com/lxzugm-boop/lastframe-bot/internal/storage"
	"github.com/lxzugm-boop/lastframe-bot/internal/transfer"
)

// Sender is the outbound half of the chat platform client.
// Implemented by telegram.Client.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendPhoto(chatID int64, path, caption string, keyboard tgbotapi.InlineKeyboardMarkup) error
	EditReplyMarkup(chatID int64, messageID int, keyboard tgbotapi.InlineKeyboardMarkup) error
	AnswerCallback(callbackID, text string, alert bool) error
	SendChatAction(chatID int64, action string) error
	SendVideoByID(chatID int64, fileID string) error
	SendVideoNoteByID(chatID int64, fileID string) error
	SendAnimationByID(chatID int64, fileID string) error
}

// Fetcher materializes inbound media as transient local files.
// Implemented by transfer.Downloader.
type Fetcher interface {
	FetchMedia(ctx context.Context, m transfer.Media) (string, error)
	FetchByFileID(ctx context.Context, fileID string) (string, error)
}

// Extractor produces the last frame of a local video file.
// Implemented by frame.Extractor.
type Extractor interface {
	ExtractLastFrame(ctx context.Context, inputPath, rawFormat, rawSize string) (string, error)
}

// Bot handles Telegram updates.
type Bot struct {
	sender      Sender
	fetcher     Fetcher
	extractor   Extractor
	prefs       *prefs.Store
	store       storage.Storage
	adminChatID int64
	logger      *slog.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithAdminChat enables best-effort forwarding of inbound media to an
// operator chat.
func WithAdminChat(chatID int64) Option {
	return func(b *Bot) {
		b.adminChatID = chatID
	}
}

// New creates a Bot.
func New(sender Sender, fetcher Fetcher, extractor Extractor, store *prefs.Store, scratch storage.Storage, logger *slog.Logger, opts ...Option) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bot{
		sender:    sender,
		fetcher:   fetcher,
		extractor: extractor,
		prefs:     store,
		store:     scratch,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HandleUpdate dispatches one inbound update. Errors never escape: every
// failure terminates in a user-facing message or a callback alert.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage routes commands, media, and everything else. Updates
// missing the sender or the chat are dropped: the webhook is an open
// endpoint and crafted payloads may omit either.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(msg.Chat.ID, startText)
		case "help":
			b.reply(msg.Chat.ID, helpText)
		default:
			b.reply(msg.Chat.ID, fallbackText)
		}
		return
	}

	media, err := transfer.FromMessage(msg)
	if err != nil {
		// Text, stickers, photos and the rest get the usage hint.
		b.reply(msg.Chat.ID, fallbackText)
		return
	}

	b.handleMedia(ctx, msg, media)
}

// handleCallback routes inline keyboard presses by their data payload.
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		// Real keyboard presses always carry a sender.
		_ = b.sender.AnswerCallback(cb.ID, "", false)
		return
	}

	switch data := cb.Data; {
	case strings.HasPrefix(data, "fmt:"):
		b.handleSetFormat(cb, strings.TrimPrefix(data, "fmt:"))
	case strings.HasPrefix(data, "size:"):
		b.handleSetSize(cb, strings.TrimPrefix(data, "size:"))
	case data == "regen":
		b.handleRegenerate(ctx, cb)
	default:
		// Stale keyboard from an older build; just stop the spinner.
		_ = b.sender.AnswerCallback(cb.ID, "", false)
	}
}

// reply sends a plain text message, logging send failures.
func (b *Bot) reply(chatID int64, text string) {
	if err := b.sender.SendMessage(chatID, text); err != nil {
		b.logger.Error("send message failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
	}
}
