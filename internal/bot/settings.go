package bot

import (
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleSetFormat stores the pressed format and redraws the keyboard in
// place so the check mark follows the selection.
func (b *Bot) handleSetFormat(cb *tgbotapi.CallbackQuery, value string) {
	userID := cb.From.ID
	b.prefs.SetFormat(userID, value)

	format := b.prefs.Format(userID)
	b.redrawKeyboard(cb)
	_ = b.sender.AnswerCallback(cb.ID, "Формат установлен: "+strings.ToUpper(string(format)), false)
}

// handleSetSize stores the pressed size and redraws the keyboard in place.
func (b *Bot) handleSetSize(cb *tgbotapi.CallbackQuery, value string) {
	userID := cb.From.ID
	b.prefs.SetSize(userID, value)

	size := b.prefs.Size(userID)
	b.redrawKeyboard(cb)
	_ = b.sender.AnswerCallback(cb.ID, "Размер установлен: "+describeSize(size), false)
}

// redrawKeyboard replaces the reply markup of the message the callback
// came from with a keyboard reflecting the user's current settings.
func (b *Bot) redrawKeyboard(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	userID := cb.From.ID
	kb := settingsKeyboard(b.prefs.Format(userID), b.prefs.Size(userID))
	if err := b.sender.EditReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID, kb); err != nil {
		b.logger.Warn("keyboard redraw failed",
			slog.Int64("chat_id", cb.Message.Chat.ID),
			slog.String("error", err.Error()),
		)
	}
}
