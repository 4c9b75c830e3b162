package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
	"github.com/lxzugm-boop/lastframe-bot/internal/storage"
	"github.com/lxzugm-boop/lastframe-bot/internal/transfer"
)

const (
	newFrameLead   = "Последний кадр из твоего видео."
	regenFrameLead = "Перегенерированный последний кадр."

	processFailText = "Не получилось обработать видео 😔\nОшибка: %v"

	regenDoneAck     = "Готово! Перегенерировал с текущими настройками ✅"
	regenFailAlert   = "Не получилось перегенерировать 😔"
	regenNothingText = "Нет сохранённого видео — пришли сначала ролик 🎥"
)

// handleMedia runs the full pipeline for a freshly received video. The
// file_id is remembered before any download work so that a later
// regenerate press works even if this run fails.
func (b *Bot) handleMedia(ctx context.Context, msg *tgbotapi.Message, media transfer.Media) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	_ = b.sender.SendChatAction(chatID, tgbotapi.ChatUploadPhoto)

	b.prefs.SetLastFileID(userID, media.FileID)
	b.forwardToAdmin(media)

	format := b.prefs.Format(userID)
	size := b.prefs.Size(userID)

	videoPath, err := b.fetcher.FetchMedia(ctx, media)
	if err != nil {
		b.logger.Error("media download failed",
			slog.Int64("user_id", userID),
			slog.String("kind", media.Kind.String()),
			slog.String("error", err.Error()),
		)
		b.reply(chatID, fmt.Sprintf(processFailText, err))
		return
	}

	framePath, err := b.produceFrame(ctx, videoPath, format, size)
	if err != nil {
		b.logger.Error("frame pipeline failed",
			slog.Int64("user_id", userID),
			slog.String("kind", media.Kind.String()),
			slog.String("error", err.Error()),
		)
		b.reply(chatID, fmt.Sprintf(processFailText, err))
		return
	}
	defer b.cleanup(ctx, framePath)

	caption := frameCaption(newFrameLead, format, size)
	if err := b.sender.SendPhoto(chatID, framePath, caption, settingsKeyboard(format, size)); err != nil {
		b.logger.Error("send photo failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		b.reply(chatID, fmt.Sprintf(processFailText, err))
		return
	}

	b.archiveFrame(ctx, userID, framePath)
}

// handleRegenerate re-runs extraction for the user's last stored file_id
// with their current settings. Without a stored file_id it answers with
// an alert and touches neither the network nor the filesystem.
func (b *Bot) handleRegenerate(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID

	fileID, ok := b.prefs.LastFileID(userID)
	if !ok || cb.Message == nil || cb.Message.Chat == nil {
		_ = b.sender.AnswerCallback(cb.ID, regenNothingText, true)
		return
	}
	chatID := cb.Message.Chat.ID

	_ = b.sender.SendChatAction(chatID, tgbotapi.ChatUploadPhoto)

	format := b.prefs.Format(userID)
	size := b.prefs.Size(userID)

	videoPath, err := b.fetcher.FetchByFileID(ctx, fileID)
	if err != nil {
		b.logger.Error("regenerate download failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		_ = b.sender.AnswerCallback(cb.ID, regenFailAlert, true)
		b.reply(chatID, fmt.Sprintf(processFailText, err))
		return
	}

	framePath, err := b.produceFrame(ctx, videoPath, format, size)
	if err != nil {
		b.logger.Error("regenerate failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		_ = b.sender.AnswerCallback(cb.ID, regenFailAlert, true)
		b.reply(chatID, fmt.Sprintf(processFailText, err))
		return
	}
	defer b.cleanup(ctx, framePath)

	caption := frameCaption(regenFrameLead, format, size)
	if err := b.sender.SendPhoto(chatID, framePath, caption, settingsKeyboard(format, size)); err != nil {
		b.logger.Error("send photo failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		_ = b.sender.AnswerCallback(cb.ID, regenFailAlert, true)
		return
	}

	b.archiveFrame(ctx, userID, framePath)
	_ = b.sender.AnswerCallback(cb.ID, regenDoneAck, false)
}

// produceFrame extracts the last frame of an already-downloaded video,
// removing the video before returning. The caller owns the frame file.
func (b *Bot) produceFrame(ctx context.Context, videoPath string, format prefs.Format, size prefs.Size) (string, error) {
	defer b.cleanup(ctx, videoPath)

	framePath, err := b.extractor.ExtractLastFrame(ctx, videoPath, string(format), string(size))
	if err != nil {
		return "", err
	}

	return framePath, nil
}

// forwardToAdmin re-sends the inbound media to the operator chat by
// file_id. Failures are logged and never reach the user.
func (b *Bot) forwardToAdmin(media transfer.Media) {
	if b.adminChatID == 0 {
		return
	}

	var err error
	switch media.Kind {
	case transfer.KindVideoNote:
		err = b.sender.SendVideoNoteByID(b.adminChatID, media.FileID)
	case transfer.KindAnimation:
		err = b.sender.SendAnimationByID(b.adminChatID, media.FileID)
	default:
		err = b.sender.SendVideoByID(b.adminChatID, media.FileID)
	}
	if err != nil {
		b.logger.Warn("admin forward failed",
			slog.Int64("admin_chat_id", b.adminChatID),
			slog.String("error", err.Error()),
		)
	}
}

// archiveFrame uploads a copy of the frame to the configured archive, if
// any. Best effort; the reply does not depend on it.
func (b *Bot) archiveFrame(ctx context.Context, userID int64, framePath string) {
	f, err := os.Open(framePath)
	if err != nil {
		b.logger.Warn("archive open failed", slog.String("error", err.Error()))
		return
	}
	defer f.Close()

	key := fmt.Sprintf("frames/%d/%s", userID, filepath.Base(framePath))
	if _, err := b.store.ArchiveFrame(ctx, key, f); err != nil {
		if errors.Is(err, storage.ErrArchiveNotConfigured) {
			return
		}
		b.logger.Warn("archive upload failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// cleanup removes transient files, logging rather than propagating
// failures so reply paths stay unaffected.
func (b *Bot) cleanup(ctx context.Context, paths ...string) {
	if err := b.store.CleanupTemp(context.WithoutCancel(ctx), paths); err != nil {
		b.logger.Warn("temp cleanup failed", slog.String("error", err.Error()))
	}
}
