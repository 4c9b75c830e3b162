package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
	"github.com/lxzugm-boop/lastframe-bot/internal/storage"
	"github.com/lxzugm-boop/lastframe-bot/internal/transfer"
)

// mockSender implements Sender for testing.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendMessage(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}

func (m *mockSender) SendPhoto(chatID int64, path, caption string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	args := m.Called(chatID, path, caption, keyboard)
	return args.Error(0)
}

func (m *mockSender) EditReplyMarkup(chatID int64, messageID int, keyboard tgbotapi.InlineKeyboardMarkup) error {
	args := m.Called(chatID, messageID, keyboard)
	return args.Error(0)
}

func (m *mockSender) AnswerCallback(callbackID, text string, alert bool) error {
	args := m.Called(callbackID, text, alert)
	return args.Error(0)
}

func (m *mockSender) SendChatAction(chatID int64, action string) error {
	args := m.Called(chatID, action)
	return args.Error(0)
}

func (m *mockSender) SendVideoByID(chatID int64, fileID string) error {
	args := m.Called(chatID, fileID)
	return args.Error(0)
}

func (m *mockSender) SendVideoNoteByID(chatID int64, fileID string) error {
	args := m.Called(chatID, fileID)
	return args.Error(0)
}

func (m *mockSender) SendAnimationByID(chatID int64, fileID string) error {
	args := m.Called(chatID, fileID)
	return args.Error(0)
}

// mockFetcher implements Fetcher for testing.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchMedia(ctx context.Context, media transfer.Media) (string, error) {
	args := m.Called(ctx, media)
	return args.String(0), args.Error(1)
}

func (m *mockFetcher) FetchByFileID(ctx context.Context, fileID string) (string, error) {
	args := m.Called(ctx, fileID)
	return args.String(0), args.Error(1)
}

// mockExtractor implements Extractor for testing.
type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) ExtractLastFrame(ctx context.Context, inputPath, rawFormat, rawSize string) (string, error) {
	args := m.Called(ctx, inputPath, rawFormat, rawSize)
	return args.String(0), args.Error(1)
}

type botFixture struct {
	bot       *Bot
	sender    *mockSender
	fetcher   *mockFetcher
	extractor *mockExtractor
	prefs     *prefs.Store
	dir       string
}

func newBotFixture(t *testing.T, opts ...Option) *botFixture {
	t.Helper()

	dir := t.TempDir()
	scratch, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	f := &botFixture{
		sender:    &mockSender{},
		fetcher:   &mockFetcher{},
		extractor: &mockExtractor{},
		prefs:     prefs.NewStore(),
		dir:       dir,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.bot = New(f.sender, f.fetcher, f.extractor, f.prefs, scratch, logger, opts...)
	return f
}

// writeScratchFile creates a file the pipeline is expected to clean up.
func (f *botFixture) writeScratchFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	return path
}

func videoMessage(fileID string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 7},
		Chat:      &tgbotapi.Chat{ID: 11},
		Video:     &tgbotapi.Video{FileID: fileID},
	}
}

func commandMessage(cmd string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 7},
		Chat:      &tgbotapi.Chat{ID: 11},
		Text:      cmd,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(cmd)},
		},
	}
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb1",
		From: &tgbotapi.User{ID: 7},
		Message: &tgbotapi.Message{
			MessageID: 42,
			Chat:      &tgbotapi.Chat{ID: 11},
		},
		Data: data,
	}
}

func TestStartCommand(t *testing.T) {
	f := newBotFixture(t)
	f.sender.On("SendMessage", int64(11), startText).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: commandMessage("/start")})

	f.sender.AssertExpectations(t)
}

func TestUnsupportedMessageGetsHint(t *testing.T) {
	f := newBotFixture(t)
	f.sender.On("SendMessage", int64(11), fallbackText).Return(nil)

	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 7},
		Chat:      &tgbotapi.Chat{ID: 11},
		Text:      "hello",
	}
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: msg})

	f.sender.AssertExpectations(t)
	f.fetcher.AssertNotCalled(t, "FetchMedia", mock.Anything, mock.Anything)
}

func TestMediaPipelineSuccess(t *testing.T) {
	f := newBotFixture(t)
	videoPath := f.writeScratchFile(t, "input_1.mp4")
	framePath := f.writeScratchFile(t, "last_frame_1.png")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchMedia", mock.Anything, transfer.Media{Kind: transfer.KindVideo, FileID: "vid1"}).Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").Return(framePath, nil)
	f.sender.On("SendPhoto", int64(11), framePath, mock.MatchedBy(func(caption string) bool {
		return strings.Contains(caption, newFrameLead) &&
			strings.Contains(caption, "Формат: PNG") &&
			strings.Contains(caption, "оригинальное разрешение")
	}), mock.Anything).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	f.sender.AssertExpectations(t)
	f.fetcher.AssertExpectations(t)
	f.extractor.AssertExpectations(t)

	// Both transient files are gone and the file_id is remembered.
	assert.NoFileExists(t, videoPath)
	assert.NoFileExists(t, framePath)
	fileID, ok := f.prefs.LastFileID(7)
	assert.True(t, ok)
	assert.Equal(t, "vid1", fileID)
}

func TestMediaDownloadFailure(t *testing.T) {
	f := newBotFixture(t)

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return("", errors.New("telegram unreachable"))
	f.sender.On("SendMessage", int64(11), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "Не получилось обработать видео") &&
			strings.Contains(text, "telegram unreachable")
	})).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	f.sender.AssertExpectations(t)
	f.sender.AssertNotCalled(t, "SendPhoto", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// The file_id is stored even though processing failed.
	fileID, ok := f.prefs.LastFileID(7)
	assert.True(t, ok)
	assert.Equal(t, "vid1", fileID)
}

func TestMediaExtractFailureCleansVideo(t *testing.T) {
	f := newBotFixture(t)
	videoPath := f.writeScratchFile(t, "input_2.mp4")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").
		Return("", errors.New("ffmpeg exit 1"))
	f.sender.On("SendMessage", int64(11), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "ffmpeg exit 1")
	})).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	f.sender.AssertExpectations(t)
	assert.NoFileExists(t, videoPath)
}

func TestRegenerateWithoutStoredVideo(t *testing.T) {
	f := newBotFixture(t)
	f.sender.On("AnswerCallback", "cb1", regenNothingText, true).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("regen")})

	f.sender.AssertExpectations(t)
	f.fetcher.AssertNotCalled(t, "FetchByFileID", mock.Anything, mock.Anything)
	f.extractor.AssertNotCalled(t, "ExtractLastFrame", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegenerateUsesStoredFileAndCurrentSettings(t *testing.T) {
	f := newBotFixture(t)
	f.prefs.SetLastFileID(7, "vid9")
	f.prefs.SetFormat(7, "jpg")
	f.prefs.SetSize(7, "1024")

	videoPath := f.writeScratchFile(t, "input_3.mp4")
	framePath := f.writeScratchFile(t, "last_frame_3.jpg")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchByFileID", mock.Anything, "vid9").Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "jpg", "1024").Return(framePath, nil)
	f.sender.On("SendPhoto", int64(11), framePath, mock.MatchedBy(func(caption string) bool {
		return strings.Contains(caption, regenFrameLead) &&
			strings.Contains(caption, "Формат: JPG") &&
			strings.Contains(caption, "большая сторона 1024 px")
	}), mock.Anything).Return(nil)
	f.sender.On("AnswerCallback", "cb1", regenDoneAck, false).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("regen")})

	f.sender.AssertExpectations(t)
	assert.NoFileExists(t, videoPath)
	assert.NoFileExists(t, framePath)
}

func TestRegenerateFailureAlerts(t *testing.T) {
	f := newBotFixture(t)
	f.prefs.SetLastFileID(7, "vid9")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchByFileID", mock.Anything, "vid9").Return("", errors.New("gone"))
	f.sender.On("AnswerCallback", "cb1", regenFailAlert, true).Return(nil)
	f.sender.On("SendMessage", int64(11), mock.MatchedBy(func(text string) bool {
		return strings.Contains(text, "gone")
	})).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("regen")})

	f.sender.AssertExpectations(t)
}

func TestFormatCallback(t *testing.T) {
	f := newBotFixture(t)

	f.sender.On("EditReplyMarkup", int64(11), 42, mock.Anything).Return(nil)
	f.sender.On("AnswerCallback", "cb1", "Формат установлен: WEBP", false).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("fmt:webp")})

	f.sender.AssertExpectations(t)
	assert.Equal(t, prefs.FormatWEBP, f.prefs.Format(7))
}

func TestSizeCallback(t *testing.T) {
	f := newBotFixture(t)

	f.sender.On("EditReplyMarkup", int64(11), 42, mock.Anything).Return(nil)
	f.sender.On("AnswerCallback", "cb1", "Размер установлен: квадрат 1024×1024 (кроп по центру)", false).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("size:1024sq")})

	f.sender.AssertExpectations(t)
	assert.Equal(t, prefs.Size1024Sq, f.prefs.Size(7))
}

func TestUnknownCallbackJustAcks(t *testing.T) {
	f := newBotFixture(t)
	f.sender.On("AnswerCallback", "cb1", "", false).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: callback("bogus")})

	f.sender.AssertExpectations(t)
}

func TestAdminForward(t *testing.T) {
	tests := []struct {
		name   string
		msg    *tgbotapi.Message
		method string
	}{
		{
			name:   "video",
			msg:    videoMessage("vid1"),
			method: "SendVideoByID",
		},
		{
			name: "video note",
			msg: &tgbotapi.Message{
				MessageID: 1,
				From:      &tgbotapi.User{ID: 7},
				Chat:      &tgbotapi.Chat{ID: 11},
				VideoNote: &tgbotapi.VideoNote{FileID: "vid1"},
			},
			method: "SendVideoNoteByID",
		},
		{
			name: "animation",
			msg: &tgbotapi.Message{
				MessageID: 1,
				From:      &tgbotapi.User{ID: 7},
				Chat:      &tgbotapi.Chat{ID: 11},
				Animation: &tgbotapi.Animation{FileID: "vid1"},
			},
			method: "SendAnimationByID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBotFixture(t, WithAdminChat(99))
			framePath := f.writeScratchFile(t, "last_frame_a.png")
			videoPath := f.writeScratchFile(t, "input_a.mp4")

			f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
			f.sender.On(tt.method, int64(99), "vid1").Return(nil)
			f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return(videoPath, nil)
			f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").Return(framePath, nil)
			f.sender.On("SendPhoto", int64(11), framePath, mock.Anything, mock.Anything).Return(nil)

			f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: tt.msg})

			f.sender.AssertExpectations(t)
		})
	}
}

func TestAdminForwardFailureDoesNotBlockReply(t *testing.T) {
	f := newBotFixture(t, WithAdminChat(99))
	framePath := f.writeScratchFile(t, "last_frame_b.png")
	videoPath := f.writeScratchFile(t, "input_b.mp4")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.sender.On("SendVideoByID", int64(99), "vid1").Return(errors.New("forbidden"))
	f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").Return(framePath, nil)
	f.sender.On("SendPhoto", int64(11), framePath, mock.Anything, mock.Anything).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	f.sender.AssertExpectations(t)
}

// TestFreshUserThenJPGThenRegenerate walks the full flow: a user with no
// stored settings submits a video, switches to JPG via the keyboard, and
// regenerates. The first caption advertises PNG at original resolution,
// the second JPG at the same size.
func TestFreshUserThenJPGThenRegenerate(t *testing.T) {
	f := newBotFixture(t)
	videoPath1 := f.writeScratchFile(t, "input_e2e_1.mp4")
	framePath1 := f.writeScratchFile(t, "last_frame_e2e_1.png")
	videoPath2 := f.writeScratchFile(t, "input_e2e_2.mp4")
	framePath2 := f.writeScratchFile(t, "last_frame_e2e_2.jpg")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.sender.On("EditReplyMarkup", int64(11), 42, mock.Anything).Return(nil)
	f.sender.On("AnswerCallback", "cb1", "Формат установлен: JPG", false).Return(nil)
	f.sender.On("AnswerCallback", "cb1", regenDoneAck, false).Return(nil)

	f.fetcher.On("FetchMedia", mock.Anything, transfer.Media{Kind: transfer.KindVideo, FileID: "vid1"}).Return(videoPath1, nil).Once()
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath1, "png", "orig").Return(framePath1, nil).Once()
	f.sender.On("SendPhoto", int64(11), framePath1, mock.MatchedBy(func(caption string) bool {
		return strings.Contains(caption, "Формат: PNG") &&
			strings.Contains(caption, "оригинальное разрешение")
	}), mock.Anything).Return(nil).Once()

	f.fetcher.On("FetchByFileID", mock.Anything, "vid1").Return(videoPath2, nil).Once()
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath2, "jpg", "orig").Return(framePath2, nil).Once()
	f.sender.On("SendPhoto", int64(11), framePath2, mock.MatchedBy(func(caption string) bool {
		return strings.Contains(caption, "Формат: JPG") &&
			strings.Contains(caption, "оригинальное разрешение")
	}), mock.Anything).Return(nil).Once()

	ctx := context.Background()
	f.bot.HandleUpdate(ctx, tgbotapi.Update{Message: videoMessage("vid1")})
	f.bot.HandleUpdate(ctx, tgbotapi.Update{CallbackQuery: callback("fmt:jpg")})
	f.bot.HandleUpdate(ctx, tgbotapi.Update{CallbackQuery: callback("regen")})

	f.sender.AssertExpectations(t)
	f.fetcher.AssertExpectations(t)
	f.extractor.AssertExpectations(t)

	for _, path := range []string{videoPath1, framePath1, videoPath2, framePath2} {
		assert.NoFileExists(t, path)
	}
}

// Crafted webhook payloads can omit fields Telegram always sends. None
// of them may panic the update handler.
func TestDegenerateUpdatesAreDropped(t *testing.T) {
	tests := []struct {
		name   string
		update tgbotapi.Update
	}{
		{
			name: "command without chat",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				MessageID: 1,
				From:      &tgbotapi.User{ID: 1},
				Text:      "/start",
				Entities: []tgbotapi.MessageEntity{
					{Type: "bot_command", Offset: 0, Length: 6},
				},
			}},
		},
		{
			name: "video without chat",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				MessageID: 1,
				From:      &tgbotapi.User{ID: 1},
				Video:     &tgbotapi.Video{FileID: "vid1"},
			}},
		},
		{
			name: "message without sender",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				MessageID: 1,
				Chat:      &tgbotapi.Chat{ID: 11},
				Text:      "hello",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBotFixture(t)

			f.bot.HandleUpdate(context.Background(), tt.update)

			f.sender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
			f.fetcher.AssertNotCalled(t, "FetchMedia", mock.Anything, mock.Anything)
		})
	}
}

func TestCallbackWithoutSenderIsDropped(t *testing.T) {
	f := newBotFixture(t)
	f.sender.On("AnswerCallback", "cb1", "", false).Return(nil)

	cb := callback("fmt:jpg")
	cb.From = nil
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: cb})

	f.sender.AssertExpectations(t)
	f.sender.AssertNotCalled(t, "EditReplyMarkup", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, prefs.DefaultFormat, f.prefs.Format(7))
}

func TestRegenerateCallbackWithoutChatAlerts(t *testing.T) {
	f := newBotFixture(t)
	f.prefs.SetLastFileID(7, "vid9")
	f.sender.On("AnswerCallback", "cb1", regenNothingText, true).Return(nil)

	cb := callback("regen")
	cb.Message.Chat = nil
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: cb})

	f.sender.AssertExpectations(t)
	f.fetcher.AssertNotCalled(t, "FetchByFileID", mock.Anything, mock.Anything)
}

// recordingArchive wraps the scratch storage and records archive calls,
// noting whether the reply had already gone out.
type recordingArchive struct {
	storage.Storage
	keys       []string
	afterReply bool
	replySent  *bool
}

func (a *recordingArchive) ArchiveFrame(ctx context.Context, key string, data io.Reader) (string, error) {
	a.keys = append(a.keys, key)
	a.afterReply = *a.replySent
	return "archive://" + key, nil
}

func newArchiveFixture(t *testing.T) (*botFixture, *recordingArchive, *bool) {
	t.Helper()

	dir := t.TempDir()
	local, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	replySent := false
	archive := &recordingArchive{Storage: local, replySent: &replySent}

	f := &botFixture{
		sender:    &mockSender{},
		fetcher:   &mockFetcher{},
		extractor: &mockExtractor{},
		prefs:     prefs.NewStore(),
		dir:       dir,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.bot = New(f.sender, f.fetcher, f.extractor, f.prefs, archive, logger)
	return f, archive, &replySent
}

func TestFrameArchivedAfterReply(t *testing.T) {
	f, archive, replySent := newArchiveFixture(t)
	videoPath := f.writeScratchFile(t, "input_arc.mp4")
	framePath := f.writeScratchFile(t, "last_frame_arc.png")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").Return(framePath, nil)
	f.sender.On("SendPhoto", int64(11), framePath, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { *replySent = true }).
		Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	require.Len(t, archive.keys, 1)
	assert.Equal(t, "frames/7/last_frame_arc.png", archive.keys[0])
	assert.True(t, archive.afterReply)
}

func TestNoArchiveWhenReplyFails(t *testing.T) {
	f, archive, _ := newArchiveFixture(t)
	videoPath := f.writeScratchFile(t, "input_arc2.mp4")
	framePath := f.writeScratchFile(t, "last_frame_arc2.png")

	f.sender.On("SendChatAction", int64(11), tgbotapi.ChatUploadPhoto).Return(nil)
	f.fetcher.On("FetchMedia", mock.Anything, mock.Anything).Return(videoPath, nil)
	f.extractor.On("ExtractLastFrame", mock.Anything, videoPath, "png", "orig").Return(framePath, nil)
	f.sender.On("SendPhoto", int64(11), framePath, mock.Anything, mock.Anything).
		Return(errors.New("chat not found"))
	f.sender.On("SendMessage", int64(11), mock.Anything).Return(nil)

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{Message: videoMessage("vid1")})

	assert.Empty(t, archive.keys)
	assert.NoFileExists(t, framePath)
}

func TestSettingsKeyboard(t *testing.T) {
	kb := settingsKeyboard(prefs.FormatJPG, prefs.Size1024Sq)

	require.Len(t, kb.InlineKeyboard, 3)
	require.Len(t, kb.InlineKeyboard[0], 3)
	require.Len(t, kb.InlineKeyboard[1], 3)
	require.Len(t, kb.InlineKeyboard[2], 1)

	assert.Equal(t, "PNG", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "JPG ✅", kb.InlineKeyboard[0][1].Text)
	assert.Equal(t, "fmt:webp", *kb.InlineKeyboard[0][2].CallbackData)

	assert.Equal(t, "Оригинал", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "Квадрат 1024×1024 ✅", kb.InlineKeyboard[1][2].Text)
	assert.Equal(t, "size:1024sq", *kb.InlineKeyboard[1][2].CallbackData)

	assert.Equal(t, "🔁 Перегенерировать", kb.InlineKeyboard[2][0].Text)
	assert.Equal(t, "regen", *kb.InlineKeyboard[2][0].CallbackData)
}
