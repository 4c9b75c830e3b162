// Package telegram wraps the Telegram Bot API client used by the bot.
// It covers the handful of operations the bot needs: webhook
// registration, media download by file_id, and the send/edit/ack calls
// behind replies and the settings keyboard.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Static errors for Telegram client operations.
var (
	// ErrTokenRequired is returned when the bot token is not provided.
	ErrTokenRequired = errors.New("telegram: bot token is required")
	// ErrFileDownloadFailed is returned when the file server responds
	// with a non-200 status.
	ErrFileDownloadFailed = errors.New("telegram: file download failed")
)

// Client is a thin wrapper over tgbotapi.BotAPI.
type Client struct {
	api          *tgbotapi.BotAPI
	token        string
	httpClient   *http.Client
	endpoint     string
	fileEndpoint string
}

// Option is a function that configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for API calls and downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithEndpoint sets a custom Bot API endpoint (printf format with two
// %s verbs, token and method), mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(cl *Client) {
		cl.endpoint = endpoint
	}
}

// WithFileEndpoint sets a custom file-download endpoint (printf format
// with two %s verbs, token and file path), mainly for tests.
func WithFileEndpoint(endpoint string) Option {
	return func(cl *Client) {
		cl.fileEndpoint = endpoint
	}
}

// New creates a Telegram client and verifies the token with a getMe call.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	c := &Client{
		token:        token,
		httpClient:   &http.Client{Timeout: 90 * time.Second},
		endpoint:     tgbotapi.APIEndpoint,
		fileEndpoint: tgbotapi.FileEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}

	api, err := tgbotapi.NewBotAPIWithClient(token, c.endpoint, c.httpClient)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot API: %w", err)
	}
	c.api = api

	return c, nil
}

// Self returns the bot's own username.
func (c *Client) Self() string {
	return c.api.Self.UserName
}

// RegisterWebhook points Telegram's update delivery at the given URL.
func (c *Client) RegisterWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("telegram: build webhook config: %w", err)
	}
	if _, err := c.api.Request(wh); err != nil {
		return fmt.Errorf("telegram: set webhook: %w", err)
	}
	return nil
}

// DownloadFile resolves fileID through getFile and streams the file
// contents into w.
func (c *Client) DownloadFile(ctx context.Context, fileID string, w io.Writer) error {
	file, err := c.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return fmt.Errorf("telegram: get file: %w", err)
	}

	url := fmt.Sprintf(c.fileEndpoint, c.token, file.FilePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("telegram: create download request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: download request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrFileDownloadFailed, resp.StatusCode)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("telegram: read download: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a chat.
func (c *Client) SendMessage(chatID int64, text string) error {
	_, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SendPhoto sends a local image file as a photo with a caption and an
// inline keyboard attached.
func (c *Client) SendPhoto(chatID int64, path, caption string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	photo.ReplyMarkup = keyboard
	_, err := c.api.Send(photo)
	return err
}

// EditReplyMarkup replaces the inline keyboard on an existing message.
func (c *Client) EditReplyMarkup(chatID int64, messageID int, keyboard tgbotapi.InlineKeyboardMarkup) error {
	_, err := c.api.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, keyboard))
	return err
}

// AnswerCallback acknowledges a callback query, optionally as an alert.
func (c *Client) AnswerCallback(callbackID, text string, alert bool) error {
	var cb tgbotapi.CallbackConfig
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	} else {
		cb = tgbotapi.NewCallback(callbackID, text)
	}
	_, err := c.api.Request(cb)
	return err
}

// SendChatAction shows a typing-style status in the chat, e.g. "upload_photo".
func (c *Client) SendChatAction(chatID int64, action string) error {
	_, err := c.api.Request(tgbotapi.NewChatAction(chatID, action))
	return err
}

// SendVideoByID re-sends a video to a chat by its file_id.
func (c *Client) SendVideoByID(chatID int64, fileID string) error {
	_, err := c.api.Send(tgbotapi.NewVideo(chatID, tgbotapi.FileID(fileID)))
	return err
}

// SendVideoNoteByID re-sends a video note to a chat by its file_id.
func (c *Client) SendVideoNoteByID(chatID int64, fileID string) error {
	_, err := c.api.Send(tgbotapi.NewVideoNote(chatID, 0, tgbotapi.FileID(fileID)))
	return err
}

// SendAnimationByID re-sends an animation to a chat by its file_id.
func (c *Client) SendAnimationByID(chatID int64, fileID string) error {
	_, err := c.api.Send(tgbotapi.NewAnimation(chatID, tgbotapi.FileID(fileID)))
	return err
}
