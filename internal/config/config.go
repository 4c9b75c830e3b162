// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Static errors for configuration validation.
var (
	// ErrBotTokenRequired is returned when BOT_TOKEN is not set.
	ErrBotTokenRequired = errors.New("config: BOT_TOKEN is required")
	// ErrWebhookBaseURLRequired is returned when neither WEBHOOK_BASE_URL
	// nor RENDER_EXTERNAL_URL is set.
	ErrWebhookBaseURLRequired = errors.New("config: WEBHOOK_BASE_URL is required (on Render, RENDER_EXTERNAL_URL is injected automatically)")
)

// WebhookPath is the HTTP path Telegram delivers updates to.
const WebhookPath = "/webhook"

// Config holds all configuration for the bot.
type Config struct {
	// Telegram settings
	BotToken    string `env:"BOT_TOKEN" json:"-"` // Masked in JSON
	AdminChatID int64  `env:"ADMIN_CHAT_ID" json:"admin_chat_id,omitempty"`

	// Webhook settings. WebhookBaseURL wins; RenderExternalURL is the
	// fallback injected by Render.
	WebhookBaseURL    string `env:"WEBHOOK_BASE_URL" json:"webhook_base_url" validate:"omitempty,url"`
	RenderExternalURL string `env:"RENDER_EXTERNAL_URL" json:"-"`

	// Server settings
	Port int `env:"PORT, default=10000" json:"port"`

	// Extraction settings
	TempDir           string `env:"TEMP_DIR" json:"temp_dir"`
	FFmpegPath        string `env:"FFMPEG_PATH" json:"ffmpeg_path,omitempty"`
	ExtractTimeoutSec int    `env:"EXTRACT_TIMEOUT_SEC, default=60" json:"extract_timeout_sec"`

	// Optional S3 frame archive settings
	S3Bucket           string `env:"S3_BUCKET" json:"s3_bucket,omitempty"`
	S3Region           string `env:"S3_REGION" json:"s3_region,omitempty"`
	S3Endpoint         string `env:"S3_ENDPOINT" json:"s3_endpoint,omitempty"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" json:"-"`     // Masked in JSON
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" json:"-"` // Masked in JSON

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables using go-envconfig.
// It returns an error if the bot token or the webhook base URL is missing.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.TempDir == "" {
		cfg.TempDir = filepath.Join(os.TempDir(), "lastframe")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and well-formed.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return ErrBotTokenRequired
	}
	if c.baseURL() == "" {
		return ErrWebhookBaseURLRequired
	}
	if err := validator.New().Var(c.baseURL(), "url"); err != nil {
		return fmt.Errorf("config: webhook base URL %q is not a valid URL: %w", c.baseURL(), err)
	}
	return nil
}

// baseURL resolves the externally reachable base URL with the Render fallback.
func (c *Config) baseURL() string {
	base := strings.TrimSpace(c.WebhookBaseURL)
	if base == "" {
		base = strings.TrimSpace(c.RenderExternalURL)
	}
	return strings.TrimRight(base, "/")
}

// WebhookURL returns the full URL Telegram should deliver updates to.
func (c *Config) WebhookURL() string {
	return c.baseURL() + WebhookPath
}

// ExtractTimeout returns the extraction timeout as a duration.
func (c *Config) ExtractTimeout() time.Duration {
	return time.Duration(c.ExtractTimeoutSec) * time.Second
}

// ArchiveEnabled returns true if the S3 frame archive is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// AdminForwardEnabled returns true if inbound media should be forwarded
// to an operator chat.
func (c *Config) AdminForwardEnabled() bool {
	return c.AdminChatID != 0
}

// NewLogger creates a structured logger based on the configuration.
// When LogFormat is "json", it outputs JSON logs suitable for production.
// Otherwise, it outputs human-readable text logs.
func (c *Config) NewLogger() *slog.Logger {
	level := parseLogLevel(c.LogLevel)

	var handler slog.Handler
	if strings.ToLower(c.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}

// String returns a string representation of the config with sensitive values masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Port: %d, WebhookURL: %s, AdminForward: %t, TempDir: %s, FFmpegPath: %s, ExtractTimeoutSec: %d, S3Bucket: %s, S3Region: %s, LogFormat: %s, LogLevel: %s}",
		c.Port,
		c.WebhookURL(),
		c.AdminForwardEnabled(),
		c.TempDir,
		c.FFmpegPath,
		c.ExtractTimeoutSec,
		c.S3Bucket,
		c.S3Region,
		c.LogFormat,
		c.LogLevel,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
