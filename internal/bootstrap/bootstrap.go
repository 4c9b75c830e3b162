// Package bootstrap provides dependency initialization for the bot.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/lxzugm-boop/lastframe-bot/internal/bot"
	"github.com/lxzugm-boop/lastframe-bot/internal/config"
	"github.com/lxzugm-boop/lastframe-bot/internal/frame"
	"github.com/lxzugm-boop/lastframe-bot/internal/prefs"
	"github.com/lxzugm-boop/lastframe-bot/internal/storage"
	"github.com/lxzugm-boop/lastframe-bot/internal/telegram"
	"github.com/lxzugm-boop/lastframe-bot/internal/transfer"
)

// Compile-time checks that the concrete clients satisfy the bot's ports.
var (
	_ bot.Sender    = (*telegram.Client)(nil)
	_ bot.Fetcher   = (*transfer.Downloader)(nil)
	_ bot.Extractor = (*frame.Extractor)(nil)
)

// Dependencies holds all initialized dependencies for the HTTP server.
type Dependencies struct {
	Bot      *bot.Bot
	Telegram *telegram.Client
}

// NewDependencies creates and initializes all dependencies for the application.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	client, err := telegram.New(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}
	logger.Info("telegram client ready",
		slog.String("username", client.Self()),
	)

	store, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	downloader := transfer.NewDownloader(client, store)

	extractor := frame.NewExtractor(cfg.FFmpegPath,
		frame.WithTimeout(cfg.ExtractTimeout()),
		frame.WithTempDir(store.TempDir()),
	)

	var opts []bot.Option
	if cfg.AdminForwardEnabled() {
		opts = append(opts, bot.WithAdminChat(cfg.AdminChatID))
	}

	b := bot.New(client, downloader, extractor, prefs.NewStore(), store, logger, opts...)

	return &Dependencies{
		Bot:      b,
		Telegram: client,
	}, nil
}

// initStorage creates the appropriate storage backend based on configuration.
func initStorage(cfg *config.Config, logger *slog.Logger) (storage.Storage, error) {
	if cfg.ArchiveEnabled() {
		s3Cfg := storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}
		s3Store, err := storage.NewS3Storage(cfg.TempDir, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("create S3 storage: %w", err)
		}
		logger.Info("frame archive configured",
			slog.String("bucket", cfg.S3Bucket),
			slog.String("region", cfg.S3Region),
		)
		return s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(cfg.TempDir)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	logger.Info("local storage configured",
		slog.String("temp_dir", cfg.TempDir),
	)
	return localStore, nil
}
