package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	evilgringpt "github.com/evilgrin/evilgringpt"
	"github.com/evilgrin/evilgringpt/internal/ai"
	"github.com/evilgrin/evilgringpt/internal/audit"
	"github.com/evilgrin/evilgringpt/internal/config"
	"github.com/evilgrin/evilgringpt/internal/handler"
	"github.com/evilgrin/evilgringpt/internal/imagehost"
	"github.com/evilgrin/evilgringpt/internal/middleware"
	"github.com/evilgrin/evilgringpt/internal/repository"
	"github.com/evilgrin/evilgringpt/internal/router"
	"github.com/evilgrin/evilgringpt/internal/session"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := setupRecorder(ctx, cfg)

	client := ai.New(cfg)
	clients := router.Clients{
		Chat:   client,
		Image:  client,
		Speech: client,
		Vision: client,
	}

	store := session.NewStore()
	rt := router.New(cfg, clients, recorder)
	uploader := imagehost.New(cfg.ImageHostKey, cfg.ImageHostURL)

	var h *handler.Handler

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.WithIdentity(),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil || update.Message == nil {
				return
			}
			if len(update.Message.Photo) > 0 {
				h.HandlePhoto(ctx, b, update)
				return
			}
			if update.Message.Text != "" {
				h.HandleText(ctx, b, update)
			}
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	h = handler.New(handler.Deps{
		Bot:      b,
		Store:    store,
		Router:   rt,
		Uploader: uploader,
	})
	h.Register()

	slog.Info("starting bot",
		"chat_models", len(cfg.ChatModels),
		"image_models", len(cfg.ImageModels),
		"voices", len(cfg.Voices),
		"vision_models", len(cfg.VisionModels),
	)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}

// setupRecorder picks the audit destination: Postgres when configured and
// reachable, in-memory otherwise.
func setupRecorder(ctx context.Context, cfg *config.Config) router.Recorder {
	if cfg.DatabaseURL == "" {
		slog.Info("audit log in memory only")
		return audit.NewMemoryRecorder()
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database unavailable, falling back to in-memory audit", "error", err)
		return audit.NewMemoryRecorder()
	}

	migrationsFS, err := fs.Sub(evilgringpt.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("audit log in postgres")
	return audit.NewPostgresRecorder(pool)
}
