package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/app"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/bot"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/config"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		zap.NewExample().Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		zap.NewExample().Fatal("Failed to create logger", zap.Error(err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize records and the catalog
	svc, err := app.NewService(ctx, cfg, nil, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog", zap.Error(err))
	}
	defer svc.Store().Close()

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, cfg.Telegram.Timeout, svc, log)
	if err != nil {
		log.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Bot error", zap.Error(err))
	}
	log.Info("Bot stopped")
}
