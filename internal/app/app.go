// Package app wires configuration into a ready catalog service. Both the
// Telegram bot and the CLI start from here.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ranjitdasofficial/kiit-connect-circle/internal/catalog"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/classifier"
	"github.com/ranjitdasofficial/kiit-connect-circle/internal/storage"
	"github.com/ranjitdasofficial/kiit-connect-circle/pkg/config"
)

// NewService loads the records and builds the service. When clock is nil
// the wall clock in the configured timezone is used. With an OpenAI key
// configured, companies the keyword rules do not recognise are tagged with
// an industry before the service starts.
func NewService(ctx context.Context, cfg *config.Config, clock classifier.Clock, logger *zap.Logger) (*catalog.Service, error) {
	if clock == nil {
		loc, err := cfg.Catalog.Location()
		if err != nil {
			return nil, err
		}
		clock = classifier.SystemClock{Location: loc}
	}

	snapshot, err := loadSnapshot(ctx, cfg, clock, logger)
	if err != nil {
		return nil, err
	}

	if cfg.OpenAI.APIKey != "" {
		tagger := classifier.NewGPTClassifier(cfg.OpenAI.APIKey, cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature, logger)
		tagIndustries(ctx, snapshot.Profiles, tagger, logger)
	}

	store := storage.NewMemoryStorage(snapshot)
	return catalog.NewService(store, clock, catalog.Options{
		CurrentUserID: cfg.Catalog.CurrentUserID,
		NewJobDays:    cfg.Catalog.NewJobDays,
	}, logger), nil
}

func loadSnapshot(ctx context.Context, cfg *config.Config, clock classifier.Clock, logger *zap.Logger) (*storage.Snapshot, error) {
	if !cfg.Database.UseInMemory {
		logger.Info("Using PostgreSQL snapshot",
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName))
		pg, err := storage.NewPostgresStorage(ctx, storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer pg.Close()
		return pg.Snapshot(ctx)
	}

	if cfg.Catalog.SeedPath != "" {
		logger.Info("Using seed file", zap.String("path", cfg.Catalog.SeedPath))
		data, err := os.ReadFile(cfg.Catalog.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed: %w", err)
		}
		return storage.LoadSeed(data, clock.Now())
	}

	logger.Info("Using built-in seed data")
	return storage.DefaultSeed(clock.Now())
}
