package main

import (
	"context"
	"os"

	"github.com/cinevault/cinevault/internal/repositories"
	"github.com/cinevault/cinevault/internal/services"
	"github.com/cinevault/cinevault/internal/session"
	"github.com/cinevault/cinevault/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	if err := shared.LoadEnv(); err != nil {
		logger.Warn("failed to load .env", "error", err)
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}
	shared.ApplyEnv(config)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	store := session.NewStore(repositories.NewSessionRepository(db), logger)
	if err := store.Load(); err != nil {
		// a fresh checkout has no tables yet; setup creates them
		logger.Debug("no persisted session", "error", err)
	}

	tracker := services.NewTrackerClient(config.Backend.BaseURL, store)
	catalog := services.NewCatalogClient(config.Backend.BaseURL, tracker.HTTPClient(), config.Catalog.RateLimit, config.Catalog.Burst)
	api := services.NewRawAPIService(config.Backend.BaseURL, tracker.HTTPClient())

	runner := NewRunner(RunnerOpts{
		Config:  config,
		DB:      db,
		Store:   store,
		Tracker: tracker,
		Catalog: catalog,
		API:     api,
		Cache:   repositories.NewTitleCacheRepository(db),
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "cinevault",
		Usage:    "Track and browse movies & TV shows from your terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
