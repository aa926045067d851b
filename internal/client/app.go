package client

import (
	"context"
	"errors"
	"fmt"

	"gallerysync/internal/adapter"
	"gallerysync/internal/config"
	"gallerysync/internal/logger"
	"gallerysync/internal/media"
	"gallerysync/internal/service"
	"gallerysync/internal/store"
	"gallerysync/internal/tui"
	"gallerysync/internal/workers"
)

// App bundles the wired sync engine and the terminal UI into a
// runnable gallery client.
type App struct {
	controller service.SyncController
	syncJob    service.SyncJob
	settings   store.SettingsStore
	tui        *tui.TUI

	cfg    *config.ClientConfig
	logger *logger.Logger
}

// NewApp wires all client dependencies from the resolved
// configuration: the directory-backed media library, the HTTP cloud
// adapter, the SQLite settings store, the batch runner, and the sync
// controller driving them.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	library := media.NewDirectoryLibrary(cfg.Media.GalleryDir, log)

	cloudAdapter := adapter.NewHTTPCloudAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Token:   cfg.Adapter.Token,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	settings, err := store.NewSQLiteSettingsStore(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create settings store: %w", err)
	}

	batch := workers.NewBatchRunner(workers.BatchRunnerConfig{
		Concurrency:   cfg.Workers.UploadConcurrency,
		RatePerSecond: cfg.Workers.UploadRate,
	}, log)

	controller := service.NewSyncController(library, cloudAdapter, batch, settings, log)

	ui, err := tui.New(controller, log)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{
		controller: controller,
		syncJob:    service.NewAutoSyncJob(controller, settings, log),
		settings:   settings,
		tui:        ui,
		cfg:        cfg,
		logger:     log,
	}, nil
}

// Run starts the background auto-sync job and drives the terminal UI
// until the user quits or the UI fails.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.syncJob.Start(ctx, a.cfg.Workers.SyncInterval)
	defer a.syncJob.Stop()

	defer func() {
		if err := a.settings.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing settings store")
		}
	}()

	if err := a.tui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("gallery client stopped by user")
			return nil
		}
		return fmt.Errorf("tui run: %w", err)
	}

	return nil
}
