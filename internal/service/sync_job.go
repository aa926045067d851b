package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gallerysync/internal/logger"
	"gallerysync/internal/store"
)

type autoSyncJob struct {
	controller SyncController
	settings   store.SettingsStore
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoSyncJob creates a SyncJob that calls controller.UploadAll on a
// ticker while the persisted auto-sync preference is on. The job is
// idle until Start is called.
//
// settings may be nil; the job then runs unconditionally every tick.
func NewAutoSyncJob(controller SyncController, settings store.SettingsStore, log *logger.Logger) SyncJob {
	return &autoSyncJob{controller: controller, settings: settings, log: log}
}

// Start implements SyncJob. A non-positive interval defaults to 5
// minutes.
func (j *autoSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *autoSyncJob) tick(ctx context.Context) {
	if !j.enabled(ctx) {
		return
	}

	err := j.controller.UploadAll(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		// a manual batch is running, skip this tick
	default:
		j.log.Warn().Err(err).Msg("background sync pass failed")
	}
}

func (j *autoSyncJob) enabled(ctx context.Context) bool {
	if j.settings == nil {
		return true
	}

	settings, err := j.settings.Get(ctx)
	if err != nil {
		j.log.Warn().Err(err).Msg("load settings for background sync")
		return false
	}
	return settings.AutoSyncEnabled
}

// Stop implements SyncJob.
func (j *autoSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
