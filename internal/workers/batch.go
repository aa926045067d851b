// SPDX-License-Identifier: Apache-2.0

// Package workers provides the bounded worker pool that fans batch
// operations out across gallery items.
//
// A batch submits every item exactly once, tolerates per-item
// failures, and reports an aggregate [models.BatchResult] whose
// Attempted count always matches the submitted batch, even when the
// context dies mid-dispatch.
package workers

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"gallerysync/internal/logger"
	"gallerysync/models"
)

// ItemOperation is one remote call applied to one item by a batch. On
// success it returns the item's remote location (empty for operations
// that assign none). Failures are reported as data, not control flow.
type ItemOperation func(ctx context.Context, item models.GalleryItem) (string, error)

// ItemOutcome is the resolved result of one item's operation within a
// batch. Exactly one of CloudURL and Err is meaningful.
type ItemOutcome struct {
	Item     models.GalleryItem
	CloudURL string
	Err      *models.SyncError
}

// BatchRunner fans a set of items out to concurrent per-item remote
// calls and aggregates the outcomes.
type BatchRunner interface {
	// RunBatch dispatches op once per item, waits for every invocation
	// to resolve, and returns the aggregate. One item's failure never
	// cancels or blocks its siblings; some items may succeed while
	// others fail.
	//
	// onOutcome, when non-nil, is called once per item in completion
	// order, serially, before RunBatch returns. Result.Failures follows
	// the same completion order.
	//
	// An empty item set is a vacuous success: no calls are made and
	// onOutcome never fires.
	RunBatch(ctx context.Context, items []models.GalleryItem, op ItemOperation, onOutcome func(ItemOutcome)) models.BatchResult
}

// BatchRunnerConfig bounds the fan-out of a batch.
type BatchRunnerConfig struct {
	// Concurrency is the worker pool size. Defaults to 4; always capped
	// at the batch size.
	Concurrency int

	// RatePerSecond throttles dispatches across all workers. Zero means
	// no throttle.
	RatePerSecond float64
}

type batchRunner struct {
	concurrency int
	limiter     *rate.Limiter
	log         *logger.Logger
}

// NewBatchRunner builds the bounded worker pool implementation of
// [BatchRunner].
func NewBatchRunner(cfg BatchRunnerConfig, log *logger.Logger) BatchRunner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	return &batchRunner{concurrency: cfg.Concurrency, limiter: limiter, log: log}
}

func (b *batchRunner) RunBatch(ctx context.Context, items []models.GalleryItem, op ItemOperation, onOutcome func(ItemOutcome)) models.BatchResult {
	if len(items) == 0 {
		return models.BatchResult{}
	}

	workers := b.concurrency
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan models.GalleryItem)
	outcomes := make(chan ItemOutcome)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for item := range jobs {
				outcomes <- b.runOne(ctx, item, op)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, item := range items {
			select {
			case jobs <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// single collector goroutine: outcomes arrive in completion order
	// and onOutcome is never invoked concurrently
	result := models.BatchResult{}
	for outcome := range outcomes {
		result.Attempted++
		if outcome.Err != nil {
			result.Failures = append(result.Failures, models.BatchFailure{
				ItemID: outcome.Item.ID,
				Err:    outcome.Err,
			})
		} else {
			result.Succeeded++
		}
		if onOutcome != nil {
			onOutcome(outcome)
		}
	}

	// items never dispatched because the context died still count as
	// attempted failures so Attempted matches the submitted batch
	for missing := result.Attempted; missing < len(items); missing++ {
		result.Attempted++
		result.Failures = append(result.Failures, models.BatchFailure{
			ItemID: items[missing].ID,
			Err:    models.NewSyncError(models.ErrKindNetwork, "batch cancelled before dispatch"),
		})
	}

	b.log.Debug().
		Int("attempted", result.Attempted).
		Int("succeeded", result.Succeeded).
		Int("failed", len(result.Failures)).
		Msg("batch resolved")

	return result
}

func (b *batchRunner) runOne(ctx context.Context, item models.GalleryItem, op ItemOperation) ItemOutcome {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return ItemOutcome{Item: item, Err: models.AsSyncError(err, models.ErrKindNetwork)}
		}
	}

	location, err := op(ctx, item)
	if err != nil {
		return ItemOutcome{Item: item, Err: models.AsSyncError(err, models.ErrKindNetwork)}
	}
	return ItemOutcome{Item: item, CloudURL: location}
}
