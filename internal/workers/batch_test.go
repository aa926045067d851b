package workers

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallerysync/internal/logger"
	"gallerysync/models"
)

func batchItems(n int) []models.GalleryItem {
	items := make([]models.GalleryItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.GalleryItem{ID: fmt.Sprintf("item-%d", i)})
	}
	return items
}

func TestRunBatch_AllSucceed(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{}, logger.Nop())
	items := batchItems(5)

	var calls atomic.Int64
	result := runner.RunBatch(context.Background(), items, func(_ context.Context, item models.GalleryItem) (string, error) {
		calls.Add(1)
		return "https://cloud/files/" + item.ID, nil
	}, nil)

	assert.Equal(t, int64(5), calls.Load())
	assert.Equal(t, 5, result.Attempted)
	assert.Equal(t, 5, result.Succeeded)
	assert.False(t, result.Failed())
	assert.Nil(t, result.FirstFailure())
}

func TestRunBatch_CountsAlwaysAddUp(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 3}, logger.Nop())
	items := batchItems(17)

	result := runner.RunBatch(context.Background(), items, func(_ context.Context, item models.GalleryItem) (string, error) {
		if item.ID[len(item.ID)-1]%3 == 0 {
			return "", models.NewSyncError(models.ErrKindUploadFailed, "rejected")
		}
		return "u", nil
	}, nil)

	assert.Equal(t, len(items), result.Attempted)
	assert.Equal(t, len(items), result.Succeeded+len(result.Failures))
}

func TestRunBatch_EmptySetIsVacuousSuccess(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{}, logger.Nop())

	called := false
	result := runner.RunBatch(context.Background(), nil, func(_ context.Context, _ models.GalleryItem) (string, error) {
		called = true
		return "", nil
	}, func(ItemOutcome) { called = true })

	assert.False(t, called, "no remote calls and no outcomes for an empty batch")
	assert.Equal(t, 0, result.Attempted)
	assert.Equal(t, 0, result.Succeeded)
	assert.Empty(t, result.Failures)
}

func TestRunBatch_OneFailureNeverCancelsSiblings(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 1}, logger.Nop())
	items := batchItems(3)

	result := runner.RunBatch(context.Background(), items, func(_ context.Context, item models.GalleryItem) (string, error) {
		if item.ID == "item-1" {
			return "", models.NewSyncError(models.ErrKindNetwork, "connection reset")
		}
		return "u", nil
	}, nil)

	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "item-1", result.Failures[0].ItemID)
	assert.ErrorIs(t, result.Failures[0].Err, models.NewSyncError(models.ErrKindNetwork, ""))
}

func TestRunBatch_OutcomesArriveInCompletionOrder(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 1}, logger.Nop())
	items := batchItems(4)

	var order []string
	result := runner.RunBatch(context.Background(), items, func(_ context.Context, item models.GalleryItem) (string, error) {
		if item.ID == "item-0" || item.ID == "item-2" {
			return "", models.NewSyncError(models.ErrKindUploadFailed, "nope")
		}
		return "u", nil
	}, func(outcome ItemOutcome) {
		order = append(order, outcome.Item.ID)
	})

	// one worker processes the batch sequentially, so completion order
	// equals submission order and Failures must follow it
	assert.Equal(t, []string{"item-0", "item-1", "item-2", "item-3"}, order)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "item-0", result.Failures[0].ItemID)
	assert.Equal(t, "item-2", result.Failures[1].ItemID)
}

func TestRunBatch_ConcurrencyIsBounded(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 2}, logger.Nop())
	items := batchItems(12)

	var current, peak atomic.Int64
	var mu sync.Mutex
	result := runner.RunBatch(context.Background(), items, func(_ context.Context, _ models.GalleryItem) (string, error) {
		n := current.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		defer current.Add(-1)
		return "u", nil
	}, nil)

	assert.Equal(t, 12, result.Succeeded)
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestRunBatch_NonSyncErrorsAreCoerced(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 1}, logger.Nop())

	result := runner.RunBatch(context.Background(), batchItems(1), func(_ context.Context, _ models.GalleryItem) (string, error) {
		return "", fmt.Errorf("some plain error")
	}, nil)

	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, models.NewSyncError(models.ErrKindNetwork, ""))
	assert.Contains(t, result.Failures[0].Err.Detail, "some plain error")
}

func TestRunBatch_CancelledContextStillAccountsForEveryItem(t *testing.T) {
	runner := NewBatchRunner(BatchRunnerConfig{Concurrency: 2}, logger.Nop())
	items := batchItems(8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := runner.RunBatch(ctx, items, func(ctx context.Context, _ models.GalleryItem) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "u", nil
	}, nil)

	assert.Equal(t, len(items), result.Attempted)
	assert.Equal(t, len(items), result.Succeeded+len(result.Failures))
	assert.Equal(t, 0, result.Succeeded)
}
