// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gallerysync/internal/adapter"
	"gallerysync/internal/logger"
	"gallerysync/internal/media"
	"gallerysync/internal/store"
	"gallerysync/internal/workers"
	"gallerysync/models"
)

const eventBufferSize = 64

type syncController struct {
	repo     *ItemRepository
	library  media.Library
	adapter  adapter.CloudAdapter
	batch    workers.BatchRunner
	settings store.SettingsStore
	log      *logger.Logger

	events chan Event

	// state guards the published flags and the batch generation. The
	// repository has its own lock; never hold both.
	state controllerState
}

type controllerState struct {
	mu            sync.Mutex
	loading       bool
	selectionMode bool
	lastErr       *models.SyncError

	// generation counts cancellations. A batch captures the value at
	// start and its results are applied only while it is still current,
	// so results arriving after CancelSync are discarded instead of
	// resurrecting stale status.
	generation  uint64
	batchCancel context.CancelFunc
}

// NewSyncController wires the sync engine's façade: it owns the item
// repository, drives it through the status state machine around batch
// operations, and publishes state changes as [Event] values.
//
// settings may be nil; the last-sync timestamp is then not persisted.
func NewSyncController(
	library media.Library,
	cloudAdapter adapter.CloudAdapter,
	batch workers.BatchRunner,
	settings store.SettingsStore,
	log *logger.Logger,
) SyncController {
	c := &syncController{
		repo:     NewItemRepository(),
		library:  library,
		adapter:  cloudAdapter,
		batch:    batch,
		settings: settings,
		log:      log,
		events:   make(chan Event, eventBufferSize),
	}
	return c
}

func (c *syncController) lock()   { c.state.mu.Lock() }
func (c *syncController) unlock() { c.state.mu.Unlock() }

// ── published state ─────────────────────────────────────────────────────────

func (c *syncController) Items() []models.GalleryItem { return c.repo.Items() }

func (c *syncController) Loading() bool {
	c.lock()
	defer c.unlock()
	return c.state.loading
}

func (c *syncController) LastError() *models.SyncError {
	c.lock()
	defer c.unlock()
	return c.state.lastErr
}

func (c *syncController) SelectionMode() bool {
	c.lock()
	defer c.unlock()
	return c.state.selectionMode
}

func (c *syncController) SelectedCount() int { return c.repo.SelectedCount() }

func (c *syncController) Events() <-chan Event { return c.events }

// emit publishes without blocking. The buffer absorbs bursts; an
// observer that stops draining loses events, the engine never stalls.
func (c *syncController) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Warn().Int("kind", int(ev.Kind)).Msg("event buffer full, dropping event")
	}
}

// ── gallery loading ─────────────────────────────────────────────────────────

func (c *syncController) LoadGallery(ctx context.Context) error {
	granted, err := c.library.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("request media permission: %w", err)
	}
	if !granted {
		c.setLastError(models.NewSyncError(models.ErrKindInvalidAsset, ErrPermissionDenied.Error()))
		return ErrPermissionDenied
	}

	assets, err := c.library.FetchAssets(ctx)
	if err != nil {
		return fmt.Errorf("fetch media assets: %w", err)
	}

	items := make([]models.GalleryItem, 0, len(assets))
	for _, asset := range assets {
		items = append(items, models.GalleryItem{
			ID:        asset.ID,
			AssetRef:  asset.Ref,
			MediaType: asset.MediaType,
			CreatedAt: asset.CreatedAt,
			Status:    models.StatusNotSynced,
		})
	}

	c.repo.ReplaceAll(items)
	c.log.Info().Int("items", len(items)).Msg("gallery loaded")
	c.emit(Event{Kind: EventItemsChanged})

	return nil
}

// ── selection ───────────────────────────────────────────────────────────────

func (c *syncController) EnterSelectionMode() {
	c.lock()
	c.state.selectionMode = true
	c.unlock()
	c.emit(Event{Kind: EventSelectionChanged})
}

// ExitSelectionMode leaves selection mode and clears every selection
// flag. Selection is only meaningful while the mode is active.
func (c *syncController) ExitSelectionMode() {
	c.lock()
	c.state.selectionMode = false
	c.unlock()
	c.repo.ClearSelection()
	c.emit(Event{Kind: EventSelectionChanged})
}

func (c *syncController) ToggleSelection(id string) {
	c.repo.ToggleSelected(id)
	c.emit(Event{Kind: EventSelectionChanged})
}

func (c *syncController) SelectAll() {
	c.repo.SelectAll()
	c.emit(Event{Kind: EventSelectionChanged})
}

// ── batch operations ────────────────────────────────────────────────────────

// UploadAll uploads every item not yet in the cloud. An empty batch is
// reported as EventNothingToUpload without flipping the loading flag.
func (c *syncController) UploadAll(ctx context.Context) error {
	return c.runUploadBatch(ctx, c.repo.UnsyncedItems())
}

// UploadSelected uploads the current selection set. Selection mode is
// always exited afterwards, whatever the batch outcome.
func (c *syncController) UploadSelected(ctx context.Context) error {
	defer c.ExitSelectionMode()

	batch := make([]models.GalleryItem, 0)
	for _, item := range c.repo.SelectedItems() {
		if item.Status != models.StatusUploaded && !item.Status.InFlight() {
			batch = append(batch, item)
		}
	}
	return c.runUploadBatch(ctx, batch)
}

func (c *syncController) runUploadBatch(ctx context.Context, batch []models.GalleryItem) error {
	// checked before the empty-batch path: while a batch is loading its
	// items are in flight and would make any new batch look empty
	if c.Loading() {
		return ErrSyncInProgress
	}

	if len(batch) == 0 {
		c.log.Info().Msg("nothing to upload")
		c.emit(Event{Kind: EventNothingToUpload})
		return nil
	}

	batchCtx, generation, err := c.beginBatch(ctx)
	if err != nil {
		return err
	}

	for _, item := range batch {
		c.repo.SetStatus(item.ID, models.StatusUploading)
	}
	c.emit(Event{Kind: EventItemsChanged})

	result := c.batch.RunBatch(batchCtx, batch, c.uploadOne, func(outcome workers.ItemOutcome) {
		if !c.generationCurrent(generation) {
			return
		}
		if outcome.Err != nil {
			c.repo.MarkFailed(outcome.Item.ID, outcome.Err)
		} else {
			c.repo.MarkUploaded(outcome.Item.ID, outcome.CloudURL)
		}
		c.emit(Event{Kind: EventItemProgress, ItemID: outcome.Item.ID, Err: outcome.Err})
	})

	return c.finishBatch(ctx, generation, result)
}

// uploadOne is the per-item operation handed to the batch runner. It
// resolves the asset's bytes and sends them to the cloud; it never
// touches the repository.
func (c *syncController) uploadOne(ctx context.Context, item models.GalleryItem) (string, error) {
	content, err := c.library.ContentBytes(ctx, item.AssetRef)
	if err != nil {
		return "", models.NewSyncError(models.ErrKindInvalidContent,
			fmt.Sprintf("read content of %s: %v", item.ID, err))
	}

	return c.adapter.UploadItem(ctx, adapter.UploadItemRequest{
		ItemID:    item.ID,
		FileName:  item.ID,
		Content:   content,
		CreatedAt: item.CreatedAt,
	})
}

// DownloadFromCloud fetches the remote listing and merges it into the
// repository. Remote items absent locally are added already Uploaded;
// items present by ID are left untouched, the local state wins.
func (c *syncController) DownloadFromCloud(ctx context.Context) error {
	batchCtx, generation, err := c.beginBatch(ctx)
	if err != nil {
		return err
	}

	remote, err := c.adapter.ListItems(batchCtx)
	if err != nil {
		syncErr := models.AsSyncError(err, models.ErrKindDownloadFailed)
		return c.finishBatch(ctx, generation, models.BatchResult{
			Attempted: 1,
			Failures:  []models.BatchFailure{{Err: syncErr}},
		})
	}

	if !c.generationCurrent(generation) {
		c.log.Info().Msg("discarding listing of a cancelled download")
		return c.finishBatch(ctx, generation, models.BatchResult{})
	}

	merged := make([]models.GalleryItem, 0, len(remote))
	for _, ri := range remote {
		merged = append(merged, models.GalleryItem{
			ID:        ri.ID,
			MediaType: mediaTypeForContentType(ri.ContentType),
			CreatedAt: ri.CreatedAt,
			Status:    models.StatusUploaded,
			CloudURL:  ri.URL,
		})
	}
	added := c.repo.MergeRemote(merged)
	c.log.Info().Int("listed", len(remote)).Int("added", added).Msg("cloud listing merged")
	c.emit(Event{Kind: EventItemsChanged})

	return c.finishBatch(ctx, generation, models.BatchResult{Attempted: len(remote), Succeeded: len(remote)})
}

// DeleteItem removes one item's content from the cloud. The item must
// have been uploaded first; without a remote location the call fails
// with InvalidAsset and no request is made.
func (c *syncController) DeleteItem(ctx context.Context, id string) error {
	item, ok := c.repo.Get(id)
	if !ok {
		return ErrItemNotFound
	}
	if item.CloudURL == "" {
		err := models.NewSyncError(models.ErrKindInvalidAsset,
			fmt.Sprintf("item %s has no cloud location to delete", id))
		c.setLastError(err)
		return err
	}

	if err := c.adapter.DeleteItem(ctx, item.CloudURL); err != nil {
		syncErr := models.AsSyncError(err, models.ErrKindDeleteFailed)
		c.setLastError(syncErr)
		return syncErr
	}

	if item.AssetRef != "" {
		// still held locally, eligible for a future re-upload
		c.repo.MarkNotSynced(id)
	} else {
		c.repo.Remove(id)
	}
	c.log.Info().Str("item", id).Msg("item deleted from cloud")
	c.emit(Event{Kind: EventItemsChanged})

	return nil
}

// CancelSync aborts the in-flight batch, if any. In-flight items
// return to NotSynced and results of the aborted batch are discarded
// when they eventually arrive.
func (c *syncController) CancelSync() {
	c.lock()
	cancel := c.state.batchCancel
	c.state.batchCancel = nil
	c.state.generation++
	wasLoading := c.state.loading
	c.state.loading = false
	c.unlock()

	if cancel != nil {
		cancel()
	}
	if reverted := c.repo.ResetInFlight(); reverted > 0 {
		c.log.Info().Int("items", reverted).Msg("sync cancelled")
		c.emit(Event{Kind: EventItemsChanged})
	}
	if wasLoading {
		c.emit(Event{Kind: EventLoadingChanged})
	}
}

// ── batch lifecycle ─────────────────────────────────────────────────────────

// beginBatch flips the loading flag and registers the batch's
// generation. A second batch while one is loading is rejected with
// ErrSyncInProgress rather than raced.
func (c *syncController) beginBatch(ctx context.Context) (context.Context, uint64, error) {
	c.lock()
	defer c.unlock()

	if c.state.loading {
		return nil, 0, ErrSyncInProgress
	}

	batchCtx, cancel := context.WithCancel(ctx)
	c.state.loading = true
	c.state.lastErr = nil
	c.state.batchCancel = cancel
	generation := c.state.generation

	c.emit(Event{Kind: EventLoadingChanged})
	return batchCtx, generation, nil
}

func (c *syncController) generationCurrent(generation uint64) bool {
	c.lock()
	defer c.unlock()
	return c.state.generation == generation
}

// finishBatch clears the loading flag, surfaces the first failure as
// the headline error, and publishes the aggregate result. Results of a
// cancelled batch are dropped; CancelSync already reset the state.
func (c *syncController) finishBatch(ctx context.Context, generation uint64, result models.BatchResult) error {
	c.lock()
	if c.state.generation != generation {
		c.unlock()
		c.log.Info().Msg("discarding result of a cancelled batch")
		return nil
	}
	if cancel := c.state.batchCancel; cancel != nil {
		c.state.batchCancel = nil
		defer cancel()
	}
	c.state.loading = false
	headline := result.FirstFailure()
	c.state.lastErr = headline
	c.unlock()

	c.emit(Event{Kind: EventLoadingChanged})
	c.emit(Event{Kind: EventBatchCompleted, Result: &result})
	if headline != nil {
		c.emit(Event{Kind: EventError, Err: headline})
		return headline
	}

	c.touchLastSync(ctx)
	return nil
}

func (c *syncController) setLastError(err *models.SyncError) {
	c.lock()
	c.state.lastErr = err
	c.unlock()
	c.emit(Event{Kind: EventError, Err: err})
}

func (c *syncController) touchLastSync(ctx context.Context) {
	if c.settings == nil {
		return
	}

	settings, err := c.settings.Get(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("load settings to record sync time")
		return
	}
	now := time.Now().UTC()
	settings.LastSyncAt = &now
	if err = c.settings.Save(ctx, settings); err != nil {
		c.log.Warn().Err(err).Msg("persist last sync time")
	}
}

func mediaTypeForContentType(contentType string) models.MediaType {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return models.MediaImage
	case strings.HasPrefix(contentType, "video/"):
		return models.MediaVideo
	default:
		return models.MediaUnknown
	}
}
