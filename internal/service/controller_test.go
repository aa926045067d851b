// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gallerysync/internal/adapter"
	"gallerysync/internal/logger"
	"gallerysync/internal/media"
	"gallerysync/internal/mock"
	"gallerysync/internal/workers"
	"gallerysync/models"
)

// newTestController wires a controller with mocked collaborators and a
// deterministic single-worker batch runner.
func newTestController(t *testing.T, ctrl *gomock.Controller) (SyncController, *mock.MockLibrary, *mock.MockCloudAdapter) {
	t.Helper()
	mockLibrary := mock.NewMockLibrary(ctrl)
	mockAdapter := mock.NewMockCloudAdapter(ctrl)

	c := NewSyncController(
		mockLibrary,
		mockAdapter,
		workers.NewBatchRunner(workers.BatchRunnerConfig{Concurrency: 1}, logger.Nop()),
		nil,
		logger.Nop(),
	)
	return c, mockLibrary, mockAdapter
}

func expectGallery(lib *mock.MockLibrary, ids ...string) {
	assets := make([]media.Asset, 0, len(ids))
	for _, id := range ids {
		assets = append(assets, media.Asset{ID: id, Ref: "/gallery/" + id, MediaType: models.MediaImage})
	}
	lib.EXPECT().RequestPermission(gomock.Any()).Return(true, nil)
	lib.EXPECT().FetchAssets(gomock.Any()).Return(assets, nil)
}

func statusOf(t *testing.T, c SyncController, id string) models.GalleryItem {
	t.Helper()
	for _, item := range c.Items() {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found", id)
	return models.GalleryItem{}
}

// drainEvents collects everything currently buffered.
func drainEvents(c SyncController) []Event {
	var out []Event
	for {
		select {
		case ev := <-c.Events():
			out = append(out, ev)
		default:
			return out
		}
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// ── LoadGallery ──────────────────────────────────────────────────────────────

func TestLoadGallery_PopulatesRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	expectGallery(lib, "newest.jpg", "older.jpg")

	require.NoError(t, c.LoadGallery(context.Background()))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "newest.jpg", items[0].ID, "library order is preserved")
	assert.Equal(t, models.StatusNotSynced, items[0].Status)
	assert.Equal(t, "/gallery/newest.jpg", items[0].AssetRef)
	assert.True(t, hasEvent(drainEvents(c), EventItemsChanged))
}

func TestLoadGallery_PermissionDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	lib.EXPECT().RequestPermission(gomock.Any()).Return(false, nil)

	err := c.LoadGallery(context.Background())

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, c.Items())
	require.NotNil(t, c.LastError())
	assert.Equal(t, models.ErrKindInvalidAsset, c.LastError().Kind)
}

// ── UploadAll ────────────────────────────────────────────────────────────────

func TestUploadAll_AllSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg", "b.jpg")

	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("bytes"), nil).Times(2)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.UploadItemRequest) (string, error) {
			return "https://cloud/files/" + req.ItemID, nil
		}).Times(2)

	require.NoError(t, c.LoadGallery(context.Background()))
	require.NoError(t, c.UploadAll(context.Background()))

	for _, id := range []string{"a.jpg", "b.jpg"} {
		item := statusOf(t, c, id)
		assert.Equal(t, models.StatusUploaded, item.Status)
		assert.Equal(t, "https://cloud/files/"+id, item.CloudURL)
		assert.True(t, item.Synced())
	}
	assert.False(t, c.Loading())
	assert.Nil(t, c.LastError())
}

func TestUploadAll_SkipsAlreadyUploadedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg", "b.jpg", "c.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	// first pass syncs only c.jpg through a selection
	lib.EXPECT().ContentBytes(gomock.Any(), "/gallery/c.jpg").Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).Return("https://cloud/files/c.jpg", nil)
	c.EnterSelectionMode()
	c.ToggleSelection("c.jpg")
	require.NoError(t, c.UploadSelected(context.Background()))

	// second pass must issue exactly two calls, for a.jpg and b.jpg
	uploaded := map[string]bool{}
	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil).Times(2)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.UploadItemRequest) (string, error) {
			uploaded[req.ItemID] = true
			return "https://cloud/files/" + req.ItemID, nil
		}).Times(2)

	require.NoError(t, c.UploadAll(context.Background()))

	assert.Equal(t, map[string]bool{"a.jpg": true, "b.jpg": true}, uploaded)
	for _, item := range c.Items() {
		assert.Equal(t, models.StatusUploaded, item.Status)
	}
}

func TestUploadAll_PartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg", "b.jpg", "c.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	netErr := models.NewSyncError(models.ErrKindNetwork, "connection reset")
	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil).Times(3)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req adapter.UploadItemRequest) (string, error) {
			if req.ItemID == "b.jpg" {
				return "", netErr
			}
			return "https://cloud/files/" + req.ItemID, nil
		}).Times(3)

	err := c.UploadAll(context.Background())

	// headline error is the first failure; siblings still completed
	require.Error(t, err)
	assert.ErrorIs(t, err, models.NewSyncError(models.ErrKindNetwork, ""))
	assert.Equal(t, models.StatusUploaded, statusOf(t, c, "a.jpg").Status)
	assert.Equal(t, models.StatusUploaded, statusOf(t, c, "c.jpg").Status)

	failed := statusOf(t, c, "b.jpg")
	assert.Equal(t, models.StatusFailed, failed.Status)
	require.NotNil(t, failed.Err)
	assert.Equal(t, "connection reset", failed.Err.Detail)

	require.NotNil(t, c.LastError())
	assert.Equal(t, models.ErrKindNetwork, c.LastError().Kind)
	assert.False(t, c.Loading())
}

func TestUploadAll_FailedItemsAreRetryable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil).Times(2)
	first := cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		Return("", models.NewSyncError(models.ErrKindUploadFailed, "quota"))
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		Return("https://cloud/files/a.jpg", nil).After(first)

	require.Error(t, c.UploadAll(context.Background()))
	assert.Equal(t, models.StatusFailed, statusOf(t, c, "a.jpg").Status)

	require.NoError(t, c.UploadAll(context.Background()))
	item := statusOf(t, c, "a.jpg")
	assert.Equal(t, models.StatusUploaded, item.Status)
	assert.Nil(t, item.Err, "retry clears the previous failure detail")
}

func TestUploadAll_NothingToUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	lib.EXPECT().RequestPermission(gomock.Any()).Return(true, nil)
	lib.EXPECT().FetchAssets(gomock.Any()).Return(nil, nil)
	require.NoError(t, c.LoadGallery(context.Background()))
	drainEvents(c)

	require.NoError(t, c.UploadAll(context.Background()))

	events := drainEvents(c)
	assert.True(t, hasEvent(events, EventNothingToUpload))
	assert.False(t, hasEvent(events, EventLoadingChanged), "an empty batch never flips loading")
	assert.False(t, c.Loading())
}

func TestUploadAll_UnreadableContentFailsOnlyThatItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "ok.jpg", "broken.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	lib.EXPECT().ContentBytes(gomock.Any(), "/gallery/ok.jpg").Return([]byte("x"), nil)
	lib.EXPECT().ContentBytes(gomock.Any(), "/gallery/broken.jpg").Return(nil, assert.AnError)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).Return("https://cloud/files/ok.jpg", nil)

	err := c.UploadAll(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.StatusUploaded, statusOf(t, c, "ok.jpg").Status)
	broken := statusOf(t, c, "broken.jpg")
	assert.Equal(t, models.StatusFailed, broken.Status)
	require.NotNil(t, broken.Err)
	assert.Equal(t, models.ErrKindInvalidContent, broken.Err.Kind)
}

// ── UploadSelected ───────────────────────────────────────────────────────────

func TestUploadSelected_EmptySelectionExitsModeWithoutLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	c.EnterSelectionMode()
	drainEvents(c)

	require.NoError(t, c.UploadSelected(context.Background()))

	assert.False(t, c.SelectionMode())
	assert.False(t, c.Loading())
	assert.False(t, hasEvent(drainEvents(c), EventLoadingChanged))
}

func TestUploadSelected_ExitsSelectionModeEvenOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg", "b.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		Return("", models.NewSyncError(models.ErrKindUploadFailed, "rejected"))

	c.EnterSelectionMode()
	c.ToggleSelection("a.jpg")

	require.Error(t, c.UploadSelected(context.Background()))

	assert.False(t, c.SelectionMode())
	assert.Equal(t, 0, c.SelectedCount())
	assert.Equal(t, models.StatusFailed, statusOf(t, c, "a.jpg").Status)
	assert.Equal(t, models.StatusNotSynced, statusOf(t, c, "b.jpg").Status)
}

// ── selection ────────────────────────────────────────────────────────────────

func TestSelectAllThenExitClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg", "b.jpg", "c.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	c.EnterSelectionMode()
	c.SelectAll()
	assert.Equal(t, 3, c.SelectedCount())

	c.ExitSelectionMode()
	assert.Equal(t, 0, c.SelectedCount())
	for _, item := range c.Items() {
		assert.False(t, item.Selected)
	}
}

// ── concurrent batches ───────────────────────────────────────────────────────

func TestSecondBatchWhileLoadingIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	release := make(chan struct{})
	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, adapter.UploadItemRequest) (string, error) {
			<-release
			return "https://cloud/files/a.jpg", nil
		})

	done := make(chan error, 1)
	go func() { done <- c.UploadAll(context.Background()) }()

	require.Eventually(t, c.Loading, time.Second, time.Millisecond)

	assert.ErrorIs(t, c.UploadAll(context.Background()), ErrSyncInProgress)
	assert.ErrorIs(t, c.DownloadFromCloud(context.Background()), ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.StatusUploaded, statusOf(t, c, "a.jpg").Status)
}

func TestCancelSync_DiscardsLateResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	release := make(chan struct{})
	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, adapter.UploadItemRequest) (string, error) {
			<-release
			return "https://cloud/files/a.jpg", nil
		})

	done := make(chan error, 1)
	go func() { done <- c.UploadAll(context.Background()) }()
	require.Eventually(t, c.Loading, time.Second, time.Millisecond)

	c.CancelSync()
	assert.False(t, c.Loading())
	assert.Equal(t, models.StatusNotSynced, statusOf(t, c, "a.jpg").Status)

	// the in-flight call resolves after cancellation; its success must
	// not resurrect the item's status
	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.StatusNotSynced, statusOf(t, c, "a.jpg").Status)
	assert.False(t, c.Loading())
}

func TestCancelSync_WithoutRunningBatchIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestController(t, ctrl)
	c.CancelSync()
	assert.False(t, c.Loading())
}

// ── DownloadFromCloud ────────────────────────────────────────────────────────

func TestDownloadFromCloud_MergesNewItemsLocalWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	created := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	cloud.EXPECT().ListItems(gomock.Any()).Return([]models.RemoteItem{
		{ID: "a.jpg", URL: "https://cloud/files/a.jpg", ContentType: "image/jpeg"},
		{ID: "remote.png", URL: "https://cloud/files/remote.png", ContentType: "image/png", CreatedAt: &created},
	}, nil)

	require.NoError(t, c.DownloadFromCloud(context.Background()))

	require.Len(t, c.Items(), 2)
	local := statusOf(t, c, "a.jpg")
	assert.Equal(t, models.StatusNotSynced, local.Status, "existing local item wins over the listing")
	assert.Empty(t, local.CloudURL)

	remote := statusOf(t, c, "remote.png")
	assert.Equal(t, models.StatusUploaded, remote.Status)
	assert.Equal(t, "https://cloud/files/remote.png", remote.CloudURL)
	assert.Equal(t, models.MediaImage, remote.MediaType)
	assert.Empty(t, remote.AssetRef, "cloud-only items have no local asset")
	assert.False(t, c.Loading())
}

func TestDownloadFromCloud_EmptyListingIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, cloud := newTestController(t, ctrl)
	cloud.EXPECT().ListItems(gomock.Any()).Return(nil, nil)

	require.NoError(t, c.DownloadFromCloud(context.Background()))
	assert.Empty(t, c.Items())
	assert.Nil(t, c.LastError())
}

func TestDownloadFromCloud_ListingFailureIsSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, cloud := newTestController(t, ctrl)
	cloud.EXPECT().ListItems(gomock.Any()).
		Return(nil, models.NewSyncError(models.ErrKindDownloadFailed, "http 503: unavailable"))

	err := c.DownloadFromCloud(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, models.NewSyncError(models.ErrKindDownloadFailed, ""))
	assert.False(t, c.Loading())
	require.NotNil(t, c.LastError())
	assert.Equal(t, models.ErrKindDownloadFailed, c.LastError().Kind)
}

// ── DeleteItem ───────────────────────────────────────────────────────────────

func TestDeleteItem_WithoutCloudLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, _ := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	err := c.DeleteItem(context.Background(), "a.jpg")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.NewSyncError(models.ErrKindInvalidAsset, ""))
	assert.Equal(t, models.StatusNotSynced, statusOf(t, c, "a.jpg").Status)
}

func TestDeleteItem_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestController(t, ctrl)

	assert.ErrorIs(t, c.DeleteItem(context.Background(), "ghost"), ErrItemNotFound)
}

func TestDeleteItem_LocalItemRevertsToNotSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).Return("https://cloud/files/a.jpg", nil)
	require.NoError(t, c.UploadAll(context.Background()))

	cloud.EXPECT().DeleteItem(gomock.Any(), "https://cloud/files/a.jpg").Return(nil)
	require.NoError(t, c.DeleteItem(context.Background(), "a.jpg"))

	item := statusOf(t, c, "a.jpg")
	assert.Equal(t, models.StatusNotSynced, item.Status)
	assert.Empty(t, item.CloudURL)
	assert.False(t, item.Synced())
}

func TestDeleteItem_CloudOnlyItemIsRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, cloud := newTestController(t, ctrl)
	cloud.EXPECT().ListItems(gomock.Any()).Return([]models.RemoteItem{
		{ID: "remote.png", URL: "https://cloud/files/remote.png"},
	}, nil)
	require.NoError(t, c.DownloadFromCloud(context.Background()))

	cloud.EXPECT().DeleteItem(gomock.Any(), "https://cloud/files/remote.png").Return(nil)
	require.NoError(t, c.DeleteItem(context.Background(), "remote.png"))

	assert.Empty(t, c.Items())
}

func TestDeleteItem_RemoteFailureKeepsItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, lib, cloud := newTestController(t, ctrl)
	expectGallery(lib, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	lib.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	cloud.EXPECT().UploadItem(gomock.Any(), gomock.Any()).Return("https://cloud/files/a.jpg", nil)
	require.NoError(t, c.UploadAll(context.Background()))

	cloud.EXPECT().DeleteItem(gomock.Any(), gomock.Any()).
		Return(models.NewSyncError(models.ErrKindDeleteFailed, "http 404: object not found"))

	err := c.DeleteItem(context.Background(), "a.jpg")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.NewSyncError(models.ErrKindDeleteFailed, ""))
	item := statusOf(t, c, "a.jpg")
	assert.Equal(t, models.StatusUploaded, item.Status, "a failed delete leaves the item in the cloud")
	assert.Equal(t, "https://cloud/files/a.jpg", item.CloudURL)
}

// ── settings integration ─────────────────────────────────────────────────────

func TestSuccessfulBatchRecordsLastSyncTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLibrary := mock.NewMockLibrary(ctrl)
	mockAdapter := mock.NewMockCloudAdapter(ctrl)
	mockSettings := mock.NewMockSettingsStore(ctrl)

	c := NewSyncController(
		mockLibrary,
		mockAdapter,
		workers.NewBatchRunner(workers.BatchRunnerConfig{Concurrency: 1}, logger.Nop()),
		mockSettings,
		logger.Nop(),
	)

	expectGallery(mockLibrary, "a.jpg")
	require.NoError(t, c.LoadGallery(context.Background()))

	mockLibrary.EXPECT().ContentBytes(gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
	mockAdapter.EXPECT().UploadItem(gomock.Any(), gomock.Any()).Return("https://cloud/files/a.jpg", nil)

	mockSettings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	mockSettings.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Settings) error {
			require.NotNil(t, s.LastSyncAt)
			assert.WithinDuration(t, time.Now().UTC(), *s.LastSyncAt, time.Minute)
			return nil
		})

	require.NoError(t, c.UploadAll(context.Background()))
}
