// SPDX-License-Identifier: Apache-2.0

// Package service implements the gallery sync engine: the item
// repository holding per-item selection and sync status, the
// controller façade driving it through batches, and the background
// auto-sync job.
package service

import (
	"context"
	"time"

	"gallerysync/models"
)

// SyncController is the engine's façade. It owns the item repository
// for the lifetime of a gallery session and is its only writer; every
// other component sees items as copied snapshots.
//
// Batch methods block the calling goroutine until the batch resolves.
// Run them from a worker goroutine; CancelSync may be called from any
// other goroutine to abort. Only one batch runs at a time; a second
// request while one is loading fails with ErrSyncInProgress.
type SyncController interface {
	// LoadGallery asks the media library for permission and, when
	// granted, replaces the repository contents with the library's
	// current assets, all NotSynced. A denial fails with
	// ErrPermissionDenied and leaves the repository untouched.
	LoadGallery(ctx context.Context) error

	// UploadAll uploads every item that is not yet in the cloud. An
	// empty batch emits EventNothingToUpload, starts nothing, and
	// returns nil. Per-item failures are recorded on the items; the
	// first failure is returned as the headline error.
	UploadAll(ctx context.Context) error

	// UploadSelected uploads the current selection set with UploadAll's
	// semantics. Selection mode is always exited afterwards, whatever
	// the outcome.
	UploadSelected(ctx context.Context) error

	// DownloadFromCloud fetches the remote listing and merges it into
	// the repository. Remote items absent locally are added as already
	// Uploaded; items present by ID are left untouched.
	DownloadFromCloud(ctx context.Context) error

	// DeleteItem removes one uploaded item's content from the cloud and
	// reverts the local item to NotSynced, or drops it entirely when it
	// existed only remotely. Fails with kind InvalidAsset when the item
	// has no cloud location; no request is made then.
	DeleteItem(ctx context.Context, id string) error

	// CancelSync aborts the in-flight batch. In-flight items revert to
	// NotSynced and late results of the aborted batch are discarded.
	// No-op when nothing is running.
	CancelSync()

	EnterSelectionMode()
	ExitSelectionMode()
	ToggleSelection(id string)
	SelectAll()

	// Published state snapshots, safe from any goroutine.
	Items() []models.GalleryItem
	Loading() bool
	LastError() *models.SyncError
	SelectionMode() bool
	SelectedCount() int

	// Events returns the controller's notification channel. The channel
	// is buffered; events are dropped, never blocked on, when the
	// observer falls behind.
	Events() <-chan Event
}

// SyncJob periodically uploads unsynced items in the background.
type SyncJob interface {
	// Start launches the background loop with the given period. A
	// previously running loop is stopped first. The loop exits when ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe to call when
	// the job is not running.
	Stop()
}
