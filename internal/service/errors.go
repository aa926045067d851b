package service

import "errors"

var (
	// ErrSyncInProgress is returned when a batch operation is requested
	// while another batch is still loading. Concurrent batches are
	// rejected rather than queued.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrPermissionDenied is returned by LoadGallery when the media
	// library denies access. Terminal for that load attempt only.
	ErrPermissionDenied = errors.New("media library permission denied")

	// ErrItemNotFound is returned when an operation names an item the
	// repository does not hold.
	ErrItemNotFound = errors.New("gallery item not found")
)
