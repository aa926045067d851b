package service

import "gallerysync/models"

// EventKind identifies what changed in the controller's published state.
type EventKind int

const (
	// EventItemsChanged fires after the repository's item collection
	// changed: a reload, a merge, or a batch applying terminal statuses.
	EventItemsChanged EventKind = iota + 1

	// EventLoadingChanged fires when the loading flag flips.
	EventLoadingChanged

	// EventSelectionChanged fires when selection mode or the selection
	// set changed.
	EventSelectionChanged

	// EventItemProgress fires once per item as its remote call resolves
	// within a batch. ItemID and, on failure, Err are set.
	EventItemProgress

	// EventBatchCompleted fires once per batch after every item
	// resolved. Result carries the aggregate outcome.
	EventBatchCompleted

	// EventNothingToUpload fires when an upload was requested but the
	// batch would be empty. Not an error and no batch was started.
	EventNothingToUpload

	// EventError fires when an operation surfaced a headline error.
	EventError
)

// Event is one state-change notification published by the sync
// controller. Observers receive events over a buffered channel; a slow
// observer loses events rather than blocking the engine.
type Event struct {
	Kind   EventKind
	ItemID string
	Err    *models.SyncError
	Result *models.BatchResult
}
