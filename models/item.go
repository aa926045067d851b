package models

import "time"

// MediaType defines the kind of media an asset holds.
// The value determines how the presentation layer renders the item
// and which upload pipeline is used for its content.
type MediaType int

const (
	// MediaImage represents a still image asset (jpeg, png, gif, ...).
	MediaImage MediaType = 1

	// MediaVideo represents a video asset (mp4, mov, ...).
	MediaVideo MediaType = 2

	// MediaUnknown represents an asset whose kind could not be determined.
	// Unknown assets are kept in the gallery but uploaded as opaque blobs.
	MediaUnknown MediaType = 0
)

// SyncStatus describes where a gallery item currently is in its sync
// lifecycle. Allowed transitions:
//
//	NotSynced|Failed → Uploading   → Uploaded | Failed
//	NotSynced|Failed → Downloading → Uploaded | Failed
//
// Uploaded and Failed are terminal: nothing leaves them without an
// external action (a new batch re-enters Uploading).
type SyncStatus int

const (
	// StatusNotSynced is the initial status of every locally discovered item.
	StatusNotSynced SyncStatus = iota

	// StatusUploading marks an item whose upload call is in flight.
	StatusUploading

	// StatusUploaded marks an item whose content resides in the cloud.
	// An item is Uploaded if and only if its CloudURL is set.
	StatusUploaded

	// StatusDownloading marks an item whose content is being fetched
	// from the cloud listing.
	StatusDownloading

	// StatusFailed marks an item whose last remote operation errored.
	// The failure detail is retained on the item until the next attempt.
	StatusFailed
)

// String returns the human-readable name of the status.
func (s SyncStatus) String() string {
	switch s {
	case StatusNotSynced:
		return "not synced"
	case StatusUploading:
		return "uploading"
	case StatusUploaded:
		return "uploaded"
	case StatusDownloading:
		return "downloading"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is an end state of a batch
// operation. Terminal items are never touched when a batch completes.
func (s SyncStatus) Terminal() bool {
	return s == StatusUploaded || s == StatusFailed
}

// InFlight reports whether the status means a remote call for the item
// has been dispatched and has not resolved yet.
func (s SyncStatus) InFlight() bool {
	return s == StatusUploading || s == StatusDownloading
}

// GalleryItem represents a single media item known to the sync engine.
// ID and AssetRef are immutable after construction; Selected, Status,
// Err, and CloudURL are mutated exclusively by the sync controller
// through the item repository.
type GalleryItem struct {
	// ID is the stable identifier of the item. For local assets it is
	// the media library identifier; for items discovered in the cloud
	// listing it is the server-side identifier.
	ID string `json:"id"`

	// AssetRef is an opaque handle the media library resolves to the
	// item's raw bytes. Empty for items that exist only in the cloud.
	AssetRef string `json:"asset_ref,omitempty"`

	// MediaType is the kind of media the asset holds.
	MediaType MediaType `json:"media_type"`

	// CreatedAt is the asset's creation timestamp, when known.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// Selected marks the item as part of the current selection set.
	// Only meaningful while selection mode is active.
	Selected bool `json:"selected"`

	// Status is the item's position in the sync state machine.
	Status SyncStatus `json:"status"`

	// Err holds the detail of the item's last failed remote operation.
	// Nil unless Status is StatusFailed.
	Err *SyncError `json:"error,omitempty"`

	// CloudURL is the remote location of the item's content.
	// Set exactly when Status is StatusUploaded.
	CloudURL string `json:"cloud_url,omitempty"`
}

// Synced reports whether the item's content resides in the cloud.
// It is derived from the status so the invariant
// Status == Uploaded ⇔ CloudURL set ⇔ Synced cannot drift.
func (i GalleryItem) Synced() bool {
	return i.Status == StatusUploaded
}
