package models

import "time"

// SyncQuality selects the content variant uploaded to the cloud.
type SyncQuality string

const (
	QualityLow      SyncQuality = "low"
	QualityMedium   SyncQuality = "medium"
	QualityHigh     SyncQuality = "high"
	QualityOriginal SyncQuality = "original"
)

// Valid reports whether q is one of the defined quality levels.
func (q SyncQuality) Valid() bool {
	switch q {
	case QualityLow, QualityMedium, QualityHigh, QualityOriginal:
		return true
	}
	return false
}

// Settings holds the user preferences persisted between gallery sessions.
type Settings struct {
	// AutoSyncEnabled turns the periodic background upload job on or off.
	AutoSyncEnabled bool `json:"auto_sync_enabled"`

	// Quality is the upload quality preference.
	Quality SyncQuality `json:"sync_quality"`

	// LastSyncAt is the completion time of the most recent successful
	// batch, nil when no batch has completed yet.
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

// DefaultSettings returns the settings applied on first run.
func DefaultSettings() Settings {
	return Settings{AutoSyncEnabled: false, Quality: QualityMedium}
}
