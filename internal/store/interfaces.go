// Package store persists the gallery's user preferences between
// sessions.
package store

import (
	"context"

	"gallerysync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_store_mock.go -package=mock

// SettingsStore reads and writes the persisted user preferences. A
// store that has never been written returns the defaults.
type SettingsStore interface {
	Get(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
	Close() error
}
