package config

import (
	"fmt"
	"time"
)

// ClientMedia holds client media library settings derived from the
// shared structured config.
type ClientMedia struct {
	// GalleryDir is the directory scanned for media assets.
	GalleryDir string
}

// ClientAdapter holds network settings used by the cloud transport.
type ClientAdapter struct {
	// BaseURL is the cloud service endpoint.
	BaseURL string
	// Token is the bearer token attached to cloud requests, if any.
	Token string
	// RequestTimeout is the default timeout for outbound cloud requests.
	RequestTimeout time.Duration
}

// ClientDB contains local settings-database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string for the settings store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains batch and background worker settings.
type ClientWorkers struct {
	// UploadConcurrency caps simultaneous per-item cloud calls per batch.
	UploadConcurrency int
	// UploadRate limits batch dispatches per second (0 = unlimited).
	UploadRate float64
	// SyncInterval defines how often the auto-sync job runs.
	SyncInterval time.Duration
}

// ClientConfig is the top-level gallery client configuration assembled
// from [StructuredConfig].
type ClientConfig struct {
	// Media contains media library settings.
	Media ClientMedia
	// Adapter contains cloud transport settings.
	Adapter ClientAdapter
	// Storage contains settings-store settings.
	Storage ClientStorage
	// Workers contains batch and background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view
// from the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the
// fields relevant to the client runtime, and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Media: ClientMedia{
			GalleryDir: cfg.Media.GalleryDir,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			UploadConcurrency: cfg.Workers.UploadConcurrency,
			UploadRate:        cfg.Workers.UploadRate,
			SyncInterval:      cfg.Workers.SyncInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
