// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// gallerysync. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Media holds local media library settings.
	Media Media `envPrefix:"MEDIA_"`

	// Adapter holds cloud client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds network settings for the cloud stub server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the local settings database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds batch and background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Media holds settings of the local media source feeding the gallery.
type Media struct {
	// GalleryDir is the directory scanned for media assets.
	// Env: MEDIA_GALLERY_DIR
	GalleryDir string `env:"GALLERY_DIR"`
}

// Adapter holds settings of the outbound cloud transport.
type Adapter struct {
	// BaseURL is the cloud service endpoint
	// (e.g. "https://api.gallerysync.com/v1").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Token is the bearer token attached to every cloud request.
	// Optional; the stub server accepts unauthenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the per-request deadline for outbound cloud
	// calls (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the inbound transport of the cloud
// stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups settings of the client's local persistence.
type Storage struct {
	// DB holds the settings database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite settings database.
type DB struct {
	// DSN is the SQLite data source name
	// (e.g. "file:gallerysync.db" or ":memory:").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds batch orchestration and background job settings.
type Workers struct {
	// UploadConcurrency caps the number of simultaneous per-item cloud
	// calls inside one batch.
	// Env: WORKERS_UPLOAD_CONCURRENCY
	UploadConcurrency int `env:"UPLOAD_CONCURRENCY"`

	// UploadRate limits batch dispatches per second. Zero disables
	// rate limiting.
	// Env: WORKERS_UPLOAD_RATE
	UploadRate float64 `env:"UPLOAD_RATE"`

	// SyncInterval defines how often the auto-sync job uploads unsynced
	// items when auto-sync is enabled.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (earlier sources win, later sources fill remaining zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
