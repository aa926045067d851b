package config

import "time"

// defaultConfig returns the built-in fallback values applied when no
// other source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Media: Media{
			GalleryDir: "gallery",
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "file:gallerysync.db?_journal=WAL"},
		},
		Workers: Workers{
			UploadConcurrency: 4,
			SyncInterval:      5 * time.Minute,
		},
	}
}
