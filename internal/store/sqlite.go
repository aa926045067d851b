// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"gallerysync/internal/logger"
	"gallerysync/migrations"
	"gallerysync/models"
)

// The settings table holds exactly one row; its schema lives in the
// migrations package. last_sync_at is stored as an RFC 3339 string,
// NULL until the first successful batch.
const (
	selectSettings = `
		SELECT auto_sync_enabled, sync_quality, last_sync_at
		FROM settings
		WHERE id = 1;`

	upsertSettings = `
		INSERT INTO settings (id, auto_sync_enabled, sync_quality, last_sync_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			auto_sync_enabled = excluded.auto_sync_enabled,
			sync_quality = excluded.sync_quality,
			last_sync_at = excluded.last_sync_at;`
)

type sqliteSettingsStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteSettingsStore opens the settings database at the given DSN
// and runs pending migrations. Use ":memory:" for a throwaway store.
func NewSQLiteSettingsStore(ctx context.Context, dsn string, log *logger.Logger) (SettingsStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping settings database: %w", err)
	}
	if err = migrations.Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate settings database: %w", err)
	}

	log.Debug().Str("dsn", dsn).Msg("settings store ready")
	return &sqliteSettingsStore{db: conn, log: log}, nil
}

// Get implements SettingsStore. An empty store yields the defaults
// without writing them.
func (s *sqliteSettingsStore) Get(ctx context.Context) (models.Settings, error) {
	var (
		enabled  bool
		quality  string
		lastSync sql.NullString
	)

	err := s.db.QueryRowContext(ctx, selectSettings).Scan(&enabled, &quality, &lastSync)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.DefaultSettings(), nil
	case err != nil:
		return models.Settings{}, fmt.Errorf("read settings: %w", err)
	}

	settings := models.Settings{
		AutoSyncEnabled: enabled,
		Quality:         models.SyncQuality(quality),
	}
	if !settings.Quality.Valid() {
		settings.Quality = models.DefaultSettings().Quality
	}
	if lastSync.Valid {
		at, err := time.Parse(time.RFC3339, lastSync.String)
		if err != nil {
			return models.Settings{}, fmt.Errorf("parse last sync time: %w", err)
		}
		settings.LastSyncAt = &at
	}

	return settings, nil
}

// Save implements SettingsStore.
func (s *sqliteSettingsStore) Save(ctx context.Context, settings models.Settings) error {
	if !settings.Quality.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, settings.Quality)
	}

	var lastSync sql.NullString
	if settings.LastSyncAt != nil {
		lastSync = sql.NullString{String: settings.LastSyncAt.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, upsertSettings, settings.AutoSyncEnabled, string(settings.Quality), lastSync)
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *sqliteSettingsStore) Close() error {
	return s.db.Close()
}
