package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/GongyiChuren/docsift"
)

// Compile-time interface verification.
var _ docsift.SettingsStore = (*SettingsService)(nil)

// SettingsService implements docsift.SettingsStore using SQLite. The three
// activation keys (mode, whitelist, deepMode) survive across runs through
// this service.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// Get returns the value stored under key.
// Returns ENOTFOUND if the key has never been set.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", docsift.Errorf(docsift.ENOTFOUND, "setting %q not set", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}
