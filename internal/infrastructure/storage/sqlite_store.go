package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"PriceScanner/internal/domain"
	"PriceScanner/internal/ports"
)

// settingsKey is the well-known key the single settings record lives under.
const settingsKey = "userSettings"

// SQLiteStore persists the user-settings record in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ ports.SettingsStore = (*SQLiteStore)(nil)

// Open opens the settings database at path, creating the schema on first
// use.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS user_settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init settings schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get loads the stored settings merged over defaults: fields absent from
// the stored record keep their default values, and a missing record yields
// the defaults outright.
func (s *SQLiteStore) Get(ctx context.Context) (domain.UserSettings, error) {
	settings := domain.DefaultSettings()

	query, args, err := sq.Select("value").
		From("user_settings").
		Where(sq.Eq{"key": settingsKey}).
		ToSql()
	if err != nil {
		return settings, fmt.Errorf("build settings query: %w", err)
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return settings, nil
	case err != nil:
		return settings, fmt.Errorf("load settings: %w", err)
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

// Save upserts the settings record under the well-known key.
func (s *SQLiteStore) Save(ctx context.Context, settings domain.UserSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	query, args, err := sq.Insert("user_settings").
		Columns("key", "value").
		Values(settingsKey, string(payload)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
