package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
)

// GetSettings loads the settings blob, falling back to defaults when the
// ledger has never saved any.
func (s *SQLiteStorage) GetSettings(ctx context.Context) (model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return model.Settings{}, err
	}

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return model.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.CustomCategories == nil {
		settings.CustomCategories = map[string][]string{}
	}
	return settings, nil
}

// SaveSettings replaces the settings blob.
func (s *SQLiteStorage) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (id, data, updated_at) VALUES (1, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				data = excluded.data,
				updated_at = excluded.updated_at
		`, string(data), time.Now())
		if err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		return nil
	})
}

// AddCustomCategory appends a category label to the ordered list for an
// entity kind. Duplicate labels are rejected; the comparison is
// case-sensitive, so "Steel" and "steel" are distinct labels.
func (s *SQLiteStorage) AddCustomCategory(ctx context.Context, kind, label string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(kind, "kind"); err != nil {
		return err
	}
	if err := validateString(label, "label"); err != nil {
		return err
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}

	for _, existing := range settings.CustomCategories[kind] {
		if existing == label {
			return fmt.Errorf("%w: category %q", common.ErrDuplicateEntry, label)
		}
	}

	if settings.CustomCategories == nil {
		settings.CustomCategories = map[string][]string{}
	}
	settings.CustomCategories[kind] = append(settings.CustomCategories[kind], label)

	return s.SaveSettings(ctx, settings)
}
