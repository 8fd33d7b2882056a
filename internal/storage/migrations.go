package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quarryhq/tally/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a fatal
// error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS vendors (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					category TEXT,
					contact TEXT,
					phone TEXT,
					email TEXT,
					address TEXT,
					notes TEXT,
					status TEXT NOT NULL DEFAULT 'active',
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_vendors_name ON vendors(name)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id TEXT PRIMARY KEY,
					type TEXT NOT NULL,
					date DATETIME NOT NULL,
					amount TEXT NOT NULL,
					vendor_id TEXT,
					project_id TEXT,
					category TEXT,
					payment_method TEXT,
					description TEXT,
					notes TEXT,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_vendor ON transactions(vendor_id)`,
				`CREATE INDEX idx_transactions_project ON transactions(project_id)`,

				`CREATE TABLE IF NOT EXISTS projects (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					status TEXT NOT NULL DEFAULT 'planning',
					client TEXT,
					location TEXT,
					start_date DATETIME,
					end_date DATETIME,
					budget TEXT,
					progress INTEGER NOT NULL DEFAULT 0,
					description TEXT,
					notes TEXT,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS settings (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					data TEXT NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add credit and partial payment tracking",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE transactions ADD COLUMN payment_status TEXT NOT NULL DEFAULT 'paid'`,
				`ALTER TABLE transactions ADD COLUMN amount_paid TEXT NOT NULL DEFAULT '0'`,
				// Existing rows predate payment tracking and are fully settled.
				`UPDATE transactions SET amount_paid = amount`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Indexes for dashboard filter queries",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type)`,
				`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to ExpectedSchemaVersion.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		common.LogDebug("Applied migration", common.Fields{
			"version":     m.Version,
			"description": m.Description,
		})
	}

	return nil
}
