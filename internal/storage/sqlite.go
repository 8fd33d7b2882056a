package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quarryhq/tally/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage is the ledger store: keyed persistence for vendors,
// transactions, projects, and the settings blob. It performs all I/O and all
// write-boundary validation; the report package never touches it directly.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// withTx runs fn inside a database transaction, retrying transient
// SQLITE_BUSY failures.
func (s *SQLiteStorage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return common.WithRetry(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return wrapBusy(fmt.Errorf("failed to begin transaction: %w", err))
		}
		defer func() { _ = tx.Rollback() }()

		if err := fn(tx); err != nil {
			return wrapBusy(err)
		}
		if err := tx.Commit(); err != nil {
			return wrapBusy(fmt.Errorf("failed to commit: %w", err))
		}
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second})
}

func wrapBusy(err error) error {
	if strings.Contains(err.Error(), "database is locked") {
		return &common.RetryableError{Err: err, Retryable: true}
	}
	return &common.RetryableError{Err: err, Retryable: false}
}

// queryable is an interface satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
