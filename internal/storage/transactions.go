package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// AddTransaction persists a new transaction, assigning its id and
// timestamps and normalizing payment defaults.
func (s *SQLiteStorage) AddTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}

	txn.Normalize()
	if err := validateTransaction(txn); err != nil {
		return err
	}

	txn.ID = model.NewID()
	txn.CreatedAt = time.Now()
	txn.UpdatedAt = txn.CreatedAt

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (
				id, type, date, amount, vendor_id, project_id, category,
				payment_method, payment_status, amount_paid, description, notes,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, txn.ID, string(txn.Type), txn.Date, txn.Amount.String(), txn.VendorID,
			txn.ProjectID, txn.Category, txn.PaymentMethod, string(txn.PaymentStatus),
			txn.AmountPaid.String(), txn.Description, txn.Notes, txn.CreatedAt, txn.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		return nil
	})
}

// UpdateTransaction saves changes to an existing transaction.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if err := validateString(txn.ID, "transaction.ID"); err != nil {
		return err
	}

	txn.Normalize()
	if err := validateTransaction(txn); err != nil {
		return err
	}

	txn.UpdatedAt = time.Now()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE transactions
			SET type = ?, date = ?, amount = ?, vendor_id = ?, project_id = ?,
			    category = ?, payment_method = ?, payment_status = ?, amount_paid = ?,
			    description = ?, notes = ?, updated_at = ?
			WHERE id = ?
		`, string(txn.Type), txn.Date, txn.Amount.String(), txn.VendorID, txn.ProjectID,
			txn.Category, txn.PaymentMethod, string(txn.PaymentStatus), txn.AmountPaid.String(),
			txn.Description, txn.Notes, txn.UpdatedAt, txn.ID)
		if err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

// MarkTransactionPaid transitions a credit or partial transaction to fully
// settled.
func (s *SQLiteStorage) MarkTransactionPaid(ctx context.Context, id string) error {
	txn, err := s.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	txn.MarkPaid()
	return s.UpdateTransaction(ctx, txn)
}

// DeleteTransaction removes a transaction by id.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check delete result: %w", err)
		}
		if affected == 0 {
			return common.ErrNotFound
		}
		return nil
	})
}

// GetTransaction retrieves a single transaction by id.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, transactionSelect+` WHERE id = ?`, id)
	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves all transactions in creation order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, transactionSelect+` ORDER BY created_at, id`)
}

// ListTransactionsByVendor retrieves all transactions referencing a vendor.
func (s *SQLiteStorage) ListTransactionsByVendor(ctx context.Context, vendorID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(vendorID, "vendorID"); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, transactionSelect+` WHERE vendor_id = ? ORDER BY created_at, id`, vendorID)
}

// ListTransactionsByProject retrieves all transactions booked against a
// project.
func (s *SQLiteStorage) ListTransactionsByProject(ctx context.Context, projectID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(projectID, "projectID"); err != nil {
		return nil, err
	}
	return s.queryTransactions(ctx, transactionSelect+` WHERE project_id = ? ORDER BY created_at, id`, projectID)
}

// ListTransactionsByDateRange retrieves transactions dated within
// [start, end].
func (s *SQLiteStorage) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	return s.queryTransactions(ctx, transactionSelect+` WHERE date >= ? AND date <= ? ORDER BY date, id`, start, end)
}

// SearchTransactions returns transactions whose description, notes, or
// category contains the query, case-insensitively.
func (s *SQLiteStorage) SearchTransactions(ctx context.Context, query string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(query, "query"); err != nil {
		return nil, err
	}

	like := "%" + query + "%"
	return s.queryTransactions(ctx, transactionSelect+`
		WHERE description LIKE ? OR notes LIKE ? OR category LIKE ?
		ORDER BY created_at, id`, like, like, like)
}

const transactionSelect = `
	SELECT id, type, date, amount, vendor_id, project_id, category,
	       payment_method, payment_status, amount_paid, description, notes,
	       created_at, updated_at
	FROM transactions`

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var txType, status, amount, amountPaid string

	err := row.Scan(
		&txn.ID,
		&txType,
		&txn.Date,
		&amount,
		&txn.VendorID,
		&txn.ProjectID,
		&txn.Category,
		&txn.PaymentMethod,
		&status,
		&amountPaid,
		&txn.Description,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Type = model.TransactionType(txType)
	txn.PaymentStatus = model.PaymentStatus(status)

	// Amounts persisted before validation existed may be malformed; treat
	// them as zero rather than failing the whole read.
	txn.Amount = model.ParseAmount(amount)
	txn.AmountPaid = model.ParseAmount(amountPaid)

	return &txn, nil
}

// decimalOrNil converts an optional TEXT column to a decimal.
func decimalOrNil(s sql.NullString) *decimal.Decimal {
	if !s.Valid || s.String == "" {
		return nil
	}
	d := model.ParseAmount(s.String)
	return &d
}
