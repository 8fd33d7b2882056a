package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
)

// AddVendor persists a new vendor, assigning its id and timestamps.
func (s *SQLiteStorage) AddVendor(ctx context.Context, vendor *model.Vendor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if vendor != nil && vendor.Status == "" {
		vendor.Status = model.VendorActive
	}
	if err := validateVendor(vendor); err != nil {
		return err
	}

	vendor.ID = model.NewID()
	vendor.CreatedAt = time.Now()
	vendor.UpdatedAt = vendor.CreatedAt

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vendors (id, name, category, contact, phone, email, address, notes, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, vendor.ID, vendor.Name, vendor.Category, vendor.Contact, vendor.Phone,
			vendor.Email, vendor.Address, vendor.Notes, string(vendor.Status),
			vendor.CreatedAt, vendor.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert vendor: %w", err)
		}
		return nil
	})
}

// UpdateVendor saves changes to an existing vendor and refreshes its
// updated timestamp.
func (s *SQLiteStorage) UpdateVendor(ctx context.Context, vendor *model.Vendor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateVendor(vendor); err != nil {
		return err
	}
	if err := validateString(vendor.ID, "vendor.ID"); err != nil {
		return err
	}

	vendor.UpdatedAt = time.Now()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE vendors
			SET name = ?, category = ?, contact = ?, phone = ?, email = ?,
			    address = ?, notes = ?, status = ?, updated_at = ?
			WHERE id = ?
		`, vendor.Name, vendor.Category, vendor.Contact, vendor.Phone, vendor.Email,
			vendor.Address, vendor.Notes, string(vendor.Status), vendor.UpdatedAt, vendor.ID)
		if err != nil {
			return fmt.Errorf("failed to update vendor: %w", err)
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

// DeleteVendor removes a vendor by id. Transactions referencing the vendor
// are left untouched; their vendor id simply stops resolving.
func (s *SQLiteStorage) DeleteVendor(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM vendors WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete vendor: %w", err)
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

// GetVendor retrieves a vendor by id.
func (s *SQLiteStorage) GetVendor(ctx context.Context, id string) (*model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, vendorSelect+` WHERE id = ?`, id)
	vendor, err := scanVendor(row)
	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

// ListVendors retrieves all vendors in creation order.
func (s *SQLiteStorage) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryVendors(ctx, vendorSelect+` ORDER BY created_at, id`)
}

// SearchVendors returns vendors whose name, category, contact, or email
// contains the query, case-insensitively.
func (s *SQLiteStorage) SearchVendors(ctx context.Context, query string) ([]model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(query, "query"); err != nil {
		return nil, err
	}

	like := "%" + query + "%"
	return s.queryVendors(ctx, vendorSelect+`
		WHERE name LIKE ? OR category LIKE ? OR contact LIKE ? OR email LIKE ?
		ORDER BY created_at, id`, like, like, like, like)
}

const vendorSelect = `
	SELECT id, name, category, contact, phone, email, address, notes, status, created_at, updated_at
	FROM vendors`

func (s *SQLiteStorage) queryVendors(ctx context.Context, query string, args ...any) ([]model.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vendors []model.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *vendor)
	}
	return vendors, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVendor(row rowScanner) (*model.Vendor, error) {
	var vendor model.Vendor
	var status string
	err := row.Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Category,
		&vendor.Contact,
		&vendor.Phone,
		&vendor.Email,
		&vendor.Address,
		&vendor.Notes,
		&status,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	vendor.Status = model.VendorStatus(status)
	return &vendor, nil
}
