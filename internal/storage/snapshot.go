package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
)

// Snapshot is a full export of the ledger, suitable for backup and restore.
type Snapshot struct {
	ExportedAt   time.Time           `json:"exportedAt"`
	Settings     *model.Settings     `json:"settings,omitempty"`
	Vendors      []model.Vendor      `json:"vendors"`
	Transactions []model.Transaction `json:"transactions"`
	Projects     []model.Project     `json:"projects"`
}

// ExportSnapshot captures the entire ledger as a single snapshot.
func (s *SQLiteStorage) ExportSnapshot(ctx context.Context) (*Snapshot, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	vendors, err := s.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ExportedAt:   time.Now(),
		Vendors:      vendors,
		Transactions: transactions,
		Projects:     projects,
		Settings:     &settings,
	}, nil
}

// ImportSnapshot replaces each collection present in the snapshot. Absent
// collections are left as they are, matching the original import behavior.
func (s *SQLiteStorage) ImportSnapshot(ctx context.Context, snap *Snapshot) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if snap == nil {
		return fmt.Errorf("%w: snapshot", ErrNilParameter)
	}

	if snap.Vendors != nil {
		if err := s.replaceVendors(ctx, snap.Vendors); err != nil {
			return err
		}
	}
	if snap.Transactions != nil {
		if err := s.replaceTransactions(ctx, snap.Transactions); err != nil {
			return err
		}
	}
	if snap.Projects != nil {
		if err := s.replaceProjects(ctx, snap.Projects); err != nil {
			return err
		}
	}
	if snap.Settings != nil {
		if err := s.SaveSettings(ctx, *snap.Settings); err != nil {
			return err
		}
	}

	common.LogInfo("Imported snapshot", common.Fields{
		"vendors":      len(snap.Vendors),
		"transactions": len(snap.Transactions),
		"projects":     len(snap.Projects),
	})
	return nil
}

func (s *SQLiteStorage) replaceVendors(ctx context.Context, vendors []model.Vendor) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM vendors`); err != nil {
			return fmt.Errorf("failed to clear vendors: %w", err)
		}
		for i := range vendors {
			v := &vendors[i]
			if v.ID == "" {
				v.ID = model.NewID()
			}
			if v.Status == "" {
				v.Status = model.VendorActive
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO vendors (id, name, category, contact, phone, email, address, notes, status, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, v.ID, v.Name, v.Category, v.Contact, v.Phone, v.Email, v.Address,
				v.Notes, string(v.Status), v.CreatedAt, v.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to import vendor %s: %w", v.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) replaceTransactions(ctx context.Context, transactions []model.Transaction) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		for i := range transactions {
			t := &transactions[i]
			if t.ID == "" {
				t.ID = model.NewID()
			}
			t.Normalize()
			_, err := tx.ExecContext(ctx, `
				INSERT INTO transactions (
					id, type, date, amount, vendor_id, project_id, category,
					payment_method, payment_status, amount_paid, description, notes,
					created_at, updated_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, t.ID, string(t.Type), t.Date, t.Amount.String(), t.VendorID,
				t.ProjectID, t.Category, t.PaymentMethod, string(t.PaymentStatus),
				t.AmountPaid.String(), t.Description, t.Notes, t.CreatedAt, t.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to import transaction %s: %w", t.ID, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStorage) replaceProjects(ctx context.Context, projects []model.Project) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
			return fmt.Errorf("failed to clear projects: %w", err)
		}
		for i := range projects {
			p := &projects[i]
			if p.ID == "" {
				p.ID = model.NewID()
			}
			if p.Status == "" {
				p.Status = model.ProjectPlanning
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO projects (
					id, name, status, client, location, start_date, end_date,
					budget, progress, description, notes, created_at, updated_at
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, p.ID, p.Name, string(p.Status), p.Client, p.Location,
				nullTime(p.StartDate), nullTime(p.EndDate), nullDecimal(p.Budget),
				p.Progress, p.Description, p.Notes, p.CreatedAt, p.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to import project %s: %w", p.ID, err)
			}
		}
		return nil
	})
}
