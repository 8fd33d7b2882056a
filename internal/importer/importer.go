// Package importer loads transactions from CSV files into the ledger store,
// resolving vendor and project names to stored records along the way.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/quarryhq/tally/internal/model"
	"github.com/quarryhq/tally/internal/storage"
)

// row is one CSV line of a transaction import file. Amounts stay strings
// here; coercion happens in one place, at conversion.
type row struct {
	Date          string `csv:"date"`
	Type          string `csv:"type"`
	Amount        string `csv:"amount"`
	Category      string `csv:"category"`
	PaymentMethod string `csv:"payment_method"`
	PaymentStatus string `csv:"payment_status"`
	AmountPaid    string `csv:"amount_paid"`
	Description   string `csv:"description"`
	Notes         string `csv:"notes"`
	Vendor        string `csv:"vendor"`
	Project       string `csv:"project"`
}

// RowError records a rejected line together with the reason.
type RowError struct {
	Err  error
	Line int
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Result reports what an import run did.
type Result struct {
	RowErrors      []RowError
	Imported       int
	VendorsCreated int
}

// Importer reads transaction CSV files into a ledger store.
type Importer struct {
	store  *storage.SQLiteStorage
	logger *slog.Logger
}

// New creates an Importer backed by the given store.
func New(store *storage.SQLiteStorage, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{store: store, logger: logger}
}

// dateFormats accepted in the date column, tried in order.
var dateFormats = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"}

// ImportTransactions reads CSV rows from r and inserts the valid ones. A bad
// row is reported and skipped; the run continues. Vendors named in the file
// but not yet stored are created on the fly, matching by exact name.
func (i *Importer) ImportTransactions(ctx context.Context, r io.Reader) (*Result, error) {
	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	vendorIDs, err := i.vendorIndex(ctx)
	if err != nil {
		return nil, err
	}
	projectIDs, err := i.projectIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for n, record := range rows {
		line := n + 2 // header occupies line 1

		txn, err := i.convert(ctx, record, vendorIDs, projectIDs, result)
		if err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}

		if err := i.store.AddTransaction(ctx, txn); err != nil {
			result.RowErrors = append(result.RowErrors, RowError{Line: line, Err: err})
			continue
		}
		result.Imported++
	}

	i.logger.InfoContext(ctx, "import finished",
		"imported", result.Imported,
		"rejected", len(result.RowErrors),
		"vendors_created", result.VendorsCreated)
	return result, nil
}

func (i *Importer) convert(ctx context.Context, record *row, vendorIDs, projectIDs map[string]string, result *Result) (*model.Transaction, error) {
	date, err := parseDate(record.Date)
	if err != nil {
		return nil, err
	}

	txn := &model.Transaction{
		Date:          date,
		Type:          model.TransactionType(strings.ToLower(strings.TrimSpace(record.Type))),
		Category:      strings.TrimSpace(record.Category),
		PaymentMethod: strings.TrimSpace(record.PaymentMethod),
		PaymentStatus: model.PaymentStatus(strings.ToLower(strings.TrimSpace(record.PaymentStatus))),
		Description:   strings.TrimSpace(record.Description),
		Notes:         strings.TrimSpace(record.Notes),
		Amount:        model.ParseAmount(record.Amount),
		AmountPaid:    model.ParseAmount(record.AmountPaid),
	}

	if name := strings.TrimSpace(record.Vendor); name != "" {
		id, ok := vendorIDs[name]
		if !ok {
			vendor := &model.Vendor{Name: name, Status: model.VendorActive}
			if err := i.store.AddVendor(ctx, vendor); err != nil {
				return nil, fmt.Errorf("creating vendor %q: %w", name, err)
			}
			vendorIDs[name] = vendor.ID
			id = vendor.ID
			result.VendorsCreated++
		}
		txn.VendorID = id
	}

	if name := strings.TrimSpace(record.Project); name != "" {
		id, ok := projectIDs[name]
		if !ok {
			return nil, fmt.Errorf("unknown project %q", name)
		}
		txn.ProjectID = id
	}

	return txn, nil
}

func (i *Importer) vendorIndex(ctx context.Context) (map[string]string, error) {
	vendors, err := i.store.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing vendors: %w", err)
	}
	index := make(map[string]string, len(vendors))
	for _, v := range vendors {
		index[v.Name] = v.ID
	}
	return index, nil
}

func (i *Importer) projectIndex(ctx context.Context) (map[string]string, error) {
	projects, err := i.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	index := make(map[string]string, len(projects))
	for _, p := range projects {
		index[p.Name] = p.ID
	}
	return index, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if d, err := time.Parse(format, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
