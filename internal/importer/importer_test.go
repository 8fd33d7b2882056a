package importer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quarryhq/tally/internal/model"
	"github.com/quarryhq/tally/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter(t *testing.T) (*Importer, *storage.SQLiteStorage) {
	t.Helper()
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return New(store, nil), store
}

const csvHeader = "date,type,amount,category,payment_method,payment_status,amount_paid,description,notes,vendor,project\n"

func TestImportTransactions(t *testing.T) {
	imp, store := newTestImporter(t)
	ctx := context.Background()

	input := csvHeader +
		"2026-03-01,expense,1500,materials,cash,paid,1500,cement bags,,Acme Cement,\n" +
		"2026-03-02,income,5000,payment,upi,partial,3000,advance received,,Acme Cement,\n"

	result, err := imp.ImportTransactions(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.RowErrors)
	assert.Equal(t, 1, result.VendorsCreated, "both rows share one auto-created vendor")

	vendors, err := store.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Acme Cement", vendors[0].Name)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	for _, txn := range transactions {
		assert.Equal(t, vendors[0].ID, txn.VendorID)
	}
}

func TestImportTransactionsReusesExistingVendor(t *testing.T) {
	imp, store := newTestImporter(t)
	ctx := context.Background()

	existing := &model.Vendor{Name: "Acme Cement"}
	require.NoError(t, store.AddVendor(ctx, existing))

	input := csvHeader + "2026-03-01,expense,100,materials,cash,paid,100,bags,,Acme Cement,\n"
	result, err := imp.ImportTransactions(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.VendorsCreated)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, existing.ID, transactions[0].VendorID)
}

func TestImportTransactionsRejectsBadRowsAndContinues(t *testing.T) {
	imp, store := newTestImporter(t)
	ctx := context.Background()

	input := csvHeader +
		"2026-03-01,expense,garbage,materials,cash,paid,0,bad amount,,,\n" +
		"not-a-date,expense,100,materials,cash,paid,100,bad date,,,\n" +
		"2026-03-03,expense,100,materials,cash,paid,100,linked to ghost,,,Ghost Project\n" +
		"2026-03-04,expense,200,materials,cash,paid,200,good row,,,\n"

	result, err := imp.ImportTransactions(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.RowErrors, 3)
	// Lines are 1-based with the header on line 1.
	assert.Equal(t, 2, result.RowErrors[0].Line)
	assert.Equal(t, 3, result.RowErrors[1].Line)
	assert.Equal(t, 4, result.RowErrors[2].Line)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "good row", transactions[0].Description)
	assert.True(t, transactions[0].Amount.Equal(decimal.NewFromInt(200)))
}

func TestImportTransactionsResolvesProject(t *testing.T) {
	imp, store := newTestImporter(t)
	ctx := context.Background()

	project := &model.Project{Name: "Warehouse"}
	require.NoError(t, store.AddProject(ctx, project))

	input := csvHeader + "2026-03-01,expense,100,materials,cash,paid,100,bags,,,Warehouse\n"
	result, err := imp.ImportTransactions(ctx, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	transactions, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, project.ID, transactions[0].ProjectID)
}
