package storage

import (
	"context"
	"testing"

	"github.com/quarryhq/tally/internal/model"
)

func TestSnapshotRoundTrip(t *testing.T) {
	source, cleanupSource := createTestStorage(t)
	defer cleanupSource()
	ctx := context.Background()

	vendor := testVendor("Acme Cement")
	if err := source.AddVendor(ctx, vendor); err != nil {
		t.Fatalf("AddVendor failed: %v", err)
	}
	project := testProject("Warehouse")
	if err := source.AddProject(ctx, project); err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	txn := testTransaction(model.TypeExpense, "750.25")
	txn.VendorID = vendor.ID
	txn.ProjectID = project.ID
	if err := source.AddTransaction(ctx, txn); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}
	settings := model.DefaultSettings()
	settings.CompanyName = "Exported Co"
	if err := source.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	snap, err := source.ExportSnapshot(ctx)
	if err != nil {
		t.Fatalf("ExportSnapshot failed: %v", err)
	}
	if snap.ExportedAt.IsZero() {
		t.Error("ExportedAt not set")
	}

	target, cleanupTarget := createTestStorage(t)
	defer cleanupTarget()

	if err := target.ImportSnapshot(ctx, snap); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	vendors, err := target.ListVendors(ctx)
	if err != nil {
		t.Fatalf("ListVendors failed: %v", err)
	}
	if len(vendors) != 1 || vendors[0].ID != vendor.ID {
		t.Errorf("Imported vendors = %+v", vendors)
	}

	transactions, err := target.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 1 || !transactions[0].Amount.Equal(txn.Amount) {
		t.Errorf("Imported transactions = %+v", transactions)
	}

	projects, err := target.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != project.ID {
		t.Errorf("Imported projects = %+v", projects)
	}

	got, err := target.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.CompanyName != "Exported Co" {
		t.Errorf("Imported settings CompanyName = %q", got.CompanyName)
	}
}

func TestImportSnapshotReplacesExistingCollections(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	stale := testVendor("Stale Vendor")
	if err := store.AddVendor(ctx, stale); err != nil {
		t.Fatalf("AddVendor failed: %v", err)
	}

	fresh := testVendor("Fresh Vendor")
	fresh.ID = model.NewID()
	snap := &Snapshot{Vendors: []model.Vendor{*fresh}}

	if err := store.ImportSnapshot(ctx, snap); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	vendors, err := store.ListVendors(ctx)
	if err != nil {
		t.Fatalf("ListVendors failed: %v", err)
	}
	if len(vendors) != 1 || vendors[0].Name != "Fresh Vendor" {
		t.Errorf("Vendors after import = %+v", vendors)
	}
}

func TestImportSnapshotLeavesAbsentCollectionsAlone(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	txn := testTransaction(model.TypeIncome, "100")
	if err := store.AddTransaction(ctx, txn); err != nil {
		t.Fatalf("AddTransaction failed: %v", err)
	}

	snap := &Snapshot{Vendors: []model.Vendor{}}
	if err := store.ImportSnapshot(ctx, snap); err != nil {
		t.Fatalf("ImportSnapshot failed: %v", err)
	}

	transactions, err := store.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 1 {
		t.Errorf("Transactions after partial import = %+v", transactions)
	}
}
