package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/model"
)

func TestGetSettingsReturnsDefaultsWhenUnset(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.CompanyName != "Your Business" {
		t.Errorf("CompanyName = %q", settings.CompanyName)
	}
	if settings.Currency != "INR" {
		t.Errorf("Currency = %q", settings.Currency)
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	settings := model.DefaultSettings()
	settings.CompanyName = "Sharma Constructions"
	settings.Theme = "dark"
	if err := store.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if got.CompanyName != "Sharma Constructions" || got.Theme != "dark" {
		t.Errorf("GetSettings returned %+v", got)
	}
}

func TestAddCustomCategoryPreservesOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	labels := []string{"Cement", "Steel", "Timber"}
	for _, label := range labels {
		if err := store.AddCustomCategory(ctx, model.CategoryKindVendor, label); err != nil {
			t.Fatalf("AddCustomCategory(%q) failed: %v", label, err)
		}
	}

	settings, err := store.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	got := settings.CustomCategories[model.CategoryKindVendor]
	if len(got) != len(labels) {
		t.Fatalf("Categories = %v", got)
	}
	for i, label := range labels {
		if got[i] != label {
			t.Errorf("Category[%d] = %q, want %q", i, got[i], label)
		}
	}
}

func TestAddCustomCategoryDuplicateIsCaseSensitive(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.AddCustomCategory(ctx, model.CategoryKindVendor, "Steel"); err != nil {
		t.Fatalf("AddCustomCategory failed: %v", err)
	}

	err := store.AddCustomCategory(ctx, model.CategoryKindVendor, "Steel")
	if !errors.Is(err, common.ErrDuplicateEntry) {
		t.Errorf("Duplicate add = %v, want ErrDuplicateEntry", err)
	}

	// Different case is a different label.
	if err := store.AddCustomCategory(ctx, model.CategoryKindVendor, "steel"); err != nil {
		t.Errorf("Case-variant add failed: %v", err)
	}

	// Same label under a different kind is fine.
	if err := store.AddCustomCategory(ctx, model.CategoryKindTransaction, "Steel"); err != nil {
		t.Errorf("Cross-kind add failed: %v", err)
	}
}
