package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/quarryhq/tally/internal/common"
	"github.com/quarryhq/tally/internal/config"
	"github.com/quarryhq/tally/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// openStore initializes the ledger store with proper path expansion and
// runs any pending migrations.
func openStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tally/tally.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open ledger database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, common.NewUserError("could not upgrade the ledger database", err)
	}

	return store, nil
}

// newTable returns a tabwriter for aligned columnar output on stdout.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// money renders an amount with two decimal places and the configured
// currency code. Formatting stops there; locale-aware rendering belongs
// to richer front ends.
func money(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}

// currencyCode reads the configured currency for display.
func currencyCode(ctx context.Context, store *storage.SQLiteStorage) string {
	settings, err := store.GetSettings(ctx)
	if err != nil {
		return "INR"
	}
	return settings.Currency
}

// parseDateArg accepts dates in YYYY-MM-DD form.
func parseDateArg(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatDate(*t)
}
