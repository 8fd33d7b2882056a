package report

import (
	"sort"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// VendorBalance is the lifetime money flow between the business and one
// vendor. CreditBalance is signed: positive means the business still owes
// the vendor, negative means the vendor owes the business. NetBalance is
// total cash flow (received minus paid), a distinct figure from the
// outstanding credit.
type VendorBalance struct {
	YouGive          decimal.Decimal
	YouGot           decimal.Decimal
	CreditBalance    decimal.Decimal
	NetBalance       decimal.Decimal
	TransactionCount int
}

// BalanceForVendor scans every transaction referencing the vendor; the
// figures are lifetime totals, never period-filtered.
func BalanceForVendor(transactions []model.Transaction, vendorID string) VendorBalance {
	var b VendorBalance
	b.YouGive = decimal.Zero
	b.YouGot = decimal.Zero
	b.CreditBalance = decimal.Zero

	for _, txn := range transactions {
		if txn.VendorID != vendorID {
			continue
		}
		b.TransactionCount++

		outstanding := txn.Outstanding()
		switch txn.Type {
		case model.TypeExpense:
			b.YouGive = b.YouGive.Add(txn.Amount)
			// Unpaid expense: the business owes the vendor.
			if outstanding.IsPositive() {
				b.CreditBalance = b.CreditBalance.Add(outstanding)
			}
		case model.TypeIncome:
			b.YouGot = b.YouGot.Add(txn.Amount)
			// Unpaid income: the vendor owes the business.
			if outstanding.IsPositive() {
				b.CreditBalance = b.CreditBalance.Sub(outstanding)
			}
		}
	}

	b.NetBalance = b.YouGot.Sub(b.YouGive)
	return b
}

// MostActiveVendor returns the vendor id with the most transactions in the
// given set, along with its count. Ties go to the vendor encountered first,
// so the result is deterministic for a fixed input order. Transactions
// without a vendor reference are ignored; an empty result is ("", 0).
func MostActiveVendor(transactions []model.Transaction) (string, int) {
	counts := make(map[string]int)
	var order []string

	for _, txn := range transactions {
		if txn.VendorID == "" {
			continue
		}
		if _, seen := counts[txn.VendorID]; !seen {
			order = append(order, txn.VendorID)
		}
		counts[txn.VendorID]++
	}

	bestID := ""
	bestCount := 0
	for _, id := range order {
		if counts[id] > bestCount {
			bestID = id
			bestCount = counts[id]
		}
	}
	return bestID, bestCount
}

// VendorSpend is one row of the top-spending ranking.
type VendorSpend struct {
	Name   string
	Amount decimal.Decimal
}

// TopVendorSpending groups expense transactions by resolved vendor name,
// sums them, and returns the top n by amount. Transactions whose vendor id
// no longer resolves are dropped from the ranking: identity is required
// here, and a dangling reference has none.
func TopVendorSpending(transactions []model.Transaction, vendors []model.Vendor, n int) []VendorSpend {
	names := make(map[string]string, len(vendors))
	for _, v := range vendors {
		names[v.ID] = v.Name
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, txn := range transactions {
		if txn.Type != model.TypeExpense || txn.VendorID == "" {
			continue
		}
		name, ok := names[txn.VendorID]
		if !ok {
			continue
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(txn.Amount)
	}

	ranking := make([]VendorSpend, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, VendorSpend{Name: name, Amount: totals[name]})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Amount.GreaterThan(ranking[j].Amount)
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// VendorReportRow is one vendor with its spend figures recomputed from the
// transaction list. TotalSpent is derived on read; nothing stale is stored.
type VendorReportRow struct {
	LastTransaction  *time.Time
	Vendor           model.Vendor
	TotalSpent       decimal.Decimal
	TransactionCount int
}

// VendorReport produces a row per vendor with lifetime spend and activity.
func VendorReport(vendors []model.Vendor, transactions []model.Transaction) []VendorReportRow {
	rows := make([]VendorReportRow, 0, len(vendors))
	for _, vendor := range vendors {
		row := VendorReportRow{Vendor: vendor, TotalSpent: decimal.Zero}
		for _, txn := range transactions {
			if txn.VendorID != vendor.ID {
				continue
			}
			row.TransactionCount++
			if txn.Type == model.TypeExpense {
				row.TotalSpent = row.TotalSpent.Add(txn.Amount)
			}
			if row.LastTransaction == nil || txn.Date.After(*row.LastTransaction) {
				d := txn.Date
				row.LastTransaction = &d
			}
		}
		rows = append(rows, row)
	}
	return rows
}
