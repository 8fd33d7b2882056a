package report

import (
	"testing"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentActivityMergesAndSorts(t *testing.T) {
	base := date(2026, time.March, 1)

	vendors := []model.Vendor{
		{ID: "v1", Name: "Acme", CreatedAt: base.Add(1 * time.Hour)},
	}
	projects := []model.Project{
		{ID: "p1", Name: "Warehouse", CreatedAt: base.Add(3 * time.Hour)},
	}
	transactions := []model.Transaction{
		{
			ID:        model.NewID(),
			Type:      model.TypeIncome,
			Amount:    model.ParseAmount("1000"),
			VendorID:  "v1",
			ProjectID: "p1",
			CreatedAt: base.Add(5 * time.Hour),
		},
	}

	feed := RecentActivity(transactions, projects, vendors, 10)

	require.Len(t, feed, 3)
	assert.Equal(t, ActivityTransaction, feed[0].Kind)
	assert.Equal(t, "Received 1000.00 to Acme for Warehouse", feed[0].Description)
	assert.Equal(t, ActivityProject, feed[1].Kind)
	assert.Equal(t, ActivityVendor, feed[2].Kind)
}

func TestRecentActivityPerCollectionCaps(t *testing.T) {
	base := date(2026, time.March, 1)

	var transactions []model.Transaction
	for i := 0; i < 8; i++ {
		transactions = append(transactions, model.Transaction{
			ID:        model.NewID(),
			Type:      model.TypeExpense,
			Amount:    model.ParseAmount("10"),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	var projects []model.Project
	for i := 0; i < 5; i++ {
		projects = append(projects, model.Project{
			ID: model.NewID(), Name: "P", CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	var vendors []model.Vendor
	for i := 0; i < 4; i++ {
		vendors = append(vendors, model.Vendor{
			ID: model.NewID(), Name: "V", CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	feed := RecentActivity(transactions, projects, vendors, 0)

	counts := map[string]int{}
	for _, a := range feed {
		counts[a.Kind]++
	}
	assert.Equal(t, 5, counts[ActivityTransaction])
	assert.Equal(t, 3, counts[ActivityProject])
	assert.Equal(t, 2, counts[ActivityVendor])
}

func TestRecentActivityLimit(t *testing.T) {
	base := date(2026, time.March, 1)

	var transactions []model.Transaction
	for i := 0; i < 5; i++ {
		transactions = append(transactions, model.Transaction{
			ID:        model.NewID(),
			Type:      model.TypeExpense,
			Amount:    model.ParseAmount("10"),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	feed := RecentActivity(transactions, nil, nil, 3)
	assert.Len(t, feed, 3)
}

func TestRecentActivityStableForEqualTimestamps(t *testing.T) {
	ts := date(2026, time.March, 1)

	transactions := []model.Transaction{
		{ID: "t1", Type: model.TypeExpense, Amount: model.ParseAmount("1"), CreatedAt: ts},
	}
	projects := []model.Project{{ID: "p1", Name: "P", CreatedAt: ts}}
	vendors := []model.Vendor{{ID: "v1", Name: "V", CreatedAt: ts}}

	for i := 0; i < 5; i++ {
		feed := RecentActivity(transactions, projects, vendors, 10)
		require.Len(t, feed, 3)
		assert.Equal(t, ActivityTransaction, feed[0].Kind)
		assert.Equal(t, ActivityProject, feed[1].Kind)
		assert.Equal(t, ActivityVendor, feed[2].Kind)
	}
}

func TestRecentActivityOmitsDanglingReferences(t *testing.T) {
	ts := date(2026, time.March, 1)
	transactions := []model.Transaction{
		{
			ID:        model.NewID(),
			Type:      model.TypeExpense,
			Amount:    model.ParseAmount("250"),
			VendorID:  "gone",
			ProjectID: "also-gone",
			CreatedAt: ts,
		},
	}

	feed := RecentActivity(transactions, nil, nil, 10)

	require.Len(t, feed, 1)
	assert.Equal(t, "Paid 250.00", feed[0].Description)
}
