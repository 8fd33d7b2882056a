package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/quarryhq/tally/internal/model"
)

// Activity kinds, used by renderers to pick an icon or colour.
const (
	ActivityTransaction = "transaction"
	ActivityProject     = "project"
	ActivityVendor      = "vendor"
)

// Activity is one entry in the dashboard's recent-activity feed. Icon is a
// symbolic tag for renderers; this package never formats it.
type Activity struct {
	Timestamp   time.Time
	Kind        string
	Icon        string
	Description string
}

// RecentActivity merges the newest records from each collection into a
// single feed: up to five transactions, three projects, and two vendors,
// selected by creation time, then sorted newest first. Ties keep the
// transaction-project-vendor ordering. The result is capped at limit when
// limit is positive.
func RecentActivity(transactions []model.Transaction, projects []model.Project, vendors []model.Vendor, limit int) []Activity {
	vendorNames := make(map[string]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}
	projectNames := make(map[string]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}

	var feed []Activity

	for _, txn := range newestTransactions(transactions, 5) {
		icon := "expense"
		if txn.Type == model.TypeIncome {
			icon = "income"
		}
		feed = append(feed, Activity{
			Timestamp:   txn.CreatedAt,
			Kind:        ActivityTransaction,
			Icon:        icon,
			Description: describeTransaction(txn, vendorNames, projectNames),
		})
	}
	for _, p := range newestProjects(projects, 3) {
		feed = append(feed, Activity{
			Timestamp:   p.CreatedAt,
			Kind:        ActivityProject,
			Icon:        "project",
			Description: fmt.Sprintf("Project %q created", p.Name),
		})
	}
	for _, v := range newestVendors(vendors, 2) {
		feed = append(feed, Activity{
			Timestamp:   v.CreatedAt,
			Kind:        ActivityVendor,
			Icon:        "vendor",
			Description: fmt.Sprintf("Vendor %q added", v.Name),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})

	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

func describeTransaction(txn model.Transaction, vendorNames, projectNames map[string]string) string {
	verb := "Paid"
	if txn.Type == model.TypeIncome {
		verb = "Received"
	}

	desc := fmt.Sprintf("%s %s", verb, txn.Amount.StringFixed(2))
	if name, ok := vendorNames[txn.VendorID]; ok && txn.VendorID != "" {
		desc += " to " + name
	}
	if name, ok := projectNames[txn.ProjectID]; ok && txn.ProjectID != "" {
		desc += " for " + name
	}
	return desc
}

func newestTransactions(transactions []model.Transaction, n int) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func newestProjects(projects []model.Project, n int) []model.Project {
	sorted := make([]model.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func newestVendors(vendors []model.Vendor, n int) []model.Vendor {
	sorted := make([]model.Vendor, len(vendors))
	copy(sorted, vendors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
