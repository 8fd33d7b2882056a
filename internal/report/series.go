package report

import (
	"fmt"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Bucket is one time slice of a chart series. Income and expenses are kept
// separate so the renderer can draw comparative series; they are never
// netted here. A bucket with no matching transactions reports zeros.
type Bucket struct {
	Label    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// RevenueSeries buckets the given transactions for the revenue chart. The
// strategy depends on the period: daily buckets for a week, four fixed
// seven-day buckets for a month, calendar-month buckets for quarter and
// year. Buckets run oldest to newest.
func RevenueSeries(transactions []model.Transaction, p Period, now time.Time) []Bucket {
	switch p {
	case PeriodWeek:
		return dailyBuckets(transactions, now)
	case PeriodMonth:
		return weeklyBuckets(transactions, now)
	case PeriodQuarter:
		return monthlyBuckets(transactions, now, 3, "Jan")
	case PeriodYear:
		return monthlyBuckets(transactions, now, 12, "Jan")
	default:
		return weeklyBuckets(transactions, now)
	}
}

// MonthlyTrend is the fixed last-six-months series shown on the dashboard
// regardless of the selected period.
func MonthlyTrend(transactions []model.Transaction, now time.Time) []Bucket {
	return monthlyBuckets(transactions, now, 6, "Jan 2006")
}

func dailyBuckets(transactions []model.Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, now.Location())
		next := day.AddDate(0, 0, 1)

		bucket := newBucket(day.Format("Mon"))
		for _, txn := range transactions {
			if txn.Date.Before(day) || !txn.Date.Before(next) {
				continue
			}
			bucket.add(txn)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// weeklyBuckets covers the last 28 days in four fixed seven-day windows
// anchored to now, not to calendar weeks.
func weeklyBuckets(transactions []model.Transaction, now time.Time) []Bucket {
	buckets := make([]Bucket, 0, 4)
	for i := 3; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), now.Day()-(i*7)-6, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), now.Day()-(i*7)+1, 0, 0, 0, 0, now.Location())

		bucket := newBucket(fmt.Sprintf("Week %d", 4-i))
		for _, txn := range transactions {
			if txn.Date.Before(start) || !txn.Date.Before(end) {
				continue
			}
			bucket.add(txn)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// monthlyBuckets matches transactions by calendar month and year equality.
func monthlyBuckets(transactions []model.Transaction, now time.Time, months int, labelFormat string) []Bucket {
	buckets := make([]Bucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		anchor := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		bucket := newBucket(anchor.Format(labelFormat))
		for _, txn := range transactions {
			if txn.Date.Month() != anchor.Month() || txn.Date.Year() != anchor.Year() {
				continue
			}
			bucket.add(txn)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func newBucket(label string) Bucket {
	return Bucket{Label: label, Income: decimal.Zero, Expenses: decimal.Zero}
}

func (b *Bucket) add(txn model.Transaction) {
	switch txn.Type {
	case model.TypeIncome:
		b.Income = b.Income.Add(txn.Amount)
	case model.TypeExpense:
		b.Expenses = b.Expenses.Add(txn.Amount)
	}
}
