package report

import (
	"testing"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSeriesWeekZeroFill(t *testing.T) {
	now := date(2026, time.March, 15)

	buckets := RevenueSeries(nil, PeriodWeek, now)

	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.True(t, b.Income.IsZero(), "bucket %s income", b.Label)
		assert.True(t, b.Expenses.IsZero(), "bucket %s expenses", b.Label)
		assert.NotEmpty(t, b.Label)
	}
	// Oldest first; 2026-03-15 is a Sunday, so the last bucket is Sun.
	assert.Equal(t, "Mon", buckets[0].Label)
	assert.Equal(t, "Sun", buckets[6].Label)
}

func TestRevenueSeriesWeekDailyBuckets(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "100", date(2026, time.March, 15)),
		txn(model.TypeExpense, "40", date(2026, time.March, 15)),
		txn(model.TypeIncome, "7", date(2026, time.March, 13)),
		txn(model.TypeIncome, "999", date(2026, time.March, 8)), // outside the 7-day window
	}

	buckets := RevenueSeries(transactions, PeriodWeek, now)

	require.Len(t, buckets, 7)
	last := buckets[6]
	assert.True(t, last.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, last.Expenses.Equal(decimal.NewFromInt(40)))
	assert.True(t, buckets[4].Income.Equal(decimal.NewFromInt(7)))
	assert.True(t, buckets[0].Income.IsZero())
}

func TestRevenueSeriesMonthWeeklyWindows(t *testing.T) {
	now := date(2026, time.March, 28)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "10", date(2026, time.March, 28)), // week 4
		txn(model.TypeIncome, "20", date(2026, time.March, 21)), // week 3 window end
		txn(model.TypeExpense, "5", date(2026, time.March, 1)),  // week 1 window start
	}

	buckets := RevenueSeries(transactions, PeriodMonth, now)

	require.Len(t, buckets, 4)
	assert.Equal(t, "Week 1", buckets[0].Label)
	assert.Equal(t, "Week 4", buckets[3].Label)
	assert.True(t, buckets[0].Expenses.Equal(decimal.NewFromInt(5)), "week 1 expenses = %s", buckets[0].Expenses)
	assert.True(t, buckets[2].Income.Equal(decimal.NewFromInt(20)), "week 3 income = %s", buckets[2].Income)
	assert.True(t, buckets[3].Income.Equal(decimal.NewFromInt(10)))
}

func TestRevenueSeriesQuarterAndYearMonthlyBuckets(t *testing.T) {
	now := date(2026, time.August, 10)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "100", date(2026, time.August, 2)),
		txn(model.TypeIncome, "50", date(2026, time.June, 20)),
		txn(model.TypeIncome, "77", date(2025, time.August, 2)), // same month, wrong year
	}

	quarter := RevenueSeries(transactions, PeriodQuarter, now)
	require.Len(t, quarter, 3)
	assert.Equal(t, "Jun", quarter[0].Label)
	assert.Equal(t, "Aug", quarter[2].Label)
	assert.True(t, quarter[0].Income.Equal(decimal.NewFromInt(50)))
	assert.True(t, quarter[2].Income.Equal(decimal.NewFromInt(100)), "year equality must exclude last year's August")

	year := RevenueSeries(transactions, PeriodYear, now)
	require.Len(t, year, 12)
	assert.Equal(t, "Sep", year[0].Label)
	assert.Equal(t, "Aug", year[11].Label)
}

func TestRevenueSeriesKeepsIncomeAndExpensesSeparate(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "100", date(2026, time.March, 15)),
		txn(model.TypeExpense, "100", date(2026, time.March, 15)),
	}

	buckets := RevenueSeries(transactions, PeriodWeek, now)

	last := buckets[6]
	assert.True(t, last.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, last.Expenses.Equal(decimal.NewFromInt(100)), "expenses must not be netted against income")
}

func TestMonthlyTrend(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "500", date(2026, time.March, 1)),
		txn(model.TypeExpense, "200", date(2025, time.October, 10)),
		txn(model.TypeIncome, "9", date(2025, time.September, 1)), // older than 6 months
	}

	buckets := MonthlyTrend(transactions, now)

	require.Len(t, buckets, 6)
	assert.Equal(t, "Oct 2025", buckets[0].Label)
	assert.Equal(t, "Mar 2026", buckets[5].Label)
	assert.True(t, buckets[0].Expenses.Equal(decimal.NewFromInt(200)))
	assert.True(t, buckets[5].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, buckets[1].Income.IsZero())
}
