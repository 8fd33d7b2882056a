package report

import (
	"testing"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func txn(txType model.TransactionType, amount string, day time.Time) model.Transaction {
	t := model.Transaction{
		ID:            model.NewID(),
		Type:          txType,
		Amount:        model.ParseAmount(amount),
		Date:          day,
		PaymentStatus: model.PaymentPaid,
		CreatedAt:     day,
	}
	t.AmountPaid = t.Amount
	return t
}

func TestSummarizeProfitAndMargin(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "500", date(2026, time.March, 2)),
		txn(model.TypeIncome, "500", date(2026, time.March, 5)),
		txn(model.TypeExpense, "400", date(2026, time.March, 10)),
	}

	s := Summarize(transactions, PeriodMonth, now)

	assert.True(t, s.Income.Equal(decimal.NewFromInt(1000)), "income = %s", s.Income)
	assert.True(t, s.Expenses.Equal(decimal.NewFromInt(400)), "expenses = %s", s.Expenses)
	assert.True(t, s.NetProfit.Equal(decimal.NewFromInt(600)), "net profit = %s", s.NetProfit)
	assert.InDelta(t, 60.0, s.ProfitMargin, 0.0001)
	assert.Equal(t, 3, s.TransactionCount)
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(nil, PeriodMonth, date(2026, time.March, 15))

	assert.True(t, s.Income.IsZero())
	assert.True(t, s.Expenses.IsZero())
	assert.True(t, s.NetProfit.IsZero())
	assert.Zero(t, s.ProfitMargin)
	assert.True(t, s.AverageTransaction.IsZero())
	assert.Equal(t, 0, s.TransactionCount)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "123.45", date(2026, time.March, 3)),
		txn(model.TypeExpense, "67.89", date(2026, time.March, 4)),
	}

	first := Summarize(transactions, PeriodMonth, now)
	second := Summarize(transactions, PeriodMonth, now)

	assert.Equal(t, first, second)
}

func TestSummarizeLargestAndAverages(t *testing.T) {
	now := date(2026, time.March, 15)
	transactions := []model.Transaction{
		txn(model.TypeIncome, "100", date(2026, time.March, 1)),
		txn(model.TypeIncome, "300", date(2026, time.March, 2)),
		txn(model.TypeExpense, "50", date(2026, time.March, 3)),
	}

	s := Summarize(transactions, PeriodMonth, now)

	assert.True(t, s.LargestIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.LargestExpense.Equal(decimal.NewFromInt(50)))

	// (100+300+50)/3 = 150
	assert.True(t, s.AverageTransaction.Equal(decimal.NewFromInt(150)), "avg = %s", s.AverageTransaction)

	// March has 31 days.
	require.Equal(t, 31, PeriodMonth.Days(now))
	expected := decimal.NewFromInt(400).Div(decimal.NewFromInt(31))
	assert.True(t, s.DailyAverageIncome.Equal(expected), "daily income = %s", s.DailyAverageIncome)
}

func TestSumByType(t *testing.T) {
	transactions := []model.Transaction{
		txn(model.TypeIncome, "10", date(2026, time.March, 1)),
		txn(model.TypeExpense, "4", date(2026, time.March, 1)),
		txn(model.TypeIncome, "5", date(2026, time.March, 2)),
	}

	assert.True(t, SumByType(transactions, model.TypeIncome).Equal(decimal.NewFromInt(15)))
	assert.True(t, SumByType(transactions, model.TypeExpense).Equal(decimal.NewFromInt(4)))
	assert.True(t, SumByType(nil, model.TypeIncome).IsZero())
}
