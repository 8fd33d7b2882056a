package report

import (
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// Summary holds the period-level profit and loss figures shown on the
// dashboard stat cards. Margins are percentages; everything else is a
// monetary amount.
type Summary struct {
	Income               decimal.Decimal
	Expenses             decimal.Decimal
	NetProfit            decimal.Decimal
	LargestIncome        decimal.Decimal
	LargestExpense       decimal.Decimal
	AverageTransaction   decimal.Decimal
	DailyAverageIncome   decimal.Decimal
	DailyAverageExpenses decimal.Decimal
	ProfitMargin         float64
	TransactionCount     int
}

// SumByType totals the amounts of transactions matching the given type.
// An empty input yields zero.
func SumByType(transactions []model.Transaction, txType model.TransactionType) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		if txn.Type == txType {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum
}

// Summarize computes the period summary over an already period-filtered
// transaction list. All ratio figures short-circuit to zero instead of
// dividing by zero, so an empty ledger produces a zero-valued Summary.
func Summarize(transactions []model.Transaction, p Period, now time.Time) Summary {
	s := Summary{
		Income:           SumByType(transactions, model.TypeIncome),
		Expenses:         SumByType(transactions, model.TypeExpense),
		TransactionCount: len(transactions),
	}
	s.NetProfit = s.Income.Sub(s.Expenses)

	if s.Income.IsPositive() {
		margin, _ := s.NetProfit.Div(s.Income).Mul(decimal.NewFromInt(100)).Float64()
		s.ProfitMargin = margin
	}

	if s.TransactionCount > 0 {
		s.AverageTransaction = s.Income.Add(s.Expenses).Div(decimal.NewFromInt(int64(s.TransactionCount)))
	}

	if days := p.Days(now); days > 0 {
		divisor := decimal.NewFromInt(int64(days))
		s.DailyAverageIncome = s.Income.Div(divisor)
		s.DailyAverageExpenses = s.Expenses.Div(divisor)
	}

	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			if txn.Amount.GreaterThan(s.LargestIncome) {
				s.LargestIncome = txn.Amount
			}
		case model.TypeExpense:
			if txn.Amount.GreaterThan(s.LargestExpense) {
				s.LargestExpense = txn.Amount
			}
		}
	}

	return s
}
