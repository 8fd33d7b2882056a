package report

import (
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/shopspring/decimal"
)

// ProjectSummary holds the financial figures for a single project.
// RemainingBudget is nil when the project has no budget set, which is
// distinct from a project whose budget is exactly spent.
type ProjectSummary struct {
	RemainingBudget  *decimal.Decimal
	TotalSpent       decimal.Decimal
	TotalIncome      decimal.Decimal
	NetAmount        decimal.Decimal
	Outstanding      decimal.Decimal
	ProfitMargin     float64
	TransactionCount int
}

// SummarizeProject computes the summary for one project from the full
// transaction list. The detail view passes periodFiltered=false for
// lifetime figures; dashboard aggregates pass true to restrict to the
// selected period.
func SummarizeProject(project model.Project, transactions []model.Transaction, p Period, now time.Time, periodFiltered bool) ProjectSummary {
	if periodFiltered {
		transactions = FilterByPeriod(transactions, p, now)
	}

	s := ProjectSummary{
		TotalSpent:  decimal.Zero,
		TotalIncome: decimal.Zero,
		Outstanding: decimal.Zero,
	}

	for _, txn := range transactions {
		if txn.ProjectID != project.ID {
			continue
		}
		s.TransactionCount++

		switch txn.Type {
		case model.TypeExpense:
			s.TotalSpent = s.TotalSpent.Add(txn.Amount)
		case model.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(txn.Amount)
		}

		if txn.PaymentStatus == model.PaymentCredit || txn.PaymentStatus == model.PaymentPartial {
			s.Outstanding = s.Outstanding.Add(txn.Outstanding())
		}
	}

	s.NetAmount = s.TotalIncome.Sub(s.TotalSpent)

	if s.TotalIncome.IsPositive() {
		margin, _ := s.NetAmount.Div(s.TotalIncome).Mul(decimal.NewFromInt(100)).Float64()
		s.ProfitMargin = margin
	}

	if project.Budget != nil {
		remaining := project.Budget.Sub(s.TotalSpent)
		s.RemainingBudget = &remaining
	}

	return s
}

// PortfolioSummary aggregates across all projects for the dashboard.
type PortfolioSummary struct {
	StatusCounts      map[model.ProjectStatus]int
	TotalProjectValue decimal.Decimal
	AvgProjectCost    decimal.Decimal
	ProjectCount      int
	ActiveProjects    int
}

// SummarizePortfolio computes the all-projects dashboard metrics: per
// project the absolute income/expense gap contributes to the total value,
// and the average divides that by the project count.
func SummarizePortfolio(projects []model.Project, transactions []model.Transaction) PortfolioSummary {
	s := PortfolioSummary{
		TotalProjectValue: decimal.Zero,
		AvgProjectCost:    decimal.Zero,
		StatusCounts: map[model.ProjectStatus]int{
			model.ProjectPlanning:  0,
			model.ProjectActive:    0,
			model.ProjectOnHold:    0,
			model.ProjectCompleted: 0,
		},
		ProjectCount: len(projects),
	}

	for _, project := range projects {
		s.StatusCounts[project.Status]++
		if project.Status == model.ProjectActive {
			s.ActiveProjects++
		}

		income := decimal.Zero
		expense := decimal.Zero
		for _, txn := range transactions {
			if txn.ProjectID != project.ID {
				continue
			}
			switch txn.Type {
			case model.TypeIncome:
				income = income.Add(txn.Amount)
			case model.TypeExpense:
				expense = expense.Add(txn.Amount)
			}
		}
		s.TotalProjectValue = s.TotalProjectValue.Add(income.Sub(expense).Abs())
	}

	if s.ProjectCount > 0 {
		s.AvgProjectCost = s.TotalProjectValue.Div(decimal.NewFromInt(int64(s.ProjectCount)))
	}

	return s
}
