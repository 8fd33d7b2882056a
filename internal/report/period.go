// Package report computes derived financial figures from in-memory ledger
// snapshots. Every function is pure: inputs are entity slices plus an
// explicit reference time, outputs are plain view-model records, and no
// function performs I/O or caches results between calls.
package report

import (
	"time"

	"github.com/quarryhq/tally/internal/model"
)

// Period is a user-selected reporting window.
type Period string

// Reporting periods.
const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod maps a selector value to a Period. Unknown or missing values
// fall back to month, matching the dashboard default.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// Range resolves the period to a concrete [start, now] interval.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	var start time.Time
	switch p {
	case PeriodWeek:
		// Seven calendar days back, not rounded to a week boundary.
		start = time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location())
	case PeriodQuarter:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return start, now
}

// Days returns the day count used for daily-average figures. Week and month
// are calendar-accurate; quarter and year are fixed at 90 and 365 regardless
// of the actual calendar.
func (p Period) Days(now time.Time) int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	default:
		// Days in the current month.
		return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	}
}

// FilterByPeriod keeps the transactions dated within the resolved period.
func FilterByPeriod(transactions []model.Transaction, p Period, now time.Time) []model.Transaction {
	start, end := p.Range(now)

	var filtered []model.Transaction
	for _, txn := range transactions {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}
