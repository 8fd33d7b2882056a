package report

import (
	"testing"
	"time"

	"github.com/quarryhq/tally/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParsePeriodFallsBackToMonth(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("fortnight"))
}

func TestPeriodRange(t *testing.T) {
	now := time.Date(2026, time.August, 20, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		p     Period
		start time.Time
	}{
		{"week", PeriodWeek, time.Date(2026, time.August, 13, 0, 0, 0, 0, time.UTC)},
		{"month", PeriodMonth, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter", PeriodQuarter, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{"year", PeriodYear, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.p.Range(now)
			assert.True(t, start.Equal(tt.start), "start = %v", start)
			assert.True(t, end.Equal(now))
		})
	}
}

func TestPeriodDays(t *testing.T) {
	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, PeriodWeek.Days(feb))
	assert.Equal(t, 28, PeriodMonth.Days(feb))
	assert.Equal(t, 90, PeriodQuarter.Days(feb))
	assert.Equal(t, 365, PeriodYear.Days(feb))

	leapFeb := time.Date(2028, time.February, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 29, PeriodMonth.Days(leapFeb))
}

func TestFilterByPeriodIsInclusive(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	inStart := txn(model.TypeIncome, "1", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC))
	inEnd := txn(model.TypeIncome, "2", now)
	before := txn(model.TypeIncome, "3", time.Date(2026, time.February, 28, 12, 0, 0, 0, time.UTC))
	after := txn(model.TypeIncome, "4", time.Date(2026, time.March, 15, 12, 0, 1, 0, time.UTC))

	filtered := FilterByPeriod([]model.Transaction{inStart, inEnd, before, after}, PeriodMonth, now)

	assert.Len(t, filtered, 2)
	assert.Equal(t, inStart.ID, filtered[0].ID)
	assert.Equal(t, inEnd.ID, filtered[1].ID)
}
