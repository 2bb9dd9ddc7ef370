package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MonthPeriod is a calendar year and month, the day discarded
type MonthPeriod struct {
	Year  int
	Month time.Month
}

// ParseMonthPeriod parses a YYYY-MM string
func ParseMonthPeriod(s string) (MonthPeriod, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthPeriod{}, fmt.Errorf("parsing month period %q: %w", s, err)
	}
	return MonthPeriod{Year: t.Year(), Month: t.Month()}, nil
}

func (p MonthPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Before reports whether p comes strictly before other
func (p MonthPeriod) Before(other MonthPeriod) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// MarshalText renders the period as YYYY-MM
func (p MonthPeriod) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Range returns the inclusive range of days the month covers
func (p MonthPeriod) Range() DateRange {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// MonthTotal is the summed amount of one month
type MonthTotal struct {
	Month MonthPeriod     `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// CategoryTotal is the summed amount of one category
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// AggregateResult holds the derived views over a classified ledger
type AggregateResult struct {
	ByCategory []CategoryTotal `json:"by_category"`
	ByMonth    []MonthTotal    `json:"by_month"`
	NetBalance decimal.Decimal `json:"net_balance"`
}
