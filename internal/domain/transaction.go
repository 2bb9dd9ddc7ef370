package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one entry of an exported bank or card statement.
// Negative amounts are spending, positive amounts are income.
type Transaction struct {
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Category    string            `json:"category,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"` // Non-required columns, keyed by normalized header
}

// Month returns the calendar month the transaction falls in
func (t Transaction) Month() MonthPeriod {
	return MonthPeriod{Year: t.Date.Year(), Month: t.Date.Month()}
}

// IsExpense reports whether the transaction moves money out of the account
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsClassified reports whether a category label has been assigned
func (t Transaction) IsClassified() bool {
	return t.Category != ""
}

// DateRange is an inclusive window of calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the range. A zero bound is open.
func (r DateRange) Contains(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)

	if !r.Start.IsZero() && day.Before(r.Start.Truncate(24*time.Hour)) {
		return false
	}
	if !r.End.IsZero() && day.After(r.End.Truncate(24*time.Hour)) {
		return false
	}

	return true
}
