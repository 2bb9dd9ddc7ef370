package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BudgetEntry is one caller-supplied spending limit. Limit is kept as the raw
// text the caller gave so unusable values can be reported back verbatim.
type BudgetEntry struct {
	Category string
	Limit    string
}

// BudgetMap is an ordered list of budget entries; alerts follow its order
type BudgetMap []BudgetEntry

// Alert compares the spend of one category against its limit
type Alert struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	Exceeded bool            `json:"exceeded"`
}

func (a Alert) String() string {
	if a.Exceeded {
		return fmt.Sprintf("%s exceeded budget: spent %s, limit %s", a.Category, a.Spent.StringFixed(2), a.Limit.StringFixed(2))
	}
	return fmt.Sprintf("%s within budget: spent %s, limit %s", a.Category, a.Spent.StringFixed(2), a.Limit.StringFixed(2))
}

// MonthOverage is the spend of one month above a single monthly budget
type MonthOverage struct {
	Month   MonthPeriod     `json:"month"`
	Spent   decimal.Decimal `json:"spent"`
	Overage decimal.Decimal `json:"overage"`
}
