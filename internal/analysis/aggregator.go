// Package analysis computes grouped totals over a classified ledger.
//
// Every query is a pure function of its input: nothing is cached between calls
// and amounts are summed with decimal arithmetic, signs as stored.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// Fields a query can require from every transaction
const (
	FieldDate     = "date"
	FieldCategory = "category"
)

// TotalsByMonth sums amounts per calendar month, in chronological order
func TotalsByMonth(txns []domain.Transaction) ([]domain.MonthTotal, error) {
	if err := validate(txns, FieldDate); err != nil {
		return nil, err
	}

	sums := make(map[domain.MonthPeriod]decimal.Decimal)
	for _, txn := range txns {
		month := txn.Month()
		sums[month] = sums[month].Add(txn.Amount)
	}

	totals := make([]domain.MonthTotal, 0, len(sums))
	for month, total := range sums {
		totals = append(totals, domain.MonthTotal{Month: month, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month.Before(totals[j].Month)
	})

	return totals, nil
}

// TotalsByCategory sums amounts per category label, ordered by label
func TotalsByCategory(txns []domain.Transaction) ([]domain.CategoryTotal, error) {
	if err := validate(txns, FieldCategory); err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		sums[txn.Category] = sums[txn.Category].Add(txn.Amount)
	}

	totals := make([]domain.CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

// NetBalance sums every amount, ungrouped
func NetBalance(txns []domain.Transaction) (decimal.Decimal, error) {
	if err := validate(txns); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}

	return total, nil
}

// Summarize runs all three queries over the same ledger
func Summarize(txns []domain.Transaction) (domain.AggregateResult, error) {
	byCategory, err := TotalsByCategory(txns)
	if err != nil {
		return domain.AggregateResult{}, err
	}

	byMonth, err := TotalsByMonth(txns)
	if err != nil {
		return domain.AggregateResult{}, err
	}

	net, err := NetBalance(txns)
	if err != nil {
		return domain.AggregateResult{}, err
	}

	return domain.AggregateResult{
		ByCategory: byCategory,
		ByMonth:    byMonth,
		NetBalance: net,
	}, nil
}

// CategoryTotal returns the total of one category, zero when it has no transactions
func CategoryTotal(totals []domain.CategoryTotal, category string) decimal.Decimal {
	for _, t := range totals {
		if t.Category == category {
			return t.Total
		}
	}
	return decimal.Zero
}

// validate rejects empty input and any transaction lacking one of the required fields
func validate(txns []domain.Transaction, fields ...string) error {
	if len(txns) == 0 {
		return &domain.EmptyDatasetError{Reason: "no transactions to aggregate"}
	}

	var missing []string
	for _, field := range fields {
		for _, txn := range txns {
			if !hasField(txn, field) {
				missing = append(missing, field)
				break
			}
		}
	}

	if len(missing) > 0 {
		return &domain.SchemaError{Missing: missing}
	}

	return nil
}

func hasField(txn domain.Transaction, field string) bool {
	switch field {
	case FieldDate:
		return !txn.Date.IsZero()
	case FieldCategory:
		return txn.IsClassified()
	}
	return true
}
