package analysis

import (
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// Expenses keeps only the transactions that move money out (negative amounts)
func Expenses(txns []domain.Transaction) []domain.Transaction {
	var expenses []domain.Transaction
	for _, txn := range txns {
		if txn.IsExpense() {
			expenses = append(expenses, txn)
		}
	}
	return expenses
}

// SpendByCategory returns absolute category totals with zero groups dropped,
// the shape pie charts expect.
func SpendByCategory(txns []domain.Transaction) ([]domain.CategoryTotal, error) {
	totals, err := TotalsByCategory(txns)
	if err != nil {
		return nil, err
	}

	spend := make([]domain.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total.IsZero() {
			continue
		}
		spend = append(spend, domain.CategoryTotal{Category: t.Category, Total: t.Total.Abs()})
	}

	if len(spend) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no spend values for category chart"}
	}
	return spend, nil
}

// SpendByMonth returns absolute month totals with zero months dropped, for trend charts
func SpendByMonth(txns []domain.Transaction) ([]domain.MonthTotal, error) {
	totals, err := TotalsByMonth(txns)
	if err != nil {
		return nil, err
	}

	spend := make([]domain.MonthTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total.IsZero() {
			continue
		}
		spend = append(spend, domain.MonthTotal{Month: t.Month, Total: t.Total.Abs()})
	}

	if len(spend) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no spend values for monthly chart"}
	}
	return spend, nil
}
