package budget

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/analysis"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// MonthlyOverages measures every month's spending against a single monthly budget.
// Only expenses count; months under budget are reported with a zero overage.
func MonthlyOverages(txns []domain.Transaction, monthlyBudget decimal.Decimal) ([]domain.MonthOverage, error) {
	if len(txns) == 0 {
		return nil, &domain.BudgetError{Err: &domain.EmptyDatasetError{Reason: "no transactions to evaluate"}}
	}
	if monthlyBudget.IsNegative() {
		return nil, &domain.BudgetError{Err: &domain.InvalidBudgetError{Entries: []domain.InvalidBudgetEntry{
			{Category: "monthly", Value: monthlyBudget.String(), Reason: errNegativeLimit.Error()},
		}}}
	}

	expenses := analysis.Expenses(txns)
	if len(expenses) == 0 {
		return []domain.MonthOverage{}, nil
	}

	totals, err := analysis.TotalsByMonth(expenses)
	if err != nil {
		return nil, &domain.BudgetError{Err: err}
	}

	overages := make([]domain.MonthOverage, 0, len(totals))
	for _, total := range totals {
		spent := total.Total.Abs()
		overages = append(overages, domain.MonthOverage{
			Month:   total.Month,
			Spent:   spent,
			Overage: decimal.Max(spent.Sub(monthlyBudget), decimal.Zero),
		})
	}

	return overages, nil
}
