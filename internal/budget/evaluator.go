package budget

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/analysis"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/logger"
)

// Evaluator implements the BudgetEvaluator interface
type Evaluator struct {
	log zerolog.Logger
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{
		log: logger.WithComponent(log, "budget"),
	}
}

// Evaluate compares the absolute spend of every budgeted category against its limit.
// Alerts follow the order of budgets; categories without an entry are not reported.
// Every failure is returned as a *domain.BudgetError.
func (e *Evaluator) Evaluate(txns []domain.Transaction, budgets domain.BudgetMap) ([]domain.Alert, error) {
	if len(txns) == 0 {
		return nil, &domain.BudgetError{Err: &domain.EmptyDatasetError{Reason: "no transactions to evaluate"}}
	}

	for _, txn := range txns {
		if !txn.IsClassified() {
			return nil, &domain.BudgetError{Err: &domain.SchemaError{Missing: []string{analysis.FieldCategory}}}
		}
	}

	limits, err := parseLimits(budgets)
	if err != nil {
		return nil, &domain.BudgetError{Err: err}
	}

	totals, err := analysis.TotalsByCategory(txns)
	if err != nil {
		return nil, &domain.BudgetError{Err: err}
	}

	alerts := make([]domain.Alert, 0, len(budgets))
	for i, entry := range budgets {
		spent := analysis.CategoryTotal(totals, entry.Category).Abs()
		alert := domain.Alert{
			Category: entry.Category,
			Spent:    spent,
			Limit:    limits[i],
			Exceeded: spent.GreaterThan(limits[i]),
		}

		if alert.Exceeded {
			e.log.Warn().
				Str("category", alert.Category).
				Str("spent", spent.StringFixed(2)).
				Str("limit", alert.Limit.StringFixed(2)).
				Msg("budget exceeded")
		}

		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// parseLimits converts every limit to a decimal, collecting all unusable entries
// into a single error.
func parseLimits(budgets domain.BudgetMap) ([]decimal.Decimal, error) {
	if len(budgets) == 0 {
		return nil, &domain.InvalidBudgetError{}
	}

	limits := make([]decimal.Decimal, len(budgets))
	var invalid []domain.InvalidBudgetEntry

	for i, entry := range budgets {
		if strings.TrimSpace(entry.Category) == "" {
			invalid = append(invalid, domain.InvalidBudgetEntry{Category: entry.Category, Value: entry.Limit, Reason: "category is empty"})
			continue
		}

		limit, err := ParseLimit(entry.Limit)
		if err != nil {
			invalid = append(invalid, domain.InvalidBudgetEntry{Category: entry.Category, Value: entry.Limit, Reason: err.Error()})
			continue
		}
		limits[i] = limit
	}

	if len(invalid) > 0 {
		return nil, &domain.InvalidBudgetError{Entries: invalid}
	}

	return limits, nil
}
