package budget_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

func txn(date, category string, amount int64) domain.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return domain.Transaction{Date: d, Description: category, Amount: decimal.NewFromInt(amount), Category: category}
}

func TestEvaluate_Exceeded(t *testing.T) {
	evaluator := budget.NewEvaluator(zerolog.Nop())
	txns := []domain.Transaction{
		txn("2025-01-03", "Groceries", -200),
		txn("2025-01-20", "Groceries", -150),
		txn("2025-01-21", "Transport", -40),
	}

	alerts, err := evaluator.Evaluate(txns, domain.BudgetMap{
		{Category: "Groceries", Limit: "300"},
		{Category: "Transport", Limit: "100"},
	})
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Groceries", alerts[0].Category)
	assert.True(t, alerts[0].Spent.Equal(decimal.NewFromInt(350)))
	assert.True(t, alerts[0].Exceeded)
	assert.Equal(t, "Groceries exceeded budget: spent 350.00, limit 300.00", alerts[0].String())

	assert.Equal(t, "Transport", alerts[1].Category)
	assert.False(t, alerts[1].Exceeded)
}

func TestEvaluate_Boundaries(t *testing.T) {
	evaluator := budget.NewEvaluator(zerolog.Nop())
	txns := []domain.Transaction{txn("2025-01-03", "Dining", -50)}

	tests := []struct {
		name     string
		budgets  domain.BudgetMap
		spent    int64
		exceeded bool
	}{
		{"spend equal to limit", domain.BudgetMap{{Category: "Dining", Limit: "50"}}, 50, false},
		{"zero limit", domain.BudgetMap{{Category: "Dining", Limit: "0"}}, 50, true},
		{"decimal limit", domain.BudgetMap{{Category: "Dining", Limit: "49.99"}}, 50, true},
		{"category without spend", domain.BudgetMap{{Category: "Travel", Limit: "10"}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts, err := evaluator.Evaluate(txns, tt.budgets)
			require.NoError(t, err)
			require.Len(t, alerts, 1)
			assert.True(t, alerts[0].Spent.Equal(decimal.NewFromInt(tt.spent)))
			assert.Equal(t, tt.exceeded, alerts[0].Exceeded)
		})
	}
}

func TestEvaluate_OnlyBudgetedCategories(t *testing.T) {
	evaluator := budget.NewEvaluator(zerolog.Nop())
	txns := []domain.Transaction{
		txn("2025-01-03", "Groceries", -20),
		txn("2025-01-04", "Housing", -900),
	}

	alerts, err := evaluator.Evaluate(txns, domain.BudgetMap{{Category: "Groceries", Limit: "100"}})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Groceries", alerts[0].Category)
}

func TestEvaluate_Errors(t *testing.T) {
	evaluator := budget.NewEvaluator(zerolog.Nop())
	classified := []domain.Transaction{txn("2025-01-03", "Groceries", -20)}

	t.Run("empty transactions", func(t *testing.T) {
		_, err := evaluator.Evaluate(nil, domain.BudgetMap{{Category: "Groceries", Limit: "10"}})
		var budgetErr *domain.BudgetError
		require.ErrorAs(t, err, &budgetErr)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})

	t.Run("unclassified transactions", func(t *testing.T) {
		txns := append([]domain.Transaction{}, classified...)
		txns = append(txns, domain.Transaction{Date: time.Now(), Amount: decimal.NewFromInt(-5)})

		_, err := evaluator.Evaluate(txns, domain.BudgetMap{{Category: "Groceries", Limit: "10"}})
		var schemaErr *domain.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{"category"}, schemaErr.Missing)
	})

	t.Run("empty budget map", func(t *testing.T) {
		_, err := evaluator.Evaluate(classified, domain.BudgetMap{})
		assert.ErrorIs(t, err, domain.ErrInvalidBudget)
	})

	t.Run("every invalid limit is reported", func(t *testing.T) {
		_, err := evaluator.Evaluate(classified, domain.BudgetMap{
			{Category: "Groceries", Limit: "abc"},
			{Category: "Transport", Limit: "100"},
			{Category: "Dining", Limit: "-10"},
		})

		var budgetErr *domain.BudgetError
		require.ErrorAs(t, err, &budgetErr)

		var invalid *domain.InvalidBudgetError
		require.ErrorAs(t, err, &invalid)
		require.Len(t, invalid.Entries, 2)
		assert.Equal(t, "Groceries", invalid.Entries[0].Category)
		assert.Equal(t, "abc", invalid.Entries[0].Value)
		assert.Equal(t, "Dining", invalid.Entries[1].Category)
		assert.Equal(t, "-10", invalid.Entries[1].Value)
	})
}

func TestEvaluate_DoesNotModifyInput(t *testing.T) {
	evaluator := budget.NewEvaluator(zerolog.Nop())
	txns := []domain.Transaction{txn("2025-01-03", "Groceries", -20)}
	budgets := domain.BudgetMap{{Category: "Groceries", Limit: "10"}}

	_, err := evaluator.Evaluate(txns, budgets)
	require.NoError(t, err)

	assert.Equal(t, "Groceries", txns[0].Category)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(-20)))
	assert.Equal(t, "10", budgets[0].Limit)
}

func TestParseLimit(t *testing.T) {
	limit, err := budget.ParseLimit(" 250.50 ")
	require.NoError(t, err)
	assert.Equal(t, "250.5", limit.String())

	_, err = budget.ParseLimit("ten")
	assert.Error(t, err)

	_, err = budget.ParseLimit("-1")
	assert.Error(t, err)
}
