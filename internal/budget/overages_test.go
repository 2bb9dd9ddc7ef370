package budget_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

func TestMonthlyOverages(t *testing.T) {
	txns := []domain.Transaction{
		txn("2025-01-01", "Groceries", -50),
		txn("2025-01-15", "Transport", -20),
		txn("2025-01-31", "Income", 3000),
		txn("2025-02-01", "Housing", -500),
	}

	overages, err := budget.MonthlyOverages(txns, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Len(t, overages, 2)

	assert.Equal(t, "2025-01", overages[0].Month.String())
	assert.True(t, overages[0].Spent.Equal(decimal.NewFromInt(70)))
	assert.True(t, overages[0].Overage.IsZero())

	assert.Equal(t, "2025-02", overages[1].Month.String())
	assert.True(t, overages[1].Spent.Equal(decimal.NewFromInt(500)))
	assert.True(t, overages[1].Overage.Equal(decimal.NewFromInt(400)))
}

func TestMonthlyOverages_NoExpenses(t *testing.T) {
	overages, err := budget.MonthlyOverages([]domain.Transaction{txn("2025-01-31", "Income", 3000)}, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Empty(t, overages)
}

func TestMonthlyOverages_Errors(t *testing.T) {
	_, err := budget.MonthlyOverages(nil, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)

	_, err = budget.MonthlyOverages([]domain.Transaction{txn("2025-01-01", "Groceries", -5)}, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidBudget)
}
