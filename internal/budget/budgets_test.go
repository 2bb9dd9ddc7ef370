package budget_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

func TestParseBudgetFlags(t *testing.T) {
	budgets, err := budget.ParseBudgetFlags([]string{"Groceries=300", " Dining = 80.5 ", "Travel=abc"})
	require.NoError(t, err)

	assert.Equal(t, domain.BudgetMap{
		{Category: "Groceries", Limit: "300"},
		{Category: "Dining", Limit: "80.5"},
		{Category: "Travel", Limit: "abc"},
	}, budgets)
}

func TestParseBudgetFlags_Malformed(t *testing.T) {
	_, err := budget.ParseBudgetFlags([]string{"Groceries", "=300", "Dining=50"})

	var invalid *domain.InvalidBudgetError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Entries, 2)
}

const budgetFile = `
[[budget]]
category = "Groceries"
limit = 300

[[budget]]
category = "Dining"
limit = 80.5

[[budget]]
category = "Travel"
limit = "250"
`

func TestParseBudgets(t *testing.T) {
	budgets, err := budget.ParseBudgets([]byte(budgetFile))
	require.NoError(t, err)

	assert.Equal(t, domain.BudgetMap{
		{Category: "Groceries", Limit: "300"},
		{Category: "Dining", Limit: "80.5"},
		{Category: "Travel", Limit: "250"},
	}, budgets)
}

func TestParseBudgets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		isErr   error
	}{
		{"no budget table", `title = "x"`, domain.ErrSchema},
		{"missing limit", "[[budget]]\ncategory = \"Groceries\"\n", domain.ErrSchema},
		{"missing category", "[[budget]]\nlimit = 10\n", domain.ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := budget.ParseBudgets([]byte(tt.content))
			assert.ErrorIs(t, err, tt.isErr)
		})
	}

	_, err := budget.ParseBudgets([]byte("[[budget"))
	assert.Error(t, err)
}

func TestLoadBudgets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgets.toml")
	require.NoError(t, os.WriteFile(path, []byte(budgetFile), 0o644))

	budgets, err := budget.LoadBudgets(path)
	require.NoError(t, err)
	assert.Len(t, budgets, 3)

	_, err = budget.LoadBudgets(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
