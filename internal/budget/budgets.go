package budget

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// ParseBudgetFlags turns "Category=Limit" pairs into a budget map, keeping their order.
// Limits are not validated here; Evaluate reports unusable ones.
func ParseBudgetFlags(pairs []string) (domain.BudgetMap, error) {
	budgets := make(domain.BudgetMap, 0, len(pairs))
	var invalid []domain.InvalidBudgetEntry

	for _, pair := range pairs {
		category, limit, ok := strings.Cut(pair, "=")
		category = strings.TrimSpace(category)
		if !ok || category == "" {
			invalid = append(invalid, domain.InvalidBudgetEntry{Category: category, Value: pair, Reason: "expected Category=Limit"})
			continue
		}
		budgets = append(budgets, domain.BudgetEntry{Category: category, Limit: strings.TrimSpace(limit)})
	}

	if len(invalid) > 0 {
		return nil, &domain.InvalidBudgetError{Entries: invalid}
	}

	return budgets, nil
}

// LoadBudgets reads a budget map from a TOML file:
//
//	[[budget]]
//	category = "Groceries"
//	limit = 300
func LoadBudgets(path string) (domain.BudgetMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budget file: %w", err)
	}
	return ParseBudgets(data)
}

// ParseBudgets parses TOML budget content. Limits may be written as integers,
// floats or strings.
func ParseBudgets(data []byte) (domain.BudgetMap, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parsing budget file: %w", err)
	}

	raw := tree.Get("budget")
	if raw == nil {
		return nil, &domain.SchemaError{Missing: []string{"budget"}}
	}
	entries, ok := raw.([]*toml.Tree)
	if !ok {
		return nil, fmt.Errorf("parsing budget file: 'budget' must be an array of tables")
	}

	budgets := make(domain.BudgetMap, 0, len(entries))
	for i, entry := range entries {
		category, _ := entry.Get("category").(string)

		var missing []string
		if strings.TrimSpace(category) == "" {
			missing = append(missing, "category")
		}
		if !entry.Has("limit") {
			missing = append(missing, "limit")
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("budget %d: %w", i+1, &domain.SchemaError{Missing: missing})
		}

		budgets = append(budgets, domain.BudgetEntry{
			Category: strings.TrimSpace(category),
			Limit:    limitText(entry.Get("limit")),
		})
	}

	return budgets, nil
}

func limitText(v interface{}) string {
	switch limit := v.(type) {
	case string:
		return strings.TrimSpace(limit)
	case int64:
		return strconv.FormatInt(limit, 10)
	case float64:
		return strconv.FormatFloat(limit, 'f', -1, 64)
	default:
		return fmt.Sprint(limit)
	}
}
