package classifier

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// FallbackCategory is assigned when no keyword matches
const FallbackCategory = "Other"

// Rule maps a lowercase keyword to a category label
type Rule struct {
	Keyword  string
	Category string
}

// RuleTable is an ordered list of rules. Order is the tie-break: when several
// keywords occur in a description, the earliest rule wins, even if a later
// keyword is longer or more specific.
type RuleTable struct {
	Rules    []Rule
	Fallback string
}

// DefaultRuleTable returns the built-in rules for common personal spending
func DefaultRuleTable() RuleTable {
	return RuleTable{
		Rules: []Rule{
			{Keyword: "supermarket", Category: "Groceries"},
			{Keyword: "grocery", Category: "Groceries"},
			{Keyword: "groceries", Category: "Groceries"},
			{Keyword: "market", Category: "Groceries"},
			{Keyword: "uber", Category: "Transport"},
			{Keyword: "taxi", Category: "Transport"},
			{Keyword: "metro", Category: "Transport"},
			{Keyword: "bus", Category: "Transport"},
			{Keyword: "train", Category: "Transport"},
			{Keyword: "fuel", Category: "Transport"},
			{Keyword: "transport", Category: "Transport"},
			{Keyword: "rent", Category: "Housing"},
			{Keyword: "mortgage", Category: "Housing"},
			{Keyword: "electric", Category: "Utilities"},
			{Keyword: "water", Category: "Utilities"},
			{Keyword: "utilit", Category: "Utilities"},
			{Keyword: "internet", Category: "Utilities"},
			{Keyword: "netflix", Category: "Entertainment"},
			{Keyword: "spotify", Category: "Entertainment"},
			{Keyword: "cinema", Category: "Entertainment"},
			{Keyword: "restaurant", Category: "Dining"},
			{Keyword: "cafe", Category: "Dining"},
			{Keyword: "pharmacy", Category: "Health"},
			{Keyword: "salary", Category: "Income"},
		},
		Fallback: FallbackCategory,
	}
}

// LoadRuleTable reads a rule table from a TOML file:
//
//	fallback = "Other"
//
//	[[rule]]
//	keyword = "supermarket"
//	category = "Groceries"
//
// Rules keep the order they appear in the file.
func LoadRuleTable(path string) (RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleTable{}, fmt.Errorf("reading rule file: %w", err)
	}
	return ParseRuleTable(data)
}

// ParseRuleTable parses TOML rule table content
func ParseRuleTable(data []byte) (RuleTable, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return RuleTable{}, fmt.Errorf("parsing rule file: %w", err)
	}

	table := RuleTable{Fallback: FallbackCategory}
	if fallback, ok := tree.Get("fallback").(string); ok && strings.TrimSpace(fallback) != "" {
		table.Fallback = strings.TrimSpace(fallback)
	}

	raw := tree.Get("rule")
	if raw == nil {
		return RuleTable{}, &domain.SchemaError{Missing: []string{"rule"}}
	}
	entries, ok := raw.([]*toml.Tree)
	if !ok {
		return RuleTable{}, fmt.Errorf("parsing rule file: 'rule' must be an array of tables")
	}

	for i, entry := range entries {
		keyword, _ := entry.Get("keyword").(string)
		category, _ := entry.Get("category").(string)

		var missing []string
		if strings.TrimSpace(keyword) == "" {
			missing = append(missing, "keyword")
		}
		if strings.TrimSpace(category) == "" {
			missing = append(missing, "category")
		}
		if len(missing) > 0 {
			return RuleTable{}, fmt.Errorf("rule %d: %w", i+1, &domain.SchemaError{Missing: missing})
		}

		table.Rules = append(table.Rules, Rule{Keyword: keyword, Category: strings.TrimSpace(category)})
	}

	return table, nil
}
