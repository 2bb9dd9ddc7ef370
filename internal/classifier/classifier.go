package classifier

import (
	"strings"

	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// Classifier implements the TransactionClassifier interface with ordered keyword rules
type Classifier struct {
	rules    []Rule
	fallback string
}

// NewClassifier creates a new Classifier. Keywords are lower-cased once here;
// blank keywords are ignored since they would match every description.
func NewClassifier(table RuleTable) *Classifier {
	rules := make([]Rule, 0, len(table.Rules))
	for _, rule := range table.Rules {
		keyword := strings.ToLower(strings.TrimSpace(rule.Keyword))
		if keyword == "" {
			continue
		}
		rules = append(rules, Rule{Keyword: keyword, Category: rule.Category})
	}

	fallback := table.Fallback
	if fallback == "" {
		fallback = FallbackCategory
	}

	return &Classifier{
		rules:    rules,
		fallback: fallback,
	}
}

// Categorize returns the category of the first rule whose keyword occurs in description
func (c *Classifier) Categorize(description string) string {
	lowered := strings.ToLower(description)

	// Try each rule in order until a keyword is found
	for _, rule := range c.rules {
		if strings.Contains(lowered, rule.Keyword) {
			return rule.Category
		}
	}

	return c.fallback
}

// Classify returns a copy of txns with every Category set from its description.
// Any existing category is overwritten; amount and date are not consulted.
func (c *Classifier) Classify(txns []domain.Transaction) ([]domain.Transaction, error) {
	if len(txns) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no transactions to classify"}
	}

	classified := make([]domain.Transaction, len(txns))
	for i, txn := range txns {
		txn.Category = c.Categorize(txn.Description)
		classified[i] = txn
	}

	return classified, nil
}
