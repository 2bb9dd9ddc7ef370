package domain

// TransactionRepository defines the interface for loading a ledger
type TransactionRepository interface {
	// Load reads, validates and cleans every transaction of the source
	Load(src Source) ([]Transaction, error)
}

// TransactionClassifier defines the interface for assigning categories
type TransactionClassifier interface {
	Classify(txns []Transaction) ([]Transaction, error)
}

// BudgetEvaluator defines the interface for comparing spend against budgets
type BudgetEvaluator interface {
	Evaluate(txns []Transaction, budgets BudgetMap) ([]Alert, error)
}
