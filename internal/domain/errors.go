package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every typed error below matches exactly one of these with errors.Is.
var (
	ErrNotFound      = errors.New("source not found")
	ErrDecoding      = errors.New("unable to decode source")
	ErrSchema        = errors.New("required fields missing")
	ErrEmptyDataset  = errors.New("empty dataset")
	ErrInvalidBudget = errors.New("invalid budget")
)

// NotFoundError is returned when the ledger source does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("ledger source %q not found", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) Unwrap() error { return e.Err }

// DecodingError is returned when none of the configured text encodings could decode the source
type DecodingError struct {
	Source string
	Tried  []string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("unable to decode %q with any of the encodings [%s]", e.Source, strings.Join(e.Tried, ", "))
}

func (e *DecodingError) Is(target error) bool { return target == ErrDecoding }

// SchemaError is returned when required columns or fields are absent
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

// EmptyDatasetError is returned when no usable transactions are available
type EmptyDatasetError struct {
	Reason string
}

func (e *EmptyDatasetError) Error() string {
	if e.Reason == "" {
		return "dataset is empty"
	}
	return "dataset is empty: " + e.Reason
}

func (e *EmptyDatasetError) Is(target error) bool { return target == ErrEmptyDataset }

// InvalidBudgetEntry describes one rejected budget entry
type InvalidBudgetEntry struct {
	Category string
	Value    string
	Reason   string
}

// InvalidBudgetError is returned when the budget map is empty or holds unusable limits.
// Entries lists every offending entry, so callers can fix all of them at once.
type InvalidBudgetError struct {
	Entries []InvalidBudgetEntry
}

func (e *InvalidBudgetError) Error() string {
	if len(e.Entries) == 0 {
		return "budget map is empty"
	}

	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		parts = append(parts, fmt.Sprintf("%s=%q (%s)", entry.Category, entry.Value, entry.Reason))
	}
	return "invalid budget entries: " + strings.Join(parts, "; ")
}

func (e *InvalidBudgetError) Is(target error) bool { return target == ErrInvalidBudget }

// BudgetError wraps every failure raised by budget evaluation. The wrapped error
// keeps its kind, so errors.Is and errors.As see through it.
type BudgetError struct {
	Err error
}

func (e *BudgetError) Error() string {
	return "budget check: " + e.Err.Error()
}

func (e *BudgetError) Unwrap() error { return e.Err }
