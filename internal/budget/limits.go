package budget

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNotNumeric    = errors.New("limit is not a number")
	errNegativeLimit = errors.New("limit is negative")
)

// ParseLimit parses a budget limit. Limits must be numeric and zero or greater.
func ParseLimit(value string) (decimal.Decimal, error) {
	limit, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, errNotNumeric
	}
	if limit.IsNegative() {
		return decimal.Zero, errNegativeLimit
	}
	return limit, nil
}
