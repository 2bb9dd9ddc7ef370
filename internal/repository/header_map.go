package repository

import (
	"strings"

	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// normalizeColumn trims and lower-cases a header name; inner spaces become underscores
func normalizeColumn(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// createHeaderMap creates a map of normalized column names to their indices.
// Every required column that is absent is reported in a single SchemaError.
func createHeaderMap(header []string, required []string) (map[string]int, error) {
	columnMap := make(map[string]int, len(header))

	for i, field := range header {
		name := normalizeColumn(field)
		if name == "" {
			continue
		}
		// First occurrence wins on duplicated columns
		if _, exists := columnMap[name]; !exists {
			columnMap[name] = i
		}
	}

	var missing []string
	for _, column := range required {
		if _, found := columnMap[column]; !found {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	return columnMap, nil
}
