package report

import (
	"io"
	"sort"

	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/pkg/fileutil"
)

const ledgerDateFormat = "2006-01-02"

// WriteLedgerCSV exports classified transactions as CSV. The output reloads
// through the ledger repository: date, description, amount and category first,
// then every extra column seen in the input, sorted by name.
func WriteLedgerCSV(w io.Writer, txns []domain.Transaction) error {
	extras := extraColumnNames(txns)
	header := append([]string{"date", "description", "amount", "category"}, extras...)

	rows := make([][]string, 0, len(txns))
	for _, txn := range txns {
		row := []string{
			txn.Date.Format(ledgerDateFormat),
			txn.Description,
			txn.Amount.String(),
			txn.Category,
		}
		for _, name := range extras {
			row = append(row, txn.Extra[name])
		}
		rows = append(rows, row)
	}

	return fileutil.NewCSVWriter(w).WriteRows(header, rows)
}

func extraColumnNames(txns []domain.Transaction) []string {
	seen := make(map[string]bool)
	var names []string
	for _, txn := range txns {
		for name := range txn.Extra {
			// category is written from the classifier, never from the input
			if name == "category" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
