package main

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/report"
	"github.com/tirasundara/expense-analyzer/internal/service"
)

// Formats of the categorize command
const (
	categorizeTable = "table"
	categorizeCSV   = "csv"
)

var (
	categorizeFormat string
	categorizeOutput string
)

// categorizeCmd represents the categorize command
var categorizeCmd = &cobra.Command{
	Use:   "categorize <csv-file|->...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Print every transaction with the category its description maps to",
	Example: `  expense-analyzer categorize checking.csv card.csv
  expense-analyzer categorize statement.csv --format csv -o categorized.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newAnalysisService()
		if err != nil {
			return err
		}

		txns, err := svc.Categorize(sourcesFromArgs(args), service.Options{})
		if err != nil {
			return fmt.Errorf("categorization failed: %w", err)
		}

		var buf bytes.Buffer
		if err := writeCategorized(&buf, categorizeFormat, txns); err != nil {
			return err
		}

		if categorizeOutput == "" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		return writeOutput(cmd, categorizeOutput, buf.Bytes())
	},
}

func init() {
	rootCmd.AddCommand(categorizeCmd)

	categorizeCmd.Flags().StringVar(&categorizeFormat, "format", categorizeTable, "Output format: table or csv.")
	categorizeCmd.Flags().StringVarP(&categorizeOutput, "output", "o", "", "Path to output file (if empty, writes to stdout).")
}

// writeCategorized renders classified transactions as an aligned table or as a reloadable CSV ledger
func writeCategorized(w io.Writer, format string, txns []domain.Transaction) error {
	switch format {
	case categorizeCSV:
		return report.WriteLedgerCSV(w, txns)
	case "", categorizeTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, txn := range txns {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", txn.Date.Format(periodDateFormat), txn.Description, txn.Amount.StringFixed(2), txn.Category)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported categorize format: %s", format)
	}
}
