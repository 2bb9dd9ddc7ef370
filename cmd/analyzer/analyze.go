package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/report"
	"github.com/tirasundara/expense-analyzer/internal/service"
)

const periodDateFormat = "2006-01-02"

var (
	budgetFlags   []string
	budgetsFile   string
	outputFormat  string
	outputFile    string
	prettyPrint   bool
	fromDate      string
	toDate        string
	month         string
	expensesOnly  bool
	monthlyBudget string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <csv-file|->...",
	Args:  cobra.MinimumNArgs(1),
	Short: "Summarize a ledger by category and month and check budgets",
	Example: `  expense-analyzer analyze statement.csv --budget Groceries=300 --budget Dining=80
  expense-analyzer analyze checking.csv card.csv --month 2025-01 --format text
  cat statement.csv | expense-analyzer analyze - --format text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := analyzeOptions(cmd)
		if err != nil {
			return err
		}

		svc, err := newAnalysisService()
		if err != nil {
			return err
		}

		result, err := svc.Analyze(sourcesFromArgs(args), opts)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		useColor := outputFile == "" && (isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		formatter, err := report.NewFormatter(cfg.OutputFormat, prettyPrint, useColor)
		if err != nil {
			return err
		}

		output, err := formatter.Format(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}

		// If no extension is provided, add the formatter's default extension
		path := outputFile
		if path != "" && !strings.Contains(path, ".") {
			path = fmt.Sprintf("%s.%s", path, formatter.FileExtension())
		}

		return writeOutput(cmd, path, output)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringArrayVar(&budgetFlags, "budget", nil, "Budget as Category=Limit; repeat for several categories.")
	analyzeCmd.Flags().StringVar(&budgetsFile, "budgets-file", "", "TOML file with [[budget]] entries.")
	analyzeCmd.Flags().StringVar(&outputFormat, "format", "json", "Output format: json or text.")
	analyzeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to output file (if empty, writes to stdout).")
	analyzeCmd.Flags().BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output.")
	analyzeCmd.Flags().StringVarP(&fromDate, "from", "b", "", "Only include transactions on or after this date (YYYY-MM-DD).")
	analyzeCmd.Flags().StringVarP(&toDate, "to", "e", "", "Only include transactions on or before this date (YYYY-MM-DD).")
	analyzeCmd.Flags().StringVar(&month, "month", "", "Only include one calendar month (YYYY-MM); replaces --from/--to.")
	analyzeCmd.Flags().BoolVar(&expensesOnly, "expenses-only", false, "Drop income rows before analysis.")
	analyzeCmd.Flags().StringVar(&monthlyBudget, "monthly-budget", "", "Report spending above this amount for every month.")
}

func analyzeOptions(cmd *cobra.Command) (service.Options, error) {
	opts := service.Options{ExpensesOnly: expensesOnly}

	var err error
	if month != "" {
		period, err := domain.ParseMonthPeriod(month)
		if err != nil {
			return opts, err
		}
		opts.Period = period.Range()
	} else if opts.Period, err = parsePeriod(fromDate, toDate); err != nil {
		return opts, err
	}

	if opts.Budgets, err = loadBudgets(cmd); err != nil {
		return opts, err
	}

	if monthlyBudget != "" {
		limit, err := budget.ParseLimit(monthlyBudget)
		if err != nil {
			return opts, fmt.Errorf("invalid monthly budget %q: %w", monthlyBudget, err)
		}
		opts.MonthlyBudget = &limit
	}

	return opts, nil
}

// loadBudgets merges the budgets file (flag or config) with --budget flags, file entries first
func loadBudgets(cmd *cobra.Command) (domain.BudgetMap, error) {
	path := cfg.BudgetsFile
	if cmd.Flags().Changed("budgets-file") {
		path = budgetsFile
	}

	var budgets domain.BudgetMap
	if path != "" {
		fromFile, err := budget.LoadBudgets(path)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, fromFile...)
	}

	fromFlags, err := budget.ParseBudgetFlags(budgetFlags)
	if err != nil {
		return nil, err
	}

	return append(budgets, fromFlags...), nil
}

func parsePeriod(from, to string) (domain.DateRange, error) {
	var period domain.DateRange
	var err error

	if from != "" {
		if period.Start, err = time.Parse(periodDateFormat, from); err != nil {
			return period, fmt.Errorf("invalid from date: %w", err)
		}
	}
	if to != "" {
		if period.End, err = time.Parse(periodDateFormat, to); err != nil {
			return period, fmt.Errorf("invalid to date: %w", err)
		}
	}

	// Ensure dates are in the correct order
	if !period.Start.IsZero() && !period.End.IsZero() && period.End.Before(period.Start) {
		return period, fmt.Errorf("to date must not be before from date")
	}

	return period, nil
}
