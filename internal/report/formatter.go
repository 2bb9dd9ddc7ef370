package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/domain"
)

// OutputFormatter defines the interface for formatting analysis reports
type OutputFormatter interface {
	Format(report domain.Report) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats analysis reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(report domain.Report) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// TextFormatter renders a report as aligned plain-text tables.
// Alert lines are red when exceeded and green otherwise, when Color is set.
type TextFormatter struct {
	Color bool
}

func NewTextFormatter(useColor bool) *TextFormatter {
	return &TextFormatter{
		Color: useColor,
	}
}

// Format implements the OutputFormatter interface for text
func (f *TextFormatter) Format(report domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Expense report: %s\n", strings.Join(report.Sources, ", "))
	fmt.Fprintf(&buf, "Transactions: %d\n\n", len(report.Transactions))

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(&buf, "By category")
	for _, total := range report.Summary.ByCategory {
		fmt.Fprintf(tw, "%s\t%s\t\n", total.Category, total.Total.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf, "\nBy month")
	for _, total := range report.Summary.ByMonth {
		fmt.Fprintf(tw, "%s\t%s\t\n", total.Month, total.Total.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintf(&buf, "\nNet balance: %s\n", report.Summary.NetBalance.StringFixed(2))

	if len(report.Charts.ByCategory) > 0 {
		fmt.Fprintln(&buf, "\nSpending share by category")
		total := decimal.Zero
		for _, point := range report.Charts.ByCategory {
			total = total.Add(point.Total)
		}
		for _, point := range report.Charts.ByCategory {
			share := point.Total.Div(total).Mul(decimal.NewFromInt(100))
			fmt.Fprintf(tw, "%s\t%s\t%s%%\t\n", point.Category, point.Total.StringFixed(2), share.StringFixed(1))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	if len(report.Charts.ByMonth) > 0 {
		fmt.Fprintln(&buf, "\nSpending trend")
		for _, point := range report.Charts.ByMonth {
			fmt.Fprintf(tw, "%s\t%s\t\n", point.Month, point.Total.StringFixed(2))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	if len(report.Alerts) > 0 {
		exceeded := color.New(color.FgRed, color.Bold)
		within := color.New(color.FgGreen)
		if f.Color {
			exceeded.EnableColor()
			within.EnableColor()
		} else {
			exceeded.DisableColor()
			within.DisableColor()
		}

		fmt.Fprintln(&buf, "\nBudgets")
		for _, alert := range report.Alerts {
			style := within
			if alert.Exceeded {
				style = exceeded
			}
			fmt.Fprintln(&buf, style.Sprint(alert.String()))
		}
	}

	if len(report.Overages) > 0 {
		fmt.Fprintln(&buf, "\nMonthly overages")
		for _, overage := range report.Overages {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", overage.Month, overage.Spent.StringFixed(2), overage.Overage.StringFixed(2))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint, useColor bool) (OutputFormatter, error) {
	switch name {
	case "", "json":
		return NewJSONFormatter(prettyPrint), nil
	case "text":
		return NewTextFormatter(useColor), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}
