package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/analysis"
	"github.com/tirasundara/expense-analyzer/internal/budget"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/logger"
)

// Options narrows and extends a single analysis run
type Options struct {
	Budgets       domain.BudgetMap // Empty means no budget check
	Period        domain.DateRange // Zero bounds are open
	ExpensesOnly  bool
	MonthlyBudget *decimal.Decimal // Nil means no overage report
}

// AnalysisService orchestrates ingestion, classification, aggregation and budget checks
type AnalysisService struct {
	repo       domain.TransactionRepository
	classifier domain.TransactionClassifier
	evaluator  domain.BudgetEvaluator
	log        zerolog.Logger
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(
	repo domain.TransactionRepository,
	classifier domain.TransactionClassifier,
	evaluator domain.BudgetEvaluator,
	log zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		repo:       repo,
		classifier: classifier,
		evaluator:  evaluator,
		log:        logger.WithComponent(log, "service"),
	}
}

// Analyze runs the whole pipeline over one or more ledger sources, treated as a single ledger
func (s *AnalysisService) Analyze(sources []domain.Source, opts Options) (domain.Report, error) {
	classified, err := s.Categorize(sources, opts)
	if err != nil {
		return domain.Report{}, err
	}

	summary, err := analysis.Summarize(classified)
	if err != nil {
		return domain.Report{}, fmt.Errorf("aggregating transactions: %w", err)
	}

	charts, err := chartSeries(classified)
	if err != nil {
		return domain.Report{}, fmt.Errorf("building chart series: %w", err)
	}

	report := domain.Report{
		RunID:        uuid.NewString(),
		Sources:      sourceNames(sources),
		Transactions: classified,
		Summary:      summary,
		Charts:       charts,
	}

	// Budgets are optional; without any there is nothing to compare against
	if len(opts.Budgets) > 0 {
		alerts, err := s.evaluator.Evaluate(classified, opts.Budgets)
		if err != nil {
			return domain.Report{}, err
		}
		report.Alerts = alerts
	}

	if opts.MonthlyBudget != nil {
		overages, err := budget.MonthlyOverages(classified, *opts.MonthlyBudget)
		if err != nil {
			return domain.Report{}, err
		}
		report.Overages = overages
	}

	s.log.Info().
		Str("run_id", report.RunID).
		Strs("sources", report.Sources).
		Int("transactions", len(classified)).
		Int("alerts", len(report.Alerts)).
		Str("net_balance", summary.NetBalance.StringFixed(2)).
		Msg("analysis complete")

	return report, nil
}

// Categorize loads, filters and classifies the ledger without aggregating it
func (s *AnalysisService) Categorize(sources []domain.Source, opts Options) ([]domain.Transaction, error) {
	txns, err := s.load(sources)
	if err != nil {
		return nil, err
	}

	txns = filterByPeriod(txns, opts.Period)
	if len(txns) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no transactions inside the requested period"}
	}

	if opts.ExpensesOnly {
		txns = analysis.Expenses(txns)
		if len(txns) == 0 {
			return nil, &domain.EmptyDatasetError{Reason: "no expenses in ledger"}
		}
	}

	classified, err := s.classifier.Classify(txns)
	if err != nil {
		return nil, fmt.Errorf("classifying transactions: %w", err)
	}

	return classified, nil
}

// load concatenates the rows of every source in the order given
func (s *AnalysisService) load(sources []domain.Source) ([]domain.Transaction, error) {
	if len(sources) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no ledger sources given"}
	}

	var txns []domain.Transaction
	for _, src := range sources {
		loaded, err := s.repo.Load(src)
		if err != nil {
			return nil, fmt.Errorf("loading ledger %s: %w", src.Name(), err)
		}
		txns = append(txns, loaded...)
	}

	if len(sources) > 1 {
		s.log.Debug().Int("sources", len(sources)).Int("transactions", len(txns)).Msg("ledgers combined")
	}

	return txns, nil
}

// chartSeries builds the absolute spend series. A ledger whose groups all net to
// zero has nothing to chart and yields empty series.
func chartSeries(txns []domain.Transaction) (domain.Charts, error) {
	var charts domain.Charts

	byCategory, err := analysis.SpendByCategory(txns)
	if err != nil && !errors.Is(err, domain.ErrEmptyDataset) {
		return domain.Charts{}, err
	}
	charts.ByCategory = byCategory

	byMonth, err := analysis.SpendByMonth(txns)
	if err != nil && !errors.Is(err, domain.ErrEmptyDataset) {
		return domain.Charts{}, err
	}
	charts.ByMonth = byMonth

	return charts, nil
}

func sourceNames(sources []domain.Source) []string {
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		names = append(names, src.Name())
	}
	return names
}

func filterByPeriod(txns []domain.Transaction, period domain.DateRange) []domain.Transaction {
	if period.Start.IsZero() && period.End.IsZero() {
		return txns
	}

	var filtered []domain.Transaction
	for _, txn := range txns {
		if period.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}

	return filtered
}
