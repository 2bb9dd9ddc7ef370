package repository

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/expense-analyzer/internal/domain"
	"github.com/tirasundara/expense-analyzer/internal/logger"
	"github.com/tirasundara/expense-analyzer/pkg/fileutil"
)

// Required ledger columns, after header normalization
const (
	ColumnDate        = "date"
	ColumnDescription = "description"
	ColumnAmount      = "amount"
)

var ledgerHeaderFields = []string{ColumnDate, ColumnDescription, ColumnAmount}

// CSVLedgerRepository implements the TransactionRepository interface for CSV ledgers
type CSVLedgerRepository struct {
	DateFormat string   // Go layout; empty means lenient parsing of common formats
	Encodings  []string // Tried in order until one decodes the source
	log        zerolog.Logger
}

// NewCSVLedgerRepository creates a new CSVLedgerRepository
func NewCSVLedgerRepository(dateFormat string, encodings []string, log zerolog.Logger) *CSVLedgerRepository {
	if len(encodings) == 0 {
		encodings = fileutil.DefaultEncodings
	}

	return &CSVLedgerRepository{
		DateFormat: dateFormat,
		Encodings:  encodings,
		log:        logger.WithComponent(log, "ingestor"),
	}
}

// Load reads the whole source, decodes it, validates the header and returns every
// row with a valid date and amount, in input order.
func (r *CSVLedgerRepository) Load(src domain.Source) ([]domain.Transaction, error) {
	data, err := readAll(src)
	if err != nil {
		return nil, err
	}

	text, encoding, err := fileutil.Decode(data, r.Encodings)
	if err != nil {
		if errors.Is(err, fileutil.ErrUndecodable) {
			return nil, &domain.DecodingError{Source: src.Name(), Tried: r.Encodings}
		}
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}

	reader := fileutil.NewCSVReader(strings.NewReader(text))

	header, err := reader.ReadHeader()
	if err == io.EOF {
		return nil, &domain.EmptyDatasetError{Reason: "source has no header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger header: %w", err)
	}

	columnMap, err := createHeaderMap(header, ledgerHeaderFields)
	if err != nil {
		return nil, err
	}

	// Find the highest column index needed
	maxIndex := -1
	for _, column := range ledgerHeaderFields {
		if idx := columnMap[column]; idx > maxIndex {
			maxIndex = idx
		}
	}

	var (
		txns    []domain.Transaction
		dropped int
	)

	rowProcessorFn := func(rowNum int, row []string) error {
		// Skip if row doesn't have enough fields
		if len(row) <= maxIndex {
			r.log.Warn().Int("row", rowNum).Msg("dropping row: missing fields")
			dropped++
			return nil
		}

		txDate, err := r.parseDate(row[columnMap[ColumnDate]])
		if err != nil {
			r.log.Warn().Int("row", rowNum).Err(err).Msg("dropping row: invalid date")
			dropped++
			return nil
		}

		amount, err := parseAmount(row[columnMap[ColumnAmount]])
		if err != nil {
			r.log.Warn().Int("row", rowNum).Err(err).Msg("dropping row: invalid amount")
			dropped++
			return nil
		}

		txns = append(txns, domain.Transaction{
			Date:        txDate,
			Description: row[columnMap[ColumnDescription]],
			Amount:      amount,
			Extra:       extraColumns(header, row, columnMap),
		})
		return nil
	}

	// Process data row by row
	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing ledger rows: %w", err)
	}

	r.log.Info().
		Str("source", src.Name()).
		Str("encoding", encoding).
		Int("kept", len(txns)).
		Int("dropped", dropped).
		Msg("ledger loaded")

	if len(txns) == 0 {
		return nil, &domain.EmptyDatasetError{Reason: "no valid rows remain after cleaning"}
	}

	return txns, nil
}

// readAll reads the source into memory so every decoding attempt starts from the beginning.
// The handle is released on every path.
func readAll(src domain.Source) ([]byte, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", src.Name(), err)
	}
	return buf.Bytes(), nil
}

// parseDate parses a calendar date and drops any time-of-day component
func (r *CSVLedgerRepository) parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	var (
		t   time.Time
		err error
	)
	if r.DateFormat != "" {
		t, err = time.Parse(r.DateFormat, value)
	} else if len(value) > 8 && isDigits(value) {
		// dateparse reads long digit runs as Unix timestamps
		return time.Time{}, fmt.Errorf("not a calendar date: %q", value)
	} else {
		t, err = dateparse.ParseIn(value, time.UTC)
	}
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(value)
}

// extraColumns keeps every non-required column so callers can still see it
func extraColumns(header, row []string, columnMap map[string]int) map[string]string {
	var extra map[string]string

	for i, field := range header {
		name := normalizeColumn(field)
		if name == "" || i >= len(row) || columnMap[name] != i {
			continue
		}
		if name == ColumnDate || name == ColumnDescription || name == ColumnAmount {
			continue
		}

		if extra == nil {
			extra = make(map[string]string)
		}
		extra[name] = row[i]
	}

	return extra
}
