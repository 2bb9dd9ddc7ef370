package fileutil

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVReader provides a helper/utility to read CSV content
type CSVReader struct {
	reader *csv.Reader
	header []string
}

// NewCSVReader returns a CSVReader over already decoded CSV text.
// Rows may have a varying number of fields; callers decide what to do with short rows.
func NewCSVReader(r io.Reader) *CSVReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return &CSVReader{reader: reader}
}

// ReadHeader reads the header row. It returns io.EOF when the content is empty.
func (r *CSVReader) ReadHeader() ([]string, error) {
	if r.header != nil {
		return r.header, nil
	}

	header, err := r.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	r.header = header
	return header, nil
}

// ReadAndProcessByRow processes every data row in order. The row number passed
// to processorFn is 1-based and counts data rows only.
func (r *CSVReader) ReadAndProcessByRow(processorFn func(rowNum int, row []string) error) error {
	// Skip header
	if _, err := r.ReadHeader(); err != nil {
		return err
	}

	rowNum := 0
	for {
		row, err := r.reader.Read()
		if err == io.EOF {
			break // end of file, stop
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		rowNum++
		if err = processorFn(rowNum, row); err != nil {
			return err
		}
	}

	return nil
}

// CSVWriter is the write-side counterpart of CSVReader
type CSVWriter struct {
	writer *csv.Writer
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{writer: csv.NewWriter(w)}
}

// WriteRows writes the header followed by every row, then flushes
func (w *CSVWriter) WriteRows(header []string, rows [][]string) error {
	if err := w.writer.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	if err := w.writer.WriteAll(rows); err != nil {
		return fmt.Errorf("writing CSV rows: %w", err)
	}
	return nil
}
