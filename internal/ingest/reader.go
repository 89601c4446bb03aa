package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"empreport/internal/errors"
	"empreport/pkg/contracts/domain"
)

// Reader ingests employee data files.
type Reader struct {
	logger *slog.Logger
}

// NewReader creates a new file reader. A nil logger falls back to slog.Default.
func NewReader(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{logger: logger}
}

// ReadEmployees reads all given files in order and returns the concatenated
// record sequence. Any structural failure (missing file, missing header,
// missing required columns) aborts the whole run with a *errors.ReportError.
// If every file turns out to hold only a header, the run fails with
// EmptyDataset.
func (r *Reader) ReadEmployees(paths []string) ([]domain.EmployeeRecord, error) {
	var employees []domain.EmployeeRecord

	for _, path := range paths {
		records, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		r.logger.Info("file ingested",
			slog.String("path", path),
			slog.Int("rows", len(records)))
		employees = append(employees, records...)
	}

	if len(employees) == 0 {
		return nil, errors.NewEmptyDataset()
	}

	return employees, nil
}

// readFile dispatches on file extension. The file handle is scoped to this
// call: opened before parsing, closed before returning on every path.
func (r *Reader) readFile(path string) ([]domain.EmployeeRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return r.readXLSX(path)
	}
	return r.readCSV(path)
}

func (r *Reader) readCSV(path string) ([]domain.EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileNotFound(path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Rows with a different cell count than the header are tolerated: short
	// rows leave trailing fields absent, long rows drop the extras.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		// io.EOF here means the file is empty, i.e. no header line at all.
		return nil, errors.NewMissingHeader(path)
	}

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, errors.NewMissingColumns(path, missing)
	}

	var records []domain.EmployeeRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		records = append(records, rowToRecord(header, row))
	}

	return records, nil
}

// rowToRecord maps header names to cell values. Cells beyond the header width
// are dropped; absent trailing cells simply produce no key.
func rowToRecord(header, row []string) domain.EmployeeRecord {
	rec := make(domain.EmployeeRecord, len(header))
	for i, name := range header {
		if i < len(row) {
			rec[name] = row[i]
		}
	}
	return rec
}

// missingColumns returns the required columns absent from the header, sorted
// alphabetically so error messages are deterministic.
func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}

	var missing []string
	for _, col := range domain.RequiredColumns() {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}
