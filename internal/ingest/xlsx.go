package ingest

import (
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"empreport/internal/errors"
	"empreport/pkg/contracts/domain"
)

// readXLSX reads an Excel workbook as tabular employee data. The first sheet
// is used; its first row is the header. Semantics mirror readCSV: the header
// must carry the required columns, and ragged rows are tolerated.
func (r *Reader) readXLSX(path string) ([]domain.EmployeeRecord, error) {
	// excelize wraps open failures in its own error types, so stat first to
	// keep the unified FileNotFound kind for bad paths.
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileNotFound(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewFileNotFound(path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewMissingHeader(path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil || len(rows) == 0 {
		return nil, errors.NewMissingHeader(path)
	}

	header := rows[0]
	if missing := missingColumns(header); len(missing) > 0 {
		return nil, errors.NewMissingColumns(path, missing)
	}

	r.logger.Debug("reading workbook sheet",
		slog.String("path", path),
		slog.String("sheet", sheets[0]),
		slog.Int("total_rows", len(rows)))

	var records []domain.EmployeeRecord
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(header, row))
	}

	return records, nil
}
