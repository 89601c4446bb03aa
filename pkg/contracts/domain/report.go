package domain

import "fmt"

// ReportResult represents a generated report: ordered column names plus ordered
// rows. Cell values are pre-formatted strings; numeric cells carry exactly two
// decimal places. The result is immutable once returned by a report function
// and is owned by the caller for rendering or export.
type ReportResult struct {
	Headers []string
	Rows    [][]string
}

// Validate checks the structural invariant that every row has exactly one cell
// per header column.
func (r *ReportResult) Validate() error {
	if len(r.Headers) == 0 {
		return fmt.Errorf("report has no headers")
	}
	for i, row := range r.Rows {
		if len(row) != len(r.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(r.Headers))
		}
	}
	return nil
}
