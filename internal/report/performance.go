package report

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"empreport/internal/errors"
	"empreport/pkg/contracts/domain"
)

// PerformanceReportName is the registry key of the built-in performance report.
const PerformanceReportName = "performance"

// positionTotals is the running accumulator for one position group.
type positionTotals struct {
	sum   float64
	count int
}

// PerformanceReport computes the average performance score per position.
//
// Grouping is by the whitespace-trimmed position value, case-sensitive, with
// no further normalization. Records with a missing field, a blank position or
// a non-numeric performance value are skipped silently; tolerating dirty rows
// is deliberate and distinct from the file-level structural failures raised
// by ingestion. Averages are rounded to two decimals with round-half-to-even.
// Rows are sorted by descending average, ties by ascending position name.
func PerformanceReport(records []domain.EmployeeRecord) (*domain.ReportResult, error) {
	totals := make(map[string]positionTotals)

	for _, rec := range records {
		positionRaw, okPos := rec[domain.FieldPosition]
		performanceRaw, okPerf := rec[domain.FieldPerformance]
		if !okPos || !okPerf {
			continue
		}

		position := strings.TrimSpace(positionRaw)
		if position == "" {
			continue
		}

		performance, err := strconv.ParseFloat(strings.TrimSpace(performanceRaw), 64)
		if err != nil {
			continue
		}

		t := totals[position]
		t.sum += performance
		t.count++
		totals[position] = t
	}

	if len(totals) == 0 {
		return nil, errors.NewNoValidData()
	}

	type row struct {
		position string
		average  float64
	}
	rows := make([]row, 0, len(totals))
	for position, t := range totals {
		rows = append(rows, row{
			position: position,
			average:  roundHalfToEven(t.sum/float64(t.count), 2),
		})
	}

	// Descending by average, ascending by name on ties. A total order, so the
	// output is deterministic regardless of map iteration order.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].average != rows[j].average {
			return rows[i].average > rows[j].average
		}
		return rows[i].position < rows[j].position
	})

	result := &domain.ReportResult{
		Headers: []string{domain.FieldPosition, domain.FieldPerformance},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		result.Rows = append(result.Rows, []string{
			r.position,
			strconv.FormatFloat(r.average, 'f', 2, 64),
		})
	}

	return result, nil
}

// roundHalfToEven rounds x to the given number of decimal places using
// banker's rounding, matching the reference rounding semantics for values
// ending in .xx5.
func roundHalfToEven(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.RoundToEven(x*shift) / shift
}
