// Package render turns a report result into a human-readable text table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"empreport/pkg/contracts/domain"
)

// Table writes the report as an aligned plain-text table: a 1-based row index
// column followed by the report's columns. Numeric cells are right-aligned,
// text cells left-aligned. The result must satisfy its structural invariant.
func Table(w io.Writer, result *domain.ReportResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	idxWidth := len(strconv.Itoa(len(result.Rows)))
	if idxWidth < 2 {
		idxWidth = 2
	}

	widths := make([]int, len(result.Headers))
	for i, h := range result.Headers {
		widths[i] = len(h)
	}
	for _, row := range result.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	// Header line and separator. The index column has no header.
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", idxWidth))
	for i, h := range result.Headers {
		b.WriteString("  ")
		b.WriteString(pad(h, widths[i], false))
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", idxWidth))
	for i := range result.Headers {
		b.WriteString("  ")
		b.WriteString(strings.Repeat("-", widths[i]))
	}
	b.WriteString("\n")

	for n, row := range result.Rows {
		fmt.Fprintf(&b, "%*d", idxWidth, n+1)
		for i, cell := range row {
			b.WriteString("  ")
			b.WriteString(pad(cell, widths[i], isNumeric(cell)))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
