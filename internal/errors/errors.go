// Package errors defines the unified failure taxonomy for report generation.
//
// Every failure the core can surface is a *ReportError carrying a machine
// Kind and a human-readable message. All kinds propagate unmodified to the
// entry point, which converts them into a single diagnostic and a nonzero
// exit. Per-row dirty data (blank position, non-numeric performance) is never
// an error; rows are silently skipped during aggregation.
package errors

import (
	"fmt"
	"strings"
)

// Kind identifies the failure class of a ReportError.
type Kind string

const (
	// KindFileNotFound means an input path does not exist or is unreadable.
	KindFileNotFound Kind = "FILE_NOT_FOUND"
	// KindMissingHeader means a file has no parseable header line.
	KindMissingHeader Kind = "MISSING_HEADER"
	// KindMissingColumns means a file header lacks one or more required columns.
	KindMissingColumns Kind = "MISSING_COLUMNS"
	// KindEmptyDataset means all files together yielded zero data rows.
	KindEmptyDataset Kind = "EMPTY_DATASET"
	// KindNoValidData means aggregation found no usable records.
	KindNoValidData Kind = "NO_VALID_DATA"
)

// ReportError is the single error type surfaced by ingestion and reports.
type ReportError struct {
	Kind    Kind
	Path    string // offending file path, empty for dataset-level failures
	Message string
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	return e.Message
}

// Is reports kind equality so callers can match with errors.Is against a
// bare-kind sentinel, e.g. errors.Is(err, &ReportError{Kind: KindFileNotFound}).
func (e *ReportError) Is(target error) bool {
	t, ok := target.(*ReportError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewFileNotFound creates a FileNotFound error for the given path.
func NewFileNotFound(path string) *ReportError {
	return &ReportError{
		Kind:    KindFileNotFound,
		Path:    path,
		Message: fmt.Sprintf("file %q not found", path),
	}
}

// NewMissingHeader creates a MissingHeader error for the given path.
func NewMissingHeader(path string) *ReportError {
	return &ReportError{
		Kind:    KindMissingHeader,
		Path:    path,
		Message: fmt.Sprintf("file %q has no header row", path),
	}
}

// NewMissingColumns creates a MissingColumns error. The missing column names
// must already be sorted alphabetically; they are joined with ", " so the
// message is deterministic for a given column set.
func NewMissingColumns(path string, missing []string) *ReportError {
	return &ReportError{
		Kind:    KindMissingColumns,
		Path:    path,
		Message: fmt.Sprintf("file %q is missing required columns: %s", path, strings.Join(missing, ", ")),
	}
}

// NewEmptyDataset creates an EmptyDataset error.
func NewEmptyDataset() *ReportError {
	return &ReportError{
		Kind:    KindEmptyDataset,
		Message: "no data rows found in any input file (headers only)",
	}
}

// NewNoValidData creates a NoValidData error.
func NewNoValidData() *ReportError {
	return &ReportError{
		Kind:    KindNoValidData,
		Message: "cannot compute report: no records with a valid position and performance value",
	}
}
