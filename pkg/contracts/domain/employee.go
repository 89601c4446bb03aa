package domain

// EmployeeRecord is the Single Source of Truth for one parsed data row from an
// employee data file. Keys are the header field names of the file the row came
// from; values are the raw cell contents with no type coercion applied.
//
// Records are created by the ingest package and consumed read-only by reports.
type EmployeeRecord map[string]string

// Required column names every input file must declare in its header.
const (
	FieldPosition    = "position"
	FieldPerformance = "performance"
)

// RequiredColumns returns the set of columns every input file header must
// contain. Returned as a fresh slice so callers may sort or mutate it.
func RequiredColumns() []string {
	return []string{FieldPosition, FieldPerformance}
}
