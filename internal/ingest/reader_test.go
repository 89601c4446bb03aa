package ingest

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reperrors "empreport/internal/errors"
	"empreport/pkg/contracts/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadEmployeesConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	file1 := writeFile(t, dir, "team1.csv", `name,position,performance
Alice,Backend Developer,4.8
Bob,Backend Developer,5.0
Carol,QA Engineer,4.5
`)
	file2 := writeFile(t, dir, "team2.csv", `name,position,performance
Dave,Backend Developer,4.7
Erin,QA Engineer,4.3
`)

	records, err := NewReader(nil).ReadEmployees([]string{file1, file2})
	require.NoError(t, err)
	require.Len(t, records, 5)

	// file-then-row order
	assert.Equal(t, "Alice", records[0]["name"])
	assert.Equal(t, "Carol", records[2]["name"])
	assert.Equal(t, "Dave", records[3]["name"])
	assert.Equal(t, "Erin", records[4]["name"])
	assert.Equal(t, "4.3", records[4]["performance"])
}

func TestReadEmployeesFileNotFound(t *testing.T) {
	dir := t.TempDir()
	valid := writeFile(t, dir, "ok.csv", "position,performance\nDev,4.0\n")

	_, err := NewReader(nil).ReadEmployees([]string{valid, filepath.Join(dir, "nope.csv")})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &reperrors.ReportError{Kind: reperrors.KindFileNotFound}))
	assert.Contains(t, err.Error(), "nope.csv")
}

func TestReadEmployeesMissingHeader(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.csv", "")

	_, err := NewReader(nil).ReadEmployees([]string{empty})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &reperrors.ReportError{Kind: reperrors.KindMissingHeader}))
	assert.Contains(t, err.Error(), "empty.csv")
}

func TestReadEmployeesMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{
			name:    "position missing",
			header:  "name,performance",
			wantMsg: "missing required columns: position",
		},
		{
			name:    "performance missing",
			header:  "name,position",
			wantMsg: "missing required columns: performance",
		},
		{
			name:    "both missing listed alphabetically",
			header:  "name,salary",
			wantMsg: "missing required columns: performance, position",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "bad.csv", tt.header+"\nsome,data\n")

			_, err := NewReader(nil).ReadEmployees([]string{path})
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, &reperrors.ReportError{Kind: reperrors.KindMissingColumns}))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadEmployeesInvalidFileFailsWholeRun(t *testing.T) {
	// A structurally bad file aborts ingestion even when every other file is
	// fine, regardless of its place in the argument list.
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "position,performance\nDev,4.0\n")
	bad := writeFile(t, dir, "bad.csv", "name,salary\nAlice,100\n")

	for _, order := range [][]string{{good, bad}, {bad, good}} {
		_, err := NewReader(nil).ReadEmployees(order)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, &reperrors.ReportError{Kind: reperrors.KindMissingColumns}))
	}
}

func TestReadEmployeesEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	h1 := writeFile(t, dir, "h1.csv", "position,performance\n")
	h2 := writeFile(t, dir, "h2.csv", "position,performance\n")

	_, err := NewReader(nil).ReadEmployees([]string{h1, h2})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &reperrors.ReportError{Kind: reperrors.KindEmptyDataset}))
}

func TestReadEmployeesRaggedRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ragged.csv", `name,position,performance
Alice,Dev
Bob,QA,4.5,extra
`)

	records, err := NewReader(nil).ReadEmployees([]string{path})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Short row: trailing field absent entirely.
	_, ok := records[0]["performance"]
	assert.False(t, ok)
	assert.Equal(t, "Dev", records[0]["position"])

	// Long row: extra cell dropped.
	assert.Equal(t, domain.EmployeeRecord{
		"name": "Bob", "position": "QA", "performance": "4.5",
	}, records[1])
}

func TestReadEmployeesQuotedFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quoted.csv", `name,position,performance
"Smith, Jane","Team Lead, Backend",4.9
"O""Brien",QA Engineer,4.2
`)

	records, err := NewReader(nil).ReadEmployees([]string{path})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Team Lead, Backend", records[0]["position"])
	assert.Equal(t, `O"Brien`, records[1]["name"])
}

func TestReadEmployeesExtraColumnsIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "wide.csv", "id,name,position,performance,office\n7,Alice,Dev,4.1,Berlin\n")

	records, err := NewReader(nil).ReadEmployees([]string{path})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Berlin", records[0]["office"])
	assert.Equal(t, "4.1", records[0]["performance"])
}
