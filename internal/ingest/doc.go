// Package ingest reads employee data files and produces the flat record
// sequence consumed by reports.
//
// Files are processed synchronously in the order supplied; each file's rows
// are appended in file order. CSV is the primary format; XLSX workbooks are
// accepted as well, with the first sheet's first row acting as the header.
// Every file's header must contain the required columns (position,
// performance); validation happens per file, before any of its rows are kept.
package ingest
