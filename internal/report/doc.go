// Package report holds the report registry and the built-in report functions.
//
// A report is a named function that consumes the full ingested record
// sequence and returns headers plus rows. The registry is the extension
// point: new reports register under a unique name and become selectable from
// the CLI without touching ingestion or dispatch.
package report
