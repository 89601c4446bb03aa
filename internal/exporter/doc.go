// Package exporter writes generated reports to CSV files.
//
// Files are written as UTF-8 with a BOM prefix so Excel opens them with the
// right encoding. Parent directories are created as needed.
package exporter
