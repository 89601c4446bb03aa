// Command empreport generates reports from employee data files.
//
// Usage:
//
//	empreport -files team1.csv -files team2.csv -report performance
//
// The report table goes to stdout; diagnostics go to stderr. Usage errors and
// report failures both exit with code 2.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"empreport/internal/config"
	"empreport/internal/exporter"
	"empreport/internal/infrastructure"
	"empreport/internal/ingest"
	"empreport/internal/render"
	"empreport/internal/report"
	"empreport/pkg/contracts/domain"
)

const usageExitCode = 2

// fileList collects -files values; the flag repeats and each value may itself
// be a comma-separated list.
type fileList []string

func (f *fileList) String() string {
	return strings.Join(*f, ",")
}

func (f *fileList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*f = append(*f, part)
		}
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	registry := report.NewDefaultRegistry()

	var files fileList
	fs := flag.NewFlagSet("empreport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&files, "files", "path to an employee data file (repeatable, or comma-separated)")
	reportName := fs.String("report", "", fmt.Sprintf("report name (one of: %s)", strings.Join(sortedNames(registry), ", ")))
	outPath := fs.String("out", "", "also write the report to this CSV file")
	configPath := fs.String("config", "", "path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return usageExitCode
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "empreport: at least one -files path is required")
		fs.Usage()
		return usageExitCode
	}
	if *reportName == "" {
		fmt.Fprintln(stderr, "empreport: -report is required")
		fs.Usage()
		return usageExitCode
	}
	if !registry.Has(*reportName) {
		fmt.Fprintf(stderr, "empreport: unknown report %q (available: %s)\n",
			*reportName, strings.Join(sortedNames(registry), ", "))
		return usageExitCode
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "empreport: %v\n", err)
		return usageExitCode
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "empreport: %v\n", err)
		return usageExitCode
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "starting report generation",
		slog.String("report", *reportName),
		slog.Int("files", len(files)))

	result, err := generateReport(registry, files, *reportName, logger)
	if err != nil {
		logger.ErrorContext(ctx, "report generation failed", slog.String("error", err.Error()))
		fmt.Fprintf(stderr, "empreport: %v\n", err)
		return usageExitCode
	}

	if err := render.Table(stdout, result); err != nil {
		fmt.Fprintf(stderr, "empreport: %v\n", err)
		return usageExitCode
	}

	if *outPath != "" {
		if err := exporter.NewCSVWriter(logger).WriteReport(*outPath, result); err != nil {
			fmt.Fprintf(stderr, "empreport: %v\n", err)
			return usageExitCode
		}
		logger.InfoContext(ctx, "report exported", slog.String("path", *outPath))
	}

	logger.InfoContext(ctx, "report generated",
		slog.String("report", *reportName),
		slog.Int("rows", len(result.Rows)))
	return 0
}

// generateReport wires ingestion into the selected report function.
func generateReport(registry *report.Registry, files []string, name string, logger *slog.Logger) (*domain.ReportResult, error) {
	employees, err := ingest.NewReader(logger).ReadEmployees(files)
	if err != nil {
		return nil, err
	}

	fn, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	return fn(employees)
}

func sortedNames(r *report.Registry) []string {
	names := r.Names()
	sort.Strings(names)
	return names
}
