package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"nascli/internal/config"
	"nascli/internal/dataprocessing"
	"nascli/internal/exporter"
	"nascli/internal/infrastructure"
	"nascli/internal/reference"
	"nascli/internal/validation"
	"nascli/pkg/contracts/domain"
)

func main() {
	inFile := flag.String("in", "", "survey dataset CSV (defaults to the configured dataset file)")
	outDir := flag.String("out", "", "output directory for summary exports (defaults to data/reports relative to executable)")
	year := flag.Int("year", 0, "restrict to one survey year, 0 means all years")
	class := flag.Int("class", 0, "restrict to one class level, 0 means all classes")
	noXLSX := flag.Bool("no-xlsx", false, "skip the combined Excel workbook")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
		cfg.Logging.FilePath = paths.GetLogPath("processor.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if *inFile == "" {
		*inFile = cfg.GetDatasetFile()
	}
	if *outDir == "" {
		*outDir = paths.ReportsDir
	}

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("Error creating output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Starting survey summary export",
		slog.String("input_file", *inFile),
		slog.String("output_dir", *outDir),
		slog.Int("year", *year),
		slog.Int("class", *class))

	if err := run(logger, paths, *inFile, *outDir, *year, *class, !*noXLSX); err != nil {
		logger.Error("Processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, paths *config.Paths, inFile, outDir string, year, class int, withWorkbook bool) error {
	validator := validation.NewDatasetValidator(logger)
	if err := validator.ValidateDatasetFile(inFile); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(outDir); err != nil {
		return err
	}

	dataset, err := dataprocessing.ParseFile(inFile, logger)
	if err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	records := dataprocessing.FilterRecords(dataset.Records, year, class)
	logger.Info("Dataset parsed",
		slog.Int("records", len(dataset.Records)),
		slog.Int("selected", len(records)),
		slog.Int("outcome_codes", len(dataset.OutcomeCodes)),
		slog.Int("malformed_years", dataset.MalformedYears),
		slog.Int("skipped_rows", dataset.SkippedRows))

	agg := dataprocessing.NewAggregator(dataset.Classification, logger)
	states := agg.Summarize(records, dataprocessing.ByState)
	districts := agg.Summarize(records, dataprocessing.ByDistrict)
	regions := agg.Summarize(records, func(r domain.SurveyRecord) string {
		return reference.RegionForState(r.State)
	})

	summaryExporter := exporter.NewSummaryExporter(paths)

	exports := []struct {
		file      string
		keyName   string
		summaries []domain.GroupSummary
	}{
		{filepath.Join(outDir, "state_summary.csv"), "State", states.Summaries},
		{filepath.Join(outDir, "district_summary.csv"), "District", districts.Summaries},
		{filepath.Join(outDir, "region_summary.csv"), "Region", regions.Summaries},
	}
	for _, e := range exports {
		if err := summaryExporter.ExportSummaries(e.file, e.keyName, e.summaries); err != nil {
			return fmt.Errorf("write %s: %w", e.file, err)
		}
		logger.Info("Summary written",
			slog.String("file", e.file),
			slog.Int("groups", len(e.summaries)))
	}

	if withWorkbook {
		workbook := filepath.Join(outDir, "survey_summary.xlsx")
		sections := []exporter.WorkbookSection{
			{Sheet: "States", KeyName: "State", Summaries: states.Summaries},
			{Sheet: "Districts", KeyName: "District", Summaries: districts.Summaries},
			{Sheet: "Regions", KeyName: "Region", Summaries: regions.Summaries},
		}
		if err := exporter.NewWorkbookExporter(paths).ExportWorkbook(workbook, sections); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		logger.Info("Workbook written", slog.String("file", workbook))
	}

	return nil
}
