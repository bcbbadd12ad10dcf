package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the application paths
// This is the single source of truth for ALL file paths in the application
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string

	// Well-known report files
	StateSummaryCSV     string
	DistrictSummaryCSV  string
	RegionSummaryCSV    string
	SurveyWorkbookXLSX  string
}

// GetPaths returns the application paths relative to the executable location
// All paths are ALWAYS relative to the executable directory, never the current working directory
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)

	// Directory structure:
	// <exe dir>/
	//   ├── data/
	//   │   ├── nas.csv        (survey dataset)
	//   │   └── reports/       (generated summary exports)
	//   └── logs/
	dataDir := filepath.Join(exeDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")

	paths := &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		ReportsDir:    reportsDir,
		LogsDir:       filepath.Join(exeDir, "logs"),

		StateSummaryCSV:    filepath.Join(reportsDir, "state_summary.csv"),
		DistrictSummaryCSV: filepath.Join(reportsDir, "district_summary.csv"),
		RegionSummaryCSV:   filepath.Join(reportsDir, "region_summary.csv"),
		SurveyWorkbookXLSX: filepath.Join(reportsDir, "survey_summary.xlsx"),
	}

	return paths, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.LogsDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}

		if logger != nil {
			logger.Debug("Ensured directory exists",
				slog.String("directory", dir))
		}
	}

	return nil
}

// GetRelativePath returns a path relative to the executable directory
func (p *Paths) GetRelativePath(subpath string) string {
	return filepath.Join(p.ExecutableDir, subpath)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetDataPath returns the path for a file in the data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution() {
	logger := slog.Default()
	if logger == nil {
		return
	}

	logger.Info("Path resolution summary",
		slog.Group("directories",
			slog.String("executable", p.ExecutableDir),
			slog.String("data", p.DataDir),
			slog.String("reports", p.ReportsDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("report_files",
			slog.String("state_summary_csv", p.StateSummaryCSV),
			slog.String("district_summary_csv", p.DistrictSummaryCSV),
			slog.String("region_summary_csv", p.RegionSummaryCSV),
			slog.String("survey_workbook_xlsx", p.SurveyWorkbookXLSX),
		))
}
