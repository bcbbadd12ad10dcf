package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DatasetValidator performs pre-flight checks on the survey dataset
// file and export directories before the processor does any work.
type DatasetValidator struct {
	logger *slog.Logger
}

// NewDatasetValidator creates a new dataset validator
func NewDatasetValidator(logger *slog.Logger) *DatasetValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatasetValidator{logger: logger}
}

// ValidateDatasetFile checks that the dataset exists, is a regular CSV
// file, and is not empty. It does not parse the contents.
func (v *DatasetValidator) ValidateDatasetFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			v.logger.Error("Dataset file does not exist",
				slog.String("file", path))
			return fmt.Errorf("dataset file %s: %w", path, err)
		}
		return fmt.Errorf("failed to stat dataset file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a dataset file", path)
	}
	if info.Size() == 0 {
		v.logger.Error("Dataset file is empty",
			slog.String("file", path))
		return fmt.Errorf("dataset file %s is empty", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		v.logger.Warn("Dataset file does not have a .csv extension",
			slog.String("file", path))
	}

	v.logger.Info("Dataset file validated",
		slog.String("file", path),
		slog.Int64("size_bytes", info.Size()))
	return nil
}

// ValidateOutputDirectory ensures the export directory exists and is
// writable, creating it if needed.
func (v *DatasetValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Info("Output directory validated",
		slog.String("directory", dir))
	return nil
}
