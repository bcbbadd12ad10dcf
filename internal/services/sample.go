package services

import (
	"bytes"
	_ "embed"
	"log/slog"

	"nascli/internal/dataprocessing"
)

// SampleSourceName marks responses served from the embedded sample rather
// than a real dataset file.
const SampleSourceName = "embedded-sample"

//go:embed sample_dataset.csv
var sampleDatasetCSV []byte

func parseSampleDataset(logger *slog.Logger) (*dataprocessing.Dataset, error) {
	return dataprocessing.Parse(bytes.NewReader(sampleDatasetCSV), logger)
}
