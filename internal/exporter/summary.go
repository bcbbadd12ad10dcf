package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"nascli/internal/config"
	"nascli/pkg/contracts/domain"
)

// summaryHeaders is the column set shared by every summary export.
func summaryHeaders(keyName string) []string {
	return []string{
		keyName,
		"Records",
		"Schools_Surveyed",
		"Students_Surveyed",
		"Mathematics",
		"Science",
		"Social_Science",
		"Language",
		"Overall",
	}
}

// summaryRow flattens one group summary into CSV cells. Absent averages
// stay empty.
func summaryRow(s domain.GroupSummary) []string {
	return []string{
		s.Key,
		fmt.Sprintf("%d", s.Records),
		formatInt(s.SchoolsSurveyed),
		formatInt(s.StudentsSurveyed),
		formatNullFloat(s.Scores.Mathematics),
		formatNullFloat(s.Scores.Science),
		formatNullFloat(s.Scores.SocialScience),
		formatNullFloat(s.Scores.Language),
		formatNullFloat(s.Scores.Overall),
	}
}

// SummaryExporter writes group summaries as CSV reports.
type SummaryExporter struct {
	csvWriter *CSVWriter
}

// NewSummaryExporter creates a summary report exporter
func NewSummaryExporter(paths *config.Paths) *SummaryExporter {
	return &SummaryExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportSummaries writes the summaries to a CSV report file. keyName is
// the header for the grouping column ("State", "District", "Region").
func (e *SummaryExporter) ExportSummaries(filePath, keyName string, summaries []domain.GroupSummary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, summaryRow(s))
	}
	return e.csvWriter.WriteSimpleCSV(filePath, summaryHeaders(keyName), records)
}

// StreamSummaries writes the summaries as CSV directly to w, for
// serving exports over HTTP without touching disk.
func StreamSummaries(w io.Writer, keyName string, summaries []domain.GroupSummary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(summaryHeaders(keyName)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, s := range summaries {
		if err := cw.Write(summaryRow(s)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
