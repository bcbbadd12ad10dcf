package exporter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"nascli/internal/config"
	"nascli/pkg/contracts/domain"
)

// WorkbookSection is one sheet of the survey summary workbook.
type WorkbookSection struct {
	Sheet     string
	KeyName   string
	Summaries []domain.GroupSummary
}

// WorkbookExporter writes all group summaries into a single Excel
// workbook, one sheet per grouping.
type WorkbookExporter struct {
	paths *config.Paths
}

// NewWorkbookExporter creates an Excel workbook exporter
func NewWorkbookExporter(paths *config.Paths) *WorkbookExporter {
	return &WorkbookExporter{paths: paths}
}

// ExportWorkbook writes the sections to an .xlsx file. Relative paths
// resolve into the reports directory.
func (e *WorkbookExporter) ExportWorkbook(filePath string, sections []WorkbookSection) error {
	if len(sections) == 0 {
		return fmt.Errorf("workbook requires at least one section")
	}

	fullPath := filePath
	if !filepath.IsAbs(fullPath) {
		fullPath = e.paths.GetReportPath(fullPath)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := buildWorkbook(sections)
	if err != nil {
		return err
	}
	defer f.Close()

	slog.Info("Writing Excel workbook",
		slog.String("full_path", fullPath),
		slog.Int("sheets", len(sections)))

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// StreamWorkbook writes the sections as an .xlsx document to w, for
// download endpoints that never touch the reports directory.
func StreamWorkbook(w io.Writer, sections []WorkbookSection) error {
	if len(sections) == 0 {
		return fmt.Errorf("workbook requires at least one section")
	}

	f, err := buildWorkbook(sections)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}

func buildWorkbook(sections []WorkbookSection) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, section := range sections {
		sheet := section.Sheet
		if i == 0 {
			// Rename the default sheet instead of leaving an empty one.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		if err := writeSheet(f, sheet, section); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet string, section WorkbookSection) error {
	header := make([]interface{}, 0, 9)
	for _, h := range summaryHeaders(section.KeyName) {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row on %s: %w", sheet, err)
	}

	for i, s := range section.Summaries {
		row := []interface{}{
			s.Key,
			s.Records,
			s.SchoolsSurveyed,
			s.StudentsSurveyed,
			cellValue(s.Scores.Mathematics),
			cellValue(s.Scores.Science),
			cellValue(s.Scores.SocialScience),
			cellValue(s.Scores.Language),
			cellValue(s.Scores.Overall),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i, sheet, err)
		}
	}

	return nil
}

// cellValue keeps absent averages as empty cells rather than zeros.
func cellValue(f null.Float64) interface{} {
	if !f.Valid {
		return nil
	}
	return f.Float64
}
