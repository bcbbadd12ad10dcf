package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"github.com/xuri/excelize/v2"

	"nascli/internal/config"
	"nascli/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	dir := t.TempDir()
	return &config.Paths{
		ExecutableDir: dir,
		DataDir:       filepath.Join(dir, "data"),
		ReportsDir:    filepath.Join(dir, "data", "reports"),
		LogsDir:       filepath.Join(dir, "logs"),
	}
}

func sampleSummaries() []domain.GroupSummary {
	return []domain.GroupSummary{
		{
			Key:              "Karnataka",
			Records:          2,
			SchoolsSurveyed:  200,
			StudentsSurveyed: 6000,
			Scores: domain.PerformanceScores{
				Mathematics: null.Float64From(60),
				Science:     null.Float64From(61.005),
				Language:    null.Float64From(70.5),
				Overall:     null.Float64From(63.835),
			},
		},
		{
			Key:              "Punjab",
			Records:          1,
			SchoolsSurveyed:  95,
			StudentsSurveyed: 2850,
			Scores: domain.PerformanceScores{
				Mathematics: null.Float64From(62.3),
				Overall:     null.Float64From(62.3),
			},
		},
	}
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "13.40", formatFloat(13.4))
	assert.Equal(t, "0.00", formatFloat(0))
	assert.Equal(t, "61.01", formatFloat(61.005))
}

func TestFormatNullFloat(t *testing.T) {
	assert.Equal(t, "62.30", formatNullFloat(null.Float64From(62.3)))
	assert.Equal(t, "", formatNullFloat(null.Float64{}), "absent value must export empty, not zero")
}

func TestWriteSimpleCSV(t *testing.T) {
	paths := testPaths(t)
	w := NewCSVWriter(paths)

	err := w.WriteSimpleCSV("state_summary.csv", []string{"State", "Overall"}, [][]string{
		{"Karnataka", "63.84"},
		{"Punjab", "62.30"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(paths.GetReportPath("state_summary.csv"))
	require.NoError(t, err)

	// BOM prefix for Excel.
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	content := string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Equal(t, "State,Overall\nKarnataka,63.84\nPunjab,62.30\n", content)
}

func TestExportSummaries(t *testing.T) {
	paths := testPaths(t)
	e := NewSummaryExporter(paths)

	require.NoError(t, e.ExportSummaries("state_summary.csv", "State", sampleSummaries()))

	data, err := os.ReadFile(paths.GetReportPath("state_summary.csv"))
	require.NoError(t, err)

	reader := csv.NewReader(strings.NewReader(string(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, summaryHeaders("State"), rows[0])
	assert.Equal(t, []string{"Karnataka", "2", "200", "6000", "60.00", "61.01", "", "70.50", "63.84"}, rows[1])
	// Punjab has no science/social/language values: empty cells.
	assert.Equal(t, []string{"Punjab", "1", "95", "2850", "62.30", "", "", "", "62.30"}, rows[2])
}

func TestStreamSummaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StreamSummaries(&buf, "Region", sampleSummaries()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Region", rows[0][0])
	assert.Equal(t, "Karnataka", rows[1][0])
}

func TestExportWorkbook(t *testing.T) {
	paths := testPaths(t)
	e := NewWorkbookExporter(paths)

	sections := []WorkbookSection{
		{Sheet: "States", KeyName: "State", Summaries: sampleSummaries()},
		{Sheet: "Regions", KeyName: "Region", Summaries: sampleSummaries()[:1]},
	}
	require.NoError(t, e.ExportWorkbook("survey_summary.xlsx", sections))

	f, err := excelize.OpenFile(paths.GetReportPath("survey_summary.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"States", "Regions"}, f.GetSheetList())

	key, err := f.GetCellValue("States", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Karnataka", key)

	// Punjab's absent science average stays an empty cell.
	science, err := f.GetCellValue("States", "F3")
	require.NoError(t, err)
	assert.Equal(t, "", science)
}

func TestExportWorkbookNoSections(t *testing.T) {
	e := NewWorkbookExporter(testPaths(t))
	assert.Error(t, e.ExportWorkbook("empty.xlsx", nil))
}

func TestStreamWorkbook(t *testing.T) {
	var buf bytes.Buffer
	sections := []WorkbookSection{
		{Sheet: "Districts", KeyName: "District", Summaries: sampleSummaries()},
	}
	require.NoError(t, StreamWorkbook(&buf, sections))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Districts"}, f.GetSheetList())

	key, err := f.GetCellValue("Districts", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Karnataka", key)
}

func TestStreamWorkbookNoSections(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, StreamWorkbook(&buf, nil))
}
