package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/internal/config"
)

func testDiscovery(t *testing.T) (*Discovery, string) {
	t.Helper()
	dir := t.TempDir()
	return NewDiscovery(&config.Paths{ReportsDir: dir}), dir
}

func TestListReports(t *testing.T) {
	d, dir := testDiscovery(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "state_summary.csv"), []byte("State\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "survey_summary.xlsx"), []byte("xx"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "state_summary.csv"), old, old))

	reports, err := d.ListReports()
	require.NoError(t, err)

	require.Len(t, reports, 2)
	assert.Equal(t, "survey_summary.xlsx", reports[0].Name)
	assert.Equal(t, "excel", reports[0].Kind)
	assert.Equal(t, "state_summary.csv", reports[1].Name)
	assert.Equal(t, "csv", reports[1].Kind)
}

func TestListReportsMissingDirectory(t *testing.T) {
	d := NewDiscovery(&config.Paths{ReportsDir: "/nonexistent/reports"})

	reports, err := d.ListReports()
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestResolve(t *testing.T) {
	d, dir := testDiscovery(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "region_summary.csv"), []byte("Region\n"), 0o644))

	full, err := d.Resolve("region_summary.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "region_summary.csv"), full)
}

func TestResolveRejectsTraversal(t *testing.T) {
	d, _ := testDiscovery(t)

	tests := []struct {
		name  string
		input string
	}{
		{"parent traversal", "../config.yaml"},
		{"nested path", "sub/dir.csv"},
		{"hidden file", ".hidden.csv"},
		{"wrong extension", "report.exe"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Resolve(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestResolveMissingFile(t *testing.T) {
	d, _ := testDiscovery(t)

	_, err := d.Resolve("district_summary.csv")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
