package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths(t *testing.T) {
	paths, err := GetPaths()
	require.NoError(t, err)

	assert.NotEmpty(t, paths.ExecutableDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(paths.DataDir, "reports"), paths.ReportsDir)
	assert.Equal(t, filepath.Join(paths.ExecutableDir, "logs"), paths.LogsDir)

	assert.Equal(t, filepath.Join(paths.ReportsDir, "state_summary.csv"), paths.StateSummaryCSV)
	assert.Equal(t, filepath.Join(paths.ReportsDir, "survey_summary.xlsx"), paths.SurveyWorkbookXLSX)
}

func TestPathHelpers(t *testing.T) {
	paths := &Paths{
		ExecutableDir: "/opt/nas",
		DataDir:       "/opt/nas/data",
		ReportsDir:    "/opt/nas/data/reports",
		LogsDir:       "/opt/nas/logs",
	}

	assert.Equal(t, "/opt/nas/data/reports/rankings.csv", paths.GetReportPath("rankings.csv"))
	assert.Equal(t, "/opt/nas/logs/app.log", paths.GetLogPath("app.log"))
	assert.Equal(t, "/opt/nas/data/nas.csv", paths.GetDataPath("nas.csv"))
	assert.Equal(t, "/opt/nas/configs", paths.GetRelativePath("configs"))
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		DataDir:    filepath.Join(dir, "data"),
		ReportsDir: filepath.Join(dir, "data", "reports"),
		LogsDir:    filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.DataDir, paths.ReportsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "absent.csv")))
}
