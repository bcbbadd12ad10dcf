package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"warning", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.input).String())
		})
	}
}

func TestCreateLoggerWritesToFile(t *testing.T) {
	t.Cleanup(func() { ResetLoggerForTesting() })

	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	logger, err := createLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	logger.Info("dataset parsed", "records", 4)
	require.NoError(t, CloseLogFile())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"dataset parsed"`)
	assert.Contains(t, string(data), `"records":4`)
}

func TestTraceHandlerInjectsTraceID(t *testing.T) {
	t.Cleanup(func() { ResetLoggerForTesting() })

	dir := t.TempDir()
	logPath := filepath.Join(dir, "app.log")

	logger, err := createLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logPath,
	})
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "trace-abc")
	logger.InfoContext(ctx, "with trace")
	logger.Info("without trace")
	require.NoError(t, CloseLogFile())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"trace_id":"trace-abc"`)
	assert.NotContains(t, lines[1], "trace_id")
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := WithTraceID(context.Background(), "trace-xyz")
	assert.Equal(t, "trace-xyz", GetTraceID(ctx))
}

func TestEnsureTraceID(t *testing.T) {
	ctx := EnsureTraceID(context.Background())
	generated := GetTraceID(ctx)
	assert.NotEmpty(t, generated)

	// An existing trace ID is preserved.
	again := EnsureTraceID(ctx)
	assert.Equal(t, generated, GetTraceID(again))
}

func TestGenerateTraceIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateTraceID(), GenerateTraceID())
}
