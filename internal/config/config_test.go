package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "nas.csv", cfg.Dataset.File)
	assert.False(t, cfg.Dataset.AllowSampleFallback, "sample fallback must default off")
	assert.True(t, cfg.Security.RateLimit.Enabled)
	require.NoError(t, cfg.validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "invalid server port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "invalid server port",
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "read timeout must be positive",
		},
		{
			name:    "no allowed origins",
			mutate:  func(c *Config) { c.Security.AllowedOrigins = nil },
			wantErr: "allowed origin",
		},
		{
			name:    "empty dataset file",
			mutate:  func(c *Config) { c.Dataset.File = "" },
			wantErr: "dataset file must be configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNormalizesLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	cfg.Logging.Output = "syslog"
	cfg.Logging.FilePath = ""

	require.NoError(t, cfg.validate())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "both", cfg.Logging.Output)
	assert.Equal(t, "logs/app.log", cfg.Logging.FilePath)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
dataset:
  file: /srv/data/nas_2021.csv
  allow_sample_fallback: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/data/nas_2021.csv", cfg.Dataset.File)
	assert.True(t, cfg.Dataset.AllowSampleFallback)
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := loadFromFile(path)
	assert.Error(t, err)
}

func TestMergeConfigsEnvWins(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Server.Port = 9090
	fileCfg.Dataset.File = "file.csv"

	envCfg := Config{}
	envCfg.Server.Port = 8081
	envCfg.Dataset.File = "env.csv"

	merged := mergeConfigs(fileCfg, envCfg)
	assert.Equal(t, 8081, merged.Server.Port)
	assert.Equal(t, "env.csv", merged.Dataset.File)
}

func TestMergeConfigsFileFillsGaps(t *testing.T) {
	fileCfg := Config{}
	fileCfg.Server.Port = 9090
	fileCfg.Dataset.File = "file.csv"
	fileCfg.Dataset.AllowSampleFallback = true

	merged := mergeConfigs(fileCfg, Config{})
	assert.Equal(t, 9090, merged.Server.Port)
	assert.Equal(t, "file.csv", merged.Dataset.File)
	assert.True(t, merged.Dataset.AllowSampleFallback)
}

func TestGetDatasetFile(t *testing.T) {
	cfg := Default()

	cfg.Dataset.File = "/srv/data/nas.csv"
	assert.Equal(t, "/srv/data/nas.csv", cfg.GetDatasetFile())

	cfg.Dataset.File = "nas.csv"
	got := cfg.GetDatasetFile()
	assert.Equal(t, "nas.csv", filepath.Base(got))
	assert.True(t, filepath.IsAbs(got) || got == filepath.Join(cfg.GetDataDir(), "nas.csv"))
}
