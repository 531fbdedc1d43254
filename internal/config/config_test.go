package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/detone/internal/domain"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "detone.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "json"

convert:
  no_backup: true
  backup_ext: ".yml"
  workers: 2
  chunk_size: 128
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Convert.NoBackup)
	assert.False(t, cfg.Convert.Backup())
	assert.Equal(t, ".yml", cfg.Convert.BackupExt)
	assert.Equal(t, 2, cfg.Convert.Workers)
	assert.Equal(t, 128, cfg.Convert.ChunkSize)
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Convert.Workers)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("DETONE_WORKERS", "8")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Convert.Workers)
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.Convert.NoBackup)
	assert.True(t, cfg.Convert.Backup())
	assert.Equal(t, ".yaml", cfg.Convert.BackupExt)
	assert.Equal(t, 4, cfg.Convert.Workers)
	assert.Equal(t, 4096, cfg.Convert.ChunkSize)
}

func TestLoad_DefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, validYAML)
	t.Chdir(dir)
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Convert.ChunkSize)
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `
log:
  level: "verbose"
convert:
  workers: -1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	fields := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = fe.Field
	}
	assert.ElementsMatch(t, []string{"log.level", "convert.workers"}, fields)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Log:     LogConfig{Level: "info", Format: "text"},
			Convert: ConvertConfig{BackupExt: ".yaml", Workers: 1, ChunkSize: 1},
		}
	}

	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "level case-insensitive", mutate: func(c *Config) { c.Log.Level = "WARN" }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantField: "log.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantField: "log.format"},
		{name: "zero workers", mutate: func(c *Config) { c.Convert.Workers = 0 }, wantField: "convert.workers"},
		{name: "zero chunk size", mutate: func(c *Config) { c.Convert.ChunkSize = 0 }, wantField: "convert.chunk_size"},
		{name: "ext without dot", mutate: func(c *Config) { c.Convert.BackupExt = "yaml" }, wantField: "convert.backup_ext"},
		{name: "ext with separator", mutate: func(c *Config) { c.Convert.BackupExt = ".d/x" }, wantField: "convert.backup_ext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, 1)
			assert.Equal(t, tt.wantField, ve.Errors[0].Field)
		})
	}
}
