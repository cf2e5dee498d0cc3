package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultDiffContextLines, cfg.DiffConfig.ContextLines)
	assert.Equal(t, DefaultDiffViewMode, cfg.DiffConfig.ViewMode)
	assert.Equal(t, DefaultFormatIndentSize, cfg.FormatConfig.IndentSize)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
diff_config:
  context_lines: 5
  view_mode: side-by-side
  theme: dark
format_config:
  indent_size: 4
  sql_dialect: postgresql
log_config:
  log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.DiffConfig.ContextLines)
	assert.Equal(t, "side-by-side", cfg.DiffConfig.ViewMode)
	assert.Equal(t, "dark", cfg.DiffConfig.Theme)
	assert.Equal(t, 4, cfg.FormatConfig.IndentSize)
	assert.Equal(t, "postgresql", cfg.FormatConfig.SQLDialect)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)

	// untouched sections keep their defaults
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"diff_config": {"theme": "dark"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.DiffConfig.Theme)
}

func TestLoadGlobalConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultDiffViewMode, cfg.DiffConfig.ViewMode)
}

func TestValidateConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	assert.NoError(t, ValidateConfig(cfg))

	cfg.DiffConfig.ViewMode = "diagonal"
	assert.Error(t, ValidateConfig(cfg))

	cfg = NewDefaultGlobalConfig()
	cfg.DiffConfig.Theme = "sepia"
	assert.Error(t, ValidateConfig(cfg))

	cfg = NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose-ish"
	assert.Error(t, ValidateConfig(cfg))

	cfg = NewDefaultGlobalConfig()
	cfg.FormatConfig.IndentSize = 99
	assert.Error(t, ValidateConfig(cfg))
}
