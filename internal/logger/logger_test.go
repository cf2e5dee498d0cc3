package logger

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/prettydiff/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultConfig(t *testing.T) {
	logger, err := New(config.NewDefaultLogConfig())
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNew_ParsesLevel(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "debug"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestConfigConverter_FileLogging(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "app.log")
	cfg.MaxLogSizeMB = 10
	cfg.MaxLogBackups = 1

	converted, err := NewConfigConverter().ConvertConfig(cfg)
	require.NoError(t, err)

	assert.True(t, converted.EnableFile)
	assert.Equal(t, cfg.LogFile, converted.FilePath)
	assert.Equal(t, 10, converted.MaxSizeMB)
	assert.Equal(t, 1, converted.MaxBackups)
}

func TestConfigConverter_UnknownFormatDefaultsToConsole(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogFormat = "weird"

	converted, err := NewConfigConverter().ConvertConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, converted.Format)
}

func TestLoggerBuilder_InvalidMaxSize(t *testing.T) {
	builder := NewLoggerBuilder()
	builder.config.MaxSizeMB = 0

	_, err := builder.Build()
	assert.Error(t, err)
}
