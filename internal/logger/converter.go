package logger

import (
	"strings"

	"github.com/aleister1102/prettydiff/internal/config"
	"github.com/rs/zerolog"
)

// ConfigConverter converts application log config into logger configuration
type ConfigConverter struct{}

// NewConfigConverter creates a new config converter
func NewConfigConverter() *ConfigConverter {
	return &ConfigConverter{}
}

// ConvertConfig maps config.LogConfig onto LoggerConfig, applying defaults
// for anything unset or unparsable
func (cc *ConfigConverter) ConvertConfig(cfg config.LogConfig) (LoggerConfig, error) {
	loggerConfig := DefaultLoggerConfig()

	if cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			loggerConfig.Level = level
		}
	}

	loggerConfig.Format = parseFormat(cfg.LogFormat)

	if cfg.LogFile != "" {
		loggerConfig.EnableFile = true
		loggerConfig.FilePath = cfg.LogFile
	}
	if cfg.MaxLogSizeMB > 0 {
		loggerConfig.MaxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		loggerConfig.MaxBackups = cfg.MaxLogBackups
	}

	return loggerConfig, nil
}

// parseFormat maps a format tag onto LogFormat, defaulting to console
func parseFormat(tag string) LogFormat {
	switch strings.ToLower(tag) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
