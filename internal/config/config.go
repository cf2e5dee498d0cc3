package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig aggregates all component configurations
type GlobalConfig struct {
	DiffConfig     DiffConfig     `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	FormatConfig   FormatConfig   `json:"format_config,omitempty" yaml:"format_config,omitempty"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with all defaults applied
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:     NewDefaultDiffConfig(),
		FormatConfig:   NewDefaultFormatConfig(),
		LogConfig:      NewDefaultLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats; YAML is preferred for .yaml/.yml extensions.
// A missing config file is not an error: defaults are returned.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		logger.Debug().Msg("No configuration file found, using defaults")
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file "+filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		// try YAML first, then JSON
		if err = yaml.Unmarshal(data, cfg); err != nil {
			err = json.Unmarshal(data, cfg)
		}
	}
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config file "+filePath)
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}
