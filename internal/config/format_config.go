package config

// FormatConfig defines configuration for code formatting
type FormatConfig struct {
	IndentSize          int    `json:"indent_size,omitempty" yaml:"indent_size,omitempty" validate:"omitempty,min=1,max=8"`
	MaxPreserveNewlines int    `json:"max_preserve_newlines,omitempty" yaml:"max_preserve_newlines,omitempty" validate:"omitempty,min=0,max=10"`
	WrapLineLength      int    `json:"wrap_line_length,omitempty" yaml:"wrap_line_length,omitempty" validate:"omitempty,min=40"`
	SQLDialect          string `json:"sql_dialect,omitempty" yaml:"sql_dialect,omitempty"`
}

// NewDefaultFormatConfig creates default format configuration
func NewDefaultFormatConfig() FormatConfig {
	return FormatConfig{
		IndentSize:          DefaultFormatIndentSize,
		MaxPreserveNewlines: DefaultFormatMaxPreserveNewlines,
		WrapLineLength:      DefaultFormatWrapLineLength,
		SQLDialect:          DefaultFormatSQLDialect,
	}
}
