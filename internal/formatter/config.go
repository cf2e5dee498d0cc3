package formatter

// Config holds the fixed style options applied by every capability.
type Config struct {
	IndentSize          int
	MaxPreserveNewlines int
	WrapLineLength      int
	PythonTabWidth      int
	PythonMaxBlankLines int
}

// DefaultConfig returns the default style configuration
func DefaultConfig() Config {
	return Config{
		IndentSize:          2,
		MaxPreserveNewlines: 2,
		WrapLineLength:      120,
		PythonTabWidth:      4,
		PythonMaxBlankLines: 2,
	}
}

// Options carries per-call formatting options.
type Options struct {
	// SQLDialect selects the SQL dialect; required for LanguageSQL,
	// unrecognized tags fall back to the generic dialect.
	SQLDialect string
}
