package config

const (
	// Format Defaults
	DefaultFormatIndentSize          = 2
	DefaultFormatMaxPreserveNewlines = 2
	DefaultFormatWrapLineLength      = 120
	DefaultFormatSQLDialect          = "sql"

	// Diff Defaults
	DefaultDiffContextLines = 3
	DefaultDiffViewMode     = "line-by-line"
	DefaultDiffTheme        = "light"

	// Reporter Defaults
	DefaultReporterOutputDir   = "reports"
	DefaultReporterReportTitle = "prettydiff comparison"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
