package reporter

const (
	// ReportFilePrefix is the basename prefix for generated reports
	ReportFilePrefix = "diff-report"
	// ReportTimestampLayout names report files by generation time
	ReportTimestampLayout = "20060102-150405"
)
