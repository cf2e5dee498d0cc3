package config

// ReporterConfig defines configuration for HTML report generation
type ReporterConfig struct {
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	ReportTitle string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:   DefaultReporterOutputDir,
		ReportTitle: DefaultReporterReportTitle,
	}
}
