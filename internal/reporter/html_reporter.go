package reporter

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"time"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/aleister1102/prettydiff/internal/config"
	"github.com/aleister1102/prettydiff/internal/orchestrator"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templatesFS embed.FS

// ReportMeta carries the run context shown in the report header.
type ReportMeta struct {
	Language    string
	ViewMode    string
	Theme       string
	GeneratedAt time.Time
}

// HTMLReporter renders one comparison summary into a self-contained HTML page.
type HTMLReporter struct {
	logger       zerolog.Logger
	config       config.ReporterConfig
	template     *template.Template
	directoryMgr *DirectoryManager
}

// NewHTMLReporter creates an HTMLReporter with the embedded report template parsed.
func NewHTMLReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*HTMLReporter, error) {
	tmpl, err := template.New("report").
		Funcs(GetReportTemplateFunctions()).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse report template")
	}

	return &HTMLReporter{
		logger:       logger.With().Str("component", "HTMLReporter").Logger(),
		config:       cfg,
		template:     tmpl,
		directoryMgr: NewDirectoryManager(cfg.OutputDir),
	}, nil
}

type reportData struct {
	Title   string
	Meta    ReportMeta
	Summary *orchestrator.ComparisonSummary
}

// GenerateReport writes the summary to a timestamped HTML file and returns its path.
func (hr *HTMLReporter) GenerateReport(summary *orchestrator.ComparisonSummary, meta ReportMeta) (string, error) {
	if summary == nil {
		return "", errorwrapper.NewError("comparison summary is nil")
	}

	if err := hr.directoryMgr.EnsureOutputDir(); err != nil {
		return "", err
	}

	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}

	data := reportData{
		Title:   hr.config.ReportTitle,
		Meta:    meta,
		Summary: summary,
	}

	var buf bytes.Buffer
	if err := hr.template.ExecuteTemplate(&buf, "report.html.tmpl", data); err != nil {
		return "", errorwrapper.WrapError(err, "failed to execute report template")
	}

	reportPath := hr.directoryMgr.BuildReportPath(meta.GeneratedAt)
	if err := os.WriteFile(reportPath, buf.Bytes(), 0o644); err != nil {
		return "", errorwrapper.WrapError(err, "failed to write report file")
	}

	hr.logger.Info().
		Str("path", reportPath).
		Int("comparisons", summary.Comparisons).
		Str("status", summary.Status.String()).
		Msg("Report generated")

	return reportPath, nil
}
