package reporter

import (
	"html/template"
	"time"
)

// GetReportTemplateFunctions returns the helpers available to the report template.
func GetReportTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"outcomeClass": outcomeClass,
		"formatTime":   formatTime,
	}
}

// outcomeClass maps an outcome tag to its badge CSS class
func outcomeClass(outcome string) string {
	if outcome == "changed" {
		return "badge-changed"
	}
	return "badge-identical"
}

// formatTime renders a timestamp for the report header
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}
