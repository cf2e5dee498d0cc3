package formatter

import (
	"strings"

	"github.com/go-xmlfmt/xmlfmt"
	"github.com/yosssi/gohtml"
)

// formatHTML delegates to the gohtml beautifier. Nested markup is indented;
// gohtml emits 2-space indentation matching the fixed style.
func (d *Dispatcher) formatHTML(code string, _ Options) (string, error) {
	formatted := gohtml.Format(code)
	if strings.TrimSpace(formatted) == "" {
		// gohtml swallows input it cannot tokenize; keep the raw text
		formatted = code
	}
	return ensureTrailingNewline(formatted), nil
}

// formatXML delegates to the xmlfmt re-indenter
func (d *Dispatcher) formatXML(code string, _ Options) (string, error) {
	indent := strings.Repeat(" ", d.config.IndentSize)
	formatted := xmlfmt.FormatXML(strings.TrimSpace(code), "", indent)

	// xmlfmt prefixes its output with the line-break marker
	formatted = strings.TrimLeft(formatted, "\r\n")
	formatted = strings.ReplaceAll(formatted, "\r\n", "\n")

	return ensureTrailingNewline(formatted), nil
}
