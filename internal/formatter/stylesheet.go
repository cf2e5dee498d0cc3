package formatter

import (
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// formatCSS parses the stylesheet with douceur and re-prints the parsed tree
// with the fixed style: 2-space indent, one declaration per line, a blank line
// between top-level rules.
func (d *Dispatcher) formatCSS(code string, _ Options) (string, error) {
	stylesheet, err := parser.Parse(code)
	if err != nil {
		return "", errorwrapper.WrapError(err, "css parser rejected input")
	}

	var sb strings.Builder
	for i, rule := range stylesheet.Rules {
		if i > 0 {
			sb.WriteString("\n")
		}
		d.printRule(&sb, rule, 0)
	}

	return ensureTrailingNewline(sb.String()), nil
}

// printRule prints one rule (and its embedded rules) at the given depth
func (d *Dispatcher) printRule(sb *strings.Builder, rule *css.Rule, depth int) {
	indent := strings.Repeat(" ", depth*d.config.IndentSize)
	inner := strings.Repeat(" ", (depth+1)*d.config.IndentSize)

	switch rule.Kind {
	case css.AtRule:
		if !rule.EmbedsRules() && len(rule.Declarations) == 0 {
			sb.WriteString(indent + strings.TrimSpace(rule.Name+" "+rule.Prelude) + ";\n")
			return
		}
		sb.WriteString(indent + strings.TrimSpace(rule.Name+" "+rule.Prelude) + " {\n")
	default:
		selectors := make([]string, 0, len(rule.Selectors))
		for _, sel := range rule.Selectors {
			selectors = append(selectors, strings.TrimSpace(sel))
		}
		sb.WriteString(indent + strings.Join(selectors, ",\n"+indent) + " {\n")
	}

	for _, decl := range rule.Declarations {
		sb.WriteString(inner + decl.String() + "\n")
	}

	for i, embedded := range rule.Rules {
		if i > 0 || len(rule.Declarations) > 0 {
			sb.WriteString("\n")
		}
		d.printRule(sb, embedded, depth+1)
	}

	sb.WriteString(indent + "}\n")
}
