package formatter

import "strings"

// formatPython applies the deterministic local normalization pipeline.
// This is intentionally not a real formatter: it never reindents or reflows
// code, it only cleans whitespace. The pipeline is idempotent.
func (d *Dispatcher) formatPython(code string, _ Options) (string, error) {
	return d.normalizePython(code), nil
}

// normalizePython unifies line endings, expands tabs, strips trailing
// whitespace, collapses blank-line runs, and enforces one trailing newline
func (d *Dispatcher) normalizePython(code string) string {
	// unify line endings to a single newline style
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.ReplaceAll(code, "\r", "\n")

	tab := strings.Repeat(" ", d.config.PythonTabWidth)
	lines := strings.Split(code, "\n")

	normalized := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", tab)
		line = strings.TrimRight(line, " \t")

		if line == "" {
			blankRun++
			if blankRun > d.config.PythonMaxBlankLines {
				continue
			}
		} else {
			blankRun = 0
		}
		normalized = append(normalized, line)
	}

	out := strings.Join(normalized, "\n")
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return "\n"
	}
	return out + "\n"
}
