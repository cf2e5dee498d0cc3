package renderer

import (
	"html/template"
	"strconv"
)

// GetRenderTemplateFunctions returns functions for the diff fragment template
func GetRenderTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"kindClass": func(kind LineKind) string {
			switch kind {
			case LineAdded:
				return "line-add"
			case LineRemoved:
				return "line-del"
			default:
				return "line-ctx"
			}
		},
		"lineNumber": func(n int) string {
			if n == 0 {
				return ""
			}
			return strconv.Itoa(n)
		},
	}
}
