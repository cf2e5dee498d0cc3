package formatter

import "strings"

// Language enumerates the source languages the dispatcher can route.
type Language int

const (
	// LanguageJavaScript routes to the generic beautifier capability
	LanguageJavaScript Language = iota
	// LanguageJSON routes to the two-tier JSON pretty-printer
	LanguageJSON
	// LanguageHTML routes to the markup beautifier
	LanguageHTML
	// LanguageCSS routes to the stylesheet printer
	LanguageCSS
	// LanguageSQL routes to the dialect-aware SQL formatter
	LanguageSQL
	// LanguageXML routes to the markup beautifier
	LanguageXML
	// LanguagePython routes to the local normalization pipeline
	LanguagePython
)

// String returns the language tag
func (l Language) String() string {
	switch l {
	case LanguageJavaScript:
		return "javascript"
	case LanguageJSON:
		return "json"
	case LanguageHTML:
		return "html"
	case LanguageCSS:
		return "css"
	case LanguageSQL:
		return "sql"
	case LanguageXML:
		return "xml"
	case LanguagePython:
		return "python"
	default:
		return "unknown"
	}
}

// ParseLanguage converts a language tag into a Language.
// Unknown tags fail with ErrUnsupportedLanguage.
func ParseLanguage(tag string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "javascript", "js":
		return LanguageJavaScript, nil
	case "json":
		return LanguageJSON, nil
	case "html":
		return LanguageHTML, nil
	case "css":
		return LanguageCSS, nil
	case "sql":
		return LanguageSQL, nil
	case "xml":
		return LanguageXML, nil
	case "python", "py":
		return LanguagePython, nil
	default:
		return LanguageJavaScript, ErrUnsupportedLanguage
	}
}

// SupportedLanguages returns all languages in their fixed enumeration order
func SupportedLanguages() []Language {
	return []Language{
		LanguageJavaScript,
		LanguageJSON,
		LanguageHTML,
		LanguageCSS,
		LanguageSQL,
		LanguageXML,
		LanguagePython,
	}
}
