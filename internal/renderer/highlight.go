package renderer

import (
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightLexers maps language tags onto chroma lexer names
var highlightLexers = map[string]string{
	"javascript": "javascript",
	"json":       "json",
	"html":       "html",
	"css":        "css",
	"sql":        "sql",
	"xml":        "xml",
	"python":     "python",
}

// highlightLine highlights one line of code with chroma using inline styles.
// Any highlighting failure degrades to plain escaped text.
func (r *HTMLRenderer) highlightLine(content string) template.HTML {
	if !r.config.Highlight || r.lexer == nil {
		return template.HTML(template.HTMLEscapeString(content))
	}

	iterator, err := r.lexer.Tokenise(nil, content)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}

	var sb strings.Builder
	if err := r.formatter.Format(&sb, r.style, iterator); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	return template.HTML(sb.String())
}

// newHighlighter resolves the chroma lexer, formatter and style for a config
func newHighlighter(cfg RenderConfig) (chroma.Lexer, *html.Formatter, *chroma.Style) {
	var lexer chroma.Lexer
	if name, ok := highlightLexers[strings.ToLower(cfg.Language)]; ok {
		lexer = lexers.Get(name)
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}

	formatter := html.New(
		html.WithClasses(false),
		html.PreventSurroundingPre(true),
	)

	style := styles.Get(cfg.Scheme.chromaStyle())
	if style == nil {
		style = styles.Fallback
	}

	return lexer, formatter, style
}
