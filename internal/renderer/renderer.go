package renderer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/aleister1102/prettydiff/internal/differ"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLRenderer turns unified-diff patch text into an HTML display payload.
// The file list is never drawn and matching granularity is line level.
type HTMLRenderer struct {
	logger    zerolog.Logger
	config    RenderConfig
	template  *template.Template
	dmp       *diffmatchpatch.DiffMatchPatch
	lexer     chroma.Lexer
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewHTMLRenderer creates a renderer for one comparison configuration
func NewHTMLRenderer(logger zerolog.Logger, cfg RenderConfig) (*HTMLRenderer, error) {
	tmpl, err := template.New("").Funcs(GetRenderTemplateFunctions()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse diff template")
	}

	lexer, formatter, style := newHighlighter(cfg)

	return &HTMLRenderer{
		logger:    logger.With().Str("component", "renderer").Logger(),
		config:    cfg,
		template:  tmpl,
		dmp:       diffmatchpatch.New(),
		lexer:     lexer,
		formatter: formatter,
		style:     style,
	}, nil
}

// templateData feeds the diff fragment template
type templateData struct {
	SideBySide  bool
	SchemeClass string
	Hunks       []*Hunk
}

// RenderPatch implements differ.PatchRenderer
func (r *HTMLRenderer) RenderPatch(patch string, mode differ.ViewMode) (*differ.RenderedDiff, error) {
	if patch == "" {
		return &differ.RenderedDiff{}, nil
	}

	hunks, err := parseHunks(patch)
	if err != nil {
		return nil, err
	}

	r.markIntraline(hunks)

	additions, deletions := 0, 0
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdded:
				additions++
			case LineRemoved:
				deletions++
			}
			if line.HTML == "" {
				line.HTML = r.highlightLine(line.Content)
			}
		}
		if mode == differ.ViewSideBySide {
			hunk.buildRows()
		}
	}

	data := templateData{
		SideBySide:  mode == differ.ViewSideBySide,
		SchemeClass: "theme-" + r.config.Scheme.String(),
		Hunks:       hunks,
	}

	var buf bytes.Buffer
	if err := r.template.ExecuteTemplate(&buf, "diff.html.tmpl", data); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to execute diff template")
	}

	r.logger.Debug().
		Int("hunks", len(hunks)).
		Int("additions", additions).
		Int("deletions", deletions).
		Str("view_mode", mode.String()).
		Msg("Rendered diff payload")

	return &differ.RenderedDiff{
		HTML:      template.HTML(buf.String()),
		Additions: additions,
		Deletions: deletions,
	}, nil
}
