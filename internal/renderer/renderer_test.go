package renderer

import (
	"strings"
	"testing"

	"github.com/aleister1102/prettydiff/internal/differ"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePatch = "--- base.txt\n" +
	"+++ other.txt\n" +
	"@@ -1,3 +1,3 @@\n" +
	" ctx\n" +
	"-old line\n" +
	"+new line\n" +
	" tail\n"

func newTestRenderer(t *testing.T, cfg RenderConfig) *HTMLRenderer {
	t.Helper()
	renderer, err := NewHTMLRenderer(zerolog.Nop(), cfg)
	require.NoError(t, err)
	return renderer
}

func TestRenderPatch_LineByLine(t *testing.T) {
	renderer := newTestRenderer(t, DefaultRenderConfig())

	rendered, err := renderer.RenderPatch(samplePatch, differ.ViewLineByLine)
	require.NoError(t, err)

	html := string(rendered.HTML)
	assert.Contains(t, html, "pd-unified")
	assert.Contains(t, html, "theme-light")
	assert.Contains(t, html, "@@ -1,3 +1,3 @@")
	assert.Contains(t, html, "line-del")
	assert.Contains(t, html, "line-add")
	assert.Equal(t, 1, rendered.Additions)
	assert.Equal(t, 1, rendered.Deletions)
}

func TestRenderPatch_SideBySide(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.Scheme = SchemeDark
	renderer := newTestRenderer(t, cfg)

	rendered, err := renderer.RenderPatch(samplePatch, differ.ViewSideBySide)
	require.NoError(t, err)

	html := string(rendered.HTML)
	assert.Contains(t, html, "pd-split")
	assert.Contains(t, html, "theme-dark")
}

func TestRenderPatch_IntralineMarks(t *testing.T) {
	renderer := newTestRenderer(t, DefaultRenderConfig())

	rendered, err := renderer.RenderPatch(samplePatch, differ.ViewLineByLine)
	require.NoError(t, err)

	// "old line" vs "new line": the shared " line" stays unmarked while the
	// replaced words carry del/ins marks
	html := string(rendered.HTML)
	assert.Contains(t, html, "<del>")
	assert.Contains(t, html, "<ins>")
}

func TestRenderPatch_EscapesContent(t *testing.T) {
	renderer := newTestRenderer(t, RenderConfig{Scheme: SchemeLight, Highlight: false})

	patch := "--- a\n+++ b\n@@ -1,1 +1,1 @@\n-<script>alert(1)</script>\n+safe\n"
	rendered, err := renderer.RenderPatch(patch, differ.ViewLineByLine)
	require.NoError(t, err)

	assert.NotContains(t, string(rendered.HTML), "<script>")
}

func TestRenderPatch_EmptyPatch(t *testing.T) {
	renderer := newTestRenderer(t, DefaultRenderConfig())

	rendered, err := renderer.RenderPatch("", differ.ViewLineByLine)
	require.NoError(t, err)
	assert.Empty(t, string(rendered.HTML))
	assert.Zero(t, rendered.Additions)
}

func TestRenderPatch_HighlightedLanguage(t *testing.T) {
	cfg := RenderConfig{Language: "json", Scheme: SchemeLight, Highlight: true}
	renderer := newTestRenderer(t, cfg)

	patch := "--- a\n+++ b\n@@ -1,1 +1,2 @@\n {\"k\": 1}\n+{\"j\": 2}\n"
	rendered, err := renderer.RenderPatch(patch, differ.ViewLineByLine)
	require.NoError(t, err)

	// context lines pass through chroma, which emits inline styles
	assert.Contains(t, string(rendered.HTML), "style=")
}

func TestBuildRows_PairsReplacements(t *testing.T) {
	hunk := &Hunk{
		Lines: []*Line{
			{Kind: LineContext, OldNumber: 1, NewNumber: 1, Content: "ctx"},
			{Kind: LineRemoved, OldNumber: 2, Content: "a"},
			{Kind: LineRemoved, OldNumber: 3, Content: "b"},
			{Kind: LineAdded, NewNumber: 2, Content: "c"},
		},
	}

	hunk.buildRows()

	require.Len(t, hunk.Rows, 3)
	assert.Equal(t, hunk.Lines[0], hunk.Rows[0].Left)
	assert.Equal(t, hunk.Lines[0], hunk.Rows[0].Right)
	assert.Equal(t, "a", hunk.Rows[1].Left.Content)
	assert.Equal(t, "c", hunk.Rows[1].Right.Content)
	assert.Equal(t, "b", hunk.Rows[2].Left.Content)
	assert.Nil(t, hunk.Rows[2].Right)
}

func TestParseHunks_LineNumbers(t *testing.T) {
	hunks, err := parseHunks(samplePatch)
	require.NoError(t, err)
	require.Len(t, hunks, 1)

	lines := hunks[0].Lines
	require.Len(t, lines, 4)
	assert.Equal(t, LineContext, lines[0].Kind)
	assert.Equal(t, 1, lines[0].OldNumber)
	assert.Equal(t, 1, lines[0].NewNumber)
	assert.Equal(t, LineRemoved, lines[1].Kind)
	assert.Equal(t, 2, lines[1].OldNumber)
	assert.Equal(t, LineAdded, lines[2].Kind)
	assert.Equal(t, 2, lines[2].NewNumber)
	assert.Equal(t, "tail", strings.TrimSpace(lines[3].Content))
}
