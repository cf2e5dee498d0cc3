package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHTML_IndentsNestedMarkup(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	out, err := dispatcher.Format("<div><p>hi</p></div>", LanguageHTML, Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "<div>")
	assert.Contains(t, out, "  <p>")
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestFormatXML_IndentsNestedMarkup(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	out, err := dispatcher.Format("<a><b>x</b></a>", LanguageXML, Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "  <b>x</b>")
	assert.True(t, strings.HasSuffix(out, "</a>\n"))
	assert.NotContains(t, out, "\r")
}

func TestFormatCSS_RewritesParsedTree(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	out, err := dispatcher.Format("a{color:red;background:blue}", LanguageCSS, Options{})
	require.NoError(t, err)

	expected := "a {\n  color: red;\n  background: blue;\n}\n"
	assert.Equal(t, expected, out)
}

func TestFormatCSS_NestedAtRule(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	out, err := dispatcher.Format("@media screen{a{color:red}}", LanguageCSS, Options{})
	require.NoError(t, err)

	expected := "@media screen {\n  a {\n    color: red;\n  }\n}\n"
	assert.Equal(t, expected, out)
}

func TestFormatJavaScript_Beautifies(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	out, err := dispatcher.Format("var a={b:1};", LanguageJavaScript, Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "var a = {")
	assert.Contains(t, out, "  b: 1")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
