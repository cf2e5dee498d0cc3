package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	dispatcher, err := NewDispatcher(zerolog.Nop())
	require.NoError(t, err)
	return dispatcher
}

func TestFormatJSON_Malformed(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	_, err := dispatcher.Format(`{"a": 1,}`, LanguageJSON, Options{})

	var syntaxErr *InvalidSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, LanguageJSON, syntaxErr.Language)
	assert.NotEmpty(t, syntaxErr.Reason)
}

func TestFormatJSON_Valid(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	input := `{"name":"x","items":[1,2,3],"nested":{"k":true}}`
	out, err := dispatcher.Format(input, LanguageJSON, Options{})
	require.NoError(t, err)

	// output re-parses to a structurally equal value
	var want, got interface{}
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, want, got)

	// exactly one trailing newline
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestFormatJSON_FallbackTier(t *testing.T) {
	dispatcher, err := NewDispatcherBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	// structural tier alone must be able to round-trip valid JSON
	out, err := dispatcher.reserializeJSON(`[1, 2, 3]`)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2,\n  3\n]\n", out)
}

func TestFormatJSON_FallbackSurfacesParserMessage(t *testing.T) {
	dispatcher := newTestDispatcher(t)

	_, err := dispatcher.reserializeJSON(`not json`)

	var syntaxErr *InvalidSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.NotEmpty(t, syntaxErr.Reason)
}
