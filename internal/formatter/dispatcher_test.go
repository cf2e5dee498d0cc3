package formatter

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		tag      string
		expected Language
		wantErr  bool
	}{
		{"javascript", LanguageJavaScript, false},
		{"js", LanguageJavaScript, false},
		{"JSON", LanguageJSON, false},
		{"html", LanguageHTML, false},
		{"css", LanguageCSS, false},
		{"sql", LanguageSQL, false},
		{"xml", LanguageXML, false},
		{"python", LanguagePython, false},
		{"py", LanguagePython, false},
		{"ruby", LanguageJavaScript, true},
		{"", LanguageJavaScript, true},
	}

	for _, tt := range tests {
		lang, err := ParseLanguage(tt.tag)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedLanguage, "tag %q", tt.tag)
			continue
		}
		require.NoError(t, err, "tag %q", tt.tag)
		assert.Equal(t, tt.expected, lang, "tag %q", tt.tag)
	}
}

func TestDispatcher_Format_EmptyInput(t *testing.T) {
	dispatcher, err := NewDispatcher(zerolog.Nop())
	require.NoError(t, err)

	_, err = dispatcher.Format("   \n\t ", LanguageJSON, Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDispatcher_Format_UnavailableCapability(t *testing.T) {
	dispatcher, err := NewDispatcherBuilder(zerolog.Nop()).
		WithCapability(LanguageJSON, nil).
		Build()
	require.NoError(t, err)

	_, err = dispatcher.Format(`{"a":1}`, LanguageJSON, Options{})
	assert.ErrorIs(t, err, ErrFormatterUnavailable)
}

func TestDispatcher_BestEffortFormat_RecoversFailure(t *testing.T) {
	dispatcher, err := NewDispatcher(zerolog.Nop())
	require.NoError(t, err)

	original := "a\nb\n"
	outcome := dispatcher.BestEffortFormat(original, LanguageJSON, Options{})

	assert.Equal(t, StatusUnchanged, outcome.Status)
	assert.Equal(t, original, outcome.Text)
}

func TestDispatcher_BestEffortFormat_Success(t *testing.T) {
	dispatcher, err := NewDispatcher(zerolog.Nop())
	require.NoError(t, err)

	outcome := dispatcher.BestEffortFormat(`{"a":1}`, LanguageJSON, Options{})

	assert.Equal(t, StatusFormatted, outcome.Status)
	assert.Contains(t, outcome.Text, "\"a\": 1")
}
