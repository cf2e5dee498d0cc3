package formatter

import (
	"strings"

	"github.com/rs/zerolog"
)

// FormatFunc is a capability handle: it formats code for one language.
// A nil handle in the dispatch table marks the capability as unavailable.
type FormatFunc func(code string, opts Options) (string, error)

// Dispatcher routes code to the formatting capability registered for a
// language. Routing is a table lookup so adding a language is a table edit.
type Dispatcher struct {
	logger zerolog.Logger
	config Config
	table  map[Language]FormatFunc
}

// DispatcherBuilder provides a fluent interface for creating Dispatcher
type DispatcherBuilder struct {
	logger    zerolog.Logger
	config    Config
	overrides map[Language]FormatFunc
}

// NewDispatcherBuilder creates a new builder
func NewDispatcherBuilder(logger zerolog.Logger) *DispatcherBuilder {
	return &DispatcherBuilder{
		logger:    logger.With().Str("component", "formatter").Logger(),
		config:    DefaultConfig(),
		overrides: make(map[Language]FormatFunc),
	}
}

// WithConfig sets the style configuration
func (b *DispatcherBuilder) WithConfig(cfg Config) *DispatcherBuilder {
	b.config = cfg
	return b
}

// WithCapability overrides the capability handle for one language.
// Passing nil marks the capability as unavailable.
func (b *DispatcherBuilder) WithCapability(language Language, fn FormatFunc) *DispatcherBuilder {
	b.overrides[language] = fn
	return b
}

// Build creates a new Dispatcher instance
func (b *DispatcherBuilder) Build() (*Dispatcher, error) {
	d := &Dispatcher{
		logger: b.logger,
		config: b.config,
	}
	d.table = map[Language]FormatFunc{
		LanguageJavaScript: d.formatJavaScript,
		LanguageJSON:       d.formatJSON,
		LanguageHTML:       d.formatHTML,
		LanguageCSS:        d.formatCSS,
		LanguageSQL:        d.formatSQL,
		LanguageXML:        d.formatXML,
		LanguagePython:     d.formatPython,
	}
	for language, fn := range b.overrides {
		d.table[language] = fn
	}
	return d, nil
}

// NewDispatcher creates a dispatcher with the default capability table
func NewDispatcher(logger zerolog.Logger) (*Dispatcher, error) {
	return NewDispatcherBuilder(logger).Build()
}

// Format routes code to the capability registered for the language and returns
// the formatted text. It fails with ErrEmptyInput for blank input,
// ErrUnsupportedLanguage for a language outside the fixed set, and
// ErrFormatterUnavailable when no capability handle is registered.
func (d *Dispatcher) Format(code string, language Language, opts Options) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrEmptyInput
	}

	capability, known := d.table[language]
	if !known {
		return "", ErrUnsupportedLanguage
	}
	if capability == nil {
		return "", ErrFormatterUnavailable
	}

	return capability(code, opts)
}

// ensureTrailingNewline normalizes the text to end with exactly one newline
func ensureTrailingNewline(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}
