package formatter

import (
	"errors"
	"fmt"
)

// Formatting error types
var (
	// ErrUnsupportedLanguage indicates the language tag is not in the fixed set
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrEmptyInput indicates the input is blank after trimming
	ErrEmptyInput = errors.New("empty input")
	// ErrFormatterUnavailable indicates the required capability is not wired into the dispatch table
	ErrFormatterUnavailable = errors.New("formatter unavailable")
)

// InvalidSyntaxError reports input rejected by a language-specific parser.
type InvalidSyntaxError struct {
	Language Language
	Reason   string
}

func (e *InvalidSyntaxError) Error() string {
	return fmt.Sprintf("invalid %s syntax: %s", e.Language, e.Reason)
}

// NewInvalidSyntaxError creates a new invalid syntax error
func NewInvalidSyntaxError(language Language, reason string) *InvalidSyntaxError {
	return &InvalidSyntaxError{
		Language: language,
		Reason:   reason,
	}
}
