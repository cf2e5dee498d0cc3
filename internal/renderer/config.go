package renderer

import (
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
)

// ColorScheme selects the highlight palette from the active UI theme.
type ColorScheme int

const (
	// SchemeLight uses the light palette
	SchemeLight ColorScheme = iota
	// SchemeDark uses the dark palette
	SchemeDark
)

// String returns the scheme tag
func (cs ColorScheme) String() string {
	if cs == SchemeDark {
		return "dark"
	}
	return "light"
}

// ParseColorScheme converts a theme tag into a ColorScheme
func ParseColorScheme(tag string) (ColorScheme, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "light":
		return SchemeLight, nil
	case "dark":
		return SchemeDark, nil
	default:
		return SchemeLight, errorwrapper.NewValidationError("theme", tag, "theme must be dark or light")
	}
}

// chromaStyle maps the scheme onto a chroma style name
func (cs ColorScheme) chromaStyle() string {
	if cs == SchemeDark {
		return "github-dark"
	}
	return "github"
}

// RenderConfig holds configuration for diff rendering.
// The matching granularity is fixed at line level and the file list is never
// drawn; both are part of the rendering contract rather than options.
type RenderConfig struct {
	// Language tag used to pick the syntax highlighting lexer
	Language string
	// Scheme selects the highlight palette
	Scheme ColorScheme
	// Highlight toggles syntax highlighting of context lines
	Highlight bool
}

// DefaultRenderConfig returns default configuration
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Scheme:    SchemeLight,
		Highlight: true,
	}
}
