package differ

import (
	"errors"
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// Diff capability errors
var (
	// ErrDifferUnavailable indicates the diff computation capability is absent
	ErrDifferUnavailable = errors.New("differ unavailable")
	// ErrRendererUnavailable indicates the diff rendering capability is absent
	ErrRendererUnavailable = errors.New("renderer unavailable")
)

// CompareMeta carries the labels and layout for one comparison.
type CompareMeta struct {
	BaseLabel  string
	OtherLabel string
	ViewMode   ViewMode
}

// Engine wraps the external diff computation and rendering capabilities with
// pre/post normalization and a one-result-per-comparison contract.
type Engine struct {
	logger   zerolog.Logger
	config   DiffConfig
	computer PatchComputer
	renderer PatchRenderer
}

// EngineBuilder provides a fluent interface for creating Engine
type EngineBuilder struct {
	logger   zerolog.Logger
	config   DiffConfig
	computer PatchComputer
	renderer PatchRenderer
}

// NewEngineBuilder creates a new builder with the default patch computer
func NewEngineBuilder(logger zerolog.Logger) *EngineBuilder {
	return &EngineBuilder{
		logger:   logger.With().Str("component", "differ").Logger(),
		config:   DefaultDiffConfig(),
		computer: NewUnifiedPatchComputer(),
	}
}

// WithDiffConfig sets the diff configuration
func (b *EngineBuilder) WithDiffConfig(cfg DiffConfig) *EngineBuilder {
	b.config = cfg
	return b
}

// WithPatchComputer sets the diff computation capability
func (b *EngineBuilder) WithPatchComputer(computer PatchComputer) *EngineBuilder {
	b.computer = computer
	return b
}

// WithPatchRenderer sets the rendering capability
func (b *EngineBuilder) WithPatchRenderer(renderer PatchRenderer) *EngineBuilder {
	b.renderer = renderer
	return b
}

// Build creates a new Engine instance
func (b *EngineBuilder) Build() (*Engine, error) {
	if b.config.ContextLines < 0 {
		return nil, errorwrapper.NewValidationError("context_lines", b.config.ContextLines,
			"context lines cannot be negative")
	}

	return &Engine{
		logger:   b.logger,
		config:   b.config,
		computer: b.computer,
		renderer: b.renderer,
	}, nil
}

// Diff compares base against other and returns exactly one Result.
//
// Classification: exact equality or two blank texts are identical; otherwise
// a trailing newline is appended to each side so line boundaries are
// well-defined, the unified diff is computed, and the patch is rendered.
func (e *Engine) Diff(base, other string, meta CompareMeta) (*Result, error) {
	builder := NewResultBuilder(meta.BaseLabel, meta.OtherLabel)

	if base == other {
		return builder.Identical().Build(), nil
	}
	if strings.TrimSpace(base) == "" && strings.TrimSpace(other) == "" {
		return builder.Identical().Build(), nil
	}

	if e.computer == nil {
		return nil, ErrDifferUnavailable
	}
	if e.renderer == nil {
		return nil, ErrRendererUnavailable
	}

	normalizedBase := ensureTrailingNewline(base)
	normalizedOther := ensureTrailingNewline(other)
	if normalizedBase == normalizedOther {
		return builder.Identical().Build(), nil
	}

	patch, err := e.computer.UnifiedPatch(normalizedBase, normalizedOther,
		meta.BaseLabel, meta.OtherLabel, e.config.ContextLines)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "diff computation failed")
	}

	rendered, err := e.renderer.RenderPatch(patch, meta.ViewMode)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "diff rendering failed")
	}

	e.logger.Debug().
		Str("base", meta.BaseLabel).
		Str("other", meta.OtherLabel).
		Int("additions", rendered.Additions).
		Int("deletions", rendered.Deletions).
		Msg("Computed diff")

	return builder.Changed(patch, rendered).Build(), nil
}

// ensureTrailingNewline appends a newline if the text does not end with one
func ensureTrailingNewline(text string) string {
	if strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
