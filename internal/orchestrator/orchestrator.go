package orchestrator

import (
	"context"
	"errors"
	"sync"

	"github.com/aleister1102/prettydiff/internal/buffer"
	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/aleister1102/prettydiff/internal/differ"
	"github.com/aleister1102/prettydiff/internal/formatter"
	"github.com/rs/zerolog"
)

// Session validation errors
var (
	// ErrBaseEmpty indicates the base buffer is empty while a candidate has content
	ErrBaseEmpty = errors.New("base buffer is empty")
	// ErrInsufficientInput indicates the base has content but no candidate does
	ErrInsufficientInput = errors.New("no candidate buffer has content")
	// ErrNothingToCompare indicates fewer than two buffers hold content
	ErrNothingToCompare = errors.New("nothing to compare")
)

// CompareOptions carries the per-invocation comparison settings.
type CompareOptions struct {
	Language   formatter.Language
	SQLDialect string
	ViewMode   differ.ViewMode
}

// Orchestrator coordinates the buffers of one session through the
// pre-formatting and comparison passes and aggregates the pair results.
// Invocations are serialized; each one re-reads current buffer state.
type Orchestrator struct {
	logger     zerolog.Logger
	dispatcher *formatter.Dispatcher
	engine     *differ.Engine
	mu         sync.Mutex
}

// OrchestratorBuilder provides a fluent interface for creating Orchestrator
type OrchestratorBuilder struct {
	logger     zerolog.Logger
	dispatcher *formatter.Dispatcher
	engine     *differ.Engine
}

// NewOrchestratorBuilder creates a new builder
func NewOrchestratorBuilder(logger zerolog.Logger) *OrchestratorBuilder {
	return &OrchestratorBuilder{
		logger: logger.With().Str("component", "orchestrator").Logger(),
	}
}

// WithDispatcher sets the format dispatcher
func (b *OrchestratorBuilder) WithDispatcher(dispatcher *formatter.Dispatcher) *OrchestratorBuilder {
	b.dispatcher = dispatcher
	return b
}

// WithEngine sets the diff engine
func (b *OrchestratorBuilder) WithEngine(engine *differ.Engine) *OrchestratorBuilder {
	b.engine = engine
	return b
}

// Build creates a new Orchestrator instance
func (b *OrchestratorBuilder) Build() (*Orchestrator, error) {
	if b.dispatcher == nil {
		return nil, errorwrapper.NewValidationError("dispatcher", b.dispatcher, "format dispatcher cannot be nil")
	}
	if b.engine == nil {
		return nil, errorwrapper.NewValidationError("engine", b.engine, "diff engine cannot be nil")
	}

	return &Orchestrator{
		logger:     b.logger,
		dispatcher: b.dispatcher,
		engine:     b.engine,
	}, nil
}

// RunComparison executes one comparison cycle over the session: validate,
// pre-format every non-empty buffer in place, diff the base against each
// non-empty candidate, and aggregate the outcomes.
func (o *Orchestrator) RunComparison(ctx context.Context, session *buffer.Session, opts CompareOptions) (*ComparisonSummary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.validateSession(session); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o.preformatBuffers(session, opts)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return o.compareBuffers(session, opts)
}

// validateSession enforces the session invariants before any work starts
func (o *Orchestrator) validateSession(session *buffer.Session) error {
	baseHasContent := session.Buffer(session.Base()).HasContent()

	candidateHasContent := false
	for _, slot := range session.Candidates() {
		if session.Buffer(slot).HasContent() {
			candidateHasContent = true
			break
		}
	}

	switch {
	case !baseHasContent && candidateHasContent:
		return ErrBaseEmpty
	case baseHasContent && !candidateHasContent:
		return ErrInsufficientInput
	case len(session.WithContent()) < 2:
		return ErrNothingToCompare
	}
	return nil
}

// preformatBuffers runs the best-effort formatting pass. A successful format
// replaces the stored buffer content; this mutation is persistent and visible
// to the user, not a comparison-local transform. Failures never block.
func (o *Orchestrator) preformatBuffers(session *buffer.Session, opts CompareOptions) {
	formatOpts := formatter.Options{SQLDialect: opts.SQLDialect}

	for _, slot := range session.WithContent() {
		buf := session.Buffer(slot)
		outcome := o.dispatcher.BestEffortFormat(buf.Content, opts.Language, formatOpts)
		if outcome.Status == formatter.StatusFormatted {
			session.SetContent(slot, outcome.Text)
			o.logger.Debug().
				Str("slot", slot.String()).
				Str("language", opts.Language.String()).
				Msg("Buffer content replaced with formatted text")
		}
	}
}

// compareBuffers diffs the base against each non-empty candidate in fixed
// slot order and aggregates the pair results
func (o *Orchestrator) compareBuffers(session *buffer.Session, opts CompareOptions) (*ComparisonSummary, error) {
	base := session.Buffer(session.Base())
	baseLabel := bufferLabel(session, session.Base())

	summaryBuilder := NewComparisonSummaryBuilder(session.Base())

	for _, slot := range session.Candidates() {
		candidate := session.Buffer(slot)
		if !candidate.HasContent() {
			continue
		}

		meta := differ.CompareMeta{
			BaseLabel:  baseLabel,
			OtherLabel: bufferLabel(session, slot),
			ViewMode:   opts.ViewMode,
		}

		result, err := o.engine.Diff(base.Content, candidate.Content, meta)
		if err != nil {
			// no partial results are claimed once a comparison fails
			return nil, errorwrapper.WrapError(err, "comparison against buffer "+slot.String()+" failed")
		}
		summaryBuilder.AddResult(result)
	}

	summary := summaryBuilder.Build()
	o.logger.Info().
		Str("status", summary.Status.String()).
		Int("comparisons", summary.Comparisons).
		Str("base", session.Base().String()).
		Msg("Comparison cycle finished")

	return summary, nil
}

// bufferLabel returns the buffer's display title, falling back to the slot tag
func bufferLabel(session *buffer.Session, slot buffer.Slot) string {
	if title := session.Buffer(slot).Title; title != "" {
		return title
	}
	return "buffer-" + slot.String()
}
