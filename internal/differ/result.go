package differ

import "html/template"

// Outcome classifies one (base, candidate) comparison.
type Outcome int

const (
	// OutcomeIdentical means the normalized texts are exactly equal
	OutcomeIdentical Outcome = iota
	// OutcomeChanged means the texts differ and a rendered payload is attached
	OutcomeChanged
)

// String returns the outcome tag
func (o Outcome) String() string {
	if o == OutcomeChanged {
		return "changed"
	}
	return "identical"
}

// RenderedDiff is the display payload produced by the rendering capability.
type RenderedDiff struct {
	HTML      template.HTML
	Additions int
	Deletions int
}

// Result holds the outcome of one pairwise comparison.
type Result struct {
	Outcome    Outcome
	BaseLabel  string
	OtherLabel string
	// Patch is the unified diff text fed to the renderer; empty when identical
	Patch string
	// Rendered is present only when Outcome is OutcomeChanged
	Rendered *RenderedDiff
}

// IsIdentical reports whether the pair compared equal
func (r *Result) IsIdentical() bool {
	return r.Outcome == OutcomeIdentical
}

// ResultBuilder builds Result objects
type ResultBuilder struct {
	result Result
}

// NewResultBuilder creates a new result builder with the pair labels set
func NewResultBuilder(baseLabel, otherLabel string) *ResultBuilder {
	return &ResultBuilder{
		result: Result{
			BaseLabel:  baseLabel,
			OtherLabel: otherLabel,
		},
	}
}

// Identical marks the result as identical
func (rb *ResultBuilder) Identical() *ResultBuilder {
	rb.result.Outcome = OutcomeIdentical
	return rb
}

// Changed marks the result as changed with its patch and rendered payload
func (rb *ResultBuilder) Changed(patch string, rendered *RenderedDiff) *ResultBuilder {
	rb.result.Outcome = OutcomeChanged
	rb.result.Patch = patch
	rb.result.Rendered = rendered
	return rb
}

// Build creates the final Result
func (rb *ResultBuilder) Build() *Result {
	return &rb.result
}
