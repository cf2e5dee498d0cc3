package orchestrator

import (
	"github.com/aleister1102/prettydiff/internal/buffer"
	"github.com/aleister1102/prettydiff/internal/differ"
)

// ComparisonSummary aggregates the pair results of one comparison cycle.
// Status is identical iff every collected pair result is identical.
type ComparisonSummary struct {
	Status      differ.Outcome
	Comparisons int
	BaseSlot    buffer.Slot
	Results     []*differ.Result
}

// ComparisonSummaryBuilder builds ComparisonSummary objects
type ComparisonSummaryBuilder struct {
	summary ComparisonSummary
}

// NewComparisonSummaryBuilder creates a new summary builder
func NewComparisonSummaryBuilder(baseSlot buffer.Slot) *ComparisonSummaryBuilder {
	return &ComparisonSummaryBuilder{
		summary: ComparisonSummary{
			Status:   differ.OutcomeIdentical,
			BaseSlot: baseSlot,
		},
	}
}

// AddResult collects one pair result, in comparison order
func (sb *ComparisonSummaryBuilder) AddResult(result *differ.Result) *ComparisonSummaryBuilder {
	sb.summary.Results = append(sb.summary.Results, result)
	sb.summary.Comparisons++
	if !result.IsIdentical() {
		sb.summary.Status = differ.OutcomeChanged
	}
	return sb
}

// Build creates the final ComparisonSummary
func (sb *ComparisonSummaryBuilder) Build() *ComparisonSummary {
	return &sb.summary
}
