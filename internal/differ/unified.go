package differ

import (
	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedPatchComputer computes unified diffs through go-difflib.
type UnifiedPatchComputer struct{}

// NewUnifiedPatchComputer creates a new unified patch computer
func NewUnifiedPatchComputer() *UnifiedPatchComputer {
	return &UnifiedPatchComputer{}
}

// UnifiedPatch computes the unified-diff text for base vs other
func (upc *UnifiedPatchComputer) UnifiedPatch(base, other, baseLabel, otherLabel string, contextLines int) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(base),
		B:        difflib.SplitLines(other),
		FromFile: baseLabel,
		ToFile:   otherLabel,
		Context:  contextLines,
	}

	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to compute unified diff")
	}
	return patch, nil
}
