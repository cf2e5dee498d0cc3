package differ

// PatchComputer is the external two-file diff computation capability.
type PatchComputer interface {
	// UnifiedPatch computes unified-diff text for two texts with the given
	// file header labels and context-line count.
	UnifiedPatch(base, other, baseLabel, otherLabel string, contextLines int) (string, error)
}

// PatchRenderer is the external diff-patch rendering capability.
type PatchRenderer interface {
	// RenderPatch turns unified-diff text into a display payload
	RenderPatch(patch string, mode ViewMode) (*RenderedDiff, error)
}
