package differ

import (
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
)

// DiffConfig holds configuration for diff computation
type DiffConfig struct {
	// ContextLines is the unified-diff context window
	ContextLines int
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		ContextLines: 3,
	}
}

// ViewMode selects how a rendered diff is laid out.
type ViewMode int

const (
	// ViewLineByLine renders one unified column
	ViewLineByLine ViewMode = iota
	// ViewSideBySide renders base and candidate columns
	ViewSideBySide
)

// String returns the view mode tag
func (vm ViewMode) String() string {
	switch vm {
	case ViewSideBySide:
		return "side-by-side"
	default:
		return "line-by-line"
	}
}

// ParseViewMode converts a view mode tag into a ViewMode
func ParseViewMode(tag string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "line-by-line", "line":
		return ViewLineByLine, nil
	case "side-by-side", "side":
		return ViewSideBySide, nil
	default:
		return ViewLineByLine, errorwrapper.NewValidationError("view_mode", tag,
			"view mode must be line-by-line or side-by-side")
	}
}
