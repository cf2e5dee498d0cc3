package renderer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/prettydiff/internal/common/errorwrapper"
	"github.com/sourcegraph/go-diff/diff"
)

// LineKind classifies one line inside a hunk.
type LineKind int

const (
	// LineContext is an unchanged line present on both sides
	LineContext LineKind = iota
	// LineAdded is present only on the candidate side
	LineAdded
	// LineRemoved is present only on the base side
	LineRemoved
)

// Line is one rendered diff line.
type Line struct {
	Kind LineKind
	// OldNumber is the base-side line number, 0 when the line has no base side
	OldNumber int
	// NewNumber is the candidate-side line number, 0 when absent
	NewNumber int
	// Content is the line text without the diff prefix character
	Content string
	// HTML is the display form; set during the highlight/intraline passes
	HTML template.HTML
}

// Row pairs the two sides of a side-by-side view.
type Row struct {
	Left  *Line
	Right *Line
}

// Hunk is one contiguous change region with its context window.
type Hunk struct {
	Header string
	Lines  []*Line
	Rows   []Row
}

// parseHunks parses unified-diff patch text into the line model.
// Patch parsing is delegated to sourcegraph/go-diff.
func parseHunks(patch string) ([]*Hunk, error) {
	fileDiff, err := diff.ParseFileDiff([]byte(patch))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse unified diff")
	}

	hunks := make([]*Hunk, 0, len(fileDiff.Hunks))
	for _, h := range fileDiff.Hunks {
		hunk := &Hunk{
			Header: fmt.Sprintf("@@ -%d,%d +%d,%d @@",
				h.OrigStartLine, h.OrigLines, h.NewStartLine, h.NewLines),
		}

		oldNum := int(h.OrigStartLine)
		newNum := int(h.NewStartLine)
		for _, raw := range strings.Split(string(h.Body), "\n") {
			if raw == "" {
				continue
			}
			prefix, content := raw[0], raw[1:]
			switch prefix {
			case '+':
				hunk.Lines = append(hunk.Lines, &Line{Kind: LineAdded, NewNumber: newNum, Content: content})
				newNum++
			case '-':
				hunk.Lines = append(hunk.Lines, &Line{Kind: LineRemoved, OldNumber: oldNum, Content: content})
				oldNum++
			case ' ':
				hunk.Lines = append(hunk.Lines, &Line{Kind: LineContext, OldNumber: oldNum, NewNumber: newNum, Content: content})
				oldNum++
				newNum++
			}
		}

		hunks = append(hunks, hunk)
	}

	return hunks, nil
}

// buildRows pairs hunk lines into side-by-side rows: context lines span both
// columns, and a run of removals lines up with the run of additions that
// follows it.
func (h *Hunk) buildRows() {
	h.Rows = h.Rows[:0]

	i := 0
	for i < len(h.Lines) {
		line := h.Lines[i]

		if line.Kind == LineContext {
			h.Rows = append(h.Rows, Row{Left: line, Right: line})
			i++
			continue
		}

		var removed, added []*Line
		for i < len(h.Lines) && h.Lines[i].Kind == LineRemoved {
			removed = append(removed, h.Lines[i])
			i++
		}
		for i < len(h.Lines) && h.Lines[i].Kind == LineAdded {
			added = append(added, h.Lines[i])
			i++
		}

		for j := 0; j < len(removed) || j < len(added); j++ {
			row := Row{}
			if j < len(removed) {
				row.Left = removed[j]
			}
			if j < len(added) {
				row.Right = added[j]
			}
			h.Rows = append(h.Rows, row)
		}
	}
}
