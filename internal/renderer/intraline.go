package renderer

import (
	"html/template"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// markIntraline sets the HTML of paired removed/added lines with character
// level change marks. A removed run followed by an added run of equal position
// is treated as a replacement pair; the pairwise diff is delegated to
// diffmatchpatch with semantic cleanup.
func (r *HTMLRenderer) markIntraline(hunks []*Hunk) {
	for _, hunk := range hunks {
		i := 0
		for i < len(hunk.Lines) {
			if hunk.Lines[i].Kind == LineContext {
				i++
				continue
			}

			var removed, added []*Line
			for i < len(hunk.Lines) && hunk.Lines[i].Kind == LineRemoved {
				removed = append(removed, hunk.Lines[i])
				i++
			}
			for i < len(hunk.Lines) && hunk.Lines[i].Kind == LineAdded {
				added = append(added, hunk.Lines[i])
				i++
			}

			for j := 0; j < len(removed) && j < len(added); j++ {
				r.markPair(removed[j], added[j])
			}
		}
	}
}

// markPair computes the character diff for one replaced line pair
func (r *HTMLRenderer) markPair(removed, added *Line) {
	diffs := r.dmp.DiffMain(removed.Content, added.Content, false)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	removed.HTML = renderSide(diffs, diffmatchpatch.DiffDelete)
	added.HTML = renderSide(diffs, diffmatchpatch.DiffInsert)
}

// renderSide builds the HTML for one side of a replacement pair, wrapping the
// segments that side does not share with the other in del/ins marks
func renderSide(diffs []diffmatchpatch.Diff, changeOp diffmatchpatch.Operation) template.HTML {
	var sb strings.Builder
	for _, d := range diffs {
		escaped := template.HTMLEscapeString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(escaped)
		case changeOp:
			if changeOp == diffmatchpatch.DiffDelete {
				sb.WriteString(`<del>` + escaped + `</del>`)
			} else {
				sb.WriteString(`<ins>` + escaped + `</ins>`)
			}
		}
	}
	return template.HTML(sb.String())
}
