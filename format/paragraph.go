package format

import (
	"github.com/dshills/richtext/document"
)

// paragraphToggler is the common surface of paragraph-scoped formatters.
// Toggling decides direction from presence anywhere in the target range and
// then applies or removes the style on every intersected paragraph.
type paragraphToggler interface {
	// PresentIn reports whether the style is present on any paragraph
	// intersecting the range.
	PresentIn(doc *document.Document, r document.Range) bool

	apply(doc *document.Document, r document.Range) (document.Range, []document.Change)
	remove(doc *document.Document, r document.Range) (document.Range, []document.Change)
}

// toggleParagraphStyle expands an empty selection to the enclosing line,
// toggles the style over the intersected paragraphs, and returns the
// adjusted selection plus the recorded changes.
//
// For an empty selection the caret shifts by the length difference between
// the effective range after the toggle and the range the toggle was applied
// to; for a non-empty selection the result is the full effective range.
func toggleParagraphStyle(doc *document.Document, sel document.Range, f paragraphToggler) (document.Range, []document.Change) {
	applied := sel
	if sel.IsEmpty() {
		line, ok := doc.LineRangeAt(sel.Start)
		if !ok {
			return sel, nil
		}
		applied = line
	} else {
		applied = applied.Clamp(doc.Len())
	}

	var effective document.Range
	var changes []document.Change
	if f.PresentIn(doc, applied) {
		effective, changes = f.remove(doc, applied)
	} else {
		effective, changes = f.apply(doc, applied)
	}

	if sel.IsEmpty() {
		delta := effective.Len() - applied.Len()
		return document.PointRange(sel.Start + delta), changes
	}
	return effective, changes
}
