package editor

import (
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
)

// MarkSelection tags the characters after the current selection boundaries
// with transient marker attributes so the selection can be recovered after
// a wholesale content replacement. A boundary whose following character
// would fall outside the document is left unmarked; RestoreSelection
// defaults it to the document end.
//
// Markers bypass history: they describe view state, not content.
func (e *Editor) MarkSelection() {
	r := e.selection.Range().Clamp(e.doc.Len())
	n := e.doc.Len()
	if r.Start+1 < n {
		e.doc.ApplyAttributes(document.Range{Start: r.Start, End: r.Start + 1}, func(a document.AttributeSet) document.AttributeSet {
			return a.WithMarker(document.MarkerSelectionStart)
		})
	}
	if r.End+1 < n {
		e.doc.ApplyAttributes(document.Range{Start: r.End, End: r.End + 1}, func(a document.AttributeSet) document.AttributeSet {
			return a.WithMarker(document.MarkerSelectionEnd)
		})
	}
}

// RestoreSelection scans the document for selection markers, strips every
// marker, and reinstates the selection they describe. When several
// positions carry the same marker the last one wins. A missing start or
// end marker defaults to the document end, so a fully unmarked document
// yields an empty selection at the end. The restored selection is always
// published, even when it equals the previous one.
func (e *Editor) RestoreSelection() {
	n := e.doc.Len()
	start, end := n, n
	for i := 0; i < n; i++ {
		m := e.doc.AttributesAt(i).Markers
		if m.Has(document.MarkerSelectionStart) {
			start = i
		}
		if m.Has(document.MarkerSelectionEnd) {
			end = i
		}
	}
	if n > 0 {
		e.doc.ApplyAttributes(e.doc.FullRange(), document.AttributeSet.WithoutMarkers)
	}
	if end < start {
		end = start
	}

	prev := e.selection
	e.selection = FromRange(document.Range{Start: start, End: end}).Clamp(n)
	e.refreshPending()
	e.publish(event.SelectionChanged{
		Selection: e.selection.Range(),
		Previous:  prev.Range(),
	})
}
