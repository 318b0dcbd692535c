package format

import "github.com/dshills/richtext/document"

// Inspector answers read-only queries about which styles hold over a range,
// at a point, or for the pending insertion. Inspections have no side effects
// and are total: out-of-range indices clamp rather than fail.
type Inspector struct {
	doc     *document.Document
	pending *Pending
}

// NewInspector creates an inspector over the given document and pending
// style.
func NewInspector(doc *document.Document, pending *Pending) *Inspector {
	return &Inspector{doc: doc, pending: pending}
}

// IdentifiersSpanning returns the identifiers whose attribute span wholly
// contains the given non-empty range. An empty range delegates to
// IdentifiersAt. Blockquote is deliberately absent from this query: it has
// no meaningful inline-span notion. Point queries report it instead.
func (in *Inspector) IdentifiersSpanning(r document.Range) Set {
	r = r.Clamp(in.doc.Len())
	if r.IsEmpty() {
		return in.IdentifiersAt(r.Start)
	}

	ids := make(Set)
	attrs := in.doc.AttributesIn(r)

	if spanAll(attrs, func(a document.AttributeSet) bool { return a.HasTrait(document.TraitBold) }) {
		ids.Add(Bold)
	}
	if spanAll(attrs, func(a document.AttributeSet) bool { return a.HasTrait(document.TraitItalic) }) {
		ids.Add(Italic)
	}
	if spanAll(attrs, func(a document.AttributeSet) bool { return a.Underline == document.LineStyleSingle }) {
		ids.Add(Underline)
	}
	if spanAll(attrs, func(a document.AttributeSet) bool { return a.Strikethrough == document.LineStyleSingle }) {
		ids.Add(Strikethrough)
	}
	if linkSpans(attrs) {
		ids.Add(Link)
	}

	// Paragraph-scoped styles go through the formatter predicates; their
	// presence is paragraph-relative, not per-character.
	if (ListFormatter{Kind: document.ListOrdered}).PresentIn(in.doc, r) {
		ids.Add(OrderedList)
	}
	if (ListFormatter{Kind: document.ListUnordered}).PresentIn(in.doc, r) {
		ids.Add(UnorderedList)
	}

	return ids
}

// IdentifiersAt returns the identifiers present at the character referenced
// by the given caret index. The caret maps to the character to its left:
// the index clamps to [0, length-1] and then steps back one position,
// floored at 0. Blockquote is included here.
func (in *Inspector) IdentifiersAt(index int) Set {
	i := in.adjustedIndex(index)
	ids := make(Set)

	attrs := in.doc.AttributesAt(i)
	if attrs.HasTrait(document.TraitBold) {
		ids.Add(Bold)
	}
	if attrs.HasTrait(document.TraitItalic) {
		ids.Add(Italic)
	}
	if attrs.Underline == document.LineStyleSingle {
		ids.Add(Underline)
	}
	if attrs.Strikethrough == document.LineStyleSingle {
		ids.Add(Strikethrough)
	}
	if attrs.Link != nil {
		ids.Add(Link)
	}

	if (ListFormatter{Kind: document.ListOrdered}).PresentAt(in.doc, i) {
		ids.Add(OrderedList)
	}
	if (ListFormatter{Kind: document.ListUnordered}).PresentAt(in.doc, i) {
		ids.Add(UnorderedList)
	}
	if (BlockquoteFormatter{}).PresentAt(in.doc, i) {
		ids.Add(Blockquote)
	}

	return ids
}

// IdentifiersForPendingInsertion returns the identifiers implied by the
// pending-insertion style.
func (in *Inspector) IdentifiersForPendingInsertion() Set {
	return in.pending.Identifiers()
}

// adjustedIndex maps a caret index to the character to its left: clamp to
// [0, length-1], then step back one more position, floored at 0.
func (in *Inspector) adjustedIndex(index int) int {
	i := in.doc.ClampIndex(index)
	if i > 0 {
		i--
	}
	return i
}

// spanAll returns true if the predicate holds at every position.
func spanAll(attrs []document.AttributeSet, pred func(document.AttributeSet) bool) bool {
	for _, a := range attrs {
		if !pred(a) {
			return false
		}
	}
	return true
}

// linkSpans returns true if every position carries the identical URL value.
// Overlap with differing URLs is not a spanning link.
func linkSpans(attrs []document.AttributeSet) bool {
	if len(attrs) == 0 || attrs[0].Link == nil {
		return false
	}
	want := attrs[0].Link.String()
	for _, a := range attrs[1:] {
		if a.Link == nil || a.Link.String() != want {
			return false
		}
	}
	return true
}
