// Package format implements style inspection and toggling for attributed
// documents.
//
// Key types:
//
//   - Inspector: reports which style identifiers span a range or are active
//     at a caret position
//   - Pending: the style applied to the next insertion at an empty selection
//   - ListFormatter, BlockquoteFormatter: paragraph-scoped toggles
//
// Character styles (bold, italic, underline, strikethrough, link) attach to
// individual positions; paragraph styles (list membership, blockquote)
// attach uniformly to whole lines. Toggling over a range is coalesced: the
// new state is the negation of the style's presence over the entire range,
// never a per-character flip.
//
// Basic usage:
//
//	doc := document.NewFromString("hello world", document.AttributeSet{})
//	pending := format.NewPending()
//
//	format.ToggleBold(doc, pending, document.Range{Start: 0, End: 5})
//
//	in := format.NewInspector(doc, pending)
//	ids := in.IdentifiersSpanning(document.Range{Start: 0, End: 5})
//	ids.Contains(format.Bold) // true
//
// Point queries use caret semantics: the identifiers at an index describe
// the character left of the caret, clamped into the document. Range queries
// over an empty range degrade to a point query at the range location.
package format
