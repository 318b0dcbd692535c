// Package document provides the attributed text model at the core of the
// richtext library: an ordered sequence of characters where every position
// carries a typed set of formatting attributes.
//
// The document package provides:
//
//   - A single mutation primitive (Replace) that all edits flow through
//   - Typed, closed attribute sets per character (AttributeSet)
//   - Rune-offset ranges with the usual set operations (Range)
//   - Line and paragraph geometry for paragraph-scoped formatting
//   - Attribute rewrites over ranges with undo-ready change records
//   - Revision tracking for change management
//
// Basic usage:
//
//	// Create a document with some text
//	doc := document.NewFromString("Hello, World!", document.AttributeSet{})
//
//	// Replace a range, bolding the inserted text
//	attrs := document.AttributeSet{Traits: document.TraitBold}
//	doc.Replace(document.NewRange(7, 12), "Gopher", attrs)
//
//	// Rewrite attributes without touching text
//	doc.ApplyAttributes(doc.FullRange(), func(a document.AttributeSet) document.AttributeSet {
//	    return a.WithUnderline(document.LineStyleSingle)
//	})
//
// Offsets:
//
// Every offset and range in the API counts runes, not bytes. The attribute
// slice is kept in lockstep with the rune slice; both always have equal
// length.
//
// Concurrency:
//
// The document performs no internal locking. It is owned by a single editing
// context; see the richtext editor package for how asynchronous work is
// marshaled back onto that context.
package document
