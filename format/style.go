package format

import (
	"errors"
	"net/url"

	"github.com/dshills/richtext/document"
)

// ErrNilURL is returned when a link operation is given no URL.
var ErrNilURL = errors.New("nil url")

// ToggleBold toggles bold over the range. The pending style is updated
// first, always, so the next typed character reflects the toggle even with
// an empty selection.
func ToggleBold(doc *document.Document, pending *Pending, r document.Range) document.Change {
	return toggleTrait(doc, pending, r, document.TraitBold, Bold)
}

// ToggleItalic toggles italic over the range. See ToggleBold for semantics.
func ToggleItalic(doc *document.Document, pending *Pending, r document.Range) document.Change {
	return toggleTrait(doc, pending, r, document.TraitItalic, Italic)
}

// toggleTrait flips a font trait in the pending style and, for a non-empty
// range, sets the negation of the coalesced spanning state across the whole
// range in one mutation. The toggle is never a per-character flip.
func toggleTrait(doc *document.Document, pending *Pending, r document.Range, trait document.FontTraits, id Identifier) document.Change {
	pending.ToggleTrait(trait)
	if r.IsEmpty() {
		return document.Change{Type: document.ChangeAttributes, Range: r, NewRange: r}
	}

	present := NewInspector(doc, pending).IdentifiersSpanning(r).Contains(id)
	return doc.ApplyAttributes(r, func(a document.AttributeSet) document.AttributeSet {
		if present {
			return a.WithoutTrait(trait)
		}
		return a.WithTrait(trait)
	})
}

// ToggleUnderline toggles the underline decoration over the range, pending
// style first.
func ToggleUnderline(doc *document.Document, pending *Pending, r document.Range) document.Change {
	pending.ToggleUnderline()
	if r.IsEmpty() {
		return document.Change{Type: document.ChangeAttributes, Range: r, NewRange: r}
	}

	present := NewInspector(doc, pending).IdentifiersSpanning(r).Contains(Underline)
	return doc.ApplyAttributes(r, func(a document.AttributeSet) document.AttributeSet {
		if present {
			return a.WithUnderline(document.LineStyleNone)
		}
		return a.WithUnderline(document.LineStyleSingle)
	})
}

// ToggleStrikethrough toggles the strikethrough decoration over the range,
// pending style first.
func ToggleStrikethrough(doc *document.Document, pending *Pending, r document.Range) document.Change {
	pending.ToggleStrikethrough()
	if r.IsEmpty() {
		return document.Change{Type: document.ChangeAttributes, Range: r, NewRange: r}
	}

	present := NewInspector(doc, pending).IdentifiersSpanning(r).Contains(Strikethrough)
	return doc.ApplyAttributes(r, func(a document.AttributeSet) document.AttributeSet {
		if present {
			return a.WithStrikethrough(document.LineStyleNone)
		}
		return a.WithStrikethrough(document.LineStyleSingle)
	})
}

// AddLink replaces the range's text with the title and links the inserted
// span to u. The inserted text inherits the character style at the range
// start. Links are range-scoped only; there is no pending-insertion link.
// An empty title falls back to the URL string.
func AddLink(doc *document.Document, r document.Range, title string, u *url.URL) (document.Change, error) {
	if u == nil {
		return document.Change{}, ErrNilURL
	}
	if title == "" {
		title = u.String()
	}

	r = r.Clamp(doc.Len())
	base := doc.AttributesAt(r.Start).WithoutMarkers()
	base.AttachmentID = ""
	return doc.ReplaceRecorded(r, title, base.WithLink(u))
}

// RemoveLink clears the link attribute from the full link span around the
// start of the given range. A range with no link is a no-op.
func RemoveLink(doc *document.Document, r document.Range) document.Change {
	span, _, ok := LinkSpanAt(doc, r.Start)
	if !ok {
		return document.Change{Type: document.ChangeAttributes, Range: r, NewRange: r}
	}
	return doc.ApplyAttributes(span, func(a document.AttributeSet) document.AttributeSet {
		return a.WithoutLink()
	})
}

// LinkSpanAt returns the maximal contiguous range around index whose
// positions all share the identical URL value, together with that URL.
// Returns false when the position carries no link.
func LinkSpanAt(doc *document.Document, index int) (document.Range, *url.URL, bool) {
	if doc.IsEmpty() {
		return document.Range{}, nil, false
	}

	i := doc.ClampIndex(index)
	u := doc.AttributesAt(i).Link
	if u == nil {
		return document.Range{}, nil, false
	}
	want := u.String()

	start := i
	for start > 0 {
		prev := doc.AttributesAt(start - 1).Link
		if prev == nil || prev.String() != want {
			break
		}
		start--
	}
	end := i + 1
	for end < doc.Len() {
		next := doc.AttributesAt(end).Link
		if next == nil || next.String() != want {
			break
		}
		end++
	}
	return document.Range{Start: start, End: end}, u, true
}
