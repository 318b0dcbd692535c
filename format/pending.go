package format

import "github.com/dshills/richtext/document"

// Pending holds the pending-insertion style: the attribute set applied to
// the next typed character when the selection is empty. It must be refreshed
// after any mutation that could change the caret's reference character.
type Pending struct {
	attrs document.AttributeSet
}

// NewPending creates an empty pending style.
func NewPending() *Pending {
	return &Pending{}
}

// Attributes returns the current pending attribute set.
func (p *Pending) Attributes() document.AttributeSet {
	return p.attrs
}

// Set replaces the pending attribute set. Links, attachment references and
// selection markers never carry over into typed text and are stripped.
func (p *Pending) Set(attrs document.AttributeSet) {
	p.attrs = sanitize(attrs)
}

// RefreshAt re-derives the pending style from the attributes at the given
// document position. The index is clamped; an empty document resets the
// pending style.
func (p *Pending) RefreshAt(doc *document.Document, index int) {
	p.Set(doc.AttributesAt(index))
}

// ToggleTrait flips a font trait in the pending style.
func (p *Pending) ToggleTrait(trait document.FontTraits) {
	if p.attrs.HasTrait(trait) {
		p.attrs = p.attrs.WithoutTrait(trait)
	} else {
		p.attrs = p.attrs.WithTrait(trait)
	}
}

// ToggleUnderline flips the pending underline decoration.
func (p *Pending) ToggleUnderline() {
	if p.attrs.Underline == document.LineStyleSingle {
		p.attrs = p.attrs.WithUnderline(document.LineStyleNone)
	} else {
		p.attrs = p.attrs.WithUnderline(document.LineStyleSingle)
	}
}

// ToggleStrikethrough flips the pending strikethrough decoration.
func (p *Pending) ToggleStrikethrough() {
	if p.attrs.Strikethrough == document.LineStyleSingle {
		p.attrs = p.attrs.WithStrikethrough(document.LineStyleNone)
	} else {
		p.attrs = p.attrs.WithStrikethrough(document.LineStyleSingle)
	}
}

// Identifiers returns the identifiers implied by the pending style rather
// than by any character in the document.
func (p *Pending) Identifiers() Set {
	ids := make(Set)
	if p.attrs.HasTrait(document.TraitBold) {
		ids.Add(Bold)
	}
	if p.attrs.HasTrait(document.TraitItalic) {
		ids.Add(Italic)
	}
	if p.attrs.Underline == document.LineStyleSingle {
		ids.Add(Underline)
	}
	if p.attrs.Strikethrough == document.LineStyleSingle {
		ids.Add(Strikethrough)
	}
	switch p.attrs.Paragraph.List {
	case document.ListOrdered:
		ids.Add(OrderedList)
	case document.ListUnordered:
		ids.Add(UnorderedList)
	}
	if p.attrs.Paragraph.Blockquote {
		ids.Add(Blockquote)
	}
	return ids
}

// sanitize strips the attributes that never participate in typing: links
// are range-scoped, attachment ids are owned by exactly one position, and
// markers are transient.
func sanitize(attrs document.AttributeSet) document.AttributeSet {
	attrs = attrs.WithoutLink().WithoutMarkers()
	attrs.AttachmentID = ""
	return attrs
}
