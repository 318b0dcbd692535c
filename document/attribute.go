package document

import "net/url"

// FontTraits is a bitmask of symbolic font traits carried by a character.
type FontTraits uint8

const (
	// TraitBold marks a bold font face.
	TraitBold FontTraits = 1 << iota
	// TraitItalic marks an italic font face.
	TraitItalic
)

// Has returns true if all of the given traits are set.
func (t FontTraits) Has(trait FontTraits) bool {
	return t&trait == trait
}

// With returns the traits with the given traits added.
func (t FontTraits) With(trait FontTraits) FontTraits {
	return t | trait
}

// Without returns the traits with the given traits removed.
func (t FontTraits) Without(trait FontTraits) FontTraits {
	return t &^ trait
}

// LineStyle is the style of an underline or strikethrough decoration.
type LineStyle uint8

const (
	// LineStyleNone means no decoration.
	LineStyleNone LineStyle = iota
	// LineStyleSingle is a single decoration line.
	LineStyleSingle
)

// MarkerFlags tag transient selection boundaries. Markers exist only inside
// a mark/restore bracket and must never survive normal editing.
type MarkerFlags uint8

const (
	// MarkerSelectionStart tags the position where a preserved selection begins.
	MarkerSelectionStart MarkerFlags = 1 << iota
	// MarkerSelectionEnd tags the position where a preserved selection ends.
	MarkerSelectionEnd
)

// Has returns true if all of the given flags are set.
func (m MarkerFlags) Has(flag MarkerFlags) bool {
	return m&flag == flag
}

// ListKind identifies the list style of a paragraph.
// A paragraph holds at most one list kind at a time.
type ListKind uint8

const (
	// ListNone means the paragraph is not part of a list.
	ListNone ListKind = iota
	// ListOrdered is a numbered list.
	ListOrdered
	// ListUnordered is a bulleted list.
	ListUnordered
)

// String returns the string representation of the list kind.
func (k ListKind) String() string {
	switch k {
	case ListOrdered:
		return "ordered"
	case ListUnordered:
		return "unordered"
	default:
		return "none"
	}
}

// BlockquoteIndent is the fixed head indent, in points, that marks a
// blockquote paragraph. The constant value distinguishes blockquote
// indentation from ordinary indentation.
const BlockquoteIndent = 20.0

// ParagraphStyle carries paragraph-scoped formatting. Its presence is
// decided per whole paragraph; partial-paragraph application is a bug.
type ParagraphStyle struct {
	List       ListKind
	Blockquote bool
	HeadIndent float64
}

// IsZero returns true if the style is the default paragraph style.
func (p ParagraphStyle) IsZero() bool {
	return p == ParagraphStyle{}
}

// AttributeSet is the typed, closed set of attributes one character position
// carries. The zero value is plain unstyled text. AttributeSet is a value
// type; mutation helpers return modified copies.
type AttributeSet struct {
	Traits        FontTraits
	Underline     LineStyle
	Strikethrough LineStyle
	Link          *url.URL // nil when the character is not part of a link
	AttachmentID  string   // set only on attachment placeholder positions
	Markers       MarkerFlags
	Paragraph     ParagraphStyle
}

// Equal returns true if both attribute sets are equivalent.
// Links compare by URL string, not pointer identity.
func (a AttributeSet) Equal(other AttributeSet) bool {
	return a.Traits == other.Traits &&
		a.Underline == other.Underline &&
		a.Strikethrough == other.Strikethrough &&
		sameURL(a.Link, other.Link) &&
		a.AttachmentID == other.AttachmentID &&
		a.Markers == other.Markers &&
		a.Paragraph == other.Paragraph
}

// IsZero returns true if the set carries no attributes at all.
func (a AttributeSet) IsZero() bool {
	return a.Equal(AttributeSet{})
}

// HasTrait returns true if the given font traits are set.
func (a AttributeSet) HasTrait(trait FontTraits) bool {
	return a.Traits.Has(trait)
}

// WithTrait returns a copy with the given font traits added.
func (a AttributeSet) WithTrait(trait FontTraits) AttributeSet {
	a.Traits = a.Traits.With(trait)
	return a
}

// WithoutTrait returns a copy with the given font traits removed.
func (a AttributeSet) WithoutTrait(trait FontTraits) AttributeSet {
	a.Traits = a.Traits.Without(trait)
	return a
}

// WithUnderline returns a copy with the underline style set.
func (a AttributeSet) WithUnderline(style LineStyle) AttributeSet {
	a.Underline = style
	return a
}

// WithStrikethrough returns a copy with the strikethrough style set.
func (a AttributeSet) WithStrikethrough(style LineStyle) AttributeSet {
	a.Strikethrough = style
	return a
}

// WithLink returns a copy linked to the given URL.
func (a AttributeSet) WithLink(u *url.URL) AttributeSet {
	a.Link = u
	return a
}

// WithoutLink returns a copy with no link.
func (a AttributeSet) WithoutLink() AttributeSet {
	a.Link = nil
	return a
}

// WithAttachment returns a copy referencing the given attachment id.
func (a AttributeSet) WithAttachment(id string) AttributeSet {
	a.AttachmentID = id
	return a
}

// WithMarker returns a copy with the given marker flags added.
func (a AttributeSet) WithMarker(flags MarkerFlags) AttributeSet {
	a.Markers |= flags
	return a
}

// WithoutMarkers returns a copy with all marker flags cleared.
func (a AttributeSet) WithoutMarkers() AttributeSet {
	a.Markers = 0
	return a
}

// WithParagraph returns a copy with the paragraph style replaced.
func (a AttributeSet) WithParagraph(p ParagraphStyle) AttributeSet {
	a.Paragraph = p
	return a
}

// sameURL compares two URLs by string value, treating nil as equal to nil.
func sameURL(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}
