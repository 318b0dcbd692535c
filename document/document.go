package document

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Errors returned by document operations.
var (
	ErrRangeInvalid   = errors.New("invalid range")
	ErrAttributeCount = errors.New("attribute count does not match text length")
)

// AttachmentRune is the object replacement character that stands in for an
// embedded attachment. Each attachment occupies exactly one such position.
const AttachmentRune rune = '￼'

// Document is an ordered sequence of characters where every position carries
// an AttributeSet. All offsets in the API are rune offsets.
//
// Mutation is single-threaded by contract: the document is exclusively owned
// by one editing context and performs no internal locking. Read queries are
// side-effect-free and may be interleaved freely between mutations, but must
// not run concurrently with one.
type Document struct {
	runes      []rune
	attrs      []AttributeSet
	revisionID RevisionID
}

// New creates a new empty document.
func New() *Document {
	return &Document{revisionID: NewRevisionID()}
}

// NewFromString creates a document with initial content, every character
// carrying the given attributes.
func NewFromString(text string, attrs AttributeSet) *Document {
	d := New()
	text = normalizeNewlines(text)
	d.runes = []rune(text)
	d.attrs = make([]AttributeSet, len(d.runes))
	for i := range d.attrs {
		d.attrs[i] = attrs
	}
	return d
}

// normalizeNewlines converts CRLF and CR line endings to LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read Operations

// Len returns the document length in characters.
func (d *Document) Len() int {
	return len(d.runes)
}

// IsEmpty returns true if the document has no characters.
func (d *Document) IsEmpty() bool {
	return len(d.runes) == 0
}

// Text returns the full document content as a string.
func (d *Document) Text() string {
	return string(d.runes)
}

// TextRange returns the text in the given range, clamped to the document.
func (d *Document) TextRange(r Range) string {
	r = r.Clamp(len(d.runes))
	return string(d.runes[r.Start:r.End])
}

// Runes returns a copy of the document content as runes.
func (d *Document) Runes() []rune {
	out := make([]rune, len(d.runes))
	copy(out, d.runes)
	return out
}

// RuneAt returns the rune at the given offset.
// The second return value is false if the offset is out of range.
func (d *Document) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(d.runes) {
		return 0, false
	}
	return d.runes[offset], true
}

// AttributesAt returns the attributes at the given offset, clamped to a
// valid position. An empty document yields the zero AttributeSet.
func (d *Document) AttributesAt(offset int) AttributeSet {
	if len(d.attrs) == 0 {
		return AttributeSet{}
	}
	return d.attrs[d.ClampIndex(offset)]
}

// AttributesIn returns a copy of the attributes for every position in the
// given range, clamped to the document.
func (d *Document) AttributesIn(r Range) []AttributeSet {
	r = r.Clamp(len(d.attrs))
	out := make([]AttributeSet, r.Len())
	copy(out, d.attrs[r.Start:r.End])
	return out
}

// MaxIndex returns the largest valid character index, or 0 for an empty
// document.
func (d *Document) MaxIndex() int {
	if len(d.runes) == 0 {
		return 0
	}
	return len(d.runes) - 1
}

// ClampIndex constrains an index to [0, MaxIndex]. Point queries clamp
// rather than fail.
func (d *Document) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if max := d.MaxIndex(); i > max {
		return max
	}
	return i
}

// FullRange returns the range covering the whole document.
func (d *Document) FullRange() Range {
	return Range{Start: 0, End: len(d.runes)}
}

// RevisionID returns the current revision ID. Every successful mutation
// produces a new one.
func (d *Document) RevisionID() RevisionID {
	return d.revisionID
}

// Write Operations

// Replace is the single mutation primitive: it replaces the characters in
// the given range with text, every inserted character carrying the given
// attributes. All other mutations are expressed through it.
func (d *Document) Replace(r Range, text string, attrs AttributeSet) (EditResult, error) {
	text = normalizeNewlines(text)
	n := utf8.RuneCountInString(text)
	inserted := make([]AttributeSet, n)
	for i := range inserted {
		inserted[i] = attrs
	}
	return d.ReplaceAttributed(r, text, inserted)
}

// ReplaceAttributed replaces the characters in the given range with text
// whose characters carry per-position attributes. The attrs slice must have
// exactly one entry per rune of text.
func (d *Document) ReplaceAttributed(r Range, text string, attrs []AttributeSet) (EditResult, error) {
	if !r.IsValid() || r.End > len(d.runes) {
		return EditResult{}, ErrRangeInvalid
	}

	newRunes := []rune(text)
	if len(attrs) != len(newRunes) {
		return EditResult{}, ErrAttributeCount
	}

	oldText := string(d.runes[r.Start:r.End])

	runes := make([]rune, 0, len(d.runes)-r.Len()+len(newRunes))
	runes = append(runes, d.runes[:r.Start]...)
	runes = append(runes, newRunes...)
	runes = append(runes, d.runes[r.End:]...)

	sets := make([]AttributeSet, 0, len(runes))
	sets = append(sets, d.attrs[:r.Start]...)
	sets = append(sets, attrs...)
	sets = append(sets, d.attrs[r.End:]...)

	d.runes = runes
	d.attrs = sets
	d.revisionID = NewRevisionID()

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + len(newRunes)},
		OldText:  oldText,
		Delta:    len(newRunes) - r.Len(),
	}, nil
}

// ReplaceRecorded performs Replace and returns a full change record, with
// before and after attribute snapshots, suitable for undo.
func (d *Document) ReplaceRecorded(r Range, text string, attrs AttributeSet) (Change, error) {
	oldAttrs := d.AttributesIn(r)
	res, err := d.Replace(r, text, attrs)
	if err != nil {
		return Change{}, err
	}

	change := Change{
		Range:    res.OldRange,
		NewRange: res.NewRange,
		OldText:  res.OldText,
		NewText:  d.TextRange(res.NewRange),
		OldAttrs: oldAttrs,
		NewAttrs: d.AttributesIn(res.NewRange),
	}
	switch {
	case res.OldRange.IsEmpty():
		change.Type = ChangeInsert
	case res.NewRange.IsEmpty():
		change.Type = ChangeDelete
	default:
		change.Type = ChangeReplace
	}
	return change, nil
}

// ApplyChange applies a recorded change to the document. Applying the
// inverse of a change undoes it.
func (d *Document) ApplyChange(c Change) error {
	if c.Type == ChangeAttributes {
		return d.RestoreAttributes(c.Range, c.NewAttrs)
	}
	_, err := d.ReplaceAttributed(c.Range, c.NewText, c.NewAttrs)
	return err
}

// Insert inserts text at the given offset with uniform attributes.
func (d *Document) Insert(offset int, text string, attrs AttributeSet) (EditResult, error) {
	return d.Replace(Range{Start: offset, End: offset}, text, attrs)
}

// Delete removes the characters in the given range.
func (d *Document) Delete(r Range) (EditResult, error) {
	return d.ReplaceAttributed(r, "", nil)
}

// ApplyEdit applies a single text edit with uniform attributes on the
// inserted characters.
func (d *Document) ApplyEdit(edit Edit, attrs AttributeSet) (EditResult, error) {
	return d.Replace(edit.Range, edit.NewText, attrs)
}

// ApplyAttributes rewrites the attributes of every position in the given
// range through the transform, leaving the text untouched. The range is
// clamped; the operation is total. The returned change records the before
// and after attribute state for undo.
func (d *Document) ApplyAttributes(r Range, transform func(AttributeSet) AttributeSet) Change {
	r = r.Clamp(len(d.attrs))

	change := Change{
		Type:     ChangeAttributes,
		Range:    r,
		NewRange: r,
		OldAttrs: make([]AttributeSet, 0, r.Len()),
		NewAttrs: make([]AttributeSet, 0, r.Len()),
	}

	dirty := false
	for i := r.Start; i < r.End; i++ {
		old := d.attrs[i]
		next := transform(old)
		change.OldAttrs = append(change.OldAttrs, old)
		change.NewAttrs = append(change.NewAttrs, next)
		if !old.Equal(next) {
			d.attrs[i] = next
			dirty = true
		}
	}

	if dirty {
		d.revisionID = NewRevisionID()
	}
	return change
}

// SetAttributes overwrites the attributes of every position in the given
// range with one uniform set.
func (d *Document) SetAttributes(r Range, attrs AttributeSet) Change {
	return d.ApplyAttributes(r, func(AttributeSet) AttributeSet {
		return attrs
	})
}

// RestoreAttributes writes back a previously captured attribute snapshot
// over the given range. Used by undo. The snapshot must have one entry per
// position of the range.
func (d *Document) RestoreAttributes(r Range, attrs []AttributeSet) error {
	if !r.IsValid() || r.End > len(d.attrs) {
		return ErrRangeInvalid
	}
	if len(attrs) != r.Len() {
		return ErrAttributeCount
	}
	dirty := false
	for i, a := range attrs {
		if !d.attrs[r.Start+i].Equal(a) {
			d.attrs[r.Start+i] = a
			dirty = true
		}
	}
	if dirty {
		d.revisionID = NewRevisionID()
	}
	return nil
}
