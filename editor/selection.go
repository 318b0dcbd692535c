package editor

import (
	"fmt"

	"github.com/dshills/richtext/document"
)

// Selection represents the user's selection. Anchor is where the selection
// started; Head is the caret, where typing occurs. Anchor == Head is a bare
// caret. Selection is an immutable value type in character offsets.
type Selection struct {
	Anchor int
	Head   int
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Caret creates a collapsed selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// FromRange creates a forward selection covering the given range.
func FromRange(r document.Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Len returns the selection's extent in characters.
func (s Selection) Len() int {
	if s.Anchor <= s.Head {
		return s.Head - s.Anchor
	}
	return s.Anchor - s.Head
}

// Range returns the selection as a range with Start <= End.
func (s Selection) Range() document.Range {
	if s.Anchor <= s.Head {
		return document.Range{Start: s.Anchor, End: s.Head}
	}
	return document.Range{Start: s.Head, End: s.Anchor}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	if s.Anchor <= s.Head {
		return s.Anchor
	}
	return s.Head
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	if s.Anchor >= s.Head {
		return s.Anchor
	}
	return s.Head
}

// IsForward returns true if the head is at or after the anchor.
func (s Selection) IsForward() bool {
	return s.Head >= s.Anchor
}

// Extend returns a selection with the head moved and the anchor fixed.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Head: offset}
}

// MoveTo returns a collapsed selection at the given offset.
func (s Selection) MoveTo(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Clamp constrains both ends to [0, length].
func (s Selection) Clamp(length int) Selection {
	return Selection{
		Anchor: clampOffset(s.Anchor, length),
		Head:   clampOffset(s.Head, length),
	}
}

// String returns a human-readable representation.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("caret@%d", s.Head)
	}
	return fmt.Sprintf("%d->%d", s.Anchor, s.Head)
}

func clampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}

// TransformOffset maps a document offset across a replacement of the old
// range by newLen characters.
//
// Rules:
//   - replacement entirely before the offset: shift by the length delta
//   - replacement at or after the offset: unchanged
//   - replacement spanning the offset: move to the end of the new text
func TransformOffset(offset int, old document.Range, newLen int) int {
	if old.End <= offset {
		return offset - old.Len() + newLen
	}
	if old.Start >= offset {
		return offset
	}
	return old.Start + newLen
}

// TransformSelection maps both ends of a selection across a replacement.
func TransformSelection(sel Selection, old document.Range, newLen int) Selection {
	return Selection{
		Anchor: TransformOffset(sel.Anchor, old, newLen),
		Head:   TransformOffset(sel.Head, old, newLen),
	}
}
