package format

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/richtext/document"
)

// ListFormatter toggles list membership of one kind over whole paragraphs.
// A paragraph carries at most one list kind; applying a kind replaces any
// other kind already present.
//
// The zero Marker leaves list presence attribute-only, which is the normal
// mode: item numbers come from ItemNumber and rendering is the caller's
// concern. A non-empty Marker additionally writes a visible glyph at the
// head of each toggled item ("• " for unordered; the positional number plus
// the marker, such as "1. ", for ordered). Glyphs are written only for the
// toggled paragraphs; ItemNumber stays authoritative for numbering.
type ListFormatter struct {
	Kind document.ListKind

	// Marker is the glyph prefix for unordered items and the suffix after
	// the item number for ordered items. Empty disables glyphs.
	Marker string

	// PlaceholderAttrs styles inserted glyph text. The paragraph style is
	// always overwritten with the list kind being applied.
	PlaceholderAttrs document.AttributeSet
}

// Toggle applies or removes the list kind over the selection's paragraphs
// and returns the adjusted selection plus the recorded changes. Presence
// anywhere in the expanded range means remove; absence everywhere means
// apply. An empty selection with no enclosing line leaves the document
// unchanged.
func (f ListFormatter) Toggle(doc *document.Document, sel document.Range) (document.Range, []document.Change) {
	return toggleParagraphStyle(doc, sel, f)
}

// PresentAt reports whether the paragraph containing index carries this
// list kind. An empty line carries nothing.
func (f ListFormatter) PresentAt(doc *document.Document, index int) bool {
	line, ok := doc.LineRangeAt(index)
	if !ok {
		return false
	}
	return f.paragraphHas(doc, line)
}

// PresentIn reports whether any paragraph intersecting the range carries
// this list kind. An empty range degrades to PresentAt on its location.
func (f ListFormatter) PresentIn(doc *document.Document, r document.Range) bool {
	if r.IsEmpty() {
		return f.PresentAt(doc, r.Start)
	}
	for _, p := range doc.ParagraphRangesIn(r) {
		if f.paragraphHas(doc, p) {
			return true
		}
	}
	return false
}

// ItemNumber returns the 1-based position of the paragraph containing index
// within its contiguous run of paragraphs carrying this list kind, or 0
// when the paragraph is not part of such a run. Numbering is derived from
// paragraph order on every call; nothing is stored per item.
func (f ListFormatter) ItemNumber(doc *document.Document, index int) int {
	line, ok := doc.LineRangeAt(index)
	if !ok || !f.paragraphHas(doc, line) {
		return 0
	}
	n := 1
	for line.Start > 0 {
		prev, ok := doc.LineRangeAt(line.Start - 1)
		if !ok || !f.paragraphHas(doc, prev) {
			break
		}
		n++
		line = prev
	}
	return n
}

func (f ListFormatter) paragraphHas(doc *document.Document, line document.Range) bool {
	if line.IsEmpty() {
		return false
	}
	return doc.AttributesAt(line.Start).Paragraph.List == f.Kind
}

// apply marks every intersected paragraph with the list kind, then inserts
// glyphs back to front so earlier offsets stay valid. The returned range
// covers the paragraphs including any inserted glyph text.
func (f ListFormatter) apply(doc *document.Document, r document.Range) (document.Range, []document.Change) {
	paras := doc.ParagraphRangesIn(r)
	if len(paras) == 0 {
		return r, nil
	}

	var changes []document.Change
	for _, p := range paras {
		c := doc.ApplyAttributes(p, func(a document.AttributeSet) document.AttributeSet {
			para := a.Paragraph
			para.List = f.Kind
			return a.WithParagraph(para)
		})
		if !c.IsNoop() {
			changes = append(changes, c)
		}
	}

	inserted := 0
	if f.Marker != "" {
		for i := len(paras) - 1; i >= 0; i-- {
			p := paras[i]
			glyph := f.glyph(f.itemNumberFor(doc, p))
			if glyph == "" {
				continue
			}
			attrs := f.PlaceholderAttrs
			para := attrs.Paragraph
			para.List = f.Kind
			attrs = attrs.WithParagraph(para)

			c, err := doc.ReplaceRecorded(document.PointRange(p.Start), glyph, attrs)
			if err != nil {
				continue
			}
			changes = append(changes, c)
			inserted += utf8.RuneCountInString(glyph)
		}
	}

	effective := document.Range{Start: paras[0].Start, End: paras[len(paras)-1].End + inserted}
	return effective, changes
}

// remove strips glyphs and clears the list kind from every intersected
// paragraph, back to front so earlier paragraph offsets stay valid.
func (f ListFormatter) remove(doc *document.Document, r document.Range) (document.Range, []document.Change) {
	paras := doc.ParagraphRangesIn(r)
	if len(paras) == 0 {
		return r, nil
	}

	var changes []document.Change
	removed := 0
	for i := len(paras) - 1; i >= 0; i-- {
		p := paras[i]
		if g := f.glyphRange(doc, p); !g.IsEmpty() {
			c, err := doc.ReplaceRecorded(g, "", document.AttributeSet{})
			if err == nil {
				changes = append(changes, c)
				removed += g.Len()
				p.End -= g.Len()
			}
		}
		c := doc.ApplyAttributes(p, func(a document.AttributeSet) document.AttributeSet {
			para := a.Paragraph
			para.List = document.ListNone
			return a.WithParagraph(para)
		})
		if !c.IsNoop() {
			changes = append(changes, c)
		}
	}

	effective := document.Range{Start: paras[0].Start, End: paras[len(paras)-1].End - removed}
	return effective, changes
}

// itemNumberFor computes the number a glyph should show for the paragraph
// starting the given line, counting contiguous same-kind paragraphs above
// it. Attributes are applied before glyphs, so the walk sees the new state.
func (f ListFormatter) itemNumberFor(doc *document.Document, p document.Range) int {
	if n := f.ItemNumber(doc, p.Start); n > 0 {
		return n
	}
	return 1
}

func (f ListFormatter) glyph(n int) string {
	if f.Marker == "" {
		return ""
	}
	if f.Kind == document.ListOrdered {
		return strconv.Itoa(n) + f.Marker
	}
	return f.Marker
}

// glyphRange returns the range of a leading marker glyph on the paragraph,
// or an empty range at the paragraph start when none is present.
func (f ListFormatter) glyphRange(doc *document.Document, p document.Range) document.Range {
	none := document.PointRange(p.Start)
	if f.Marker == "" || p.IsEmpty() {
		return none
	}

	text := doc.TextRange(p)
	var prefix string
	switch f.Kind {
	case document.ListOrdered:
		i := 0
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}
		if i == 0 || !strings.HasPrefix(text[i:], f.Marker) {
			return none
		}
		prefix = text[:i] + f.Marker
	case document.ListUnordered:
		if !strings.HasPrefix(text, f.Marker) {
			return none
		}
		prefix = f.Marker
	default:
		return none
	}
	return document.Range{Start: p.Start, End: p.Start + utf8.RuneCountInString(prefix)}
}
