package format

import (
	"github.com/dshills/richtext/document"
)

// BlockquoteFormatter toggles blockquote formatting over whole paragraphs.
// Blockquote presence is attribute-only and carries a fixed head indent so
// a quote is distinguishable from ordinary indentation. No glyph text is
// ever inserted, so toggling never moves the caret.
type BlockquoteFormatter struct{}

// Toggle applies or removes blockquote formatting over the selection's
// paragraphs and returns the adjusted selection plus the recorded changes.
func (f BlockquoteFormatter) Toggle(doc *document.Document, sel document.Range) (document.Range, []document.Change) {
	return toggleParagraphStyle(doc, sel, f)
}

// PresentAt reports whether the paragraph containing index is a blockquote.
// An empty line carries nothing.
func (f BlockquoteFormatter) PresentAt(doc *document.Document, index int) bool {
	line, ok := doc.LineRangeAt(index)
	if !ok {
		return false
	}
	return f.paragraphHas(doc, line)
}

// PresentIn reports whether any paragraph intersecting the range is a
// blockquote. An empty range degrades to PresentAt on its location.
func (f BlockquoteFormatter) PresentIn(doc *document.Document, r document.Range) bool {
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

func (f BlockquoteFormatter) paragraphHas(doc *document.Document, line document.Range) bool {
	if line.IsEmpty() {
		return false
	}
	return doc.AttributesAt(line.Start).Paragraph.Blockquote
}

func (f BlockquoteFormatter) apply(doc *document.Document, r document.Range) (document.Range, []document.Change) {
	return f.set(doc, r, true)
}

func (f BlockquoteFormatter) remove(doc *document.Document, r document.Range) (document.Range, []document.Change) {
	return f.set(doc, r, false)
}

func (f BlockquoteFormatter) set(doc *document.Document, r document.Range, on bool) (document.Range, []document.Change) {
	paras := doc.ParagraphRangesIn(r)
	if len(paras) == 0 {
		return r, nil
	}

	var changes []document.Change
	for _, p := range paras {
		c := doc.ApplyAttributes(p, func(a document.AttributeSet) document.AttributeSet {
			para := a.Paragraph
			para.Blockquote = on
			if on {
				para.HeadIndent = document.BlockquoteIndent
			} else {
				para.HeadIndent = 0
			}
			return a.WithParagraph(para)
		})
		if !c.IsNoop() {
			changes = append(changes, c)
		}
	}

	effective := document.Range{Start: paras[0].Start, End: paras[len(paras)-1].End}
	return effective, changes
}
