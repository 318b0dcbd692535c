package editor

import (
	"net/url"

	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/format"
	"github.com/dshills/richtext/history"
)

// paragraphFormatter is the behavior shared by the list and blockquote
// formatters.
type paragraphFormatter interface {
	Toggle(doc *document.Document, sel document.Range) (document.Range, []document.Change)
	PresentAt(doc *document.Document, index int) bool
	PresentIn(doc *document.Document, r document.Range) bool
}

// ToggleBold toggles bold over the selection. An empty selection flips the
// pending style only; a range is set uniformly from the negation of its
// current spanning state.
func (e *Editor) ToggleBold() {
	e.toggleCharacterStyle("toggle bold", format.ToggleBold)
}

// ToggleItalic toggles italic over the selection.
func (e *Editor) ToggleItalic() {
	e.toggleCharacterStyle("toggle italic", format.ToggleItalic)
}

// ToggleUnderline toggles underline over the selection.
func (e *Editor) ToggleUnderline() {
	e.toggleCharacterStyle("toggle underline", format.ToggleUnderline)
}

// ToggleStrikethrough toggles strikethrough over the selection.
func (e *Editor) ToggleStrikethrough() {
	e.toggleCharacterStyle("toggle strikethrough", format.ToggleStrikethrough)
}

func (e *Editor) toggleCharacterStyle(name string, toggle func(*document.Document, *format.Pending, document.Range) document.Change) {
	r := e.selection.Range().Clamp(e.doc.Len())
	ch := toggle(e.doc, e.pending, r)
	if ch.IsNoop() {
		return
	}
	e.history.Push(history.NewAttributeCommand(name, ch, r))
	e.publishAttributesChanged(ch.Range)
}

// AddLink replaces the selection text with title and links it to u. An
// empty title falls back to the URL string. The caret lands after the
// inserted text.
func (e *Editor) AddLink(title string, u *url.URL) error {
	prev := e.selection
	r := e.selection.Range().Clamp(e.doc.Len())
	ch, err := format.AddLink(e.doc, r, title, u)
	if err != nil {
		return err
	}
	after := document.PointRange(ch.NewRange.End)
	e.history.Push(history.NewChangeCommand("add link", []document.Change{ch}, r, after))
	e.selection = Caret(ch.NewRange.End)
	e.refreshPending()
	e.publishTextChanged(ch)
	e.publishSelectionChanged(prev)
	return nil
}

// RemoveLink clears the link from the full link run under the selection
// start. Without a link there it does nothing.
func (e *Editor) RemoveLink() {
	r := e.selection.Range().Clamp(e.doc.Len())
	ch := format.RemoveLink(e.doc, r)
	if ch.IsNoop() {
		return
	}
	e.history.Push(history.NewAttributeCommand("remove link", ch, r))
	e.publishAttributesChanged(ch.Range)
}

// LinkAt returns the full link run and URL covering the character at index.
func (e *Editor) LinkAt(index int) (document.Range, *url.URL, bool) {
	return format.LinkSpanAt(e.doc, index)
}

// ToggleOrderedList toggles ordered list formatting for the paragraphs
// under the selection. An empty selection acts on its line; presence
// anywhere in the selection removes, otherwise it applies.
func (e *Editor) ToggleOrderedList() {
	e.toggleParagraphStyle("toggle ordered list", e.ordered)
}

// ToggleUnorderedList toggles unordered list formatting for the paragraphs
// under the selection.
func (e *Editor) ToggleUnorderedList() {
	e.toggleParagraphStyle("toggle unordered list", e.unordered)
}

// ToggleBlockquote toggles blockquote formatting for the paragraphs under
// the selection.
func (e *Editor) ToggleBlockquote() {
	e.toggleParagraphStyle("toggle blockquote", e.blockquote)
}

func (e *Editor) toggleParagraphStyle(name string, f paragraphFormatter) {
	prev := e.selection
	before := prev.Range().Clamp(e.doc.Len())
	newSel, changes := f.Toggle(e.doc, before)
	if len(changes) == 0 {
		return
	}
	e.history.Push(history.NewChangeCommand(name, changes, before, newSel))
	e.selection = FromRange(newSel).Clamp(e.doc.Len())
	e.refreshPending()
	e.publishChanges(changes)
	e.publishSelectionChanged(prev)
}

// IdentifiersAt returns the style identifiers present at the character a
// caret offset refers to.
func (e *Editor) IdentifiersAt(offset int) format.Set {
	return e.Inspector().IdentifiersAt(offset)
}

// ListItemNumber returns the 1-based ordered list item number for the
// paragraph containing index, or 0 when it is not an ordered list item.
func (e *Editor) ListItemNumber(index int) int {
	return e.ordered.ItemNumber(e.doc, index)
}
