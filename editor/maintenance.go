package editor

import (
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
	"github.com/dshills/richtext/format"
	"github.com/dshills/richtext/history"
	"github.com/dshills/richtext/internal/grapheme"
)

// InsertText replaces the current selection with text styled by the pending
// attributes and moves the caret after it.
//
// Pressing return on an empty line never inserts the newline: any list or
// blockquote formatting on that line is removed instead, and a
// selection-changed notification is published so hosts re-read the caret
// state. The notification fires even when the line carried no formatting.
func (e *Editor) InsertText(text string) error {
	if text == "" {
		return nil
	}
	prev := e.selection
	sel := e.selection.Clamp(e.doc.Len())
	r := sel.Range()

	if r.IsEmpty() && e.shouldStripParagraphAttributes(text, r.Start) {
		e.stripParagraphAttributes(r.Start)
		e.refreshPending()
		// Published even when the caret did not move: hosts re-read the
		// typing attributes through it.
		e.publish(event.SelectionChanged{
			Selection: e.selection.Range(),
			Previous:  prev.Range(),
		})
		return nil
	}

	ch, err := e.doc.ReplaceRecorded(r, text, e.pending.Attributes())
	if err != nil {
		return err
	}
	after := document.PointRange(ch.NewRange.End)
	e.history.Push(history.NewChangeCommand("insert text", []document.Change{ch}, r, after))
	e.selection = Caret(ch.NewRange.End)
	e.refreshPending()
	e.publishTextChanged(ch)
	if text == "\n" {
		e.scheduleNudge()
	}
	return nil
}

// DeleteBackward deletes the selection, or the grapheme cluster before the
// caret when the selection is empty.
func (e *Editor) DeleteBackward() error {
	sel := e.selection.Clamp(e.doc.Len())
	r := sel.Range()
	if r.IsEmpty() {
		if r.Start == 0 {
			return nil
		}
		start := grapheme.PrevBoundary(e.doc.Runes(), r.Start)
		r = document.Range{Start: start, End: r.Start}
	}
	return e.deleteRange(r)
}

// DeleteForward deletes the selection, or the grapheme cluster after the
// caret when the selection is empty.
func (e *Editor) DeleteForward() error {
	sel := e.selection.Clamp(e.doc.Len())
	r := sel.Range()
	if r.IsEmpty() {
		if r.Start >= e.doc.Len() {
			return nil
		}
		end := grapheme.NextBoundary(e.doc.Runes(), r.Start)
		r = document.Range{Start: r.Start, End: end}
	}
	return e.deleteRange(r)
}

// DeleteRange deletes the given range, clamped into the document.
func (e *Editor) DeleteRange(r document.Range) error {
	r = r.Clamp(e.doc.Len())
	if r.IsEmpty() {
		return nil
	}
	return e.deleteRange(r)
}

// deleteRange removes r and performs the post-deletion paragraph
// maintenance. Deleting a leading newline that carried a list attribute
// clears that list from the paragraph left at position zero; a blockquote
// at position zero is cleared the same way. Both cases schedule a deferred
// caret nudge.
func (e *Editor) deleteRange(r document.Range) error {
	deleted := e.doc.TextRange(r)
	deletedList := document.ListNone
	if attrs := e.doc.AttributesIn(r); len(attrs) > 0 {
		deletedList = attrs[0].Paragraph.List
	}
	orphaned := e.attachmentIDsIn(r)

	ch, err := e.doc.ReplaceRecorded(r, "", document.AttributeSet{})
	if err != nil {
		return err
	}
	e.history.Push(history.NewChangeCommand("delete text", []document.Change{ch}, r, document.PointRange(r.Start)))
	e.selection = Caret(r.Start)
	for _, id := range orphaned {
		if e.registry.Remove(id) {
			e.logger.Debug("attachment removed with deleted text: id=%s", id)
		}
	}
	e.publishTextChanged(ch)

	if e.doc.IsEmpty() {
		e.refreshPending()
		return nil
	}

	if deleted == "\n" && r.Start == 0 {
		nudge := false
		if deletedList != document.ListNone {
			f := e.listFormatter(deletedList)
			if f.PresentAt(e.doc, 0) {
				e.removeParagraphStyleAt("remove "+deletedList.String()+" list", f, 0)
			}
			nudge = true
		}
		if e.blockquote.PresentAt(e.doc, 0) {
			e.removeParagraphStyleAt("remove blockquote", e.blockquote, 0)
			nudge = true
		}
		if nudge {
			e.scheduleNudge()
		}
	}
	e.refreshPending()
	return nil
}

// shouldStripParagraphAttributes reports whether a lone newline is being
// typed on an empty line: the offset is a line start, the character before
// it is a newline or the document start, and the character at it is a
// newline or the document end. The test is purely geometric; it holds
// whether or not the line carries formatting to clear.
func (e *Editor) shouldStripParagraphAttributes(text string, l int) bool {
	if text != "\n" {
		return false
	}
	if l > 0 {
		if r, ok := e.doc.RuneAt(l - 1); !ok || r != '\n' {
			return false
		}
	}
	if l < e.doc.Len() {
		if r, ok := e.doc.RuneAt(l); !ok || r != '\n' {
			return false
		}
	}
	return e.doc.IsLineStart(l)
}

// stripParagraphAttributes clears the first paragraph style found at l,
// checking ordered list, then unordered list, then blockquote. A plain
// line is left untouched.
func (e *Editor) stripParagraphAttributes(l int) {
	switch {
	case e.ordered.PresentAt(e.doc, l):
		e.removeParagraphStyleAt("remove ordered list", e.ordered, l)
	case e.unordered.PresentAt(e.doc, l):
		e.removeParagraphStyleAt("remove unordered list", e.unordered, l)
	case e.blockquote.PresentAt(e.doc, l):
		e.removeParagraphStyleAt("remove blockquote", e.blockquote, l)
	}
}

// removeParagraphStyleAt toggles f off for the empty range at l and records
// the result as one undo unit.
func (e *Editor) removeParagraphStyleAt(name string, f paragraphFormatter, l int) {
	at := document.PointRange(l)
	newSel, changes := f.Toggle(e.doc, at)
	if len(changes) == 0 {
		return
	}
	e.history.Push(history.NewChangeCommand(name, changes, at, newSel))
	e.selection = FromRange(newSel).Clamp(e.doc.Len())
	e.publishChanges(changes)
}

func (e *Editor) listFormatter(kind document.ListKind) format.ListFormatter {
	if kind == document.ListOrdered {
		return e.ordered
	}
	return e.unordered
}

// attachmentIDsIn returns the distinct attachment ids attached to
// characters in r.
func (e *Editor) attachmentIDsIn(r document.Range) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, attrs := range e.doc.AttributesIn(r) {
		id := attrs.AttachmentID
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

func (e *Editor) publishChanges(changes []document.Change) {
	for _, ch := range changes {
		if ch.Type == document.ChangeAttributes {
			e.publishAttributesChanged(ch.Range)
		} else {
			e.publishTextChanged(ch)
		}
	}
}
