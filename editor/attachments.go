package editor

import (
	"context"
	"errors"
	"net/url"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/history"
)

// InsertAttachment registers an attachment for u, replaces the selection
// with its placeholder character, and starts the asynchronous image fetch.
// It returns the new attachment's id; the fetched image (or, on failure,
// the default placeholder) is applied when Dispatch drains the result.
//
// Calling this without an image provider configured is a programming error
// and panics.
func (e *Editor) InsertAttachment(ctx context.Context, u *url.URL) (string, error) {
	if e.provider == nil {
		panic("editor: InsertAttachment called without an image provider")
	}
	prev := e.selection
	r := e.selection.Range().Clamp(e.doc.Len())

	a := e.registry.Insert(u)
	attrs := e.pending.Attributes().WithAttachment(a.ID())
	ch, err := e.doc.ReplaceRecorded(r, string(document.AttachmentRune), attrs)
	if err != nil {
		e.registry.Remove(a.ID())
		return "", err
	}
	after := document.PointRange(ch.NewRange.End)
	e.history.Push(history.NewChangeCommand("insert attachment", []document.Change{ch}, r, after))
	e.selection = Caret(ch.NewRange.End)
	e.refreshPending()
	e.publishTextChanged(ch)
	e.publishSelectionChanged(prev)

	placeholder, results := e.provider.Provide(ctx, u)
	if placeholder == nil {
		placeholder = attachment.PlaceholderImage()
	}
	a.Image = placeholder

	id := a.ID()
	go func() {
		res, ok := <-results
		if !ok {
			res = attachment.FetchResult{Err: errors.New("provider closed result channel without a result")}
		}
		e.enqueue(fetchResultMsg{id: id, result: res})
	}()
	return id, nil
}

// AttachmentAt returns the attachment whose placeholder occupies the
// character at index.
func (e *Editor) AttachmentAt(index int) (*attachment.Attachment, bool) {
	if index < 0 || index >= e.doc.Len() {
		return nil, false
	}
	id := e.doc.AttributesAt(index).AttachmentID
	if id == "" {
		return nil, false
	}
	return e.registry.Lookup(id)
}
