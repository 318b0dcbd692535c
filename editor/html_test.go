package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
)

type fakeImporter struct {
	text string
	err  error
}

func (f *fakeImporter) ImportHTML(_ string, _ document.AttributeSet) (*document.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	return document.NewFromString(f.text, document.AttributeSet{}), nil
}

type fakeExporter struct{}

func (fakeExporter) ExportHTML(doc *document.Document) (string, error) {
	return "<p>" + doc.Text() + "</p>", nil
}

func TestSetHTML_ReplacesContent(t *testing.T) {
	e := New(WithHTML(&fakeImporter{text: "imported"}, fakeExporter{}))
	mustInsert(t, e, "old text")
	events := recordEvents(t, e, event.TopicDocumentReplaced)

	if err := e.SetHTML("<p>imported</p>"); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if got := e.Text(); got != "imported" {
		t.Errorf("expected %q, got %q", "imported", got)
	}
	if e.Selection() != Caret(8) {
		t.Errorf("expected caret at end, got %v", e.Selection())
	}
	if e.History().CanUndo() {
		t.Error("expected history cleared by a wholesale replace")
	}
	if len(*events) != 1 {
		t.Fatalf("expected 1 replaced notification, got %d", len(*events))
	}
	dr := (*events)[0].(event.DocumentReplaced)
	if dr.Length != 8 {
		t.Errorf("expected length 8, got %d", dr.Length)
	}
}

func TestSetHTML_ImportErrorPropagates(t *testing.T) {
	wantErr := errors.New("bad markup")
	e := New(WithHTML(&fakeImporter{err: wantErr}, fakeExporter{}))
	mustInsert(t, e, "keep")

	if err := e.SetHTML("<broken"); !errors.Is(err, wantErr) {
		t.Errorf("expected import error, got %v", err)
	}
	if got := e.Text(); got != "keep" {
		t.Errorf("expected document untouched, got %q", got)
	}
}

func TestSetHTML_WithoutImporter(t *testing.T) {
	e := New()
	if err := e.SetHTML("<p>x</p>"); !errors.Is(err, ErrNoImporter) {
		t.Errorf("expected ErrNoImporter, got %v", err)
	}
}

func TestGetHTML(t *testing.T) {
	e := New(WithHTML(&fakeImporter{text: "body"}, fakeExporter{}))
	mustInsert(t, e, "body")

	got, err := e.GetHTML()
	if err != nil {
		t.Fatalf("GetHTML: %v", err)
	}
	if got != "<p>body</p>" {
		t.Errorf("expected exported markup, got %q", got)
	}
}

func TestGetHTML_WithoutExporter(t *testing.T) {
	e := New()
	if _, err := e.GetHTML(); !errors.Is(err, ErrNoExporter) {
		t.Errorf("expected ErrNoExporter, got %v", err)
	}
}

func TestSetHTML_PrunesDanglingAttachments(t *testing.T) {
	p := newFakeProvider()
	e := New(
		WithImageProvider(p),
		WithHTML(&fakeImporter{text: "fresh"}, fakeExporter{}),
	)
	id, err := e.InsertAttachment(context.Background(), mustParseURL(t, "https://x/f.png"))
	if err != nil {
		t.Fatalf("InsertAttachment: %v", err)
	}

	if err := e.SetHTML("<p>fresh</p>"); err != nil {
		t.Fatalf("SetHTML: %v", err)
	}
	if _, ok := e.Attachments().Lookup(id); ok {
		t.Error("expected stale attachment pruned")
	}
	if got := e.Attachments().Len(); got != 0 {
		t.Errorf("expected empty registry, got %d", got)
	}
}
