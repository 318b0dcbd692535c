package format

import (
	"testing"

	"github.com/dshills/richtext/document"
)

func TestPending_Toggles(t *testing.T) {
	p := NewPending()

	p.ToggleTrait(document.TraitBold)
	p.ToggleUnderline()
	p.ToggleStrikethrough()

	want := NewSet(Bold, Underline, Strikethrough)
	if got := p.Identifiers(); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want.Sorted(), got.Sorted())
	}

	p.ToggleTrait(document.TraitBold)
	p.ToggleUnderline()
	p.ToggleStrikethrough()

	if got := p.Identifiers(); len(got) != 0 {
		t.Errorf("expected empty after second toggles, got %v", got.Sorted())
	}
}

func TestPending_SetSanitizes(t *testing.T) {
	attrs := document.AttributeSet{}.
		WithTrait(document.TraitItalic).
		WithLink(mustURL(t, "https://example.com")).
		WithMarker(document.MarkerSelectionStart)
	attrs.AttachmentID = "att-1"
	attrs = attrs.WithParagraph(document.ParagraphStyle{List: document.ListUnordered})

	p := NewPending()
	p.Set(attrs)

	got := p.Attributes()
	if got.Link != nil {
		t.Error("expected link stripped from pending style")
	}
	if got.AttachmentID != "" {
		t.Error("expected attachment id stripped from pending style")
	}
	if got.Markers != 0 {
		t.Error("expected markers stripped from pending style")
	}
	if !got.HasTrait(document.TraitItalic) {
		t.Error("expected italic kept")
	}
	if got.Paragraph.List != document.ListUnordered {
		t.Error("expected paragraph style kept")
	}
}

func TestPending_RefreshAt(t *testing.T) {
	doc := newDoc(t, "ab")
	setTrait(doc, document.Range{Start: 1, End: 2}, document.TraitBold)

	p := NewPending()

	// Refresh clamps to the last character index without the caret step
	// point queries use.
	p.RefreshAt(doc, 2)
	if !p.Identifiers().Contains(Bold) {
		t.Error("expected bold from clamped refresh position")
	}

	p.RefreshAt(doc, 0)
	if p.Identifiers().Contains(Bold) {
		t.Error("expected plain style at position 0")
	}
}

func TestPending_RefreshAtEmptyDocument(t *testing.T) {
	p := NewPending()
	p.ToggleTrait(document.TraitBold)

	p.RefreshAt(document.New(), 0)
	if got := p.Identifiers(); len(got) != 0 {
		t.Errorf("expected reset on empty document, got %v", got.Sorted())
	}
}
