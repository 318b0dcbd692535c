package format

import (
	"testing"

	"github.com/dshills/richtext/document"
)

func TestListFormatter_ToggleSingleParagraph(t *testing.T) {
	doc := newDoc(t, "one\ntwo\nthree")
	f := ListFormatter{Kind: document.ListUnordered}

	sel, _ := f.Toggle(doc, document.PointRange(5))

	if !f.PresentAt(doc, 5) {
		t.Error("expected middle paragraph listed")
	}
	// Scoping: only the paragraph containing the caret changes.
	if f.PresentAt(doc, 0) {
		t.Error("expected first paragraph untouched")
	}
	if f.PresentAt(doc, 9) {
		t.Error("expected last paragraph untouched")
	}
	// Attribute-only toggling inserts no text, so the caret stays put.
	if want := document.PointRange(5); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}

	sel, _ = f.Toggle(doc, document.PointRange(5))
	if f.PresentAt(doc, 5) {
		t.Error("expected list removed after second toggle")
	}
	if want := document.PointRange(5); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}
}

func TestListFormatter_ToggleMultipleParagraphs(t *testing.T) {
	doc := newDoc(t, "one\ntwo\nthree")
	f := ListFormatter{Kind: document.ListOrdered}

	sel, _ := f.Toggle(doc, document.Range{Start: 1, End: 9})

	for _, index := range []int{0, 5, 9} {
		if !f.PresentAt(doc, index) {
			t.Errorf("expected paragraph at %d listed", index)
		}
	}
	// A non-empty selection widens to the full effective range.
	if want := (document.Range{Start: 0, End: 13}); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}
}

func TestListFormatter_PresenceAnywhereRemoves(t *testing.T) {
	doc := newDoc(t, "one\ntwo\nthree")
	f := ListFormatter{Kind: document.ListUnordered}
	f.Toggle(doc, document.PointRange(0)) // only first paragraph listed

	// The toggled range intersects one listed paragraph, so the direction
	// is removal for every intersected paragraph.
	f.Toggle(doc, document.Range{Start: 1, End: 9})

	for _, index := range []int{0, 5} {
		if f.PresentAt(doc, index) {
			t.Errorf("expected paragraph at %d unlisted", index)
		}
	}
}

func TestListFormatter_KindsAreExclusive(t *testing.T) {
	doc := newDoc(t, "item")
	unordered := ListFormatter{Kind: document.ListUnordered}
	ordered := ListFormatter{Kind: document.ListOrdered}

	unordered.Toggle(doc, document.PointRange(0))
	ordered.Toggle(doc, document.PointRange(0))

	if unordered.PresentAt(doc, 0) {
		t.Error("expected unordered replaced by ordered")
	}
	if !ordered.PresentAt(doc, 0) {
		t.Error("expected ordered list present")
	}
}

func TestListFormatter_EmptyDocument(t *testing.T) {
	doc := document.New()
	f := ListFormatter{Kind: document.ListUnordered}

	sel, changes := f.Toggle(doc, document.PointRange(0))
	if len(changes) != 0 {
		t.Errorf("expected no changes on empty document, got %d", len(changes))
	}
	if want := document.PointRange(0); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}
}

func TestListFormatter_BlockquoteSurvivesListToggle(t *testing.T) {
	doc := newDoc(t, "quote")
	BlockquoteFormatter{}.Toggle(doc, document.PointRange(0))
	f := ListFormatter{Kind: document.ListUnordered}

	f.Toggle(doc, document.PointRange(0))

	attrs := doc.AttributesAt(0)
	if !attrs.Paragraph.Blockquote {
		t.Error("expected blockquote preserved across list toggle")
	}
	if attrs.Paragraph.List != document.ListUnordered {
		t.Error("expected list applied")
	}

	f.Toggle(doc, document.PointRange(0))
	if !doc.AttributesAt(0).Paragraph.Blockquote {
		t.Error("expected blockquote preserved across list removal")
	}
}

func TestListFormatter_ItemNumber(t *testing.T) {
	doc := newDoc(t, "a\nb\nc\nd")
	f := ListFormatter{Kind: document.ListOrdered}
	f.Toggle(doc, document.Range{Start: 0, End: 5}) // a, b, c

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"first item", 0, 1},
		{"second item", 2, 2},
		{"third item", 4, 3},
		{"not listed", 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ItemNumber(doc, tt.index); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestListFormatter_ItemNumberRestartsAfterGap(t *testing.T) {
	doc := newDoc(t, "a\nb\nc")
	f := ListFormatter{Kind: document.ListOrdered}
	f.Toggle(doc, document.PointRange(0))
	f.Toggle(doc, document.PointRange(4))

	if got := f.ItemNumber(doc, 4); got != 1 {
		t.Errorf("expected numbering to restart after a gap, got %d", got)
	}
}

func TestListFormatter_GlyphInsertionAdjustsCaret(t *testing.T) {
	doc := newDoc(t, "item")
	f := ListFormatter{Kind: document.ListUnordered, Marker: "• "}

	sel, _ := f.Toggle(doc, document.PointRange(2))

	if got := doc.Text(); got != "• item" {
		t.Errorf("expected glyph prefix, got %q", got)
	}
	// The caret shifts by the inserted glyph length.
	if want := document.PointRange(4); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}
	if !f.PresentAt(doc, 0) {
		t.Error("expected glyph characters inside the list paragraph")
	}

	sel, _ = f.Toggle(doc, sel)
	if got := doc.Text(); got != "item" {
		t.Errorf("expected glyph stripped, got %q", got)
	}
	if want := document.PointRange(2); sel != want {
		t.Errorf("expected caret restored, got %v", sel)
	}
	if f.PresentAt(doc, 0) {
		t.Error("expected list removed")
	}
}

func TestListFormatter_OrderedGlyphNumbering(t *testing.T) {
	doc := newDoc(t, "a\nb")
	f := ListFormatter{Kind: document.ListOrdered, Marker: ". "}

	sel, _ := f.Toggle(doc, document.Range{Start: 0, End: 3})

	if got := doc.Text(); got != "1. a\n2. b" {
		t.Errorf("expected numbered glyphs, got %q", got)
	}
	if want := (document.Range{Start: 0, End: 9}); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}

	sel, _ = f.Toggle(doc, sel)
	if got := doc.Text(); got != "a\nb" {
		t.Errorf("expected glyphs stripped, got %q", got)
	}
	if want := (document.Range{Start: 0, End: 3}); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}
}

func TestListFormatter_GlyphContinuesExistingRun(t *testing.T) {
	doc := newDoc(t, "a\nb")
	f := ListFormatter{Kind: document.ListOrdered, Marker: ". "}
	f.Toggle(doc, document.PointRange(0)) // "1. a\nb"

	f.Toggle(doc, document.PointRange(5))

	if got := doc.Text(); got != "1. a\n2. b" {
		t.Errorf("expected continuation numbering, got %q", got)
	}
}
