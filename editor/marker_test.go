package editor

import (
	"testing"

	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
)

// identityReplace rewrites the full document with its own text and
// attributes, simulating the destructive bulk replace markers exist to
// survive.
func identityReplace(t *testing.T, doc *document.Document) {
	t.Helper()
	full := doc.FullRange()
	attrs := doc.AttributesIn(full)
	if _, err := doc.ReplaceAttributed(full, doc.Text(), attrs); err != nil {
		t.Fatalf("identity replace: %v", err)
	}
}

func TestMarkRestore_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"empty selection at start", 0, 0},
		{"interior range", 2, 5},
		{"from start", 0, 9},
		{"empty selection mid", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			mustInsert(t, e, "hello world")
			want := NewSelection(tt.start, tt.end)
			e.SetSelection(want)

			e.MarkSelection()
			identityReplace(t, e.Document())
			e.RestoreSelection()

			if got := e.Selection(); got != want {
				t.Errorf("expected %v restored, got %v", want, got)
			}
			for i := 0; i < e.Len(); i++ {
				if e.Document().AttributesAt(i).Markers != 0 {
					t.Errorf("expected markers stripped, found flags at %d", i)
				}
			}
		})
	}
}

func TestMarkRestore_EndMarkerOmittedAtDocumentEnd(t *testing.T) {
	e := New()
	mustInsert(t, e, "hello")
	e.SetSelection(NewSelection(2, 5))

	e.MarkSelection()
	e.RestoreSelection()

	// end+1 exceeded the length, so only the start marker was placed and
	// the end defaulted to the document length.
	if got := e.Selection(); got != NewSelection(2, 5) {
		t.Errorf("expected 2->5, got %v", got)
	}
}

func TestMarkRestore_SelectionTouchingEndDefaults(t *testing.T) {
	e := New()
	mustInsert(t, e, "hello")
	e.SetSelection(NewSelection(4, 5))

	e.MarkSelection()
	e.RestoreSelection()

	if got := e.Selection(); got != Caret(5) {
		t.Errorf("expected caret at end, got %v", got)
	}
}

func TestMarkRestore_MarkersSurviveEdits(t *testing.T) {
	e := New()
	mustInsert(t, e, "abcdef")
	e.SetSelection(NewSelection(2, 4))
	e.MarkSelection()

	// An edit before the marked span shifts it without destroying it.
	if _, err := e.Document().Replace(document.Range{Start: 0, End: 1}, "zz", document.AttributeSet{}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	e.RestoreSelection()

	if got := e.Selection(); got != NewSelection(3, 5) {
		t.Errorf("expected selection shifted to 3->5, got %v", got)
	}
	if got := e.Document().TextRange(e.Selection().Range()); got != "cd" {
		t.Errorf("expected %q still selected, got %q", "cd", got)
	}
}

func TestRestoreSelection_LastMarkerWins(t *testing.T) {
	e := New()
	mustInsert(t, e, "abcdefgh")
	doc := e.Document()

	mark := func(i int, flag document.MarkerFlags) {
		doc.ApplyAttributes(document.Range{Start: i, End: i + 1}, func(a document.AttributeSet) document.AttributeSet {
			return a.WithMarker(flag)
		})
	}
	mark(1, document.MarkerSelectionStart)
	mark(3, document.MarkerSelectionStart)
	mark(2, document.MarkerSelectionEnd)
	mark(6, document.MarkerSelectionEnd)

	e.RestoreSelection()
	if got := e.Selection(); got != NewSelection(3, 6) {
		t.Errorf("expected 3->6 from the last markers, got %v", got)
	}
}

func TestRestoreSelection_EndBeforeStartCollapses(t *testing.T) {
	e := New()
	mustInsert(t, e, "abcdef")
	doc := e.Document()
	doc.ApplyAttributes(document.Range{Start: 4, End: 5}, func(a document.AttributeSet) document.AttributeSet {
		return a.WithMarker(document.MarkerSelectionStart)
	})
	doc.ApplyAttributes(document.Range{Start: 1, End: 2}, func(a document.AttributeSet) document.AttributeSet {
		return a.WithMarker(document.MarkerSelectionEnd)
	})

	e.RestoreSelection()
	if got := e.Selection(); got != Caret(4) {
		t.Errorf("expected collapsed selection at 4, got %v", got)
	}
}

func TestRestoreSelection_AlwaysNotifies(t *testing.T) {
	e := New()
	mustInsert(t, e, "hello world")
	e.SetSelection(NewSelection(2, 5))
	e.MarkSelection()

	events := recordEvents(t, e, event.TopicSelectionChanged)
	e.RestoreSelection()

	if len(*events) != 1 {
		t.Fatalf("expected 1 selection notification, got %d", len(*events))
	}
	sc := (*events)[0].(event.SelectionChanged)
	if sc.Selection != (document.Range{Start: 2, End: 5}) {
		t.Errorf("expected restored range 2..5, got %v", sc.Selection)
	}
}

func TestRestoreSelection_UnmarkedDefaultsToEnd(t *testing.T) {
	e := New()
	mustInsert(t, e, "abc")
	e.SetSelection(Caret(0))

	e.RestoreSelection()
	if got := e.Selection(); got != Caret(3) {
		t.Errorf("expected caret at document end, got %v", got)
	}
}
