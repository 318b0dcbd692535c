package history

import (
	"errors"
	"testing"

	"github.com/dshills/richtext/document"
)

func newDoc(text string) *document.Document {
	return document.NewFromString(text, document.AttributeSet{})
}

func TestInsertCommand_ExecuteUndoRedo(t *testing.T) {
	doc := newDoc("hello world")
	sel := document.PointRange(0)
	h := NewHistory(10)

	cmd := NewInsertCommand(5, " big", document.AttributeSet{})
	if err := h.Execute(cmd, doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "hello big world" {
		t.Errorf("expected %q, got %q", "hello big world", got)
	}
	if want := document.PointRange(9); sel != want {
		t.Errorf("expected selection %v, got %v", want, sel)
	}

	if err := h.Undo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "hello world" {
		t.Errorf("expected %q after undo, got %q", "hello world", got)
	}
	if want := document.PointRange(5); sel != want {
		t.Errorf("expected selection %v after undo, got %v", want, sel)
	}

	if err := h.Redo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "hello big world" {
		t.Errorf("expected %q after redo, got %q", "hello big world", got)
	}
}

func TestDeleteCommand_UndoRestoresAttributes(t *testing.T) {
	doc := newDoc("bold text")
	doc.ApplyAttributes(document.Range{Start: 0, End: 4}, func(a document.AttributeSet) document.AttributeSet {
		return a.WithTrait(document.TraitBold)
	})
	sel := document.PointRange(0)
	h := NewHistory(10)

	cmd := NewDeleteCommand(document.Range{Start: 0, End: 5})
	if err := h.Execute(cmd, doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "text" {
		t.Errorf("expected %q, got %q", "text", got)
	}

	if err := h.Undo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "bold text" {
		t.Errorf("expected %q after undo, got %q", "bold text", got)
	}
	// Deleted characters come back with their original styling.
	if !doc.AttributesAt(0).HasTrait(document.TraitBold) {
		t.Error("expected bold restored by undo")
	}
	if doc.AttributesAt(5).HasTrait(document.TraitBold) {
		t.Error("expected plain text to stay plain")
	}
}

func TestReplaceCommand_RoundTrip(t *testing.T) {
	doc := newDoc("one two three")
	sel := document.PointRange(0)
	h := NewHistory(10)

	cmd := NewReplaceCommand(document.Range{Start: 4, End: 7}, "2", document.AttributeSet{})
	if err := h.Execute(cmd, doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "one 2 three" {
		t.Errorf("expected %q, got %q", "one 2 three", got)
	}

	if err := h.Undo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "one two three" {
		t.Errorf("expected %q after undo, got %q", "one two three", got)
	}
	if want := (document.Range{Start: 4, End: 7}); sel != want {
		t.Errorf("expected selection %v after undo, got %v", want, sel)
	}
}

func TestChangeCommand_WrapsRecordedChanges(t *testing.T) {
	doc := newDoc("styled")
	sel := document.PointRange(0)
	h := NewHistory(10)

	// The attribute change is applied first, then wrapped for undo.
	change := doc.ApplyAttributes(document.Range{Start: 0, End: 6}, func(a document.AttributeSet) document.AttributeSet {
		return a.WithTrait(document.TraitItalic)
	})
	h.Push(NewChangeCommand("italic", []document.Change{change},
		document.PointRange(3), document.Range{Start: 0, End: 6}))

	if err := h.Undo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.AttributesAt(0).HasTrait(document.TraitItalic) {
		t.Error("expected italic removed by undo")
	}
	if want := document.PointRange(3); sel != want {
		t.Errorf("expected selection %v after undo, got %v", want, sel)
	}

	if err := h.Redo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.AttributesAt(0).HasTrait(document.TraitItalic) {
		t.Error("expected italic restored by redo")
	}
	if want := (document.Range{Start: 0, End: 6}); sel != want {
		t.Errorf("expected selection %v after redo, got %v", want, sel)
	}
}

func TestHistory_PushClearsRedo(t *testing.T) {
	doc := newDoc("abc")
	sel := document.PointRange(0)
	h := NewHistory(10)

	h.Execute(NewInsertCommand(3, "d", document.AttributeSet{}), doc, &sel)
	h.Undo(doc, &sel)
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	h.Execute(NewInsertCommand(3, "x", document.AttributeSet{}), doc, &sel)
	if h.CanRedo() {
		t.Error("expected redo cleared by a new edit")
	}
}

func TestHistory_EmptyStacks(t *testing.T) {
	doc := newDoc("abc")
	h := NewHistory(10)

	if err := h.Undo(doc, nil); err != ErrNothingToUndo {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
	if err := h.Redo(doc, nil); err != ErrNothingToRedo {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestHistory_Grouping(t *testing.T) {
	doc := newDoc("")
	sel := document.PointRange(0)
	h := NewHistory(10)

	h.BeginGroup("type word")
	h.Execute(NewInsertCommand(0, "a", document.AttributeSet{}), doc, &sel)
	h.Execute(NewInsertCommand(1, "b", document.AttributeSet{}), doc, &sel)
	h.Execute(NewInsertCommand(2, "c", document.AttributeSet{}), doc, &sel)
	h.EndGroup()

	if got := doc.Text(); got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
	if got := h.UndoCount(); got != 1 {
		t.Fatalf("expected 1 undo unit, got %d", got)
	}

	if err := h.Undo(doc, &sel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "" {
		t.Errorf("expected empty document after group undo, got %q", got)
	}

	info, ok := h.PeekRedo()
	if !ok || info.Description != "type word" {
		t.Errorf("expected group description, got %q", info.Description)
	}
}

func TestHistory_CancelGroup(t *testing.T) {
	doc := newDoc("")
	sel := document.PointRange(0)
	h := NewHistory(10)

	h.BeginGroup("discarded")
	h.Execute(NewInsertCommand(0, "a", document.AttributeSet{}), doc, &sel)
	h.CancelGroup()

	if h.CanUndo() {
		t.Error("expected nothing pushed after cancel")
	}
	// The executed command still affected the document.
	if got := doc.Text(); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
}

func TestHistory_Transaction(t *testing.T) {
	doc := newDoc("")
	sel := document.PointRange(0)
	h := NewHistory(10)

	err := h.Transaction("insert pair", func() error {
		if err := h.Execute(NewInsertCommand(0, "(", document.AttributeSet{}), doc, &sel); err != nil {
			return err
		}
		return h.Execute(NewInsertCommand(1, ")", document.AttributeSet{}), doc, &sel)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.UndoCount(); got != 1 {
		t.Errorf("expected 1 undo unit, got %d", got)
	}

	boom := errors.New("boom")
	err = h.Transaction("failing", func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if got := h.UndoCount(); got != 1 {
		t.Errorf("expected failed transaction to push nothing, got %d units", got)
	}
}

func TestHistory_MaxEntries(t *testing.T) {
	doc := newDoc("")
	sel := document.PointRange(0)
	h := NewHistory(3)

	for i := 0; i < 5; i++ {
		h.Execute(NewInsertCommand(doc.Len(), "x", document.AttributeSet{}), doc, &sel)
	}

	if got := h.UndoCount(); got != 3 {
		t.Errorf("expected 3 undo units after trim, got %d", got)
	}

	h.SetMaxEntries(1)
	if got := h.UndoCount(); got != 1 {
		t.Errorf("expected 1 undo unit after SetMaxEntries, got %d", got)
	}
}

func TestCompoundCommand_RollbackOnFailure(t *testing.T) {
	doc := newDoc("abc")
	sel := document.PointRange(0)

	good := NewInsertCommand(3, "!", document.AttributeSet{})
	// An insert far past the end fails validation.
	bad := &ReplaceCommand{Range: document.Range{Start: 100, End: 200}, Text: "x"}

	cmd := NewCompoundCommand("mixed", good, bad)
	if err := cmd.Execute(doc, &sel); err == nil {
		t.Fatal("expected error from failing step")
	}
	// The successful first step was rolled back.
	if got := doc.Text(); got != "abc" {
		t.Errorf("expected rollback to %q, got %q", "abc", got)
	}
}

func TestHistory_UndoInfo(t *testing.T) {
	doc := newDoc("")
	sel := document.PointRange(0)
	h := NewHistory(10)

	h.Execute(NewInsertCommand(0, "a", document.AttributeSet{}), doc, &sel)
	h.Execute(NewDeleteCommand(document.Range{Start: 0, End: 1}), doc, &sel)

	info := h.UndoInfo()
	if len(info) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(info))
	}
	if info[0].Description != "insert text" || info[1].Description != "delete text" {
		t.Errorf("unexpected descriptions: %q, %q", info[0].Description, info[1].Description)
	}

	peek, ok := h.PeekUndo()
	if !ok || peek.Description != "delete text" {
		t.Errorf("expected peek at delete, got %q", peek.Description)
	}
}
