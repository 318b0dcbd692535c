package document

import "testing"

func TestEdit_Predicates(t *testing.T) {
	tests := []struct {
		name      string
		edit      Edit
		isInsert  bool
		isDelete  bool
		isReplace bool
		isNoOp    bool
	}{
		{"insert", NewInsert(3, "abc"), true, false, false, false},
		{"delete", NewDelete(1, 4), false, true, false, false},
		{"replace", NewEdit(NewRange(1, 4), "xyz"), false, false, true, false},
		{"noop", NewEdit(PointRange(2), ""), false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edit.IsInsert(); got != tt.isInsert {
				t.Errorf("IsInsert = %v, expected %v", got, tt.isInsert)
			}
			if got := tt.edit.IsDelete(); got != tt.isDelete {
				t.Errorf("IsDelete = %v, expected %v", got, tt.isDelete)
			}
			if got := tt.edit.IsReplace(); got != tt.isReplace {
				t.Errorf("IsReplace = %v, expected %v", got, tt.isReplace)
			}
			if got := tt.edit.IsNoOp(); got != tt.isNoOp {
				t.Errorf("IsNoOp = %v, expected %v", got, tt.isNoOp)
			}
		})
	}
}

func TestEdit_Delta_CountsRunes(t *testing.T) {
	e := NewEdit(NewRange(0, 2), "héllo")
	if got := e.Delta(); got != 3 {
		t.Errorf("expected delta 3 (5 runes - 2), got %d", got)
	}
}

func TestChange_Invert_Insert(t *testing.T) {
	c := Change{
		Type:     ChangeInsert,
		Range:    PointRange(2),
		NewRange: NewRange(2, 5),
		NewText:  "abc",
		NewAttrs: []AttributeSet{{}, {}, {}},
	}

	inv := c.Invert()
	if inv.Type != ChangeDelete {
		t.Errorf("expected delete, got %s", inv.Type)
	}
	if inv.Range != NewRange(2, 5) {
		t.Errorf("expected range [2:5), got %s", inv.Range)
	}
	if inv.OldText != "abc" {
		t.Errorf("expected old text %q, got %q", "abc", inv.OldText)
	}
}

func TestChange_Invert_Delete(t *testing.T) {
	c := Change{
		Type:     ChangeDelete,
		Range:    NewRange(2, 5),
		NewRange: PointRange(2),
		OldText:  "abc",
		OldAttrs: []AttributeSet{{Traits: TraitBold}, {}, {}},
	}

	inv := c.Invert()
	if inv.Type != ChangeInsert {
		t.Errorf("expected insert, got %s", inv.Type)
	}
	if inv.NewText != "abc" {
		t.Errorf("expected new text %q, got %q", "abc", inv.NewText)
	}
	if len(inv.NewAttrs) != 3 || !inv.NewAttrs[0].HasTrait(TraitBold) {
		t.Error("expected deleted attributes restored as insert attributes")
	}
}

func TestChange_Invert_Attributes_RoundTrip(t *testing.T) {
	d := NewFromString("abc", AttributeSet{})

	change := d.ApplyAttributes(NewRange(0, 3), func(a AttributeSet) AttributeSet {
		return a.WithTrait(TraitBold)
	})

	inv := change.Invert()
	if err := d.RestoreAttributes(inv.Range, inv.NewAttrs); err != nil {
		t.Fatalf("RestoreAttributes failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if d.AttributesAt(i).HasTrait(TraitBold) {
			t.Errorf("position %d should have bold removed after undo", i)
		}
	}
}

func TestChange_IsNoop(t *testing.T) {
	noop := Change{
		Type:     ChangeAttributes,
		OldAttrs: []AttributeSet{{Traits: TraitBold}},
		NewAttrs: []AttributeSet{{Traits: TraitBold}},
	}
	if !noop.IsNoop() {
		t.Error("identical attribute snapshots should be a noop")
	}

	real := Change{
		Type:     ChangeAttributes,
		OldAttrs: []AttributeSet{{}},
		NewAttrs: []AttributeSet{{Traits: TraitBold}},
	}
	if real.IsNoop() {
		t.Error("differing snapshots should not be a noop")
	}
}

func TestChangeType_String(t *testing.T) {
	tests := []struct {
		ct       ChangeType
		expected string
	}{
		{ChangeInsert, "insert"},
		{ChangeDelete, "delete"},
		{ChangeReplace, "replace"},
		{ChangeAttributes, "attributes"},
		{ChangeType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.expected {
			t.Errorf("ChangeType.String() = %q, expected %q", got, tt.expected)
		}
	}
}
