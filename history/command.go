package history

import (
	"fmt"

	"github.com/dshills/richtext/document"
)

// Command is a reversible document mutation. Commands receive the selection
// alongside the document so undo and redo can restore the caret the way the
// original edit left it; sel may be nil when no caret tracking is wanted.
type Command interface {
	Execute(doc *document.Document, sel *document.Range) error
	Undo(doc *document.Document, sel *document.Range) error
	Description() string
}

// setSelection assigns through sel when the caller tracks one.
func setSelection(sel *document.Range, r document.Range) {
	if sel != nil {
		*sel = r
	}
}

// InsertCommand inserts text at a position.
type InsertCommand struct {
	At    int
	Text  string
	Attrs document.AttributeSet

	recorded document.Change
}

// NewInsertCommand creates an insert command.
func NewInsertCommand(at int, text string, attrs document.AttributeSet) *InsertCommand {
	return &InsertCommand{At: at, Text: text, Attrs: attrs}
}

// Execute inserts the text.
func (c *InsertCommand) Execute(doc *document.Document, sel *document.Range) error {
	ch, err := doc.ReplaceRecorded(document.PointRange(c.At), c.Text, c.Attrs)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", c.At, err)
	}
	c.recorded = ch
	setSelection(sel, document.PointRange(ch.NewRange.End))
	return nil
}

// Undo removes the inserted text.
func (c *InsertCommand) Undo(doc *document.Document, sel *document.Range) error {
	if err := doc.ApplyChange(c.recorded.Invert()); err != nil {
		return fmt.Errorf("undo insert at %d: %w", c.At, err)
	}
	setSelection(sel, document.PointRange(c.At))
	return nil
}

// Description returns a human-readable description.
func (c *InsertCommand) Description() string {
	return "insert text"
}

// DeleteCommand removes a range of text.
type DeleteCommand struct {
	Range document.Range

	recorded document.Change
}

// NewDeleteCommand creates a delete command.
func NewDeleteCommand(r document.Range) *DeleteCommand {
	return &DeleteCommand{Range: r}
}

// Execute deletes the range.
func (c *DeleteCommand) Execute(doc *document.Document, sel *document.Range) error {
	ch, err := doc.ReplaceRecorded(c.Range, "", document.AttributeSet{})
	if err != nil {
		return fmt.Errorf("delete %v: %w", c.Range, err)
	}
	c.recorded = ch
	setSelection(sel, document.PointRange(c.Range.Start))
	return nil
}

// Undo restores the deleted text with its attributes.
func (c *DeleteCommand) Undo(doc *document.Document, sel *document.Range) error {
	if err := doc.ApplyChange(c.recorded.Invert()); err != nil {
		return fmt.Errorf("undo delete %v: %w", c.Range, err)
	}
	setSelection(sel, c.Range)
	return nil
}

// Description returns a human-readable description.
func (c *DeleteCommand) Description() string {
	return "delete text"
}

// ReplaceCommand replaces a range with new text.
type ReplaceCommand struct {
	Range document.Range
	Text  string
	Attrs document.AttributeSet

	recorded document.Change
}

// NewReplaceCommand creates a replace command.
func NewReplaceCommand(r document.Range, text string, attrs document.AttributeSet) *ReplaceCommand {
	return &ReplaceCommand{Range: r, Text: text, Attrs: attrs}
}

// Execute performs the replacement.
func (c *ReplaceCommand) Execute(doc *document.Document, sel *document.Range) error {
	ch, err := doc.ReplaceRecorded(c.Range, c.Text, c.Attrs)
	if err != nil {
		return fmt.Errorf("replace %v: %w", c.Range, err)
	}
	c.recorded = ch
	setSelection(sel, document.PointRange(ch.NewRange.End))
	return nil
}

// Undo restores the original text and attributes.
func (c *ReplaceCommand) Undo(doc *document.Document, sel *document.Range) error {
	if err := doc.ApplyChange(c.recorded.Invert()); err != nil {
		return fmt.Errorf("undo replace %v: %w", c.Range, err)
	}
	setSelection(sel, c.Range)
	return nil
}

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	return "replace text"
}

// ChangeCommand wraps changes that were already applied and recorded
// elsewhere, such as by a formatter. Execute replays them; the first
// Execute call after recording is therefore skipped by pushing the command
// with Push rather than Execute.
type ChangeCommand struct {
	Name    string
	Changes []document.Change

	// Before and After are the selections surrounding the original edit.
	Before document.Range
	After  document.Range
}

// NewChangeCommand wraps recorded changes as an undoable command.
func NewChangeCommand(name string, changes []document.Change, before, after document.Range) *ChangeCommand {
	return &ChangeCommand{Name: name, Changes: changes, Before: before, After: after}
}

// NewAttributeCommand wraps a single recorded attribute-only change. The
// change carries its own before-snapshot, so undo restores the prior
// attributes exactly.
func NewAttributeCommand(name string, ch document.Change, before document.Range) *ChangeCommand {
	return NewChangeCommand(name, []document.Change{ch}, before, before)
}

// Execute replays the recorded changes in order.
func (c *ChangeCommand) Execute(doc *document.Document, sel *document.Range) error {
	for i, ch := range c.Changes {
		if err := doc.ApplyChange(ch); err != nil {
			return fmt.Errorf("%s step %d: %w", c.Description(), i, err)
		}
	}
	setSelection(sel, c.After)
	return nil
}

// Undo reverts the recorded changes in reverse order.
func (c *ChangeCommand) Undo(doc *document.Document, sel *document.Range) error {
	for i := len(c.Changes) - 1; i >= 0; i-- {
		if err := doc.ApplyChange(c.Changes[i].Invert()); err != nil {
			return fmt.Errorf("undo %s step %d: %w", c.Description(), i, err)
		}
	}
	setSelection(sel, c.Before)
	return nil
}

// Description returns the command's name.
func (c *ChangeCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	return "edit"
}

// CompoundCommand combines multiple commands into a single undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{Name: name, Commands: commands}
}

// Execute runs all commands in order. On error, already-executed commands
// are undone in reverse.
func (c *CompoundCommand) Execute(doc *document.Document, sel *document.Range) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(doc, sel); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(doc, sel)
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(doc *document.Document, sel *document.Range) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(doc, sel); err != nil {
			return fmt.Errorf("undo compound command %q step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("%d edits", len(c.Commands))
}
