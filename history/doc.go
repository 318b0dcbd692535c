// Package history provides undo/redo for attributed documents.
//
// The history system uses the Command pattern to encapsulate edits, enabling
// them to be executed, undone, and redone. Key concepts:
//
// # Commands
//
// Commands implement the Command interface with Execute and Undo methods.
// Built-in commands include:
//   - InsertCommand: insert text at a position
//   - DeleteCommand: delete a range
//   - ReplaceCommand: replace a range with new text
//   - ChangeCommand: wrap changes recorded by formatters
//   - CompoundCommand: group multiple commands as one undo unit
//
// Text commands record the attributes they displace, so undo restores both
// content and styling.
//
// # History Stack
//
// The History type manages undo/redo stacks and command grouping:
//
//	history := NewHistory(1000) // max 1000 undo units
//
//	history.Execute(cmd, doc, &sel)
//
//	history.Undo(doc, &sel)
//	history.Redo(doc, &sel)
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	history.BeginGroup("apply list")
//	// ... multiple edits ...
//	history.EndGroup()
//
// # Selection Restoration
//
// Commands accept a selection pointer and restore it on undo/redo so the
// caret lands where the original edit left it.
package history
