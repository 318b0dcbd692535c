// Package editor provides the editing facade over an attributed document:
// selection tracking, character and paragraph formatting commands, undo
// history, edit-time paragraph maintenance, selection preservation markers,
// and asynchronous attachment image resolution.
//
// Core features:
//
//   - Editor owning the document, selection, pending style, history,
//     attachment registry, and event bus
//   - Edit-time maintenance: return on an empty list or quote line clears
//     the formatting instead of inserting; deleting a leading newline
//     clears orphaned paragraph formatting at the document start
//   - Selection markers that survive wholesale content replacement
//   - An inbox marshaling asynchronous results (image fetches, deferred
//     caret nudges) back onto the mutation context
//   - HTML import and export through injected implementations
//
// Basic usage:
//
//	ed := editor.New()
//	ed.InsertText("hello")
//	ed.SetSelection(editor.NewSelection(0, 5))
//	ed.ToggleBold()
//	ids := ed.SelectionIdentifiers() // contains format.Bold
//	ed.Undo()
//
// Every method must be called from a single goroutine, the mutation
// context. Asynchronous work signals through Ready and is applied by
// Dispatch on that same goroutine; nothing else mutates the document.
package editor
