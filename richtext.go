// Package richtext provides an attributed rich-text editing core: a
// document model with per-character attributes, style inspection and
// toggling, paragraph formatting, selection handling, and attachment
// management.
//
// The subpackages carry the implementation; this package re-exports the
// types most hosts need so simple integrations can import one path.
//
// Basic usage:
//
//	ed := richtext.New(richtext.WithContent("hello", richtext.AttributeSet{}))
//	ed.SetSelection(richtext.NewSelection(0, 5))
//	ed.ToggleBold()
package richtext

import (
	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/editor"
	"github.com/dshills/richtext/event"
	"github.com/dshills/richtext/format"
	"github.com/dshills/richtext/history"
)

// Re-export commonly used types for convenience.
type (
	// Document is an attributed rune sequence.
	Document = document.Document

	// AttributeSet describes the styling of a single character.
	AttributeSet = document.AttributeSet

	// Range is a half-open character range.
	Range = document.Range

	// EditResult contains information about a completed edit.
	EditResult = document.EditResult

	// Change records a mutation and can be inverted for undo.
	Change = document.Change

	// ParagraphStyle carries block-level formatting.
	ParagraphStyle = document.ParagraphStyle

	// Editor coordinates a document, a selection, and formatting state.
	Editor = editor.Editor

	// Option configures an Editor.
	Option = editor.Option

	// Selection is an anchored character span.
	Selection = editor.Selection

	// Attachment is an embedded object referenced from the document.
	Attachment = attachment.Attachment

	// Registry tracks attachments by id.
	Registry = attachment.Registry

	// ImageProvider fetches attachment images asynchronously.
	ImageProvider = attachment.ImageProvider

	// URLProvider resolves an image back to a persistent URL.
	URLProvider = attachment.URLProvider

	// Identifier names a toggleable style.
	Identifier = format.Identifier

	// Bus delivers editing notifications synchronously.
	Bus = event.Bus

	// History is an undo/redo stack.
	History = history.History
)

// Re-export constants.
const (
	TraitBold   = document.TraitBold
	TraitItalic = document.TraitItalic

	LineStyleNone   = document.LineStyleNone
	LineStyleSingle = document.LineStyleSingle

	ListNone      = document.ListNone
	ListOrdered   = document.ListOrdered
	ListUnordered = document.ListUnordered
)

// Re-export editor options.
var (
	WithContent     = editor.WithContent
	WithLogger      = editor.WithLogger
	WithBus         = editor.WithBus
	WithHistory     = editor.WithHistory
	WithNudgeDelay  = editor.WithNudgeDelay
	WithListMarkers = editor.WithListMarkers
)

// New creates an editor over an empty document.
func New(opts ...Option) *Editor {
	return editor.New(opts...)
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return document.New()
}

// NewRange creates a range spanning [start, end).
func NewRange(start, end int) Range {
	return document.NewRange(start, end)
}

// NewSelection creates a selection between an anchor and a head.
func NewSelection(anchor, head int) Selection {
	return editor.NewSelection(anchor, head)
}

// Caret creates an empty selection at offset.
func Caret(offset int) Selection {
	return editor.Caret(offset)
}
