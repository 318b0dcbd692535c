package editor

import (
	"context"
	"time"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
	"github.com/dshills/richtext/format"
	"github.com/dshills/richtext/history"
	"github.com/dshills/richtext/logging"
)

// DefaultNudgeDelay is the deferred caret-refresh delay applied after
// newline edits.
const DefaultNudgeDelay = 50 * time.Millisecond

const defaultInboxSize = 64

// Editor owns an attributed document and applies every mutation to it.
// All mutating and inspecting methods must be called from one goroutine,
// the mutation context; asynchronous work communicates back through the
// inbox, drained by Dispatch on that same goroutine.
type Editor struct {
	doc      *document.Document
	registry *attachment.Registry
	pending  *format.Pending
	history  *history.History
	bus      event.Bus
	logger   *logging.Logger

	provider attachment.ImageProvider
	urls     attachment.URLProvider
	importer Importer
	exporter Exporter

	selection  Selection
	ordered    format.ListFormatter
	unordered  format.ListFormatter
	blockquote format.BlockquoteFormatter

	nudgeDelay time.Duration
	inbox      chan message
	ready      chan struct{}
}

// Option configures an editor.
type Option func(*Editor)

// WithLogger sets the editor's logger.
func WithLogger(logger *logging.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithBus sets the event bus notifications are published to.
func WithBus(bus event.Bus) Option {
	return func(e *Editor) {
		if bus != nil {
			e.bus = bus
		}
	}
}

// WithHistory sets the undo history.
func WithHistory(h *history.History) Option {
	return func(e *Editor) {
		if h != nil {
			e.history = h
		}
	}
}

// WithImageProvider sets the capability used to resolve attachment images.
// Inserting an attachment without one is a configuration error.
func WithImageProvider(p attachment.ImageProvider) Option {
	return func(e *Editor) {
		e.provider = p
	}
}

// WithURLProvider sets the capability mapping in-memory images back to URLs
// during re-serialization.
func WithURLProvider(p attachment.URLProvider) Option {
	return func(e *Editor) {
		e.urls = p
	}
}

// WithHTML sets the HTML import and export implementations.
func WithHTML(imp Importer, exp Exporter) Option {
	return func(e *Editor) {
		e.importer = imp
		e.exporter = exp
	}
}

// WithNudgeDelay overrides the deferred caret-refresh delay.
func WithNudgeDelay(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.nudgeDelay = d
		}
	}
}

// WithListMarkers enables glyph mode on the list formatters: unordered
// items are prefixed with marker, ordered items with their number followed
// by suffix. Empty strings keep list presence attribute-only.
func WithListMarkers(marker, suffix string) Option {
	return func(e *Editor) {
		e.unordered.Marker = marker
		e.ordered.Marker = suffix
	}
}

// WithContent starts the editor from existing text.
func WithContent(text string, attrs document.AttributeSet) Option {
	return func(e *Editor) {
		e.doc = document.NewFromString(text, attrs)
	}
}

// WithDocument starts the editor over an existing document, such as one
// produced by decoding.
func WithDocument(doc *document.Document) Option {
	return func(e *Editor) {
		if doc != nil {
			e.doc = doc
		}
	}
}

// WithAttachments adopts a registry already holding the document's
// attachments. New rewires its invalidation to the editor's bus.
func WithAttachments(reg *attachment.Registry) Option {
	return func(e *Editor) {
		if reg != nil {
			e.registry = reg
		}
	}
}

// New creates an editor over an empty document.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:        document.New(),
		pending:    format.NewPending(),
		logger:     logging.NullLogger,
		nudgeDelay: DefaultNudgeDelay,
		inbox:      make(chan message, defaultInboxSize),
		ready:      make(chan struct{}, 1),
		ordered:    format.ListFormatter{Kind: document.ListOrdered},
		unordered:  format.ListFormatter{Kind: document.ListUnordered},
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.bus == nil {
		e.bus = event.NewBus(event.WithLogger(e.logger))
	}
	if e.history == nil {
		e.history = history.NewHistory(0)
	}
	if e.registry == nil {
		e.registry = attachment.NewRegistry(attachment.WithLogger(e.logger))
	}
	e.registry.OnInvalidate(func(id string) {
		e.publish(event.AttachmentInvalidated{ID: id})
	})
	e.selection = Caret(e.doc.Len())
	e.refreshPending()
	return e
}

// Document returns the underlying document. Mutating it directly bypasses
// history and notifications.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// Attachments returns the attachment registry.
func (e *Editor) Attachments() *attachment.Registry {
	return e.registry
}

// History returns the undo history.
func (e *Editor) History() *history.History {
	return e.history
}

// Bus returns the event bus.
func (e *Editor) Bus() event.Bus {
	return e.bus
}

// Text returns the document text.
func (e *Editor) Text() string {
	return e.doc.Text()
}

// Len returns the document length in characters.
func (e *Editor) Len() int {
	return e.doc.Len()
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.selection
}

// SetSelection moves the selection, clamped into the document, and
// re-derives the pending style from the new caret position.
func (e *Editor) SetSelection(sel Selection) {
	e.selection = sel.Clamp(e.doc.Len())
	e.refreshPending()
}

// Inspector returns a style inspector over the current document and pending
// style.
func (e *Editor) Inspector() *format.Inspector {
	return format.NewInspector(e.doc, e.pending)
}

// SelectionIdentifiers returns the style identifiers spanning the current
// selection. An empty selection reports the caret's reference character.
func (e *Editor) SelectionIdentifiers() format.Set {
	return e.Inspector().IdentifiersSpanning(e.selection.Range())
}

// PendingIdentifiers returns the identifiers implied by the pending style.
func (e *Editor) PendingIdentifiers() format.Set {
	return e.Inspector().IdentifiersForPendingInsertion()
}

// Undo reverts the most recent undo unit and restores its selection.
func (e *Editor) Undo() error {
	prev := e.selection
	r := e.selection.Range()
	if err := e.history.Undo(e.doc, &r); err != nil {
		return err
	}
	e.selection = FromRange(r).Clamp(e.doc.Len())
	e.refreshPending()
	e.publish(event.DocumentReplaced{Revision: e.doc.RevisionID(), Length: e.doc.Len()})
	e.publishSelectionChanged(prev)
	return nil
}

// Redo reapplies the most recently undone unit.
func (e *Editor) Redo() error {
	prev := e.selection
	r := e.selection.Range()
	if err := e.history.Redo(e.doc, &r); err != nil {
		return err
	}
	e.selection = FromRange(r).Clamp(e.doc.Len())
	e.refreshPending()
	e.publish(event.DocumentReplaced{Revision: e.doc.RevisionID(), Length: e.doc.Len()})
	e.publishSelectionChanged(prev)
	return nil
}

// refreshPending re-derives the pending style from the caret position.
func (e *Editor) refreshPending() {
	e.pending.RefreshAt(e.doc, e.selection.Head)
}

func (e *Editor) publish(ev event.TopicProvider) {
	if err := e.bus.Publish(context.Background(), ev); err != nil {
		e.logger.Warn("event delivery: %v", err)
	}
}

// publishSelectionChanged reports a silent selection move, skipping the
// notification when nothing moved.
func (e *Editor) publishSelectionChanged(prev Selection) {
	if prev == e.selection {
		return
	}
	e.publish(event.SelectionChanged{
		Selection: e.selection.Range(),
		Previous:  prev.Range(),
	})
}

func (e *Editor) publishTextChanged(ch document.Change) {
	e.publish(event.TextChanged{
		OldRange: ch.Range,
		NewRange: ch.NewRange,
		Revision: e.doc.RevisionID(),
	})
}

func (e *Editor) publishAttributesChanged(r document.Range) {
	e.publish(event.AttributesChanged{
		Range:    r,
		Revision: e.doc.RevisionID(),
	})
}
