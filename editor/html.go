package editor

import (
	"errors"

	"github.com/dshills/richtext/document"
	"github.com/dshills/richtext/event"
)

var (
	// ErrNoImporter is returned by SetHTML when no importer is configured.
	ErrNoImporter = errors.New("no html importer configured")
	// ErrNoExporter is returned by GetHTML when no exporter is configured.
	ErrNoExporter = errors.New("no html exporter configured")
)

// Importer parses external HTML into an attributed document. The base
// attributes style text the markup leaves unstyled.
type Importer interface {
	ImportHTML(html string, base document.AttributeSet) (*document.Document, error)
}

// Exporter renders a document back to HTML.
type Exporter interface {
	ExportHTML(doc *document.Document) (string, error)
}

// SetHTML replaces the document content with the imported markup as a
// single edit. History is cleared: undoing across a wholesale content swap
// would splice stale ranges into the new text. Attachments no longer
// referenced by the new content are dropped from the registry.
func (e *Editor) SetHTML(html string) error {
	if e.importer == nil {
		return ErrNoImporter
	}
	imported, err := e.importer.ImportHTML(html, e.pending.Attributes())
	if err != nil {
		return err
	}

	full := e.doc.FullRange()
	attrs := imported.AttributesIn(imported.FullRange())
	if _, err := e.doc.ReplaceAttributed(full, imported.Text(), attrs); err != nil {
		return err
	}
	e.history.Clear()
	e.pruneAttachments()

	prev := e.selection
	e.selection = Caret(e.doc.Len())
	e.refreshPending()
	e.publish(event.DocumentReplaced{Revision: e.doc.RevisionID(), Length: e.doc.Len()})
	e.publishSelectionChanged(prev)
	return nil
}

// GetHTML renders the current document through the configured exporter.
func (e *Editor) GetHTML() (string, error) {
	if e.exporter == nil {
		return "", ErrNoExporter
	}
	return e.exporter.ExportHTML(e.doc)
}

// pruneAttachments drops registry entries whose placeholder no longer
// appears in the document.
func (e *Editor) pruneAttachments() {
	if e.registry.Len() == 0 {
		return
	}
	live := make(map[string]bool)
	for _, attrs := range e.doc.AttributesIn(e.doc.FullRange()) {
		if attrs.AttachmentID != "" {
			live[attrs.AttachmentID] = true
		}
	}
	for _, id := range e.registry.IDs() {
		if !live[id] {
			e.registry.Remove(id)
		}
	}
}
