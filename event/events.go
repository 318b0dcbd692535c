package event

import "github.com/dshills/richtext/document"

// Event topics.
const (
	// TopicSelectionChanged is published when the editor moves the selection
	// on its own: edit-time maintenance, undo and redo, marker restoration,
	// and deferred caret nudges. Host-initiated moves and ordinary typing are
	// silent.
	TopicSelectionChanged Topic = "selection.changed"

	// TopicTextChanged is published after every text mutation.
	TopicTextChanged Topic = "document.text.changed"

	// TopicAttributesChanged is published after an attribute-only mutation.
	TopicAttributesChanged Topic = "document.attributes.changed"

	// TopicDocumentReplaced is published when the whole document is swapped,
	// such as after decoding imported content.
	TopicDocumentReplaced Topic = "document.replaced"

	// TopicAttachmentInvalidated is published when an attachment's content
	// changed and its placeholder needs redisplay.
	TopicAttachmentInvalidated Topic = "attachment.invalidated"
)

// SelectionChanged is published when the selection moves.
type SelectionChanged struct {
	// Selection is the selection after the move.
	Selection document.Range

	// Previous is the selection before the move.
	Previous document.Range
}

// EventTopic implements TopicProvider.
func (e SelectionChanged) EventTopic() Topic { return TopicSelectionChanged }

// TextChanged is published after a text mutation.
type TextChanged struct {
	// OldRange is the replaced range in the previous content.
	OldRange document.Range

	// NewRange is the range of the inserted text in the new content.
	NewRange document.Range

	// Revision identifies the document state after the mutation.
	Revision document.RevisionID
}

// EventTopic implements TopicProvider.
func (e TextChanged) EventTopic() Topic { return TopicTextChanged }

// AttributesChanged is published after an attribute-only mutation.
type AttributesChanged struct {
	// Range is the span whose attributes changed.
	Range document.Range

	// Revision identifies the document state after the mutation.
	Revision document.RevisionID
}

// EventTopic implements TopicProvider.
func (e AttributesChanged) EventTopic() Topic { return TopicAttributesChanged }

// DocumentReplaced is published when the whole document content is swapped.
type DocumentReplaced struct {
	// Revision identifies the new document state.
	Revision document.RevisionID

	// Length is the new document length in characters.
	Length int
}

// EventTopic implements TopicProvider.
func (e DocumentReplaced) EventTopic() Topic { return TopicDocumentReplaced }

// AttachmentInvalidated is published when an attachment changes and its
// placeholder needs redisplay.
type AttachmentInvalidated struct {
	// ID is the attachment identifier.
	ID string
}

// EventTopic implements TopicProvider.
func (e AttachmentInvalidated) EventTopic() Topic { return TopicAttachmentInvalidated }
