package codec

import (
	"errors"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/logging"
)

// ErrInvalidDocument is returned when the payload is not a document tree.
var ErrInvalidDocument = errors.New("invalid document json")

// Node types understood by the codec.
const (
	NodeDoc         = "doc"
	NodeParagraph   = "paragraph"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeBlockquote  = "blockquote"
	NodeImage       = "image"
	NodeText        = "text"
	NodeHardBreak   = "hardBreak"
)

// Mark types understood by the codec.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkLink      = "link"
)

// Node is one element of the serialized document tree. Block nodes carry
// Content; text leaves carry Text and Marks.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is inline formatting applied to a text leaf.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

type options struct {
	registry *attachment.Registry
	logger   *logging.Logger
	indent   bool
}

// Option configures encoding or decoding.
type Option func(*options)

// WithAttachments supplies the registry used to resolve image nodes. The
// encoder reads attachment state from it; the decoder registers decoded
// images into it.
func WithAttachments(reg *attachment.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithLogger sets the logger used for skipped-content warnings.
func WithLogger(logger *logging.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIndent makes Encode emit indented output.
func WithIndent() Option {
	return func(o *options) {
		o.indent = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: logging.NullLogger}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
