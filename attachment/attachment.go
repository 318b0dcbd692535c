package attachment

import (
	"image"
	"net/url"

	"github.com/lucasb-eyer/go-colorful"
)

// Alignment positions an attachment within its line box.
type Alignment int

const (
	// AlignLeft pins the attachment to the leading edge.
	AlignLeft Alignment = iota

	// AlignCenter centers the attachment.
	AlignCenter

	// AlignRight pins the attachment to the trailing edge.
	AlignRight
)

// String returns a human-readable alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// SizeMode controls how an attachment scales when displayed.
type SizeMode int

const (
	// SizeIntrinsic displays the image at its natural size.
	SizeIntrinsic SizeMode = iota

	// SizeFit scales the image down to fit the available width, keeping
	// aspect ratio.
	SizeFit

	// SizeFixed displays the image at an explicit size.
	SizeFixed
)

// String returns a human-readable size mode name.
func (m SizeMode) String() string {
	switch m {
	case SizeIntrinsic:
		return "intrinsic"
	case SizeFit:
		return "fit"
	case SizeFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Size describes an attachment's display size. Width and Height are in
// points and only consulted when Mode is SizeFixed.
type Size struct {
	Mode   SizeMode
	Width  float64
	Height float64
}

// Progress is transient fetch-progress UI state shown over an attachment.
type Progress struct {
	// Fraction is the completed portion in [0, 1].
	Fraction float64

	// Color tints the progress indicator.
	Color colorful.Color
}

// Attachment is a non-text embedded object occupying exactly one character
// position in a document. Display state is mutable; mutate through the
// Registry so invalidation notifications fire.
type Attachment struct {
	id string

	// URL identifies the content.
	URL *url.URL

	// Alignment positions the attachment in its line box.
	Alignment Alignment

	// Size controls display scaling.
	Size Size

	// Image holds resolved pixel data, or nil until a fetch completes.
	Image image.Image

	// Progress is the fetch progress overlay, or nil when hidden.
	Progress *Progress

	// Message is an overlay message, empty when hidden.
	Message string
}

// ID returns the attachment's unique identifier. Identifiers are assigned
// at creation and never reused.
func (a *Attachment) ID() string {
	return a.id
}

// Resolved returns true once pixel data has arrived.
func (a *Attachment) Resolved() bool {
	return a.Image != nil
}
