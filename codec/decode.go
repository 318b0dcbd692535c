package codec

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
)

// Decode parses a JSON node tree into a new document. Unknown node and mark
// types are logged and skipped so payloads from newer writers degrade
// instead of failing. Image nodes register attachments into the registry
// passed via WithAttachments; without one they decode to bare placeholder
// runes.
func Decode(data []byte, opts ...Option) (*document.Document, error) {
	o := newOptions(opts)
	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("codec: parse: %w", err)
	}
	if root.Type != NodeDoc {
		return nil, fmt.Errorf("%w: root node type %q", ErrInvalidDocument, root.Type)
	}
	b := builder{opts: o}
	b.blocks(root.Content, document.ParagraphStyle{})
	return b.build()
}

// builder accumulates decoded runes and their attributes. Paragraphs join
// with a newline carrying the finished paragraph's style, so a document that
// ends mid paragraph round-trips without growing a trailing newline.
type builder struct {
	opts  *options
	runes []rune
	attrs []document.AttributeSet
	style document.ParagraphStyle
	open  bool
}

func (b *builder) append(r rune, attrs document.AttributeSet) {
	b.runes = append(b.runes, r)
	b.attrs = append(b.attrs, attrs)
}

func (b *builder) beginParagraph(style document.ParagraphStyle) {
	if b.open {
		b.append('\n', document.AttributeSet{Paragraph: b.style})
	}
	b.open = true
	b.style = style
}

func (b *builder) blocks(nodes []Node, style document.ParagraphStyle) {
	for _, n := range nodes {
		switch n.Type {
		case NodeParagraph:
			b.beginParagraph(style)
			b.inline(n.Content, style)
		case NodeBlockquote:
			quoted := style
			quoted.Blockquote = true
			quoted.HeadIndent = document.BlockquoteIndent
			b.blocks(n.Content, quoted)
		case NodeBulletList:
			b.listItems(n.Content, style, document.ListUnordered)
		case NodeOrderedList:
			b.listItems(n.Content, style, document.ListOrdered)
		case NodeImage:
			b.beginParagraph(style)
			b.image(n, style)
		default:
			b.opts.logger.Warn("codec: skipping unknown block node %q", n.Type)
		}
	}
}

func (b *builder) listItems(nodes []Node, style document.ParagraphStyle, kind document.ListKind) {
	style.List = kind
	for _, n := range nodes {
		if n.Type != NodeListItem {
			b.opts.logger.Warn("codec: skipping %q inside a list", n.Type)
			continue
		}
		b.blocks(n.Content, style)
	}
}

func (b *builder) inline(nodes []Node, style document.ParagraphStyle) {
	for _, n := range nodes {
		switch n.Type {
		case NodeText:
			attrs := b.markAttributes(n.Marks).WithParagraph(style)
			for _, r := range n.Text {
				b.append(r, attrs)
			}
		case NodeHardBreak:
			b.append('\n', document.AttributeSet{Paragraph: style})
		case NodeImage:
			b.image(n, style)
		default:
			b.opts.logger.Warn("codec: skipping unknown inline node %q", n.Type)
		}
	}
}

func (b *builder) markAttributes(marks []Mark) document.AttributeSet {
	var attrs document.AttributeSet
	for _, m := range marks {
		switch m.Type {
		case MarkBold:
			attrs = attrs.WithTrait(document.TraitBold)
		case MarkItalic:
			attrs = attrs.WithTrait(document.TraitItalic)
		case MarkUnderline:
			attrs = attrs.WithUnderline(document.LineStyleSingle)
		case MarkStrike:
			attrs = attrs.WithStrikethrough(document.LineStyleSingle)
		case MarkLink:
			href, _ := m.Attrs["href"].(string)
			u, err := url.Parse(href)
			if href == "" || err != nil {
				b.opts.logger.Warn("codec: skipping link mark with bad href %q", href)
				continue
			}
			attrs = attrs.WithLink(u)
		default:
			b.opts.logger.Warn("codec: skipping unknown mark %q", m.Type)
		}
	}
	return attrs
}

// image appends one placeholder rune and registers the attachment it refers
// to. Images without a usable src are skipped; placeholders are only worth
// keeping when they can resolve to content later.
func (b *builder) image(n Node, style document.ParagraphStyle) {
	attrs := document.AttributeSet{Paragraph: style}
	if b.opts.registry == nil {
		b.opts.logger.Debug("codec: decoding image without a registry")
		b.append(document.AttachmentRune, attrs)
		return
	}
	src, _ := n.Attrs["src"].(string)
	u, err := url.Parse(src)
	if src == "" || err != nil {
		b.opts.logger.Warn("codec: skipping image with bad src %q", src)
		return
	}
	a := b.opts.registry.Insert(u)
	alignment, size := imageAppearance(n.Attrs)
	if alignment != attachment.AlignCenter || size.Mode != attachment.SizeIntrinsic {
		_ = b.opts.registry.SetAppearance(a.ID(), alignment, size, u)
	}
	if alt, ok := n.Attrs["alt"].(string); ok && alt != "" {
		_ = b.opts.registry.SetMessage(a.ID(), alt)
	}
	b.append(document.AttachmentRune, attrs.WithAttachment(a.ID()))
}

func imageAppearance(attrs map[string]any) (attachment.Alignment, attachment.Size) {
	alignment := attachment.AlignCenter
	switch attrs["align"] {
	case "left":
		alignment = attachment.AlignLeft
	case "right":
		alignment = attachment.AlignRight
	}
	size := attachment.Size{Mode: attachment.SizeIntrinsic}
	if w, ok := toFloat(attrs["width"]); ok {
		if h, ok := toFloat(attrs["height"]); ok {
			size = attachment.Size{Mode: attachment.SizeFixed, Width: w, Height: h}
		}
	}
	return alignment, size
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func (b *builder) build() (*document.Document, error) {
	doc := document.New()
	if len(b.runes) == 0 {
		return doc, nil
	}
	if _, err := doc.ReplaceAttributed(doc.FullRange(), string(b.runes), b.attrs); err != nil {
		return nil, fmt.Errorf("codec: build document: %w", err)
	}
	return doc, nil
}
