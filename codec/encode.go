package codec

import (
	"encoding/json"
	"strings"

	"github.com/dshills/richtext/attachment"
	"github.com/dshills/richtext/document"
)

// Encode serializes a document into the JSON node tree. Consecutive list
// paragraphs of the same kind group into one list node and consecutive
// blockquote paragraphs group under one blockquote node. Selection markers
// are transient view state and are never emitted.
func Encode(doc *document.Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	root := Node{Type: NodeDoc, Content: encodeBlocks(doc, o)}
	if o.indent {
		return json.MarshalIndent(&root, "", "  ")
	}
	return json.Marshal(&root)
}

// paragraphBlock pairs an encoded paragraph with the paragraph style that
// decides how it nests into lists and blockquotes.
type paragraphBlock struct {
	node  Node
	list  document.ListKind
	quote bool
}

func encodeBlocks(doc *document.Document, o *options) []Node {
	var blocks []paragraphBlock
	for _, line := range doc.LineRanges() {
		var style document.ParagraphStyle
		if !line.IsEmpty() {
			style = doc.AttributesAt(line.Start).Paragraph
		}
		blocks = append(blocks, paragraphBlock{
			node:  encodeParagraph(doc, line, o),
			list:  style.List,
			quote: style.Blockquote,
		})
	}
	// A document that is empty or ends with a newline ends on an empty
	// paragraph. Emitting it keeps the trailing newline across a round trip.
	if doc.IsEmpty() || strings.HasSuffix(doc.Text(), "\n") {
		blocks = append(blocks, paragraphBlock{node: Node{Type: NodeParagraph}})
	}
	return groupQuotes(blocks)
}

// groupQuotes wraps maximal runs of blockquote paragraphs in a blockquote
// node. List grouping happens inside each run.
func groupQuotes(blocks []paragraphBlock) []Node {
	var out []Node
	for i := 0; i < len(blocks); {
		j := i
		for j < len(blocks) && blocks[j].quote == blocks[i].quote {
			j++
		}
		grouped := groupLists(blocks[i:j])
		if blocks[i].quote {
			out = append(out, Node{Type: NodeBlockquote, Content: grouped})
		} else {
			out = append(out, grouped...)
		}
		i = j
	}
	return out
}

// groupLists folds consecutive paragraphs of the same list kind into a
// single list node with one listItem per paragraph.
func groupLists(blocks []paragraphBlock) []Node {
	var out []Node
	for i := 0; i < len(blocks); {
		kind := blocks[i].list
		if kind == document.ListNone {
			out = append(out, blocks[i].node)
			i++
			continue
		}
		var items []Node
		j := i
		for j < len(blocks) && blocks[j].list == kind {
			items = append(items, Node{Type: NodeListItem, Content: []Node{blocks[j].node}})
			j++
		}
		listType := NodeBulletList
		if kind == document.ListOrdered {
			listType = NodeOrderedList
		}
		out = append(out, Node{Type: listType, Content: items})
		i = j
	}
	return out
}

// encodeParagraph converts one line, minus its terminating newline, into a
// paragraph node. Text splits into runs wherever the inline style changes;
// attachment placeholders become image nodes.
func encodeParagraph(doc *document.Document, line document.Range, o *options) Node {
	content := line
	if !content.IsEmpty() {
		if r, ok := doc.RuneAt(content.End - 1); ok && r == '\n' {
			content.End--
		}
	}
	node := Node{Type: NodeParagraph}
	if content.IsEmpty() {
		return node
	}

	runes := []rune(doc.TextRange(content))
	attrs := doc.AttributesIn(content)

	var inline []Node
	start := 0
	flush := func(end int) {
		if end <= start {
			return
		}
		inline = append(inline, Node{
			Type:  NodeText,
			Text:  string(runes[start:end]),
			Marks: marksOf(attrs[start]),
		})
		start = end
	}
	for i := range runes {
		if runes[i] == document.AttachmentRune && attrs[i].AttachmentID != "" {
			flush(i)
			inline = append(inline, imageNode(attrs[i].AttachmentID, o))
			start = i + 1
			continue
		}
		if i > start && !sameInlineStyle(attrs[i], attrs[start]) {
			flush(i)
		}
	}
	flush(len(runes))
	node.Content = inline
	return node
}

// sameInlineStyle reports whether two positions share the character-level
// style a text run carries. Paragraph style, markers and attachment ids do
// not split runs.
func sameInlineStyle(a, b document.AttributeSet) bool {
	a.AttachmentID, b.AttachmentID = "", ""
	a.Markers, b.Markers = 0, 0
	a.Paragraph, b.Paragraph = document.ParagraphStyle{}, document.ParagraphStyle{}
	return a.Equal(b)
}

func marksOf(a document.AttributeSet) []Mark {
	var marks []Mark
	if a.HasTrait(document.TraitBold) {
		marks = append(marks, Mark{Type: MarkBold})
	}
	if a.HasTrait(document.TraitItalic) {
		marks = append(marks, Mark{Type: MarkItalic})
	}
	if a.Underline != document.LineStyleNone {
		marks = append(marks, Mark{Type: MarkUnderline})
	}
	if a.Strikethrough != document.LineStyleNone {
		marks = append(marks, Mark{Type: MarkStrike})
	}
	if a.Link != nil {
		marks = append(marks, Mark{Type: MarkLink, Attrs: map[string]any{"href": a.Link.String()}})
	}
	return marks
}

// imageNode renders one attachment reference. Appearance attributes are
// emitted only when they differ from the defaults a fresh attachment gets.
func imageNode(id string, o *options) Node {
	if o.registry == nil {
		o.logger.Debug("codec: encoding attachment %s without a registry", id)
		return Node{Type: NodeImage}
	}
	a, ok := o.registry.Lookup(id)
	if !ok {
		o.logger.Warn("codec: attachment %s missing from registry", id)
		return Node{Type: NodeImage}
	}
	attrs := map[string]any{}
	if a.URL != nil {
		attrs["src"] = a.URL.String()
	}
	if a.Alignment != attachment.AlignCenter {
		attrs["align"] = a.Alignment.String()
	}
	if a.Message != "" {
		attrs["alt"] = a.Message
	}
	if a.Size.Mode == attachment.SizeFixed {
		attrs["width"] = a.Size.Width
		attrs["height"] = a.Size.Height
	}
	return Node{Type: NodeImage, Attrs: attrs}
}
