package document

// Line geometry. A line is a run of characters terminated by a newline; the
// terminator belongs to the line it ends. Paragraph-scoped attributes (lists,
// blockquotes) operate on these ranges.

// LineRangeAt returns the range of the line containing the given offset,
// including the trailing newline when present. Passing the document length
// is allowed: it resolves to the final line, which is empty when the text
// ends with a newline. Returns false only for an empty document.
func (d *Document) LineRangeAt(offset int) (Range, bool) {
	n := len(d.runes)
	if n == 0 {
		return Range{}, false
	}
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	if offset == n {
		if d.runes[n-1] == '\n' {
			return Range{Start: n, End: n}, true
		}
		offset = n - 1
	}

	start := 0
	for i := offset - 1; i >= 0; i-- {
		if d.runes[i] == '\n' {
			start = i + 1
			break
		}
	}
	end := n
	for i := offset; i < n; i++ {
		if d.runes[i] == '\n' {
			end = i + 1
			break
		}
	}
	return Range{Start: start, End: end}, true
}

// ParagraphRangesIn returns the line ranges intersecting the given range, in
// document order. An empty range yields the single line enclosing its
// location. Returns nil for an empty document.
func (d *Document) ParagraphRangesIn(r Range) []Range {
	n := len(d.runes)
	if n == 0 {
		return nil
	}
	r = r.Clamp(n)

	var out []Range
	pos := r.Start
	for {
		line, ok := d.LineRangeAt(pos)
		if !ok {
			break
		}
		out = append(out, line)
		if line.End >= r.End || line.End >= n || line.IsEmpty() {
			break
		}
		pos = line.End
	}
	return out
}

// LineRanges returns the ranges of all lines holding content, in order. A
// trailing empty line after a final newline is not included.
func (d *Document) LineRanges() []Range {
	if len(d.runes) == 0 {
		return nil
	}
	return d.ParagraphRangesIn(d.FullRange())
}

// IsLineStart returns true if the given offset begins a line: offset 0, or
// any position directly after a newline.
func (d *Document) IsLineStart(offset int) bool {
	if offset == 0 {
		return true
	}
	if offset < 0 || offset > len(d.runes) {
		return false
	}
	return d.runes[offset-1] == '\n'
}
