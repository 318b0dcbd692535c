// Package grapheme provides grapheme-cluster boundary helpers used for
// caret movement and backward deletion. Offsets are rune offsets, matching
// the document model.
package grapheme

import "github.com/rivo/uniseg"

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// PrevBoundary returns the rune offset of the start of the grapheme cluster
// that ends at i. This is the deletion start for a backspace at caret i.
// Returns 0 when i <= 0; i is clamped to len(runes).
func PrevBoundary(runes []rune, i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(runes) {
		i = len(runes)
	}
	g := uniseg.NewGraphemes(string(runes[:i]))
	pos := 0
	last := 0
	for g.Next() {
		last = pos
		pos += len(g.Runes())
	}
	return last
}

// NextBoundary returns the rune offset of the first grapheme-cluster
// boundary strictly after i. Returns len(runes) when i is at or past the
// final boundary.
func NextBoundary(runes []rune, i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(runes) {
		return len(runes)
	}
	g := uniseg.NewGraphemes(string(runes[i:]))
	if g.Next() {
		return i + len(g.Runes())
	}
	return len(runes)
}
