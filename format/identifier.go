package format

import "sort"

// Identifier names a formatting style reported by inspection queries.
type Identifier string

// Style identifiers.
const (
	Bold          Identifier = "bold"
	Italic        Identifier = "italic"
	Underline     Identifier = "underline"
	Strikethrough Identifier = "strikethrough"
	Link          Identifier = "link"
	OrderedList   Identifier = "orderedlist"
	UnorderedList Identifier = "unorderedlist"
	Blockquote    Identifier = "blockquote"
)

// Set is an unordered collection of style identifiers.
type Set map[Identifier]bool

// NewSet creates a set holding the given identifiers.
func NewSet(ids ...Identifier) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

// Contains returns true if the identifier is in the set.
func (s Set) Contains(id Identifier) bool {
	return s[id]
}

// Add puts an identifier into the set.
func (s Set) Add(id Identifier) {
	s[id] = true
}

// Sorted returns the identifiers in lexical order.
func (s Set) Sorted() []Identifier {
	out := make([]Identifier, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal returns true if both sets hold the same identifiers.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other[id] {
			return false
		}
	}
	return true
}
