// Package attachment manages the non-text embedded objects of a document.
//
// Each attachment occupies exactly one character position (the object
// replacement character) and owns mutable display state: URL, alignment,
// size, resolved pixel data, fetch progress, and an overlay message. The
// Registry keys attachments by unique id and fires a per-attachment
// invalidation callback on every update so a display layer can recompute
// just the affected region.
//
// Image resolution is asynchronous: an ImageProvider returns a placeholder
// immediately and later delivers exactly one FetchResult on a channel. The
// fetch may run anywhere, but the result must be applied back on the single
// mutation-owning context.
package attachment
