// Package codec serializes documents to and from a JSON node tree.
//
// The wire format is a nested tree of typed nodes: a doc root holds block
// nodes (paragraph, bulletList, orderedList, listItem, blockquote, image),
// paragraphs hold inline nodes (text, hardBreak, image), and text leaves
// carry marks (bold, italic, underline, strike, link). Text content, inline
// styles, links, paragraph styles and attachment placeholders survive a
// round trip; selection markers are never written.
//
// Decoding is tolerant: unknown node and mark types log a warning and are
// skipped, never returned as errors. Only a malformed payload or a non-doc
// root fails.
//
// Basic usage:
//
//	data, err := codec.Encode(doc, codec.WithAttachments(registry))
//	if err != nil {
//		return err
//	}
//
//	restored, err := codec.Decode(data, codec.WithAttachments(registry))
//	if err != nil {
//		return err
//	}
package codec
