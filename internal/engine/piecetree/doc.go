// Package piecetree provides a persistent-style text buffer backed by an
// append-only set of immutable string chunks plus one mutable "change"
// chunk, indexed by a self-balancing red/black tree whose in-order
// traversal yields the logical document.
//
// This is the data structure at the heart of a source-code editor's text
// model: it supports editors working with very large files, frequent
// localized edits, and random-access queries by byte offset or by
// (line, column), all in logarithmic time per operation.
//
// # Architecture
//
// Four pieces combine to form the tree:
//
//   - a line-start scanner that classifies CR/LF/CRLF runs in a string
//   - string buffers holding immutable (or append-only, for buffer 0)
//     text plus the offsets of each line within that text
//   - pieces, half-open buffer slices described by (line, column) rather
//     than absolute offset, so that growing the change buffer never
//     invalidates an older piece's bounds
//   - the tree itself: a red/black BST over pieces, augmented at every
//     node with the total byte length and line-feed count of its left
//     subtree, so that offset and line lookups run in O(log n)
//
// # Basic usage
//
//	t := piecetree.New([]string{"hello\nworld"}, piecetree.EOLLF, true)
//	t.Insert(5, ", there", true)
//	t.Delete(0, 6)
//	fmt.Println(t.LineContent(1)) // " there"
//
// # CRLF stitching
//
// Every insertion, deletion, and buffer append is followed by a stitch
// pass that guarantees a "\r" ending one piece is never left adjacent to
// a "\n" starting the next: the pair is always folded into a single
// piece so that line counting treats "\r\n" as exactly one line break,
// regardless of where an edit happened to land.
//
// # Coordinates
//
// Lines and columns exposed through the public API (Position, OffsetAt,
// PositionAt, ...) are 1-based; byte offsets are 0-based. Internally,
// a piece's start/end are buffer-relative (line, column) pairs with a
// 0-based line index into that buffer's own line-start table — never
// confuse a bufferPos with the document-facing Position type.
//
// # Concurrency
//
// A PieceTree is single-threaded and non-reentrant, matching the rest of
// the editor engine this package descends from: callers serialize their
// own access. The one exception is Iterate's visitor, which may run
// concurrently with other *read-only* callers but must never mutate the
// tree it is visiting.
package piecetree
