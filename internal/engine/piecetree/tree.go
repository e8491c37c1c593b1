package piecetree

// PieceTree is a persistent-style text buffer backed by a set of
// append-only string buffers and an augmented red/black tree of pieces
// (spec §3). Buffer index 0 is the mutable "change buffer": inserted text
// up to averageBufferSize bytes is appended there, never touching buffer
// content already referenced by a piece. Every other buffer is immutable:
// the chunks the tree was constructed from, plus one buffer per chunk of
// any larger insert.
//
// A zero PieceTree is not usable; construct one with New.
type PieceTree struct {
	buffers []textBuffer
	root    *node
	nilNode *node

	length    int
	lineCount int

	eol           string
	eolNormalized bool

	// lastChangeBufferPos tracks the current write end of the change
	// buffer (the end of the most recent insert or CRLF-stitch append),
	// enabling the append-to-last-edit fast path in
	// spec §4.4.3 without a tree search.
	lastChangeBufferPos bufferPos

	averageBufferSize     int
	graphemeAwareChunking bool

	cache *searchCache
}

// New builds a PieceTree from a sequence of text chunks (spec §4.4.1's
// construction step). Each chunk becomes an immutable buffer at indices
// 1..len(chunks); buffer 0 starts out as an empty change buffer. eol must
// be EOLLF or EOLCRLF; eolNormalized records whether every chunk is
// already known to use that line ending exclusively.
func New(chunks []string, eol string, eolNormalized bool, opts ...Option) *PieceTree {
	t := &PieceTree{
		eol:               EOLLF,
		averageBufferSize: AverageBufferSize,
	}
	t.nilNode = newSentinel()
	t.root = t.nilNode
	t.cache = newSearchCache(63)

	if eol == EOLLF || eol == EOLCRLF {
		t.eol = eol
	}
	t.eolNormalized = eolNormalized
	for _, opt := range opts {
		opt(t)
	}

	t.buffers = make([]textBuffer, 1, len(chunks)+1)
	t.buffers[0] = textBuffer{text: "", lineStarts: []int{0}}

	var pieces []piece
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		idx := len(t.buffers)
		t.buffers = append(t.buffers, newTextBuffer(chunk))
		buf := &t.buffers[idx]
		lastLine := len(buf.lineStarts) - 1
		pieces = append(pieces, piece{
			bufferIndex: idx,
			start:       bufferPos{0, 0},
			end:         bufferPos{lastLine, len(chunk) - buf.lineStarts[lastLine]},
			length:      len(chunk),
			lineFeedCnt: t.lineFeedCount(idx, bufferPos{0, 0}, bufferPos{lastLine, len(chunk) - buf.lineStarts[lastLine]}),
		})
	}

	for _, p := range pieces {
		if t.isNil(t.root) {
			t.insertAsRoot(p)
		} else {
			last := t.rightmost(t.root)
			t.insertAfter(last, p)
		}
	}
	t.recomputeTotals()

	return t
}

// recomputeTotals implements spec §4.4.3's closing step: after any
// structural change, walk the tree's cached sums to refresh the O(1)
// length/line_count totals exposed to callers. subtreeSize/subtreeLF only
// ever recurse down the right spine (every other subtree's contribution
// is already folded into a cached sizeLeft/lfLeft), so this is O(log n).
func (t *PieceTree) recomputeTotals() {
	t.length = subtreeSize(t, t.root)
	t.lineCount = subtreeLF(t, t.root) + 1
}

// Length returns the total byte length of the buffer's content.
func (t *PieceTree) Length() int {
	return t.length
}

// LineCount returns the number of lines in the buffer; a buffer with no
// line breaks at all has exactly one line.
func (t *PieceTree) LineCount() int {
	return t.lineCount
}

// EOL returns the line ending the tree will use for newly inserted line
// breaks and for SetEOL normalization.
func (t *PieceTree) EOL() string {
	return t.eol
}
