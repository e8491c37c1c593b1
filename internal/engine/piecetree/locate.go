package piecetree

// nodeAt implements spec §4.4.1's node_at: descend by sizeLeft to find the
// node whose piece contains absolute byte offset, returning that node,
// the remainder (bytes into the piece) and the node's own start offset.
//
// Consults the search cache first (spec §4.4.8): a hit whose piece range
// contains offset resolves in O(1) instead of walking from the root.
func (t *PieceTree) nodeAt(offset int) (x *node, remainder int, nodeStartOffset int) {
	if e, ok := t.cache.get(); ok && offset >= e.nodeStartOff && offset <= e.nodeStartOff+e.node.piece.length {
		return e.node, offset - e.nodeStartOff, e.nodeStartOff
	}

	x = t.root
	for !t.isNil(x) {
		switch {
		case x.sizeLeft > offset:
			x = x.left
		case x.sizeLeft+x.piece.length >= offset:
			remainder = offset - x.sizeLeft
			nodeStartOffset += x.sizeLeft
			t.cache.put(cacheEntry{node: x, nodeStartOff: nodeStartOffset, nodeStartLine: t.linesBefore(x)})
			return x, remainder, nodeStartOffset
		default:
			offset -= x.sizeLeft + x.piece.length
			nodeStartOffset += x.sizeLeft + x.piece.length
			x = x.right
		}
	}
	return t.nilNode, 0, 0
}

// nodeAtLine descends by lfLeft to find the node containing the start of
// 0-based line number lineNumber, returning that node plus how many lines
// into its own lf_count the target line falls (relLine) and the node's
// absolute start offset/start line.
//
// Consults the search cache first (spec §4.4.8), same as nodeAt, keyed on
// the node's line-span rather than its byte-span. A hit requires the
// line to start inside the cached node, so the node's own first line,
// which may begin in an earlier piece, is always resolved from the root.
func (t *PieceTree) nodeAtLine(lineNumber int) (x *node, relLine int, nodeStartOffset int, nodeStartLine int) {
	if e, ok := t.cache.get(); ok && lineNumber > e.nodeStartLine && lineNumber <= e.nodeStartLine+e.node.piece.lineFeedCnt {
		return e.node, lineNumber - e.nodeStartLine, e.nodeStartOff, e.nodeStartLine
	}

	x = t.root
	for !t.isNil(x) {
		switch {
		case !t.isNil(x.left) && x.lfLeft >= lineNumber:
			x = x.left
		case x.lfLeft+x.piece.lineFeedCnt >= lineNumber:
			nodeStartOffset += x.sizeLeft
			nodeStartLine += x.lfLeft
			t.cache.put(cacheEntry{node: x, nodeStartOff: nodeStartOffset, nodeStartLine: nodeStartLine})
			return x, lineNumber - x.lfLeft, nodeStartOffset, nodeStartLine
		default:
			lineNumber -= x.lfLeft + x.piece.lineFeedCnt
			nodeStartOffset += x.sizeLeft + x.piece.length
			nodeStartLine += x.lfLeft + x.piece.lineFeedCnt
			x = x.right
		}
	}
	return t.nilNode, 0, 0, 0
}

// accumulatedValue returns the byte offset, relative to piece's own
// start, of the boundary one past relative line k within the piece (spec
// §4.4.1): line_starts[start.line+k+1] − line_starts[start.line] −
// start.column, clamped to the piece's length. It is the clamp ceiling
// used by nodeAtLineColumn when a requested column overflows a piece's
// partial last line.
func (t *PieceTree) accumulatedValue(n *node, k int) int {
	p := n.piece
	buf := &t.buffers[p.bufferIndex]
	line := p.start.line + k
	if line+1 >= len(buf.lineStarts) {
		return p.length
	}
	if v := buf.lineStarts[line+1] - buf.lineStarts[p.start.line] - p.start.column; v < p.length {
		return v
	}
	return p.length
}

// nodeAtLineColumn implements spec §4.4.1's node_at_line_column: locate
// the node (and remainder within it) for a 0-based (line, column)
// position. If the requested column overflows the piece's partial last
// line, the search continues with the next in-order node, matching the
// spec's stated fallback.
func (t *PieceTree) nodeAtLineColumn(lineNumber, column int) (x *node, remainder int, nodeStartOffset int) {
	x, relLine, nodeStartOffset, _ := t.nodeAtLine(lineNumber)
	if t.isNil(x) {
		return t.nilNode, 0, 0
	}

	for {
		ceiling := t.accumulatedValue(x, relLine)
		var base int
		if relLine == 0 {
			base = 0
		} else {
			base = t.accumulatedValue(x, relLine-1)
		}
		candidate := base + column
		if candidate <= ceiling {
			return x, candidate, nodeStartOffset
		}

		nxt := t.successor(x)
		if t.isNil(nxt) {
			return x, ceiling, nodeStartOffset
		}
		nodeStartOffset += x.piece.length
		column -= ceiling - base
		x = nxt
		relLine = 0
	}
}

// positionInBuffer converts a byte remainder into a piece into a
// BufferPos within that piece's buffer (spec §4.4.1's
// position_in_buffer), binary-searching line_starts within [start.line,
// end.line].
func (t *PieceTree) positionInBuffer(n *node, remainder int) bufferPos {
	p := n.piece
	buf := &t.buffers[p.bufferIndex]
	startOffset := buf.offset(p.start)
	target := startOffset + remainder

	line := buf.findLineByOffset(target, p.start.line, p.end.line)
	column := target - buf.lineStarts[line]
	return bufferPos{line: line, column: column}
}
