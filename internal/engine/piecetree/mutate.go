package piecetree

// setPieceEnd rewrites n's piece to end at newEnd (within the same
// buffer), recomputing length and line-feed count from scratch and
// propagating the resulting delta to ancestors. Used by split/DeleteTail/
// CRLF-stitch paths that trim a piece from the right.
func (t *PieceTree) setPieceEnd(n *node, newEnd bufferPos) {
	buf := &t.buffers[n.piece.bufferIndex]
	newLength := buf.offset(newEnd) - buf.offset(n.piece.start)
	newLF := t.lineFeedCount(n.piece.bufferIndex, n.piece.start, newEnd)

	deltaSize := newLength - n.piece.length
	deltaLF := newLF - n.piece.lineFeedCnt

	n.piece.end = newEnd
	n.piece.length = newLength
	n.piece.lineFeedCnt = newLF

	t.updateMetadata(n, deltaSize, deltaLF)
}

// setPieceStart rewrites n's piece to start at newStart, recomputing
// length and line-feed count and propagating the delta. Used by
// DeleteHead/CRLF-stitch paths that trim a piece from the left.
func (t *PieceTree) setPieceStart(n *node, newStart bufferPos) {
	buf := &t.buffers[n.piece.bufferIndex]
	newLength := buf.offset(n.piece.end) - buf.offset(newStart)
	newLF := t.lineFeedCount(n.piece.bufferIndex, newStart, n.piece.end)

	deltaSize := newLength - n.piece.length
	deltaLF := newLF - n.piece.lineFeedCnt

	n.piece.start = newStart
	n.piece.length = newLength
	n.piece.lineFeedCnt = newLF

	t.updateMetadata(n, deltaSize, deltaLF)
}

// retreatPieceEnd returns the BufferPos one byte before n's current end,
// found by binary search rather than naive column arithmetic so that a
// retreat crossing a line boundary (the trimmed byte was a lone "\n" or
// "\r" starting its own line) still lands on a valid position.
func (t *PieceTree) retreatPieceEnd(n *node) bufferPos {
	buf := &t.buffers[n.piece.bufferIndex]
	abs := buf.offset(n.piece.end) - 1
	line := buf.findLineByOffset(abs, n.piece.start.line, n.piece.end.line)
	return bufferPos{line: line, column: abs - buf.lineStarts[line]}
}

// advancePieceStart returns the BufferPos one byte after n's current
// start, by binary search.
func (t *PieceTree) advancePieceStart(n *node) bufferPos {
	buf := &t.buffers[n.piece.bufferIndex]
	abs := buf.offset(n.piece.start) + 1
	line := buf.findLineByOffset(abs, n.piece.start.line, n.piece.end.line)
	return bufferPos{line: line, column: abs - buf.lineStarts[line]}
}

// guardCRLFSeam breaks an accidental "\r" + "\n" byte adjacency that
// would otherwise appear in the change buffer's raw bytes purely because
// of append-only growth, when the two bytes belong to unrelated pieces
// rather than a genuine stitched line break. A single "_" sentinel byte
// is spliced in directly (bypassing line-start scanning, since it is not
// a line-break character); no piece ever references its position, so it
// is invisible to every reader of tree content.
func guardCRLFSeam(buf *textBuffer, s string) {
	if len(buf.text) > 0 && buf.text[len(buf.text)-1] == '\r' && len(s) > 0 && s[0] == '\n' {
		buf.text += "_"
	}
}

// appendToChangeBuffer appends s to buffer 0 and returns a piece covering
// exactly the newly appended range (spec §4.4.3's "creating pieces for
// v" fast path, for |v| <= averageBufferSize).
func (t *PieceTree) appendToChangeBuffer(s string) piece {
	buf := &t.buffers[0]
	guardCRLFSeam(buf, s)

	startLine := len(buf.lineStarts) - 1
	startCol := len(buf.text) - buf.lineStarts[startLine]
	start := bufferPos{line: startLine, column: startCol}

	buf.append(s)

	endLine := len(buf.lineStarts) - 1
	endCol := len(buf.text) - buf.lineStarts[endLine]
	end := bufferPos{line: endLine, column: endCol}

	return piece{
		bufferIndex: 0,
		start:       start,
		end:         end,
		length:      len(s),
		lineFeedCnt: t.lineFeedCount(0, start, end),
	}
}

// pieceFirstByte and pieceLastByte read the first/last byte of n's piece
// directly from its buffer, used by CRLF-stitch detection.
func (t *PieceTree) pieceFirstByte(n *node) byte {
	p := n.piece
	buf := &t.buffers[p.bufferIndex]
	return buf.byteAt(buf.offset(p.start))
}

func (t *PieceTree) pieceLastByte(n *node) byte {
	p := n.piece
	buf := &t.buffers[p.bufferIndex]
	return buf.byteAt(buf.offset(p.end) - 1)
}
