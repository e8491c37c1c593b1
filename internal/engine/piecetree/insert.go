package piecetree

// Insert implements spec §4.4.3 / §6's insert(offset, text, eol_normalized):
// insert text at offset, clamped to [0, length]. eolNormalized is ANDed
// into the tree's own flag, since a single un-normalised insert is enough
// to make the whole document's EOL layout potentially mixed.
func (t *PieceTree) Insert(offset int, text string, eolNormalized bool) {
	if text == "" {
		return
	}
	if offset < 0 {
		offset = 0
	} else if offset > t.length {
		offset = t.length
	}
	t.eolNormalized = t.eolNormalized && eolNormalized

	if t.isNil(t.root) {
		t.insertIntoEmptyTree(text)
		t.recomputeTotals()
		t.cache.invalidate()
		return
	}

	n, remainder, nodeStartOffset := t.nodeAt(offset)

	switch {
	case t.canAppendToLastEdit(n, nodeStartOffset, offset, text):
		t.appendToLastEdit(n, text)
	case nodeStartOffset == offset:
		t.insertBeforeNode(n, text)
	case nodeStartOffset+n.piece.length == offset:
		t.insertAfterNode(n, text)
	default:
		t.insertInsideNode(n, remainder, text)
	}

	t.recomputeTotals()
	t.cache.invalidate()
}

// insertIntoEmptyTree handles the first insertion into a freshly
// constructed, contentless tree.
func (t *PieceTree) insertIntoEmptyTree(text string) {
	var last *node
	for _, p := range t.createPieces(text) {
		if t.isNil(t.root) {
			last = t.insertAsRoot(p)
		} else {
			last = t.insertAfter(t.rightmost(t.root), p)
		}
	}
	if last != nil && last.piece.bufferIndex == 0 {
		t.lastChangeBufferPos = last.piece.end
	}
}

// canAppendToLastEdit implements spec §4.4.3's fast path: the target
// piece must live in the change buffer, end exactly where the tree's last
// edit left off, sit immediately before the insertion point, and the
// incoming text must be small enough not to warrant its own chunk.
//
// It also rejects the one case where growing the piece in place would
// swallow a guardCRLFSeam placeholder into the piece's own content: a
// change buffer ending in "\r" with text starting in "\n" needs the "_"
// separator appendToChangeBuffer would insert ahead of a *new* piece, not
// buried inside this one's extended range. Falling through to
// insertAfterNode gives the text its own piece, placed after the guard
// byte, where stitchCRLF can still fold the seam correctly afterward.
func (t *PieceTree) canAppendToLastEdit(n *node, nodeStartOffset, offset int, text string) bool {
	if t.isNil(n) || n.piece.bufferIndex != 0 {
		return false
	}
	if !n.piece.end.equal(t.lastChangeBufferPos) {
		return false
	}
	if nodeStartOffset+n.piece.length != offset {
		return false
	}
	if endsWithCR(t.buffers[0].text) && startsWithLF(text) {
		return false
	}
	return len(text) < t.averageBufferSize
}

// appendToLastEdit grows the change buffer and the target piece's end in
// place, then stitches any CRLF seam this creates against the piece that
// now follows it.
func (t *PieceTree) appendToLastEdit(n *node, text string) {
	buf := &t.buffers[0]
	guardCRLFSeam(buf, text)
	buf.append(text)

	endLine := len(buf.lineStarts) - 1
	endCol := len(buf.text) - buf.lineStarts[endLine]
	newEnd := bufferPos{line: endLine, column: endCol}

	t.setPieceEnd(n, newEnd)
	t.lastChangeBufferPos = newEnd

	t.stitchCRLF(n, t.successor(n))
}

// insertBeforeNode links text's piece(s) immediately before n, preserving
// their relative order, then stitches both new seams (spec §4.4.3 case 3).
func (t *PieceTree) insertBeforeNode(n *node, text string) {
	prev := t.predecessor(n)

	var firstNew, lastNew *node
	for _, p := range t.createPieces(text) {
		z := t.insertBefore(n, p)
		if firstNew == nil {
			firstNew = z
		}
		lastNew = z
	}
	if lastNew != nil && lastNew.piece.bufferIndex == 0 {
		t.lastChangeBufferPos = lastNew.piece.end
	}

	t.stitchCRLF(prev, firstNew)
	t.stitchCRLF(lastNew, n)
}

// insertAfterNode links text's piece(s) immediately after n (spec
// §4.4.3 case 5), stitching both new seams.
func (t *PieceTree) insertAfterNode(n *node, text string) {
	next := t.successor(n)

	anchor := n
	var firstNew, lastNew *node
	for _, p := range t.createPieces(text) {
		z := t.insertAfter(anchor, p)
		if firstNew == nil {
			firstNew = z
		}
		lastNew = z
		anchor = z
	}
	if lastNew != nil && lastNew.piece.bufferIndex == 0 {
		t.lastChangeBufferPos = lastNew.piece.end
	}

	t.stitchCRLF(n, firstNew)
	t.stitchCRLF(lastNew, next)
}

// insertInsideNode implements spec §4.4.3 case 4: splits n at remainder
// into a left remnant (n itself, trimmed) and a right remnant (a new
// node), then inserts text's piece(s) between them.
func (t *PieceTree) insertInsideNode(n *node, remainder int, text string) {
	splitPos := t.positionInBuffer(n, remainder)
	originalEnd := n.piece.end
	bufIdx := n.piece.bufferIndex
	buf := &t.buffers[bufIdx]

	rightPiece := piece{
		bufferIndex: bufIdx,
		start:       splitPos,
		end:         originalEnd,
		length:      buf.offset(originalEnd) - buf.offset(splitPos),
		lineFeedCnt: t.lineFeedCount(bufIdx, splitPos, originalEnd),
	}

	t.setPieceEnd(n, splitPos)
	rightNode := t.insertAfter(n, rightPiece)

	anchor := n
	var firstNew, lastNew *node
	for _, p := range t.createPieces(text) {
		z := t.insertAfter(anchor, p)
		if firstNew == nil {
			firstNew = z
		}
		lastNew = z
		anchor = z
	}
	if lastNew != nil && lastNew.piece.bufferIndex == 0 {
		t.lastChangeBufferPos = lastNew.piece.end
	}

	if firstNew != nil {
		t.stitchCRLF(n, firstNew)
		t.stitchCRLF(lastNew, rightNode)
	} else {
		t.stitchCRLF(n, rightNode)
	}
}
