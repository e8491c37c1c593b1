package piecetree

// stitchCRLF implements spec §4.4.5: called after every insertion,
// deletion, and append with a candidate adjacent pair. If prev ends with
// "\r" and next begins with "\n", the pair is re-homed into a single
// fresh piece carrying the literal two bytes "\r\n" drawn from the
// change buffer, so a line break is never left split across two pieces.
//
// Skipped entirely when the tree is known EOL-normalised to "\n", since
// no "\r" can then exist (spec's stated optimisation).
func (t *PieceTree) stitchCRLF(prev, next *node) {
	if t.eolNormalized {
		return
	}
	if t.isNil(prev) || t.isNil(next) {
		return
	}
	if prev.piece.isEmpty() || next.piece.isEmpty() {
		return
	}
	if t.pieceLastByte(prev) != '\r' || t.pieceFirstByte(next) != '\n' {
		return
	}

	newPrevEnd := t.retreatPieceEnd(prev)
	t.setPieceEnd(prev, newPrevEnd)
	prevEmptied := prev.piece.isEmpty()

	newNextStart := bufferPos{line: next.piece.start.line + 1, column: 0}
	t.setPieceStart(next, newNextStart)
	nextEmptied := next.piece.isEmpty()

	crlfPiece := t.appendToChangeBuffer("\r\n")
	t.lastChangeBufferPos = crlfPiece.end
	t.insertAfter(prev, crlfPiece)

	if prevEmptied {
		t.deleteNode(prev)
	}
	if nextEmptied {
		t.deleteNode(next)
	}

	t.cache.invalidate()
}
