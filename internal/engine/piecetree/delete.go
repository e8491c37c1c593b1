package piecetree

// Delete implements spec §4.4.4 / §6's delete(offset, count): remove
// count bytes starting at offset. A non-positive count is a no-op;
// offset and offset+count are each clamped to [0, length].
func (t *PieceTree) Delete(offset, count int) {
	if count <= 0 || t.isNil(t.root) {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if offset > t.length {
		offset = t.length
	}
	end := offset + count
	if end > t.length {
		end = t.length
	}
	if end <= offset {
		return
	}

	startNode, startRemainder, _ := t.nodeAt(offset)
	endNode, endRemainder, _ := t.endBoundaryNode(end)

	if startNode == endNode {
		t.deleteWithinNode(startNode, startRemainder, endRemainder)
	} else {
		t.deleteAcrossNodes(startNode, startRemainder, endNode, endRemainder)
	}

	t.recomputeTotals()
	t.cache.invalidate()
}

// endBoundaryNode resolves a deletion's exclusive end offset to the node
// its content falls strictly inside, preferring the piece ending exactly
// at end over the piece starting there — a deletion stopping exactly at
// a piece boundary must never touch that following piece.
func (t *PieceTree) endBoundaryNode(end int) (x *node, remainder int, nodeStartOffset int) {
	x, remainder, nodeStartOffset = t.nodeAt(end)
	if remainder == 0 && end > 0 {
		if prev := t.predecessor(x); !t.isNil(prev) {
			return prev, prev.piece.length, nodeStartOffset - prev.piece.length
		}
	}
	return x, remainder, nodeStartOffset
}

// deleteWithinNode implements spec §4.4.4's same-node case: the deleted
// range [startRem, endRem) lies entirely inside one piece.
func (t *PieceTree) deleteWithinNode(n *node, startRem, endRem int) {
	prev := t.predecessor(n)
	next := t.successor(n)

	switch {
	case startRem == 0 && endRem == n.piece.length:
		t.deleteNode(n)
		t.stitchCRLF(prev, next)

	case startRem == 0:
		newStart := t.positionInBuffer(n, endRem)
		t.setPieceStart(n, newStart)
		t.stitchCRLF(prev, n)

	case endRem == n.piece.length:
		newEnd := t.positionInBuffer(n, startRem)
		t.setPieceEnd(n, newEnd)
		t.stitchCRLF(n, next)

	default:
		bufIdx := n.piece.bufferIndex
		buf := &t.buffers[bufIdx]
		rightStart := t.positionInBuffer(n, endRem)
		rightEnd := n.piece.end
		rightPiece := piece{
			bufferIndex: bufIdx,
			start:       rightStart,
			end:         rightEnd,
			length:      buf.offset(rightEnd) - buf.offset(rightStart),
			lineFeedCnt: t.lineFeedCount(bufIdx, rightStart, rightEnd),
		}

		newEnd := t.positionInBuffer(n, startRem)
		t.setPieceEnd(n, newEnd)
		rightNode := t.insertAfter(n, rightPiece)
		t.stitchCRLF(n, rightNode)
	}
}

// deleteAcrossNodes implements spec §4.4.4's cross-node case: DeleteTail
// on startNode, DeleteHead on endNode, and every node strictly between
// them (in in-order sequence) removed outright.
func (t *PieceTree) deleteAcrossNodes(startNode *node, startRem int, endNode *node, endRem int) {
	prev := t.predecessor(startNode)
	next := t.successor(endNode)

	var middle []*node
	for cur := t.successor(startNode); !t.isNil(cur) && cur != endNode; cur = t.successor(cur) {
		middle = append(middle, cur)
	}

	var survivingLeft *node
	if startRem == 0 {
		t.deleteNode(startNode)
		survivingLeft = prev
	} else {
		newEnd := t.positionInBuffer(startNode, startRem)
		t.setPieceEnd(startNode, newEnd)
		survivingLeft = startNode
	}

	for _, m := range middle {
		t.deleteNode(m)
	}

	var survivingRight *node
	if endRem == endNode.piece.length {
		t.deleteNode(endNode)
		survivingRight = next
	} else {
		newStart := t.positionInBuffer(endNode, endRem)
		t.setPieceStart(endNode, newStart)
		survivingRight = endNode
	}

	t.stitchCRLF(survivingLeft, survivingRight)
}
