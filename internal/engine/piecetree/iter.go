package piecetree

// pieceText returns a piece's content as a string, read directly out of
// its buffer.
func (t *PieceTree) pieceText(n *node) string {
	p := n.piece
	buf := &t.buffers[p.bufferIndex]
	start := buf.offset(p.start)
	end := buf.offset(p.end)
	return buf.text[start:end]
}

// Iterate performs an in-order traversal of every piece, calling visit
// with each piece's content in document order (spec §6's iterate). The
// traversal stops early if visit returns false. visit must not mutate the
// tree.
func (t *PieceTree) Iterate(visit func(text string) bool) {
	t.iterateFrom(t.root, visit)
}

func (t *PieceTree) iterateFrom(x *node, visit func(text string) bool) bool {
	if t.isNil(x) {
		return true
	}
	if !t.iterateFrom(x.left, visit) {
		return false
	}
	if !x.piece.isEmpty() && !visit(t.pieceText(x)) {
		return false
	}
	return t.iterateFrom(x.right, visit)
}

// iterateNodes is Iterate's node-level counterpart, used by the debug
// validator to inspect piece/metadata state directly rather than content.
func (t *PieceTree) iterateNodes(x *node, visit func(n *node) bool) bool {
	if t.isNil(x) {
		return true
	}
	if !t.iterateNodes(x.left, visit) {
		return false
	}
	if !visit(x) {
		return false
	}
	return t.iterateNodes(x.right, visit)
}

// fullContent concatenates every piece's content in document order.
func (t *PieceTree) fullContent() string {
	var b []byte
	t.Iterate(func(text string) bool {
		b = append(b, text...)
		return true
	})
	return string(b)
}

// Equal reports whether t and other have identical content.
func (t *PieceTree) Equal(other *PieceTree) bool {
	if t.length != other.length {
		return false
	}
	return t.fullContent() == other.fullContent()
}
