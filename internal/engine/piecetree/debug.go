package piecetree

// Validate is a debug-only assertion checking properties P1-P3 and P6 of
// spec §8 and §7's stated red/black invariant. Production callers never
// need to call this; it exists for test suites and fuzzing harnesses to
// assert internal consistency after a sequence of edits.
func (t *PieceTree) Validate() error {
	if err := t.validateRedBlack(); err != nil {
		return err
	}
	if err := t.validateMetadata(t.root); err != nil {
		return err
	}
	if t.length != subtreeSize(t, t.root) {
		return ErrTotalsMismatch
	}
	if t.lineCount != subtreeLF(t, t.root)+1 {
		return ErrTotalsMismatch
	}
	if err := t.validateNoDanglingCRLF(); err != nil {
		return err
	}
	return nil
}

// validateRedBlack checks P1: the root is black, no red node has a red
// child, and every root-to-sentinel path has equal black-height.
func (t *PieceTree) validateRedBlack() error {
	if t.isNil(t.root) {
		return nil
	}
	if t.root.color != black {
		return ErrRedBlackViolation
	}
	_, err := t.blackHeight(t.root)
	return err
}

func (t *PieceTree) blackHeight(x *node) (int, error) {
	if t.isNil(x) {
		return 1, nil
	}
	if x.color == red && (x.left.color == red || x.right.color == red) {
		return 0, ErrRedBlackViolation
	}
	lh, err := t.blackHeight(x.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.blackHeight(x.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, ErrRedBlackViolation
	}
	if x.color == black {
		lh++
	}
	return lh, nil
}

// validateMetadata checks P2: every node's sizeLeft/lfLeft matches the
// actual sum over its left subtree.
func (t *PieceTree) validateMetadata(x *node) error {
	if t.isNil(x) {
		return nil
	}
	if x.sizeLeft != subtreeSize(t, x.left) || x.lfLeft != subtreeLF(t, x.left) {
		return ErrMetadataMismatch
	}
	if err := t.validateMetadata(x.left); err != nil {
		return err
	}
	return t.validateMetadata(x.right)
}

// validateNoDanglingCRLF checks P6: no in-order-adjacent pair of pieces
// leaves a "\r" ending one and a "\n" starting the next, when the tree
// isn't known EOL-normalised (in which case no "\r" can exist at all).
func (t *PieceTree) validateNoDanglingCRLF() error {
	if t.eolNormalized {
		return nil
	}
	var prev *node
	var found error
	t.iterateNodes(t.root, func(n *node) bool {
		if prev != nil && !prev.piece.isEmpty() && !n.piece.isEmpty() {
			if t.pieceLastByte(prev) == '\r' && t.pieceFirstByte(n) == '\n' {
				found = ErrDanglingCRLF
				return false
			}
		}
		prev = n
		return true
	})
	return found
}
