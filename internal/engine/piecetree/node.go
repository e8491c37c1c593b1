package piecetree

// color is a red/black tree node's color.
type color uint8

const (
	red color = iota
	black
)

// node is a red/black tree node carrying a piece plus the two augmented
// subtree sums described in spec §3: sizeLeft (total length of every
// piece in the left subtree, in-order) and lfLeft (total line-feed count
// of the same). A single sentinel node, owned by the PieceTree and never
// shared across trees, stands in for every nil child and for the root's
// parent.
type node struct {
	color               color
	parent, left, right *node
	piece               piece
	sizeLeft            int
	lfLeft              int
}

// newSentinel creates a tree's private sentinel. Its parent/left/right
// point to itself, matching spec §9's "cyclic sentinel" design note; this
// makes "is this the sentinel" checks reduce to a pointer comparison
// everywhere else in the package.
func newSentinel() *node {
	s := &node{color: black}
	s.parent, s.left, s.right = s, s, s
	return s
}

// resetSentinel restores the sentinel's self-referential links and zero
// metadata. Deletion fix-up transiently repoints the sentinel's parent to
// track where a removed black node used to hang; it must be restored
// before the sentinel is used again.
func (t *PieceTree) resetSentinel() {
	t.nilNode.parent = t.nilNode
	t.nilNode.left = t.nilNode
	t.nilNode.right = t.nilNode
	t.nilNode.color = black
	t.nilNode.sizeLeft = 0
	t.nilNode.lfLeft = 0
}

func (t *PieceTree) isNil(n *node) bool {
	return n == t.nilNode
}

// leftmost returns the leftmost (first in-order) node of the subtree
// rooted at x.
func (t *PieceTree) leftmost(x *node) *node {
	if t.isNil(x) {
		return x
	}
	for !t.isNil(x.left) {
		x = x.left
	}
	return x
}

// rightmost returns the rightmost (last in-order) node of the subtree
// rooted at x.
func (t *PieceTree) rightmost(x *node) *node {
	if t.isNil(x) {
		return x
	}
	for !t.isNil(x.right) {
		x = x.right
	}
	return x
}

// successor returns the in-order successor of x, or the sentinel if x is
// the last node.
func (t *PieceTree) successor(x *node) *node {
	if !t.isNil(x.right) {
		return t.leftmost(x.right)
	}
	y := x.parent
	for !t.isNil(y) && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// predecessor returns the in-order predecessor of x, or the sentinel if x
// is the first node.
func (t *PieceTree) predecessor(x *node) *node {
	if !t.isNil(x.left) {
		return t.rightmost(x.left)
	}
	y := x.parent
	for !t.isNil(y) && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// leftRotate performs a standard left rotation at x, plus the augmented
// metadata fixup from spec §4.3: before rewiring pointers, the new
// subtree root y absorbs x's left-subtree size/lf total and x's own
// piece, since all of that now sits to y's left.
func (t *PieceTree) leftRotate(x *node) {
	y := x.right
	y.sizeLeft += x.sizeLeft + x.piece.length
	y.lfLeft += x.lfLeft + x.piece.lineFeedCnt

	x.right = y.left
	if !t.isNil(y.left) {
		y.left.parent = x
	}
	y.parent = x.parent

	if t.isNil(x.parent) {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rightRotate is the mirror of leftRotate: subtraction instead of
// addition, since y's left-subtree total is leaving y and becoming part
// of x's right subtree.
func (t *PieceTree) rightRotate(x *node) {
	y := x.left

	x.sizeLeft -= y.sizeLeft + y.piece.length
	x.lfLeft -= y.lfLeft + y.piece.lineFeedCnt

	x.left = y.right
	if !t.isNil(y.right) {
		y.right.parent = x
	}
	y.parent = x.parent

	if t.isNil(x.parent) {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}

// updateMetadata walks from x upward, adding (deltaSize, deltaLF) into
// every ancestor for which x's subtree lies to its left (spec §4.3). It
// stops at the root.
func (t *PieceTree) updateMetadata(x *node, deltaSize, deltaLF int) {
	if deltaSize == 0 && deltaLF == 0 {
		return
	}
	for !t.isNil(x) && x != t.root {
		if x.parent.left == x {
			x.parent.sizeLeft += deltaSize
			x.parent.lfLeft += deltaLF
		}
		x = x.parent
	}
}

// recomputeMetadata implements spec §4.3's deletion-time metadata repair:
// starting from x (a node whose subtree content just changed underneath
// it, e.g. via a transplant), it walks upward until it finds the nearest
// ancestor for which the path just climbed is that ancestor's *left*
// child — i.e. the first node whose left subtree actually changed.
// Arriving there, it recomputes that node's sizeLeft/lfLeft from scratch
// by summing its left subtree, then propagates the resulting delta
// further up via updateMetadata.
//
// A plain "recompute at x.parent" is not enough on its own: if x hangs
// off its parent's *right* side, the parent's sizeLeft never changed, so
// recomputing there alone would stop propagation one step too early.
//
// x itself may be the sentinel: transplant always sets the incoming
// child's parent pointer even when that child is nil, so the sentinel's
// parent is meaningful here as long as resetSentinel hasn't run yet.
// deleteNode passes the sentinel only where it replaced a left child, so
// the identity check against parent.left still tells the sides apart.
func (t *PieceTree) recomputeMetadata(x *node) {
	child, parent := x, x.parent
	for !t.isNil(parent) && parent.left != child {
		child = parent
		parent = child.parent
	}
	if t.isNil(parent) {
		return
	}

	oldSize, oldLF := parent.sizeLeft, parent.lfLeft
	parent.sizeLeft = subtreeSize(t, parent.left)
	parent.lfLeft = subtreeLF(t, parent.left)

	deltaSize := parent.sizeLeft - oldSize
	deltaLF := parent.lfLeft - oldLF
	if deltaSize != 0 || deltaLF != 0 {
		t.updateMetadata(parent, deltaSize, deltaLF)
	}
}

// subtreeSize sums piece.length over every node in the subtree rooted at
// x, including x itself.
func subtreeSize(t *PieceTree, x *node) int {
	if t.isNil(x) {
		return 0
	}
	return x.sizeLeft + x.piece.length + subtreeSize(t, x.right)
}

// subtreeLF sums piece.lineFeedCnt over every node in the subtree rooted
// at x, including x itself.
func subtreeLF(t *PieceTree, x *node) int {
	if t.isNil(x) {
		return 0
	}
	return x.lfLeft + x.piece.lineFeedCnt + subtreeLF(t, x.right)
}
