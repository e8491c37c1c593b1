package piecetree

// insertBefore creates a new node carrying p and links it immediately
// before anchor in in-order sequence: if anchor has no left child, the
// new node becomes that child directly; otherwise it becomes the right
// child of anchor's in-order predecessor (the rightmost node of anchor's
// left subtree). This is the standard trick for positional insertion in
// an order-statistics tree that has no explicit search key (spec §4.4.3
// "insert before node").
func (t *PieceTree) insertBefore(anchor *node, p piece) *node {
	z := t.newNode(p)
	if t.isNil(anchor.left) {
		anchor.left = z
		z.parent = anchor
	} else {
		pred := t.rightmost(anchor.left)
		pred.right = z
		z.parent = pred
	}
	t.attach(z)
	return z
}

// insertAfter links a new node carrying p immediately after anchor in
// in-order sequence (spec §4.4.3 "append after node").
func (t *PieceTree) insertAfter(anchor *node, p piece) *node {
	z := t.newNode(p)
	if t.isNil(anchor.right) {
		anchor.right = z
		z.parent = anchor
	} else {
		succ := t.leftmost(anchor.right)
		succ.left = z
		z.parent = succ
	}
	t.attach(z)
	return z
}

// insertAsRoot links a new node as the sole node of an empty tree.
func (t *PieceTree) insertAsRoot(p piece) *node {
	z := t.newNode(p)
	z.parent = t.nilNode
	t.root = z
	t.attach(z)
	return z
}

// newNode allocates a fresh red leaf carrying p, with both children
// pointed at the tree's sentinel.
func (t *PieceTree) newNode(p piece) *node {
	return &node{
		color: red,
		left:  t.nilNode,
		right: t.nilNode,
		piece: p,
	}
}

// attach propagates z's own length/line-feed contribution up through
// every ancestor it sits to the left of, then runs the red/black
// insertion fix-up. Every insertion path funnels through here so that
// metadata and color invariants are restored before control returns to
// the caller.
func (t *PieceTree) attach(z *node) {
	t.updateMetadata(z, z.piece.length, z.piece.lineFeedCnt)
	t.insertFixup(z)
}

// insertFixup is the textbook CLRS red/black insertion fix-up: z starts
// red, so the only possible violation is a red node with a red parent,
// repaired by recoloring or rotating up the tree.
func (t *PieceTree) insertFixup(z *node) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			uncle := z.parent.parent.right
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			uncle := z.parent.parent.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
		if z == t.root {
			break
		}
	}
	t.root.color = black
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v, wiring v into u's parent without touching u's own children.
func (t *PieceTree) transplant(u, v *node) {
	if t.isNil(u.parent) {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteNode removes z from the tree (spec §4.4.4's node-removal step),
// restoring both the red/black property and the augmented metadata.
func (t *PieceTree) deleteNode(z *node) {
	y := z
	yOriginalColor := y.color
	var x *node

	switch {
	case t.isNil(z.left):
		x = z.right
		t.updateMetadata(z, -z.piece.length, -z.piece.lineFeedCnt)
		t.transplant(z, z.right)
	case t.isNil(z.right):
		x = z.left
		t.updateMetadata(z, -z.piece.length, -z.piece.lineFeedCnt)
		t.transplant(z, z.left)
	default:
		y = t.leftmost(z.right)
		yOriginalColor = y.color
		x = y.right

		yWasDirectChild := y.parent == z
		if yWasDirectChild {
			x.parent = y // keep the sentinel's parent link coherent below
		} else {
			t.transplant(y, y.right)
			t.recomputeMetadata(x)
			y.right = z.right
			y.right.parent = y
		}

		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color

		// y's left subtree is exactly z's old left subtree, unchanged in
		// content and just re-rooted under y: no recompute needed there.
		y.sizeLeft = z.sizeLeft
		y.lfLeft = z.lfLeft

		// y now sits where z used to, carrying its own (distinct) piece.
		// Propagate the net size/lf change this swap makes to the total
		// rooted here up to every ancestor that holds it on their left:
		// z's own contribution is gone, and if y was pulled up from
		// deeper in z's right subtree, its contribution there (already
		// subtracted once by the recomputeMetadata(x) call above) is now
		// re-added at this shallower position.
		if yWasDirectChild {
			t.updateMetadata(y, -z.piece.length, -z.piece.lineFeedCnt)
		} else {
			t.updateMetadata(y, y.piece.length-z.piece.length, y.piece.lineFeedCnt-z.piece.lineFeedCnt)
		}
	}

	if yOriginalColor == black {
		t.deleteFixup(x)
	}
	t.resetSentinel()
}

// deleteFixup is the textbook CLRS red/black deletion fix-up.
func (t *PieceTree) deleteFixup(x *node) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
