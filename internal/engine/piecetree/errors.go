package piecetree

import "errors"

// Errors returned by the debug-only invariant validator, plus
// ErrInvalidEOL describing a rejected EOL value. The tree's public edit/query API never returns an
// error for user input (offsets and ranges are clamped instead, per the
// package's error-handling design); these are reserved for programmer
// errors caught during development and testing.
var (
	// ErrInvalidEOL describes an EOL value other than "\n" or "\r\n". No
	// function in this package returns it: New, WithEOL and SetEOL ignore
	// such values.
	ErrInvalidEOL = errors.New("piecetree: eol must be \"\\n\" or \"\\r\\n\"")

	// ErrRedBlackViolation indicates a broken red/black property: a red
	// node with a red child, or unequal black-heights across root-to-leaf
	// paths.
	ErrRedBlackViolation = errors.New("piecetree: red/black property violated")

	// ErrMetadataMismatch indicates a node's sizeLeft or lfLeft no longer
	// matches the recomputed sum of its left subtree.
	ErrMetadataMismatch = errors.New("piecetree: augmented metadata mismatch")

	// ErrTotalsMismatch indicates the tree's cached length or line count
	// no longer matches the sum over all pieces.
	ErrTotalsMismatch = errors.New("piecetree: length/line-count totals mismatch")

	// ErrDanglingCRLF indicates two in-order-adjacent pieces where the
	// first ends with '\r' and the second begins with '\n' — a stitching
	// bug, since this seam must always be repaired.
	ErrDanglingCRLF = errors.New("piecetree: unstitched CRLF seam between adjacent pieces")
)
