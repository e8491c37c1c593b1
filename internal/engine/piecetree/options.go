package piecetree

// EOL styles recognised by the tree. These are the only two values
// accepted by New, WithEOL, and SetEOL.
const (
	EOLLF   = "\n"
	EOLCRLF = "\r\n"
)

// AverageBufferSize is the tuning constant from spec §9: large inserts are
// chunked into buffers around this size, and chunking never splits a
// "\r\n" pair or leaves a lone multi-byte rune (or, with the grapheme-aware
// path enabled, a grapheme cluster) straddling a chunk boundary.
const AverageBufferSize = 65535

// Option configures a PieceTree during construction, following the
// functional-options convention used throughout the editor engine.
type Option func(*PieceTree)

// WithEOL sets the document's preferred EOL sequence, overriding New's eol
// argument. Invalid values are ignored, leaving the EOL New chose (EOLLF
// if New's argument was invalid too); check EOL() afterward.
func WithEOL(eol string) Option {
	return func(t *PieceTree) {
		if eol == EOLLF || eol == EOLCRLF {
			t.eol = eol
		}
	}
}

// WithEOLNormalized marks the tree as already normalized to its EOL: no
// stray "\r" exists anywhere in the initial chunks. This lets CRLF
// stitching skip its scan, per spec §4.4.5. Overrides New's eolNormalized
// argument. Pass false when initial content may still contain mixed line
// endings.
func WithEOLNormalized(normalized bool) Option {
	return func(t *PieceTree) {
		t.eolNormalized = normalized
	}
}

// WithAverageBufferSize overrides AverageBufferSize for this tree. Mainly
// useful for tests that want to exercise chunking without building
// megabyte-sized fixtures. Values below 64 are clamped up to keep a
// "\r\n" pair and a 4-byte UTF-8 rune from ever being unsplittable.
func WithAverageBufferSize(n int) Option {
	return func(t *PieceTree) {
		if n < 64 {
			n = 64
		}
		t.averageBufferSize = n
	}
}

// WithGraphemeAwareChunking enables uniseg-based grapheme cluster
// detection when slicing large inserts into buffers (spec §4.4.3's chunk
// boundary rule, generalized per SPEC_FULL §12). Off by default: it costs
// an extra grapheme scan per chunk boundary and the spec only requires
// UTF-8 rune safety, not grapheme safety.
func WithGraphemeAwareChunking(enabled bool) Option {
	return func(t *PieceTree) {
		t.graphemeAwareChunking = enabled
	}
}
