package piecetree

import "github.com/rivo/uniseg"

// createPieces implements spec §4.4.3's "creating pieces for v": small
// inserts append directly to the change buffer and return a single
// piece; inserts larger than averageBufferSize are split into bounded
// chunks, each registered as its own immutable buffer, emitting one
// piece per chunk.
func (t *PieceTree) createPieces(text string) []piece {
	if len(text) <= t.averageBufferSize {
		return []piece{t.appendToChangeBuffer(text)}
	}

	chunks := t.chunkText(text)
	pieces := make([]piece, 0, len(chunks))
	for _, c := range chunks {
		idx := len(t.buffers)
		t.buffers = append(t.buffers, newTextBuffer(c))
		buf := &t.buffers[idx]
		lastLine := len(buf.lineStarts) - 1
		start := bufferPos{line: 0, column: 0}
		end := bufferPos{line: lastLine, column: len(c) - buf.lineStarts[lastLine]}
		pieces = append(pieces, piece{
			bufferIndex: idx,
			start:       start,
			end:         end,
			length:      len(c),
			lineFeedCnt: t.lineFeedCount(idx, start, end),
		})
	}
	return pieces
}

// chunkText splits text into pieces no larger than averageBufferSize,
// never splitting a "\r\n" pair and never leaving a multi-byte rune (or,
// with graphemeAwareChunking, a multi-rune grapheme cluster) split across
// a boundary.
func (t *PieceTree) chunkText(text string) []string {
	var chunks []string
	for len(text) > t.averageBufferSize {
		cut := t.safeBoundary(text, t.averageBufferSize)
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

// safeBoundary retreats the candidate cut point to the nearest
// boundary at or before cut that doesn't land mid-rune, mid-grapheme
// (when enabled), or mid-"\r\n".
func (t *PieceTree) safeBoundary(text string, cut int) int {
	if cut <= 0 {
		return 1
	}
	if cut >= len(text) {
		return len(text)
	}

	if t.graphemeAwareChunking {
		cut = safeGraphemeBoundary(text, cut)
	} else {
		cut = safeRuneBoundary(text, cut)
	}

	if cut > 0 && cut < len(text) && text[cut-1] == '\r' && text[cut] == '\n' {
		cut--
	}
	if cut <= 0 {
		return 1
	}
	return cut
}

// safeRuneBoundary retreats cut past any UTF-8 continuation bytes.
func safeRuneBoundary(text string, cut int) int {
	for cut > 0 && isUTF8Continuation(text[cut]) {
		cut--
	}
	return cut
}

func isUTF8Continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// safeGraphemeBoundary retreats cut to the end of the last complete
// grapheme cluster starting at or before cut, using uniseg's Unicode
// text-segmentation rules (spec's "never splitting... a high surrogate"
// requirement, generalised to whole grapheme clusters).
func safeGraphemeBoundary(text string, cut int) int {
	gr := uniseg.NewGraphemes(text)
	last := 0
	for gr.Next() {
		_, end := gr.Positions()
		if end > cut {
			break
		}
		last = end
	}
	if last == 0 {
		return safeRuneBoundary(text, cut)
	}
	return last
}
