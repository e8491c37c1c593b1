package piecetree

import "strings"

// substring extracts the document's content in [startOffset, endOffset)
// by walking pieces in order, slicing each piece's own buffer text.
func (t *PieceTree) substring(startOffset, endOffset int) string {
	if endOffset <= startOffset {
		return ""
	}
	var b []byte
	n, _, nodeStart := t.nodeAt(startOffset)
	for !t.isNil(n) && nodeStart < endOffset {
		text := t.pieceText(n)
		pieceEnd := nodeStart + n.piece.length

		lo := 0
		if startOffset > nodeStart {
			lo = startOffset - nodeStart
		}
		hi := n.piece.length
		if endOffset < pieceEnd {
			hi = endOffset - nodeStart
		}
		if lo < hi {
			b = append(b, text[lo:hi]...)
		}

		nodeStart = pieceEnd
		n = t.successor(n)
	}
	return string(b)
}

// LineRawContent implements spec §6's line_raw_content: line n (1-based),
// including its terminator, minus trailingSkip trailing bytes.
func (t *PieceTree) LineRawContent(n int, trailingSkip int) string {
	if n < 1 || n > t.lineCount {
		return ""
	}
	start := t.OffsetAt(n, 1)
	end := t.length
	if n < t.lineCount {
		end = t.OffsetAt(n+1, 1)
	}
	end -= trailingSkip
	if end < start {
		end = start
	}
	return t.substring(start, end)
}

// LineContent implements spec §6's line_content: line n without its
// terminator.
func (t *PieceTree) LineContent(n int) string {
	return stripLineTerminator(t.LineRawContent(n, 0))
}

func stripLineTerminator(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		return s[:len(s)-1]
	}
	return s
}

// LinesContent implements spec §6's lines_content: every line, no
// terminators.
func (t *PieceTree) LinesContent() []string {
	out := make([]string, t.lineCount)
	for i := 0; i < t.lineCount; i++ {
		out[i] = t.LineContent(i + 1)
	}
	return out
}

// CharCodeAt implements spec §6's char_code_at: the byte at a 0-based
// document offset, or 0 if out of range.
func (t *PieceTree) CharCodeAt(offset int) byte {
	if offset < 0 || offset >= t.length {
		return 0
	}
	n, remainder, _ := t.nodeAt(offset)
	if t.isNil(n) {
		return 0
	}
	// nodeAt's descent can stop with remainder == n.piece.length, landing
	// exactly on the boundary between n and its successor; that byte
	// belongs to the successor, not to one past the end of n's own buffer
	// range.
	if remainder == n.piece.length {
		n = t.successor(n)
		if t.isNil(n) {
			return 0
		}
		remainder = 0
	}
	buf := &t.buffers[n.piece.bufferIndex]
	return buf.byteAt(buf.offset(n.piece.start) + remainder)
}

// LineCharCodeAt implements spec §6's line_char_code: the byte at a
// 0-based index within line n (1-based).
func (t *PieceTree) LineCharCodeAt(line, idx int) byte {
	return t.CharCodeAt(t.OffsetAt(line, idx+1))
}

// LineLength implements spec §6's line_length: line n's length excluding
// its terminator.
func (t *PieceTree) LineLength(n int) int {
	return len(t.LineContent(n))
}

// ValueInRange implements spec §6's value_in_range: the content between
// two 1-based Positions. Per SPEC_FULL's resolution of the spec's open
// question, line terminators are rewritten to eol only when eol differs
// from the tree's own EOL or the tree is not known EOL-normalised; eol =
// "" requests the content verbatim.
func (t *PieceTree) ValueInRange(start, end Position, eol string) string {
	so := t.OffsetAt(start.Line, start.Column)
	eo := t.OffsetAt(end.Line, end.Column)
	if eo < so {
		so, eo = eo, so
	}
	text := t.substring(so, eo)

	if eol == "" {
		return text
	}
	if eol != t.eol || !t.eolNormalized {
		return rewriteEOL(text, eol)
	}
	return text
}
