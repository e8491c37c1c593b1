package piecetree

// lineFeedCount implements spec §4.4.2: the number of line breaks whose
// final byte lies strictly inside (offset(start), offset(end)] of the
// given buffer.
//
// When end.column == 0 the slice ends exactly at a line start, so the
// count is simply the number of buffer lines spanned. Otherwise the
// tricky case is a piece ending right before a "\n" that belongs to the
// *next* piece in the same buffer: if that "\n" is there, and the byte
// just before it is "\r", then the "\r\n" straddles the piece boundary
// and counts as one break that is (for this piece's purposes) inside it;
// CRLF stitching later repairs the seam so the pair ends up in one piece,
// but lineFeedCount must agree with the pre-stitch geometry while the
// pieces are being constructed.
func (t *PieceTree) lineFeedCount(bufferIndex int, start, end bufferPos) int {
	if end.column == 0 {
		return end.line - start.line
	}

	buf := &t.buffers[bufferIndex]
	if end.line+1 >= len(buf.lineStarts) {
		return end.line - start.line
	}

	endOffset := buf.offset(end)
	nextLineStart := buf.lineStarts[end.line+1]
	if nextLineStart == endOffset+1 && buf.byteAt(endOffset-1) == '\r' {
		return end.line - start.line + 1
	}
	return end.line - start.line
}
