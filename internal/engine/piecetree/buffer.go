package piecetree

// textBuffer is a string buffer (spec §3/§4.2): immutable text plus the
// byte offset of every line start within it. Only buffer index 0 (the
// "change buffer") is ever appended to after creation; every other
// buffer is frozen the moment it is registered with the tree.
type textBuffer struct {
	text       string
	lineStarts []int
}

// newTextBuffer builds an immutable buffer from s, scanning it once for
// line starts.
func newTextBuffer(s string) textBuffer {
	starts, _, _, _, _ := lineStarts(s)
	return textBuffer{text: s, lineStarts: starts}
}

// offset returns the absolute byte offset of a BufferPos within this
// buffer: line_starts[line] + column.
func (b *textBuffer) offset(p bufferPos) int {
	return b.lineStarts[p.line] + p.column
}

// append grows the change buffer by s, extending lineStarts with the
// newly discovered line-start offsets. Only ever called on buffer 0; the
// append-only discipline is what keeps every older piece's (start, end)
// valid even as the buffer grows underneath it.
func (b *textBuffer) append(s string) {
	base := len(b.text)
	b.text += s

	// The first entry of a fresh scan is always 0 (relative to s), which
	// would duplicate the buffer's existing end position; drop it.
	newStarts, _, _, _, _ := lineStarts(s)
	for _, off := range newStarts[1:] {
		b.lineStarts = append(b.lineStarts, base+off)
	}
}

// lineCount returns the number of lines represented by lineStarts.
func (b *textBuffer) lineCount() int {
	return len(b.lineStarts)
}

// byteAt returns the byte at an absolute offset, or 0 if out of range.
func (b *textBuffer) byteAt(offset int) byte {
	if offset < 0 || offset >= len(b.text) {
		return 0
	}
	return b.text[offset]
}

// lineRange returns the half-open byte range [start, end) of buffer line
// `line` (0-indexed), not including its terminator.
func (b *textBuffer) lineRange(line int) (start, end int) {
	start = b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1]
		// Strip the terminator width: 1 for lone CR/LF, 2 for CRLF.
		end = b.stripTerminator(start, end)
	} else {
		end = len(b.text)
	}
	return start, end
}

// stripTerminator trims the line-break bytes at the end of [start, end).
func (b *textBuffer) stripTerminator(start, end int) int {
	if end <= start {
		return end
	}
	last := b.text[end-1]
	if last == '\n' {
		end--
		if end > start && b.text[end-1] == '\r' {
			end--
		}
		return end
	}
	if last == '\r' {
		return end - 1
	}
	return end
}

// findLineByOffset binary-searches lineStarts for the line containing
// offset (within [lo, hi]), returning the largest line index l such that
// lineStarts[l] <= offset.
func (b *textBuffer) findLineByOffset(offset, lo, hi int) int {
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
