package piecetree

import "strings"

// SetEOL implements spec §4.4.6: rewrites every line terminator in the
// document to newEOL, re-chunks the rewritten content into buffers sized
// within [⅔·averageBufferSize, 2·averageBufferSize], and rebuilds the
// tree from scratch. Marks the tree EOL-normalised afterward.
func (t *PieceTree) SetEOL(newEOL string) {
	if newEOL != EOLLF && newEOL != EOLCRLF {
		return
	}

	rewritten := rewriteEOL(t.fullContent(), newEOL)

	minChunk := (2 * t.averageBufferSize) / 3
	maxChunk := 2 * t.averageBufferSize
	chunks := chunkBySize(rewritten, minChunk, maxChunk)

	t.rebuildFrom(chunks, newEOL, true)
}

// rewriteEOL rewrites every "\r\n", lone "\r", and lone "\n" in s to eol.
func rewriteEOL(s, eol string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		switch s[i] {
		case '\r':
			b.WriteString(eol)
			if i+1 < len(s) && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		case '\n':
			b.WriteString(eol)
			i++
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

// chunkBySize splits s into pieces sized within [minSize, maxSize], never
// splitting a UTF-8 rune and never splitting a "\r\n" pair, for the
// re-chunking spec §4.4.6/§9 requires.
func chunkBySize(s string, minSize, maxSize int) []string {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxSize {
		return []string{s}
	}

	var chunks []string
	for len(s) > maxSize {
		cut := maxSize
		for cut > minSize && isUTF8Continuation(s[cut]) {
			cut--
		}
		if cut > 0 && cut < len(s) && s[cut-1] == '\r' && s[cut] == '\n' {
			cut--
		}
		if cut <= 0 {
			cut = 1
		}
		chunks = append(chunks, s[:cut])
		s = s[cut:]
	}
	if len(s) > 0 {
		chunks = append(chunks, s)
	}
	return chunks
}

// rebuildFrom discards the tree's current buffers/nodes and reconstructs
// it from chunks, matching New's construction sequence in place.
func (t *PieceTree) rebuildFrom(chunks []string, eol string, eolNormalized bool) {
	t.nilNode = newSentinel()
	t.root = t.nilNode
	t.eol = eol
	t.eolNormalized = eolNormalized
	t.lastChangeBufferPos = bufferPos{}
	t.cache.invalidate()

	t.buffers = make([]textBuffer, 1, len(chunks)+1)
	t.buffers[0] = textBuffer{text: "", lineStarts: []int{0}}

	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		idx := len(t.buffers)
		t.buffers = append(t.buffers, newTextBuffer(chunk))
		buf := &t.buffers[idx]
		lastLine := len(buf.lineStarts) - 1
		start := bufferPos{line: 0, column: 0}
		end := bufferPos{line: lastLine, column: len(chunk) - buf.lineStarts[lastLine]}
		p := piece{
			bufferIndex: idx,
			start:       start,
			end:         end,
			length:      len(chunk),
			lineFeedCnt: t.lineFeedCount(idx, start, end),
		}
		if t.isNil(t.root) {
			t.insertAsRoot(p)
		} else {
			t.insertAfter(t.rightmost(t.root), p)
		}
	}

	t.recomputeTotals()
}
