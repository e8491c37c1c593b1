package piecetree

import (
	"strings"
	"testing"
)

func TestCreatePiecesSmallInsertStaysInChangeBuffer(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(1024))
	pieces := tr.createPieces("hello")
	if len(pieces) != 1 {
		t.Fatalf("len(pieces) = %d, want 1", len(pieces))
	}
	if pieces[0].bufferIndex != 0 {
		t.Errorf("bufferIndex = %d, want 0 (change buffer)", pieces[0].bufferIndex)
	}
}

func TestCreatePiecesLargeInsertChunks(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(64))
	text := make([]byte, 500)
	for i := range text {
		text[i] = 'a'
	}
	pieces := tr.createPieces(string(text))
	if len(pieces) < 2 {
		t.Fatalf("len(pieces) = %d, want multiple chunks for a 500-byte insert", len(pieces))
	}

	total := 0
	for _, p := range pieces {
		if p.bufferIndex == 0 {
			t.Error("chunked insert should register its own immutable buffers, not use buffer 0")
		}
		total += p.length
	}
	if total != len(text) {
		t.Errorf("total chunk length = %d, want %d", total, len(text))
	}
}

func TestChunkTextNeverSplitsCRLF(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(8))
	text := "aaaaaaa\r\nbbbbbbb\r\nccccccc"
	chunks := tr.chunkText(text)

	var rebuilt string
	for _, c := range chunks {
		rebuilt += c
	}
	if rebuilt != text {
		t.Fatalf("rebuilt = %q, want %q", rebuilt, text)
	}
	for _, c := range chunks {
		if len(c) > 0 && c[len(c)-1] == '\r' {
			t.Errorf("chunk %q ends with a lone \\r, splitting a CRLF pair", c)
		}
	}
}

func TestChunkTextNeverSplitsRune(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(4))
	text := "日本語のテキスト"
	chunks := tr.chunkText(text)

	var rebuilt string
	for _, c := range chunks {
		rebuilt += c
	}
	if rebuilt != text {
		t.Fatalf("rebuilt = %q, want %q", rebuilt, text)
	}
	for _, c := range chunks {
		if len(c) > 0 && isUTF8Continuation(c[0]) {
			t.Errorf("chunk %q begins mid-rune", c)
		}
	}
}

func TestGraphemeAwareChunkingKeepsClustersIntact(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(4), WithGraphemeAwareChunking(true))
	// family emoji: several runes forming one grapheme cluster via ZWJ.
	// The buffer size is clamped to 64, so 60 leading bytes make the
	// cluster straddle the first cut.
	emoji := "👨‍👩‍👧‍👦"
	prefix := strings.Repeat("a", 60)
	text := prefix + emoji + "abcdefgh"
	chunks := tr.chunkText(text)

	var rebuilt string
	for _, c := range chunks {
		rebuilt += c
	}
	if rebuilt != text {
		t.Fatalf("rebuilt = %q, want %q", rebuilt, text)
	}
	boundary := 0
	for _, c := range chunks[:len(chunks)-1] {
		boundary += len(c)
		if boundary > len(prefix) && boundary < len(prefix)+len(emoji) {
			t.Errorf("chunk boundary at byte %d splits the emoji grapheme cluster", boundary)
		}
	}
}
