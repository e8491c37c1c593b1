package piecetree

import (
	"strings"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	tr := New(nil, EOLLF, true)
	if tr.Length() != 0 {
		t.Errorf("Length() = %d, want 0", tr.Length())
	}
	if tr.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", tr.LineCount())
	}
	if tr.fullContent() != "" {
		t.Errorf("fullContent() = %q, want empty", tr.fullContent())
	}
}

func TestNewFromChunks(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   string
		lines  int
	}{
		{"single chunk", []string{"hello\nworld"}, "hello\nworld", 2},
		{"multiple chunks", []string{"hello ", "there ", "world"}, "hello there world", 1},
		{"empty chunks skipped", []string{"", "a", "", "b"}, "ab", 1},
		{"trailing newline", []string{"a\nb\n"}, "a\nb\n", 3},
		{"crlf", []string{"a\r\nb\r\nc"}, "a\r\nb\r\nc", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(tt.chunks, EOLLF, false)
			if got := tr.fullContent(); got != tt.want {
				t.Errorf("fullContent() = %q, want %q", got, tt.want)
			}
			if tr.Length() != len(tt.want) {
				t.Errorf("Length() = %d, want %d", tr.Length(), len(tt.want))
			}
			if tr.LineCount() != tt.lines {
				t.Errorf("LineCount() = %d, want %d", tr.LineCount(), tt.lines)
			}
			if err := tr.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestWithAverageBufferSizeClampsSmallValues(t *testing.T) {
	tr := New([]string{"x"}, EOLLF, true, WithAverageBufferSize(1))
	if tr.averageBufferSize != 64 {
		t.Errorf("averageBufferSize = %d, want clamped to 64", tr.averageBufferSize)
	}
}

func TestEOLOption(t *testing.T) {
	tr := New([]string{"a"}, EOLLF, true, WithEOL(EOLCRLF))
	if tr.EOL() != EOLCRLF {
		t.Errorf("EOL() = %q, want %q", tr.EOL(), EOLCRLF)
	}
	tr2 := New([]string{"a"}, EOLLF, true, WithEOL("bogus"))
	if tr2.EOL() != EOLLF {
		t.Errorf("invalid WithEOL should be ignored, got %q", tr2.EOL())
	}
}

func TestLargeChunkedConstruction(t *testing.T) {
	text := strings.Repeat("the quick brown fox\n", 5000)
	tr := New([]string{text}, EOLLF, true, WithAverageBufferSize(256))
	if tr.fullContent() != text {
		t.Error("fullContent() does not match original large text")
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
