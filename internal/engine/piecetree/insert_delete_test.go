package piecetree

import (
	"strings"
	"testing"
)

func TestInsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		offset   int
		text     string
		expected string
	}{
		{"insert at start", "world", 0, "hello ", "hello world"},
		{"insert at end", "hello", 5, " world", "hello world"},
		{"insert in middle", "helloworld", 5, " ", "hello world"},
		{"insert into empty", "", 0, "hello", "hello"},
		{"insert empty string", "hello", 3, "", "hello"},
		{"insert unicode", "hello", 5, " 世界", "hello 世界"},
		{"negative offset clamps to start", "hello", -5, "x", "xhello"},
		{"offset past end clamps", "hello", 100, "x", "hellox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New([]string{tt.initial}, EOLLF, true)
			tr.Insert(tt.offset, tt.text, true)
			if got := tr.fullContent(); got != tt.expected {
				t.Errorf("fullContent() = %q, want %q", got, tt.expected)
			}
			if tr.Length() != len(tt.expected) {
				t.Errorf("Length() = %d, want %d", tr.Length(), len(tt.expected))
			}
			if err := tr.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestInsertSequenceAppendFastPath(t *testing.T) {
	tr := New(nil, EOLLF, true)
	var want strings.Builder
	for i := 0; i < 200; i++ {
		tr.Insert(tr.Length(), "x", true)
		want.WriteByte('x')
	}
	if got := tr.fullContent(); got != want.String() {
		t.Errorf("fullContent() mismatch after repeated appends")
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestInsertManySmallInRandomPositions(t *testing.T) {
	tr := New([]string{"base content for splitting into many pieces"}, EOLLF, true)
	want := "base content for splitting into many pieces"
	inserts := []struct {
		offset int
		text   string
	}{
		{0, "A"}, {10, "B"}, {5, "C"}, {len(want) + 2, "D"}, {20, "E"},
	}
	for _, ins := range inserts {
		off := ins.offset
		if off < 0 {
			off = 0
		}
		if off > len(want) {
			off = len(want)
		}
		want = want[:off] + ins.text + want[off:]
		tr.Insert(ins.offset, ins.text, true)
	}
	if got := tr.fullContent(); got != want {
		t.Errorf("fullContent() = %q, want %q", got, want)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		offset   int
		count    int
		expected string
	}{
		{"delete from start", "hello world", 0, 6, "world"},
		{"delete from end", "hello world", 5, 6, "hello"},
		{"delete from middle", "hello world", 5, 1, "helloworld"},
		{"delete all", "hello", 0, 5, ""},
		{"delete nothing", "hello", 3, 0, "hello"},
		{"delete beyond end", "hello", 0, 100, ""},
		{"negative count is no-op", "hello", 0, -1, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New([]string{tt.initial}, EOLLF, true)
			tr.Delete(tt.offset, tt.count)
			if got := tr.fullContent(); got != tt.expected {
				t.Errorf("fullContent() = %q, want %q", got, tt.expected)
			}
			if err := tr.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestDeleteAcrossManyPieces(t *testing.T) {
	tr := New([]string{"aaaa"}, EOLLF, true)
	tr.Insert(4, "bbbb", true)
	tr.Insert(8, "cccc", true)
	tr.Insert(12, "dddd", true)
	original := "aaaabbbbccccdddd"
	if got := tr.fullContent(); got != original {
		t.Fatalf("setup fullContent() = %q", got)
	}

	tr.Delete(2, 12) // spans all four original pieces
	want := original[:2] + original[14:]
	if got := tr.fullContent(); got != want {
		t.Errorf("fullContent() = %q, want %q", got, want)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestInsertDeleteRoundTrip(t *testing.T) {
	tr := New([]string{"0123456789"}, EOLLF, true)
	tr.Insert(5, "XYZ", true)
	if got := tr.fullContent(); got != "01234XYZ56789" {
		t.Fatalf("after insert, fullContent() = %q", got)
	}
	tr.Delete(5, 3)
	if got := tr.fullContent(); got != "0123456789" {
		t.Errorf("after delete, fullContent() = %q, want original", got)
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestInsertDeleteLargeSequence(t *testing.T) {
	tr := New(nil, EOLLF, true, WithAverageBufferSize(64))
	want := strings.Builder{}
	text := "the quick brown fox jumps over the lazy dog\n"
	for i := 0; i < 50; i++ {
		tr.Insert(tr.Length(), text, true)
		want.WriteString(text)
	}
	if got := tr.fullContent(); got != want.String() {
		t.Fatal("fullContent() mismatch after bulk insert")
	}

	tr.Delete(0, len(text)*10)
	wantStr := want.String()[len(text)*10:]
	if got := tr.fullContent(); got != wantStr {
		t.Error("fullContent() mismatch after bulk delete")
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
