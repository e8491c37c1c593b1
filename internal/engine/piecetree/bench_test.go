package piecetree

import (
	"math/rand"
	"strings"
	"testing"
)

// generateText creates a string of the given size with realistic content,
// wrapped into lines so the buffer under test has a realistic line-start
// density instead of being one giant unbroken run.
func generateText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "hello", "world"}
	lineLen := 0

	for sb.Len() < size {
		word := words[rand.Intn(len(words))]
		if sb.Len()+len(word)+1 > size {
			break
		}
		if sb.Len() > 0 {
			if lineLen > 60 {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}

	return sb.String()
}

func BenchmarkNew(b *testing.B) {
	text := generateText(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New([]string{text}, EOLLF, false)
	}
}

func BenchmarkInsertSmallRandom(b *testing.B) {
	text := generateText(1 << 20)
	tr := New([]string{text}, EOLLF, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		offset := rand.Intn(tr.Length() + 1)
		tr.Insert(offset, "x", false)
	}
}

func BenchmarkInsertAppend(b *testing.B) {
	tr := New(nil, EOLLF, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(tr.Length(), "x", true)
	}
}

func BenchmarkDeleteSmallRandom(b *testing.B) {
	text := generateText(1 << 20)
	tr := New([]string{text}, EOLLF, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tr.Length() < 2 {
			tr.Insert(0, text, false)
			continue
		}
		offset := rand.Intn(tr.Length() - 1)
		tr.Delete(offset, 1)
	}
}

func BenchmarkOffsetAt(b *testing.B) {
	text := generateText(1 << 20)
	tr := New([]string{text}, EOLLF, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.OffsetAt(1+i%tr.LineCount(), 1)
	}
}

func BenchmarkPositionAt(b *testing.B) {
	text := generateText(1 << 20)
	tr := New([]string{text}, EOLLF, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.PositionAt(i % tr.Length())
	}
}
