package piecetree

import "testing"

func TestStitchCRLFOnInsertBetweenPieces(t *testing.T) {
	tr := New([]string{"a\r"}, EOLLF, false)
	tr.Insert(2, "\nb", false)
	if got := tr.fullContent(); got != "a\r\nb" {
		t.Fatalf("fullContent() = %q, want %q", got, "a\r\nb")
	}
	if tr.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2 (CRLF counts as one break)", tr.LineCount())
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStitchCRLFOnDeleteExposesSeam(t *testing.T) {
	tr := New([]string{"a\rX\nb"}, EOLLF, false)
	tr.Delete(2, 1) // remove the "X" separating \r and \n
	if got := tr.fullContent(); got != "a\r\nb" {
		t.Fatalf("fullContent() = %q, want %q", got, "a\r\nb")
	}
	if tr.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", tr.LineCount())
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestStitchCRLFSkippedWhenNormalized(t *testing.T) {
	tr := New([]string{"a\r"}, EOLLF, true)
	tr.Insert(2, "\nb", true)
	// eolNormalized is sticky-AND across inserts; since both sides claimed
	// normalized, stitching is skipped and the seam is left as constructed.
	if got := tr.fullContent(); got != "a\r\nb" {
		t.Fatalf("fullContent() = %q, want %q", got, "a\r\nb")
	}
}

func TestGuardCRLFSeamOnChangeBufferAppend(t *testing.T) {
	tr := New(nil, EOLLF, false)
	tr.Insert(0, "a\r", true)
	tr.Insert(2, "\nb", true)
	if got := tr.fullContent(); got != "a\r\nb" {
		t.Fatalf("fullContent() = %q, want %q", got, "a\r\nb")
	}
	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNoDanglingCRLFAfterManyMixedEdits(t *testing.T) {
	tr := New([]string{"line1\r\nline2\rline3\nline4"}, EOLLF, false)
	tr.Insert(5, "\r", false)
	tr.Insert(6, "\n", false)
	tr.Delete(0, 1)
	tr.Insert(tr.Length(), "\r", false)
	tr.Insert(tr.Length(), "\n", false)

	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
