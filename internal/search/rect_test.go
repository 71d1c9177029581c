package search

import (
	"testing"

	"github.com/tomeedit/tome/internal/buffer"
)

func TestReplaceInRectangle(t *testing.T) {
	// Columns 0-6 selected on each of the 3 lines; per-line match counts
	// differ (2, 1, 0).
	buf := buffer.NewMemBufferFromString("aa aa x\naa x x\nxxxxxxxx")
	rect := RectSelection{StartLine: 0, EndLine: 2, StartCol: 0, EndCol: 6}

	count, newRect, ok := ReplaceInRectangle(buf, "aa", "b", buffer.MatchCase, rect)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if !ok {
		t.Fatal("selection should be restored")
	}
	if buf.Text() != "b b x\nb x x\nxxxxxxxx" {
		t.Errorf("text = %q", buf.Text())
	}

	if newRect.StartLine != 0 || newRect.EndLine != 2 {
		t.Errorf("lines = %d..%d, want 0..2", newRect.StartLine, newRect.EndLine)
	}
	// Per-line end columns after replacing are 4 and 5; the rectangle is
	// rebuilt with the maximum.
	if newRect.EndCol != 5 {
		t.Errorf("EndCol = %d, want the maximum end column 5", newRect.EndCol)
	}
}

func TestReplaceInRectangleSkipsShortLines(t *testing.T) {
	buf := buffer.NewMemBufferFromString("aaaa\nx\naaaa")
	rect := RectSelection{StartLine: 0, EndLine: 2, StartCol: 2, EndCol: 4}

	count, _, _ := ReplaceInRectangle(buf, "aa", "b", buffer.MatchCase, rect)
	if count != 2 {
		t.Errorf("count = %d, want 2 (middle line carved no sub-range)", count)
	}
	if buf.Text() != "aab\nx\naab" {
		t.Errorf("text = %q", buf.Text())
	}
}

func TestReplaceInRectangleWrappedSelectionSkipped(t *testing.T) {
	// Replacement grows line 0 far beyond the length of the last line, so
	// the restored selection would wrap; it must be skipped instead.
	buf := buffer.NewMemBufferFromString("aa bb\nc\ndd")
	rect := RectSelection{StartLine: 0, EndLine: 2, StartCol: 0, EndCol: 5}

	count, newRect, ok := ReplaceInRectangle(buf, "bb", "LONGLONG", buffer.MatchCase, rect)
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if ok {
		t.Error("wrapped selection must not be restored")
	}
	if newRect != rect {
		t.Errorf("rect = %+v, want original untouched", newRect)
	}
}

func TestReplaceInRectangleNoMatches(t *testing.T) {
	buf := buffer.NewMemBufferFromString("one\ntwo")
	rect := RectSelection{StartLine: 0, EndLine: 1, StartCol: 0, EndCol: 3}

	count, _, ok := ReplaceInRectangle(buf, "zz", "y", buffer.MatchCase, rect)
	if count != 0 || ok {
		t.Errorf("count = %d ok = %v, want no replacements", count, ok)
	}
}

func TestReplaceInRectangleSingleUndo(t *testing.T) {
	buf := buffer.NewMemBufferFromString("aa\naa")
	rect := RectSelection{StartLine: 0, EndLine: 1, StartCol: 0, EndCol: 2}

	ReplaceInRectangle(buf, "aa", "b", buffer.MatchCase, rect)
	if buf.Text() != "b\nb" {
		t.Fatalf("text = %q", buf.Text())
	}
	buf.Undo()
	if buf.Text() != "aa\naa" {
		t.Errorf("one undo must revert the whole rectangle, got %q", buf.Text())
	}
}
