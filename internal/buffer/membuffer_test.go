package buffer

import "testing"

func TestReplaceAndText(t *testing.T) {
	b := NewMemBufferFromString("hello world")

	n := b.Replace(Range{Start: 6, End: 11}, "go")
	if n != 2 {
		t.Errorf("Replace returned %d, want 2", n)
	}
	if b.Text() != "hello go" {
		t.Errorf("text = %q", b.Text())
	}
	if b.Length() != 8 {
		t.Errorf("Length = %d", b.Length())
	}
}

func TestUndoRedo(t *testing.T) {
	b := NewMemBufferFromString("abc")
	b.Replace(Range{Start: 3, End: 3}, "def")

	if !b.CanUndo() {
		t.Fatal("CanUndo after edit")
	}
	b.Undo()
	if b.Text() != "abc" {
		t.Errorf("after undo text = %q", b.Text())
	}
	if !b.CanRedo() {
		t.Fatal("CanRedo after undo")
	}
	b.Redo()
	if b.Text() != "abcdef" {
		t.Errorf("after redo text = %q", b.Text())
	}
}

func TestUndoGrouping(t *testing.T) {
	b := NewMemBufferFromString("aaa bbb")

	b.BeginUndoAction()
	b.Replace(Range{Start: 0, End: 3}, "xx")
	b.Replace(Range{Start: 3, End: 6}, "yy")
	b.EndUndoAction()

	if b.Text() != "xx yy" {
		t.Fatalf("text = %q", b.Text())
	}
	b.Undo()
	if b.Text() != "aaa bbb" {
		t.Errorf("grouped undo must revert all edits, got %q", b.Text())
	}
}

func TestModifiedTracking(t *testing.T) {
	b := NewMemBufferFromString("x")
	if b.IsModified() {
		t.Fatal("fresh buffer must be unmodified")
	}
	b.Replace(Range{Start: 1, End: 1}, "y")
	if !b.IsModified() {
		t.Fatal("edit must mark modified")
	}
	b.MarkSaved()
	if b.IsModified() {
		t.Fatal("MarkSaved must clear modified")
	}
	b.Undo()
	if !b.IsModified() {
		t.Error("undoing past the savepoint is a modification")
	}
	b.Redo()
	if b.IsModified() {
		t.Error("redoing back to the savepoint is unmodified")
	}
}

func TestUndoCollectionSwitch(t *testing.T) {
	b := NewMemBuffer()
	b.SetUndoCollection(false)
	b.SetText("loaded content")
	b.SetUndoCollection(true)
	b.EmptyUndoBuffer()

	if b.CanUndo() {
		t.Error("installing content must not create undo state")
	}
	if b.IsModified() {
		t.Error("installed content is the savepoint")
	}
}

func TestFindLiteral(t *testing.T) {
	b := NewMemBufferFromString("one Two three two")

	r, ok := b.Find("two", 0, Range{Start: 0, End: b.Length()})
	if !ok || r.Start != 4 {
		t.Errorf("case-insensitive find = %v %v, want match at 4", r, ok)
	}

	r, ok = b.Find("two", MatchCase, Range{Start: 0, End: b.Length()})
	if !ok || r.Start != 14 {
		t.Errorf("case-sensitive find = %v %v, want match at 14", r, ok)
	}

	_, ok = b.Find("absent", 0, Range{Start: 0, End: b.Length()})
	if ok {
		t.Error("absent pattern must not match")
	}
}

func TestFindBackwards(t *testing.T) {
	b := NewMemBufferFromString("ab ab ab")
	r, ok := b.Find("ab", Backwards, Range{Start: 0, End: b.Length()})
	if !ok || r.Start != 6 {
		t.Errorf("backwards find = %v %v, want last match at 6", r, ok)
	}
}

func TestFindRegexAndWholeWord(t *testing.T) {
	b := NewMemBufferFromString("cat cathode cat")

	r, ok := b.Find("cat", WholeWord, Range{Start: 1, End: b.Length()})
	if !ok || r.Start != 12 {
		t.Errorf("whole-word find = %v %v, want match at 12", r, ok)
	}

	r, ok = b.Find(`c.t\b`, Regex|MatchCase, Range{Start: 0, End: b.Length()})
	if !ok || r.Start != 0 || r.End != 3 {
		t.Errorf("regex find = %v %v", r, ok)
	}
}

func TestLinePositions(t *testing.T) {
	b := NewMemBufferFromString("one\ntwo\nthree")

	if b.LineCount() != 3 {
		t.Errorf("LineCount = %d", b.LineCount())
	}
	if b.PositionFromLine(1) != 4 {
		t.Errorf("PositionFromLine(1) = %d", b.PositionFromLine(1))
	}
	if b.LineEndPosition(0) != 3 {
		t.Errorf("LineEndPosition(0) = %d", b.LineEndPosition(0))
	}
	if b.LineFromPosition(5) != 1 {
		t.Errorf("LineFromPosition(5) = %d", b.LineFromPosition(5))
	}
	if b.PositionFromLine(99) != b.Length() {
		t.Errorf("PositionFromLine past end = %d", b.PositionFromLine(99))
	}
}
