package buffer

import "strings"

// editRec is one recorded buffer mutation.
type editRec struct {
	start   int
	oldText string
	newText string
}

// undoGroup is one undo step: a sequence of edits applied together.
type undoGroup []editRec

// MemBuffer is a string-backed Buffer implementation with native undo/redo.
// It exists for tests, tooling and headless use; a real editor widget
// satisfies the same interface.
type MemBuffer struct {
	text string

	undoStack []undoGroup
	redoStack []undoGroup
	saved     int // undo depth at the last savepoint, -1 if unreachable

	collect    bool
	groupDepth int
	pending    undoGroup
}

// NewMemBuffer creates an empty buffer with undo collection enabled.
func NewMemBuffer() *MemBuffer {
	return &MemBuffer{collect: true}
}

// NewMemBufferFromString creates a buffer with initial content. The content
// is not recorded as an edit.
func NewMemBufferFromString(text string) *MemBuffer {
	b := NewMemBuffer()
	b.text = text
	return b
}

// Text returns the entire buffer content.
func (b *MemBuffer) Text() string { return b.text }

// TextRange returns the content of r, clamped to the buffer.
func (b *MemBuffer) TextRange(r Range) string {
	start, end := b.clamp(r)
	return b.text[start:end]
}

// Length returns the buffer length in bytes.
func (b *MemBuffer) Length() int { return len(b.text) }

// SetText replaces the entire content. Recorded as a single edit when undo
// collection is on.
func (b *MemBuffer) SetText(text string) {
	b.applyEdit(editRec{start: 0, oldText: b.text, newText: text})
}

// Replace substitutes the text in r and returns the replacement length.
func (b *MemBuffer) Replace(r Range, text string) int {
	start, end := b.clamp(r)
	b.applyEdit(editRec{start: start, oldText: b.text[start:end], newText: text})
	return len(text)
}

func (b *MemBuffer) clamp(r Range) (start, end int) {
	start, end = r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > len(b.text) {
		end = len(b.text)
	}
	if end < start {
		end = start
	}
	return start, end
}

func (b *MemBuffer) applyEdit(e editRec) {
	b.text = b.text[:e.start] + e.newText + b.text[e.start+len(e.oldText):]

	if !b.collect {
		return
	}
	if b.groupDepth > 0 {
		b.pending = append(b.pending, e)
		return
	}
	b.pushUndo(undoGroup{e})
}

func (b *MemBuffer) pushUndo(g undoGroup) {
	b.undoStack = append(b.undoStack, g)
	b.redoStack = nil
	if b.saved > len(b.undoStack)-1 {
		// Savepoint state can no longer be reached by undoing.
		b.saved = -1
	}
}

// IsModified reports whether the content differs from the last savepoint.
func (b *MemBuffer) IsModified() bool { return b.saved != len(b.undoStack) }

// MarkSaved records the current content as the savepoint.
func (b *MemBuffer) MarkSaved() { b.saved = len(b.undoStack) }

// Undo reverses the most recent undo group.
func (b *MemBuffer) Undo() {
	if len(b.undoStack) == 0 {
		return
	}
	g := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	for i := len(g) - 1; i >= 0; i-- {
		e := g[i]
		b.text = b.text[:e.start] + e.oldText + b.text[e.start+len(e.newText):]
	}
	b.redoStack = append(b.redoStack, g)
}

// Redo re-applies the most recently undone group.
func (b *MemBuffer) Redo() {
	if len(b.redoStack) == 0 {
		return
	}
	g := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	for _, e := range g {
		b.text = b.text[:e.start] + e.newText + b.text[e.start+len(e.oldText):]
	}
	b.undoStack = append(b.undoStack, g)
}

// CanUndo reports whether native undo state exists.
func (b *MemBuffer) CanUndo() bool { return len(b.undoStack) > 0 }

// CanRedo reports whether native redo state exists.
func (b *MemBuffer) CanRedo() bool { return len(b.redoStack) > 0 }

// BeginUndoAction starts grouping edits into one undo step. Nested calls
// are flattened into the outermost group.
func (b *MemBuffer) BeginUndoAction() { b.groupDepth++ }

// EndUndoAction closes the current group and pushes it as a single step.
func (b *MemBuffer) EndUndoAction() {
	if b.groupDepth == 0 {
		return
	}
	b.groupDepth--
	if b.groupDepth == 0 && len(b.pending) > 0 {
		b.pushUndo(b.pending)
		b.pending = nil
	}
}

// SetUndoCollection toggles edit recording.
func (b *MemBuffer) SetUndoCollection(collect bool) { b.collect = collect }

// EmptyUndoBuffer discards all native undo/redo state and re-anchors the
// savepoint at the current content.
func (b *MemBuffer) EmptyUndoBuffer() {
	b.undoStack = nil
	b.redoStack = nil
	b.pending = nil
	b.groupDepth = 0
	b.saved = 0
}

// Find locates pattern within r using the compiled form of the flags.
// Invalid regular expressions report no match; front-ends validate patterns
// with CompilePattern first.
func (b *MemBuffer) Find(pattern string, flags FindFlags, r Range) (Range, bool) {
	re, err := CompilePattern(pattern, flags)
	if err != nil {
		return Range{}, false
	}
	start, end := b.clamp(r)
	sub := b.text[start:end]

	if flags&Backwards != 0 {
		locs := re.FindAllStringIndex(sub, -1)
		if len(locs) == 0 {
			return Range{}, false
		}
		last := locs[len(locs)-1]
		return Range{Start: start + last[0], End: start + last[1]}, true
	}

	loc := re.FindStringIndex(sub)
	if loc == nil {
		return Range{}, false
	}
	return Range{Start: start + loc[0], End: start + loc[1]}, true
}

// LineCount returns the number of lines; an empty buffer has one line.
func (b *MemBuffer) LineCount() int {
	return strings.Count(b.text, "\n") + 1
}

// LineFromPosition returns the zero-based line containing pos.
func (b *MemBuffer) LineFromPosition(pos int) int {
	if pos > len(b.text) {
		pos = len(b.text)
	}
	if pos < 0 {
		pos = 0
	}
	return strings.Count(b.text[:pos], "\n")
}

// PositionFromLine returns the byte offset of the start of line. Lines past
// the end return the buffer length.
func (b *MemBuffer) PositionFromLine(line int) int {
	if line <= 0 {
		return 0
	}
	pos := 0
	for i := 0; i < line; i++ {
		next := strings.IndexByte(b.text[pos:], '\n')
		if next < 0 {
			return len(b.text)
		}
		pos += next + 1
	}
	return pos
}

// LineEndPosition returns the byte offset of the end of line, excluding the
// line terminator.
func (b *MemBuffer) LineEndPosition(line int) int {
	start := b.PositionFromLine(line)
	if next := strings.IndexByte(b.text[start:], '\n'); next >= 0 {
		end := start + next
		// Exclude a preceding CR in CRLF files.
		if end > start && b.text[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(b.text)
}
