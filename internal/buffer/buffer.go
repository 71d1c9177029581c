// Package buffer defines the narrow contract the document core uses to talk
// to the text-editing widget, plus a reference in-memory implementation.
//
// The core never inspects a buffer beyond this interface: text access,
// modified-state tracking, native undo/redo, and primitive find/replace.
// Cursor motion, styling, folding and rendering belong to the widget.
package buffer

import "fmt"

// Range is a half-open byte range [Start, End) in buffer text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// IsEmpty reports whether the range covers no bytes.
func (r Range) IsEmpty() bool { return r.End <= r.Start }

// String returns a human-readable representation of the range.
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// FindFlags select matching behavior for Find.
type FindFlags uint8

const (
	// MatchCase makes matching case-sensitive.
	MatchCase FindFlags = 1 << iota
	// WholeWord requires matches to fall on word boundaries.
	WholeWord
	// Regex treats the pattern as a regular expression instead of literal text.
	Regex
	// Backwards returns the last match in the range instead of the first.
	Backwards
)

// Buffer is the text-widget contract. Implementations must keep every
// operation synchronous; the core runs single-threaded.
type Buffer interface {
	// Text returns the entire buffer content as canonical UTF-8.
	Text() string
	// TextRange returns the content of r.
	TextRange(r Range) string
	// SetText replaces the entire buffer content.
	SetText(text string)
	// Length returns the buffer length in bytes.
	Length() int

	// Replace substitutes the text in r and returns the replacement length.
	Replace(r Range, text string) int

	// IsModified reports whether the content differs from the last savepoint.
	IsModified() bool
	// MarkSaved records the current content as the savepoint.
	MarkSaved()

	// Native undo/redo of buffer edits.
	Undo()
	Redo()
	CanUndo() bool
	CanRedo() bool

	// BeginUndoAction and EndUndoAction bracket edits into one undo step.
	BeginUndoAction()
	EndUndoAction()
	// SetUndoCollection toggles edit recording; used while installing
	// loaded file content, which must not be undoable.
	SetUndoCollection(collect bool)
	// EmptyUndoBuffer discards all native undo/redo state.
	EmptyUndoBuffer()

	// Find locates pattern within r. The zero Range and false mean no match.
	Find(pattern string, flags FindFlags, r Range) (Range, bool)

	// Line/position conversion, needed by rectangular replace and
	// save-failure diagnostics.
	LineCount() int
	LineFromPosition(pos int) int
	PositionFromLine(line int) int
	LineEndPosition(line int) int
}
