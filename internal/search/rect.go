package search

import "github.com/tomeedit/tome/internal/buffer"

// RectSelection is a rectangular (column-mode) selection spanning
// [StartLine, EndLine] with byte columns [StartCol, EndCol) on each line.
type RectSelection struct {
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}

// ReplaceInRectangle replaces matches independently within each line's
// selected sub-range, then reconstructs a rectangular selection from the
// original top row to the last row using the maximum end column reached on
// any line. Lines where the selection carves no sub-range are skipped.
//
// When the maximum column exceeds the last line's length the reconstructed
// selection would wrap onto the following line and bear no resemblance to
// the original; restoring it is skipped and ok is false. The whole call is
// one undo transaction.
func ReplaceInRectangle(buf buffer.Buffer, pattern, replacement string, flags buffer.FindFlags, rect RectSelection) (count int, newRect RectSelection, ok bool) {
	newRect = rect
	if pattern == "" || rect.EndLine < rect.StartLine {
		return 0, rect, false
	}

	buf.BeginUndoAction()
	defer buf.EndUndoAction()

	maxColumn := 0
	replaced := false

	for line := rect.StartLine; line <= rect.EndLine; line++ {
		lineStart := buf.PositionFromLine(line)
		lineEnd := buf.LineEndPosition(line)

		selStart := lineStart + rect.StartCol
		selEnd := lineStart + rect.EndCol
		if selEnd > lineEnd {
			selEnd = lineEnd
		}
		if selStart >= lineEnd || selStart >= selEnd {
			// The rectangle carves nothing out of this line.
			continue
		}

		n, newEnd := ReplaceRange(buf, pattern, replacement, flags, selStart, selEnd)
		count += n
		if n > 0 {
			replaced = true
			if col := newEnd - lineStart; col > maxColumn {
				maxColumn = col
			}
		}
	}

	if !replaced {
		return count, rect, false
	}

	lastLine := rect.EndLine
	lastLen := buf.LineEndPosition(lastLine) - buf.PositionFromLine(lastLine)
	if maxColumn > lastLen {
		// The selection would wrap past the last line; leave it unset.
		return count, rect, false
	}

	newRect = RectSelection{
		StartLine: rect.StartLine,
		EndLine:   lastLine,
		StartCol:  rect.StartCol,
		EndCol:    maxColumn,
	}
	return count, newRect, true
}
