// Package search implements document text search, replace and bulk
// replace-in-range over the buffer contract. All functions are stateless
// per call; selection state is passed in and returned explicitly.
package search

import (
	"fmt"
	"unicode/utf8"

	"github.com/tomeedit/tome/internal/buffer"
)

// WrapPolicy controls what happens when a search exhausts the remaining
// text without a match.
type WrapPolicy uint8

const (
	// WrapNever fails without retrying.
	WrapNever WrapPolicy = iota
	// WrapAuto retries once from the opposite boundary.
	WrapAuto
	// WrapPrompt asks the confirmer before retrying.
	WrapPrompt
)

// Confirmer answers the wrap-search question synchronously.
type Confirmer interface {
	Confirm(question string) bool
}

// FindNext locates the next match of pattern starting at from. Backward
// search is unsupported with regular expressions and silently falls back to
// forward. On failure with part of the document unsearched, the wrap policy
// decides whether to retry once from the opposite boundary; a second failure
// is terminal.
func FindNext(buf buffer.Buffer, pattern string, flags buffer.FindFlags, from int, wrap WrapPolicy, confirmer Confirmer) (buffer.Range, bool) {
	if pattern == "" {
		return buffer.Range{}, false
	}
	if flags&buffer.Regex != 0 {
		flags &^= buffer.Backwards
	}

	backwards := flags&buffer.Backwards != 0
	length := buf.Length()

	if r, ok := buf.Find(pattern, flags, searchSpan(from, length, backwards)); ok {
		return r, true
	}

	// Fail immediately when the whole document was already covered.
	if (!backwards && from == 0) || (backwards && from == length) {
		return buffer.Range{}, false
	}

	switch wrap {
	case WrapAuto:
	case WrapPrompt:
		if confirmer == nil || !confirmer.Confirm(fmt.Sprintf("%q was not found. Wrap search and find again?", pattern)) {
			return buffer.Range{}, false
		}
	default:
		return buffer.Range{}, false
	}

	opposite := 0
	if backwards {
		opposite = length
	}
	return buf.Find(pattern, flags, searchSpan(opposite, length, backwards))
}

func searchSpan(from, length int, backwards bool) buffer.Range {
	if backwards {
		return buffer.Range{Start: 0, End: from}
	}
	return buffer.Range{Start: from, End: length}
}

// ReplaceRange replaces every match of pattern strictly within [start, end),
// adjusting end by each match's length delta so it always denotes the end of
// the not-yet-processed original range. All replacements form one undo
// transaction. Returns the replacement count and the adjusted end; the end
// is meaningful only when count is non-zero.
func ReplaceRange(buf buffer.Buffer, pattern, replacement string, flags buffer.FindFlags, start, end int) (count, newEnd int) {
	if pattern == "" && replacement == "" {
		return 0, end
	}

	buf.BeginUndoAction()
	defer buf.EndUndoAction()

	for start <= end {
		m, ok := buf.Find(pattern, flags&^buffer.Backwards, buffer.Range{Start: start, End: end})
		if !ok {
			break
		}
		findLen := m.Len()
		if findLen == 0 && replacement == "" {
			break
		}
		if m.Start+findLen > end {
			// Partial containment: the match extends past the range.
			break
		}

		replLen := buf.Replace(m, replacement)
		count++
		if pattern == "" {
			// An empty pattern matches everywhere; treat it as a single
			// insertion instead of replacing once per character.
			end += replLen
			break
		}
		if m.Start == end {
			// A zero-width match exactly at the boundary (regex "$").
			break
		}

		start = m.Start + replLen
		if findLen == 0 {
			// Step one character past the inserted text so a zero-width
			// pattern cannot rematch inside its own replacement.
			start = positionAfter(buf, start)
		}
		end += replLen - findLen
	}
	return count, end
}

// positionAfter returns the offset one character past pos.
func positionAfter(buf buffer.Buffer, pos int) int {
	text := buf.Text()
	if pos >= len(text) {
		return len(text) + 1
	}
	_, size := utf8.DecodeRuneInString(text[pos:])
	return pos + size
}

// ReplaceSelection replaces the current selection if it matches the pattern;
// otherwise it only finds the next match. It never replaces text the
// pattern did not match at the exact selection start.
//
// The returned range is the new selection: the replaced span when replaced
// is true, the next match when the selection was empty, or the original
// selection untouched.
func ReplaceSelection(buf buffer.Buffer, pattern, replacement string, flags buffer.FindFlags, sel buffer.Range) (newSel buffer.Range, replaced bool) {
	if pattern == "" {
		return sel, false
	}
	if flags&buffer.Regex != 0 {
		flags &^= buffer.Backwards
	}
	backwards := flags&buffer.Backwards != 0

	if sel.IsEmpty() {
		// No selection: behave as a plain find.
		if m, ok := FindNext(buf, pattern, flags, sel.Start, WrapNever, nil); ok {
			return m, false
		}
		return sel, false
	}

	var m buffer.Range
	var ok bool
	if backwards {
		m, ok = buf.Find(pattern, flags, buffer.Range{Start: 0, End: sel.End})
	} else {
		m, ok = buf.Find(pattern, flags, buffer.Range{Start: sel.Start, End: buf.Length()})
	}
	if !ok || m.Start != sel.Start {
		// The selected text is not a match; leave it alone.
		return sel, false
	}

	replLen := buf.Replace(m, replacement)
	return buffer.Range{Start: m.Start, End: m.Start + replLen}, true
}

// ReplaceAll replaces every match in the whole document. Returns the number
// of replacements made.
func ReplaceAll(buf buffer.Buffer, pattern, replacement string, flags buffer.FindFlags) int {
	count, _ := ReplaceRange(buf, pattern, replacement, flags, 0, buf.Length())
	return count
}

// ReplaceInSelection replaces every match within a linear selection and
// returns the updated selection endpoint.
func ReplaceInSelection(buf buffer.Buffer, pattern, replacement string, flags buffer.FindFlags, sel buffer.Range) (count int, newSel buffer.Range) {
	count, newEnd := ReplaceRange(buf, pattern, replacement, flags, sel.Start, sel.End)
	if count == 0 {
		return 0, sel
	}
	return count, buffer.Range{Start: sel.Start, End: newEnd}
}
