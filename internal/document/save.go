package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/tomeedit/tome/internal/buffer"
	"github.com/tomeedit/tome/internal/encoding"
	"github.com/tomeedit/tome/internal/filetype"
	"github.com/tomeedit/tome/internal/logging"
	"github.com/tomeedit/tome/internal/search"
)

// Save writes the document to its display path. Without force it is a no-op
// on a clean or readonly document. An untitled document prompts the notifier
// for a destination; without one the save fails with ErrNoPath.
func (m *Manager) Save(doc *Document, force bool) error {
	if !doc.Valid() {
		return ErrInvalidDocument
	}
	// The changed flag should already exclude readonly documents, but
	// check anyway.
	if !force && (!doc.changed || doc.Readonly) {
		return nil
	}

	if doc.DisplayPath == "" {
		if m.notifier != nil {
			if p, ok := m.notifier.PromptSaveAs(); ok {
				return m.SaveAs(doc, p)
			}
		}
		return ErrNoPath
	}
	path := doc.DisplayPath

	m.applySaveTransforms(doc)

	text := doc.Buf.Text()
	data, err := encoding.Encode(text, doc.Charset, doc.HasBOM)
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	if err := writeFileChecked(path, data); err != nil {
		return err
	}

	doc.realPath = resolvePath(path)
	doc.storeSavedEncoding()
	doc.Buf.MarkSaved()
	// Re-stat rather than trusting the wall clock; filesystem timestamp
	// granularity can be coarser.
	if st, err := os.Stat(path); err == nil {
		doc.ModTime = st.ModTime()
	}
	doc.lastCheck = m.now()

	if doc.FileType == nil {
		m.SetFiletype(doc, filetype.Detect(path, []byte(text)))
	} else if m.highlighter != nil && doc.FileType.HasSymbols() {
		m.highlighter.UpdateSymbols(doc.slot)
	}

	doc.updateChangedState()

	m.log.Info("file saved",
		logging.FieldPath, path,
		logging.FieldSlot, doc.slot,
		logging.FieldEncoding, doc.Charset,
		logging.FieldBytes, len(data))
	return nil
}

// SaveAs saves the document under a new path, clearing the readonly state
// and re-detecting the file type when none is set.
func (m *Manager) SaveAs(doc *Document, newPath string) error {
	if !doc.Valid() {
		return ErrInvalidDocument
	}
	if newPath != "" {
		doc.DisplayPath = newPath
		doc.realPath = ""
	}
	if doc.DisplayPath == "" {
		return ErrNoPath
	}
	doc.Readonly = false
	doc.Truncated = false
	return m.Save(doc, true)
}

// applySaveTransforms runs the configured text normalizations in a fixed
// order as one undo transaction: tab replacement (skipped for the makefile
// family), trailing-space stripping, final-newline enforcement.
func (m *Manager) applySaveTransforms(doc *Document) {
	fc := m.cfg.File
	if !fc.ReplaceTabs && !fc.StripTrailingSpaces && !fc.FinalNewline {
		return
	}
	buf := doc.Buf
	buf.BeginUndoAction()
	defer buf.EndUndoAction()

	if fc.ReplaceTabs && !doc.FileType.MakefileFamily() {
		width := fc.TabWidth
		if width < 1 {
			width = 1
		}
		search.ReplaceAll(buf, "\t", strings.Repeat(" ", width), buffer.MatchCase)
	}

	if fc.StripTrailingSpaces {
		stripTrailingSpaces(buf)
	}

	if fc.FinalNewline {
		n := buf.Length()
		text := buf.Text()
		if n > 0 && !strings.HasSuffix(text, "\n") && !strings.HasSuffix(text, "\r") {
			buf.Replace(buffer.Range{Start: n, End: n}, doc.LineEnding.Sequence())
		}
	}
}

// stripTrailingSpaces walks lines from the bottom so earlier positions stay
// valid while editing.
func stripTrailingSpaces(buf buffer.Buffer) {
	for line := buf.LineCount() - 1; line >= 0; line-- {
		start := buf.PositionFromLine(line)
		end := buf.LineEndPosition(line)
		text := buf.TextRange(buffer.Range{Start: start, End: end})
		keep := len(strings.TrimRight(text, " \t"))
		if keep < len(text) {
			buf.Replace(buffer.Range{Start: start + keep, End: end}, "")
		}
	}
}

// writeFileChecked writes data with open-truncate-write-close semantics and
// verifies the byte count. A partial write is reported as *ShortWriteError
// because the on-disk file may now be corrupt, unlike a clean failure
// before any byte was written.
func writeFileChecked(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", path, err)
	}
	n, werr := f.Write(data)
	cerr := f.Close()
	if n != len(data) {
		return &ShortWriteError{Path: path, Written: n, Expected: len(data), Err: werr}
	}
	if werr != nil {
		return fmt.Errorf("writing %s: %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing %s: %w", path, cerr)
	}
	return nil
}
