package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tomeedit/tome/internal/encoding"
	"github.com/tomeedit/tome/internal/filetype"
	"github.com/tomeedit/tome/internal/logging"
)

// detectLineLimit bounds how many lines the indentation heuristic inspects.
const detectLineLimit = 1000

// Open loads a file into a new document. If the path resolves to an already
// open document, that document is returned as-is after a forced disk check;
// it is not reloaded. An empty forcedCharset selects auto-detection (or the
// configured default open encoding); the sentinel "None" skips conversion.
func (m *Manager) Open(path string, readonly bool, ft *filetype.Type, forcedCharset string) (*Document, error) {
	if existing := m.FindByDisplayPath(path); existing != nil {
		m.CheckDiskStatus(existing, true)
		m.consumePosition(existing)
		m.log.Info("document already open", logging.FieldPath, path,
			logging.FieldSlot, existing.slot)
		return existing, nil
	}
	return m.openFile(nil, path, readonly, ft, forcedCharset)
}

// Reload re-runs the load pipeline on an open document, keeping its slot.
// The attribute undo log is cleared first; the file type is kept unless a
// new one is given, but highlighting is re-evaluated either way.
func (m *Manager) Reload(doc *Document, forcedCharset string) error {
	if !doc.Valid() {
		return ErrInvalidDocument
	}
	_, err := m.openFile(doc, doc.DisplayPath, doc.Readonly, nil, forcedCharset)
	return err
}

func (m *Manager) openFile(doc *Document, path string, readonly bool, ft *filetype.Type, forcedCharset string) (*Document, error) {
	reload := doc != nil

	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if forcedCharset == "" {
		forcedCharset = m.cfg.File.DefaultOpenEncoding
	}
	res, err := encoding.Decode(data, forcedCharset)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	if reload {
		// A reload invalidates the attribute history.
		doc.clearUndo()
	} else {
		doc = m.create(path)
	}

	buf := doc.Buf
	buf.SetUndoCollection(false)
	buf.SetText(res.Text)
	buf.SetUndoCollection(true)
	buf.EmptyUndoBuffer()

	doc.realPath = resolvePath(path)
	doc.Charset = res.Charset
	doc.HasBOM = res.HasBOM
	doc.LineEnding = res.LineEnding
	doc.Truncated = res.Truncated
	doc.storeSavedEncoding()
	doc.ModTime = st.ModTime()
	doc.lastCheck = m.now()
	doc.Readonly = readonly || res.Truncated
	doc.UseTabs = detectUseTabs(res.Text, m.cfg.File.UseTabs)
	m.consumePosition(doc)

	if res.Truncated {
		m.log.Warn("file contains an embedded NUL, truncated and opened read-only",
			logging.FieldPath, path)
		if m.notifier != nil {
			m.notifier.Notify("The file " + doc.Basename() +
				" does not look like a text file; it was truncated and opened read-only.")
		}
	}

	useFt := ft
	if reload {
		if useFt == nil {
			useFt = doc.FileType
		}
		// Content may differ even when the tag does not; force the
		// highlight pass to re-run.
		doc.FileType = nil
		if useFt == nil {
			m.requestColourise(doc.slot)
		}
	} else if useFt == nil {
		useFt = filetype.Detect(path, []byte(res.Text))
	}
	m.SetFiletype(doc, useFt)
	if !reload && useFt == nil {
		// New documents are highlighted even without a filetype tag;
		// SetFiletype only requests when the tag changed.
		m.requestColourise(doc.slot)
	}

	doc.updateChangedState()

	m.log.Info("file loaded",
		logging.FieldPath, path,
		logging.FieldSlot, doc.slot,
		logging.FieldEncoding, doc.Charset,
		logging.FieldBOM, doc.HasBOM,
		logging.FieldBytes, res.Size,
		logging.FieldFiletype, doc.FileType.String(),
		logging.FieldReadonly, doc.Readonly)
	return doc, nil
}

// OpenFiles opens a batch of paths inside one colourise bracket, so shared
// keyword changes trigger at most one re-highlight per document. Failures
// are logged and skipped; the first error is returned alongside the
// documents that did open.
func (m *Manager) OpenFiles(paths []string, readonly bool, ft *filetype.Type, forcedCharset string) ([]*Document, error) {
	if err := m.DelayColourise(); err != nil {
		return nil, err
	}
	var (
		docs     []*Document
		firstErr error
	)
	for _, p := range paths {
		doc, err := m.Open(p, readonly, ft, forcedCharset)
		if err != nil {
			m.log.Error("could not open file",
				logging.FieldPath, p, logging.FieldError, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		docs = append(docs, doc)
	}
	if err := m.CommitColourise(); err != nil && firstErr == nil {
		firstErr = err
	}
	return docs, firstErr
}

// NewFile creates a document with the given display name and initial text.
// The name may be empty for an untitled document.
func (m *Manager) NewFile(name string, ft *filetype.Type, text string) *Document {
	doc := m.create(name)

	buf := doc.Buf
	buf.SetUndoCollection(false)
	buf.SetText(text)
	buf.SetUndoCollection(true)
	buf.EmptyUndoBuffer()

	doc.Charset = m.cfg.File.DefaultEncoding
	doc.HasBOM = false
	doc.storeSavedEncoding()
	doc.LineEnding = encoding.DetectLineEnding(text)
	doc.UseTabs = m.cfg.File.UseTabs
	doc.ModTime = m.now()
	doc.lastCheck = m.now()

	if ft == nil && name != "" {
		ft = filetype.Detect(name, []byte(text))
	}
	m.SetFiletype(doc, ft)
	if ft == nil {
		m.requestColourise(doc.slot)
	}
	doc.updateChangedState()

	m.log.Debug("new file", logging.FieldSlot, doc.slot, logging.FieldPath, name)
	return doc
}

// NewFileIfEmpty creates an untitled document only when none are open.
func (m *Manager) NewFileIfEmpty() *Document {
	if len(m.Documents()) > 0 {
		return nil
	}
	return m.NewFile("", nil, "")
}

// Clone creates a document copying the source's text, file type, encoding
// attributes and readonly state, under a new identity.
func (m *Manager) Clone(src *Document, name string) *Document {
	if !src.Valid() {
		return nil
	}
	doc := m.NewFile(name, src.FileType, src.Buf.Text())
	doc.Charset = src.Charset
	doc.HasBOM = src.HasBOM
	doc.LineEnding = src.LineEnding
	doc.UseTabs = src.UseTabs
	doc.Readonly = src.Readonly
	doc.storeSavedEncoding()
	doc.updateChangedState()
	return doc
}

// detectUseTabs inspects leading whitespace to decide the indentation unit,
// skewing the comparison by a factor of two toward the configured default so
// mixed files do not flip-flop.
func detectUseTabs(text string, defaultTabs bool) bool {
	tabs, spaces := 0, 0
	for i, line := range strings.Split(text, "\n") {
		if i >= detectLineLimit {
			break
		}
		if strings.HasPrefix(line, "\t") {
			tabs++
		} else if strings.HasPrefix(line, "  ") {
			spaces++
		}
	}
	if tabs == 0 && spaces == 0 {
		return defaultTabs
	}
	if defaultTabs {
		return spaces <= tabs*2
	}
	return tabs > spaces*2
}
