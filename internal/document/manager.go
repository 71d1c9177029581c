package document

import (
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomeedit/tome/internal/buffer"
	"github.com/tomeedit/tome/internal/config"
	"github.com/tomeedit/tome/internal/logging"
)

// Manager owns the document registry and the operations over it. All methods
// must be called from one goroutine.
type Manager struct {
	cfg *config.Config
	log *log.Logger

	docs []*Document

	highlighter Highlighter
	notifier    Notifier
	newBuffer   func() buffer.Buffer
	now         func() time.Time

	delayed      bool
	pendingSlots map[int]bool
	typeKeywords string

	pendingPos *Position
}

// Option configures a Manager.
type Option func(*Manager)

// WithHighlighter installs the highlighting/indexing collaborator.
func WithHighlighter(h Highlighter) Option {
	return func(m *Manager) { m.highlighter = h }
}

// WithNotifier installs the UI notification collaborator.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithBufferFactory overrides how new document buffers are created.
func WithBufferFactory(f func() buffer.Buffer) Option {
	return func(m *Manager) { m.newBuffer = f }
}

// WithClock overrides the time source, for staleness tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger overrides the package default logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager creates an empty registry. A nil config selects the defaults.
func NewManager(cfg *config.Config, opts ...Option) *Manager {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &Manager{
		cfg:          cfg,
		log:          logging.Default(),
		newBuffer:    func() buffer.Buffer { return buffer.NewMemBuffer() },
		now:          time.Now,
		pendingSlots: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Documents returns the live documents in slot order.
func (m *Manager) Documents() []*Document {
	var out []*Document
	for _, d := range m.docs {
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out
}

// Get returns the document at slot, or nil if the slot is out of range or
// tombstoned.
func (m *Manager) Get(slot int) *Document {
	if slot < 0 || slot >= len(m.docs) {
		return nil
	}
	if d := m.docs[slot]; d.Valid() {
		return d
	}
	return nil
}

// FindByRealPath looks up a live document by canonical on-disk path.
func (m *Manager) FindByRealPath(path string) *Document {
	for _, d := range m.docs {
		if d.Valid() && d.realPath != "" && d.realPath == path {
			return d
		}
	}
	return nil
}

// FindByDisplayPath looks up a live document by the user-supplied path.
// Near-duplicate forms (redundant segments, symlinks) resolve to the same
// record via the canonical path.
func (m *Manager) FindByDisplayPath(path string) *Document {
	if path == "" {
		return nil
	}
	for _, d := range m.docs {
		if d.Valid() && d.DisplayPath == path {
			return d
		}
	}
	return m.FindByRealPath(resolvePath(path))
}

// FindByBuffer looks up the document owning a buffer handle.
func (m *Manager) FindByBuffer(buf buffer.Buffer) *Document {
	for _, d := range m.docs {
		if d.Valid() && d.Buf == buf {
			return d
		}
	}
	return nil
}

// allocate returns a fresh record, reusing the lowest tombstoned slot.
// Collaborators reference documents by slot, so identities stay small and
// stable.
func (m *Manager) allocate() *Document {
	for i, d := range m.docs {
		if !d.Valid() {
			doc := &Document{slot: i, Buf: m.newBuffer()}
			m.docs[i] = doc
			return doc
		}
	}
	doc := &Document{slot: len(m.docs), Buf: m.newBuffer()}
	m.docs = append(m.docs, doc)
	return doc
}

// create allocates a record for a new or opened document. A single open
// untitled, unmodified document is replaced rather than kept as a blank tab.
func (m *Manager) create(displayPath string) *Document {
	if live := m.Documents(); len(live) == 1 {
		d := live[0]
		if d.DisplayPath == "" && !d.changed {
			m.release(d)
		}
	}
	doc := m.allocate()
	doc.DisplayPath = displayPath
	return doc
}

// Release tombstones the document's slot. It fails with ErrBusy when the
// document is dirty and the caller has not confirmed the discard.
func (m *Manager) Release(doc *Document, discardConfirmed bool) error {
	if !doc.Valid() {
		return ErrInvalidDocument
	}
	if doc.changed && !discardConfirmed {
		return ErrBusy
	}
	m.release(doc)
	return nil
}

func (m *Manager) release(doc *Document) {
	if m.highlighter != nil {
		m.highlighter.RemoveSymbols(doc.slot)
	}
	delete(m.pendingSlots, doc.slot)

	m.log.Debug("document released",
		logging.FieldSlot, doc.slot,
		logging.FieldPath, doc.DisplayPath)

	doc.clearUndo()
	doc.DisplayPath = ""
	doc.realPath = ""
	doc.Charset = ""
	doc.savedCharset = ""
	doc.FileType = nil
	doc.InitialPos = nil
	doc.changed = false
	// Cleared last so no lookup observes a half-torn-down record.
	doc.Buf = nil
}

// Close releases the document, asking the notifier for discard confirmation
// when it has unsaved changes.
func (m *Manager) Close(doc *Document) error {
	if !doc.Valid() {
		return ErrInvalidDocument
	}
	if doc.changed {
		if m.notifier == nil || !m.notifier.Confirm("discard unsaved changes to "+doc.Basename()+"?") {
			return ErrBusy
		}
	}
	m.release(doc)
	return nil
}

// AccountForUnsaved walks the dirty documents and asks for a discard
// confirmation on each. It reports whether every document may be discarded.
func (m *Manager) AccountForUnsaved() bool {
	for _, d := range m.Documents() {
		if !d.changed {
			continue
		}
		if m.notifier == nil || !m.notifier.Confirm("discard unsaved changes to "+d.Basename()+"?") {
			return false
		}
	}
	return true
}

// CloseAll releases every document after a confirmation sweep.
func (m *Manager) CloseAll() error {
	if !m.AccountForUnsaved() {
		return ErrBusy
	}
	for _, d := range m.Documents() {
		m.release(d)
	}
	return nil
}

// SetInitialPosition records a one-shot cursor override consumed by the
// next load.
func (m *Manager) SetInitialPosition(line, col int) {
	m.pendingPos = &Position{Line: line, Col: col}
}

func (m *Manager) consumePosition(doc *Document) {
	if m.pendingPos == nil {
		return
	}
	doc.InitialPos = m.pendingPos
	doc.ScrollHint = 0.5
	m.pendingPos = nil
}

// resolvePath canonicalizes a path: absolute, cleaned, symlinks resolved
// when the target exists.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return filepath.Clean(abs)
}
