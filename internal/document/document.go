package document

import (
	"path/filepath"
	"time"

	"github.com/tomeedit/tome/internal/buffer"
	"github.com/tomeedit/tome/internal/encoding"
	"github.com/tomeedit/tome/internal/filetype"
)

// Position is a one-based line/column pair used for initial cursor
// placement on load.
type Position struct {
	Line int
	Col  int
}

// Status classifies a document for display purposes.
type Status int

const (
	StatusClean Status = iota
	StatusChanged
	StatusReadonly
)

func (s Status) String() string {
	switch s {
	case StatusChanged:
		return "changed"
	case StatusReadonly:
		return "readonly"
	default:
		return "clean"
	}
}

// Document is one open document. A released document keeps its slot as a
// tombstone; Valid reports whether the record is live.
type Document struct {
	slot int

	// DisplayPath is the path as given by the user; empty for untitled
	// documents.
	DisplayPath string

	Charset    string
	HasBOM     bool
	FileType   *filetype.Type
	Readonly   bool
	Truncated  bool
	LineEnding encoding.LineEnding
	UseTabs    bool
	ModTime    time.Time

	// ScrollHint is a vertical position hint in [0,1] for the view layer,
	// set when an initial cursor position was applied on load.
	ScrollHint float64

	// InitialPos is the consumed one-shot cursor override, if any.
	InitialPos *Position

	// Buf is the text buffer; nil marks a tombstoned slot. It is cleared
	// last on release so a lookup never observes a half-torn-down record.
	Buf buffer.Buffer

	realPath     string
	savedCharset string
	savedBOM     bool
	changed      bool
	lastCheck    time.Time

	undoLog []attrAction
	redoLog []attrAction
}

// Slot returns the document's stable registry index.
func (d *Document) Slot() int { return d.slot }

// Valid reports whether the document is live (not released).
func (d *Document) Valid() bool { return d != nil && d.Buf != nil }

// RealPath returns the canonical on-disk path, empty for unsaved documents.
func (d *Document) RealPath() string { return d.realPath }

// Changed reports whether buffer content or encoding attributes differ from
// the last successful load or save.
func (d *Document) Changed() bool { return d.changed }

// Basename returns the display name for tabs and messages.
func (d *Document) Basename() string {
	if d.DisplayPath == "" {
		return "untitled"
	}
	return filepath.Base(d.DisplayPath)
}

// Status classifies the document: changed wins over readonly.
func (d *Document) Status() Status {
	switch {
	case d.changed:
		return StatusChanged
	case d.Readonly:
		return StatusReadonly
	default:
		return StatusClean
	}
}

// storeSavedEncoding snapshots the current charset and BOM flag as the
// on-disk state, the baseline for dirty tracking.
func (d *Document) storeSavedEncoding() {
	d.savedCharset = d.Charset
	d.savedBOM = d.HasBOM
}

// updateChangedState recomputes the dirty flag from the buffer's modified
// state and the encoding attributes against the saved snapshot.
func (d *Document) updateChangedState() {
	if !d.Valid() {
		return
	}
	d.changed = d.Buf.IsModified() ||
		d.HasBOM != d.savedBOM ||
		d.Charset != d.savedCharset
}
