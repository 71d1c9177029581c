package document

import (
	"sort"
	"strings"

	"github.com/tomeedit/tome/internal/filetype"
	"github.com/tomeedit/tome/internal/logging"
)

// SetFiletype changes a document's file type, installs lexer styles,
// refreshes the symbol index and requests a re-highlight. Inside a
// colourise batch the highlight request is deferred to the commit.
func (m *Manager) SetFiletype(doc *Document, ft *filetype.Type) {
	if !doc.Valid() {
		return
	}
	changed := !ft.Equal(doc.FileType)
	doc.FileType = ft

	if changed {
		m.log.Debug("filetype set",
			logging.FieldSlot, doc.slot,
			logging.FieldFiletype, ft.String())
		if m.highlighter != nil {
			m.highlighter.SetFiletype(doc.slot, ft)
			if ft.HasSymbols() {
				m.highlighter.UpdateSymbols(doc.slot)
			} else {
				m.highlighter.RemoveSymbols(doc.slot)
			}
		}
		m.requestColourise(doc.slot)
	}
	m.refreshTypeKeywords()
}

// requestColourise issues a highlight request, or records the slot when a
// batch is open.
func (m *Manager) requestColourise(slot int) {
	if m.delayed {
		m.pendingSlots[slot] = true
		return
	}
	if m.highlighter != nil {
		m.highlighter.Colourise(slot)
	}
}

// refreshTypeKeywords compares the collaborator's shared type-keyword list
// against the cached one and re-colours every document whose language
// highlights type keywords when it changed.
func (m *Manager) refreshTypeKeywords() {
	if m.highlighter == nil {
		return
	}
	kw := strings.Join(m.highlighter.TypeKeywords(), "\n")
	if kw == m.typeKeywords {
		return
	}
	m.typeKeywords = kw
	for _, d := range m.Documents() {
		if d.FileType.UsesTypeKeywords() {
			m.requestColourise(d.slot)
		}
	}
}

// DelayColourise opens a batch: until the matching CommitColourise, no
// document triggers an immediate re-highlight. Re-entrant calls are a
// usage error.
func (m *Manager) DelayColourise() error {
	if m.delayed {
		return ErrColouriseActive
	}
	m.delayed = true
	return nil
}

// CommitColourise closes the batch and issues exactly one highlight request
// per affected document: those opened or retyped during the batch, plus any
// whose shared type-keyword list changed.
func (m *Manager) CommitColourise() error {
	if !m.delayed {
		return ErrColouriseInactive
	}
	m.delayed = false

	// Keyword changes observed during the batch were already recorded in
	// the pending set; this catches a change whose refresh never ran.
	m.refreshTypeKeywords()

	slots := make([]int, 0, len(m.pendingSlots))
	for slot := range m.pendingSlots {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	for _, slot := range slots {
		if m.Get(slot) == nil {
			continue
		}
		if m.highlighter != nil {
			m.highlighter.Colourise(slot)
		}
	}
	m.pendingSlots = make(map[int]bool)

	m.log.Debug("colourise batch committed", logging.FieldCount, len(slots))
	return nil
}
