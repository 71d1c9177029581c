package document

// attrAction is one entry in the attribute undo log: either a placeholder
// forwarding to the buffer's native undo, or a recorded prior value of an
// attribute the buffer cannot represent.
type attrAction struct {
	kind    actionKind
	bom     bool
	charset string
}

type actionKind uint8

const (
	actionBufferEdit actionKind = iota
	actionBOM
	actionEncoding
)

// pushUndo appends an action to the undo log. The redo log is deliberately
// retained; only RecordBufferEdit from a fresh buffer mutation breaks redo,
// via InvalidateRedo.
func (d *Document) pushUndo(a attrAction) {
	d.undoLog = append(d.undoLog, a)
	d.updateChangedState()
}

// RecordBufferEdit notes that an undoable buffer edit happened, so that
// attribute undo replays buffer and attribute changes in order. The widget
// glue calls this on each native undo step it records.
func (d *Document) RecordBufferEdit() {
	d.pushUndo(attrAction{kind: actionBufferEdit})
}

// SetEncoding changes the document's charset, recording the prior value as
// an undoable attribute action. Setting the current charset is a no-op.
func (d *Document) SetEncoding(charset string) {
	if charset == d.Charset {
		return
	}
	d.pushUndo(attrAction{kind: actionEncoding, charset: d.Charset})
	d.Charset = charset
	d.updateChangedState()
}

// SetBOM changes the byte-order-mark flag, recording the prior value.
func (d *Document) SetBOM(bom bool) {
	if bom == d.HasBOM {
		return
	}
	d.pushUndo(attrAction{kind: actionBOM, bom: d.HasBOM})
	d.HasBOM = bom
	d.updateChangedState()
}

// CanUndo reports pending attribute actions or native buffer undo.
func (d *Document) CanUndo() bool {
	if !d.Valid() {
		return false
	}
	return len(d.undoLog) > 0 || d.Buf.CanUndo()
}

// CanRedo reports pending attribute redo or native buffer redo.
func (d *Document) CanRedo() bool {
	if !d.Valid() {
		return false
	}
	return len(d.redoLog) > 0 || d.Buf.CanRedo()
}

// Undo pops one attribute action, transferring its inverse onto the redo
// log. With no attribute action pending, the buffer's native undo is
// authoritative.
func (d *Document) Undo() {
	if !d.Valid() {
		return
	}
	if len(d.undoLog) == 0 {
		d.Buf.Undo()
		d.updateChangedState()
		return
	}

	a := d.undoLog[len(d.undoLog)-1]
	d.undoLog = d.undoLog[:len(d.undoLog)-1]

	switch a.kind {
	case actionBufferEdit:
		d.redoLog = append(d.redoLog, attrAction{kind: actionBufferEdit})
		d.Buf.Undo()
	case actionBOM:
		d.redoLog = append(d.redoLog, attrAction{kind: actionBOM, bom: d.HasBOM})
		d.HasBOM = a.bom
	case actionEncoding:
		d.redoLog = append(d.redoLog, attrAction{kind: actionEncoding, charset: d.Charset})
		d.Charset = a.charset
	}
	d.updateChangedState()
}

// Redo is symmetric to Undo.
func (d *Document) Redo() {
	if !d.Valid() {
		return
	}
	if len(d.redoLog) == 0 {
		d.Buf.Redo()
		d.updateChangedState()
		return
	}

	a := d.redoLog[len(d.redoLog)-1]
	d.redoLog = d.redoLog[:len(d.redoLog)-1]

	switch a.kind {
	case actionBufferEdit:
		d.undoLog = append(d.undoLog, attrAction{kind: actionBufferEdit})
		d.Buf.Redo()
	case actionBOM:
		d.undoLog = append(d.undoLog, attrAction{kind: actionBOM, bom: d.HasBOM})
		d.HasBOM = a.bom
	case actionEncoding:
		d.undoLog = append(d.undoLog, attrAction{kind: actionEncoding, charset: d.Charset})
		d.Charset = a.charset
	}
	d.updateChangedState()
}

// InvalidateRedo drains the attribute redo log. Called by the widget glue
// when a fresh buffer edit breaks the buffer's own redo chain.
func (d *Document) InvalidateRedo() {
	d.redoLog = nil
}

// clearUndo drains both logs; invoked on reload and release.
func (d *Document) clearUndo() {
	d.undoLog = nil
	d.redoLog = nil
}
