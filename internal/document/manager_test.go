package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlotReuse(t *testing.T) {
	m := newTestManager(t)

	a := m.NewFile("a", nil, "a")
	b := m.NewFile("b", nil, "b")
	c := m.NewFile("c", nil, "c")
	if a.Slot() != 0 || b.Slot() != 1 || c.Slot() != 2 {
		t.Fatalf("slots = %d,%d,%d, want 0,1,2", a.Slot(), b.Slot(), c.Slot())
	}

	if err := m.Release(b, false); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if b.Valid() {
		t.Error("released document still valid")
	}
	if m.Get(1) != nil {
		t.Error("Get should not return a tombstoned slot")
	}

	// The lowest tombstoned slot is reused.
	d := m.NewFile("d", nil, "d")
	if d.Slot() != 1 {
		t.Errorf("reused slot = %d, want 1", d.Slot())
	}
	if len(m.Documents()) != 3 {
		t.Errorf("live documents = %d, want 3", len(m.Documents()))
	}
}

func TestReleaseBusy(t *testing.T) {
	m := newTestManager(t)
	doc := m.NewFile("a", nil, "")
	doc.Buf.Replace(rangeAt(0, 0), "dirty")
	doc.updateChangedState()

	if err := m.Release(doc, false); err != ErrBusy {
		t.Fatalf("Release dirty = %v, want ErrBusy", err)
	}
	if !doc.Valid() {
		t.Fatal("failed release must leave the document intact")
	}
	if err := m.Release(doc, true); err != nil {
		t.Fatalf("confirmed Release: %v", err)
	}
	if doc.Valid() {
		t.Error("document still valid after confirmed release")
	}
}

func TestCloseConfirms(t *testing.T) {
	n := &stubNotifier{}
	m := newTestManager(t, WithNotifier(n))
	doc := m.NewFile("a", nil, "")
	doc.Buf.Replace(rangeAt(0, 0), "dirty")
	doc.updateChangedState()

	n.confirm = false
	if err := m.Close(doc); err != ErrBusy {
		t.Fatalf("Close declined = %v, want ErrBusy", err)
	}
	if len(n.questions) != 1 {
		t.Fatalf("questions asked = %d, want 1", len(n.questions))
	}

	n.confirm = true
	if err := m.Close(doc); err != nil {
		t.Fatalf("Close confirmed: %v", err)
	}
	if doc.Valid() {
		t.Error("document still valid after close")
	}
}

func TestCloseAll(t *testing.T) {
	n := &stubNotifier{confirm: true}
	m := newTestManager(t, WithNotifier(n))
	m.NewFile("a", nil, "")
	b := m.NewFile("b", nil, "")
	b.Buf.Replace(rangeAt(0, 0), "dirty")
	b.updateChangedState()

	if err := m.CloseAll(); err != nil {
		t.Fatalf("CloseAll: %v", err)
	}
	if len(m.Documents()) != 0 {
		t.Errorf("live documents after CloseAll = %d", len(m.Documents()))
	}
	// Only the dirty document needed a confirmation.
	if len(n.questions) != 1 {
		t.Errorf("questions asked = %d, want 1", len(n.questions))
	}
}

func TestBlankDocumentReuse(t *testing.T) {
	m := newTestManager(t)
	blank := m.NewFileIfEmpty()
	if blank == nil {
		t.Fatal("NewFileIfEmpty on empty registry returned nil")
	}
	if m.NewFileIfEmpty() != nil {
		t.Error("NewFileIfEmpty should not fire with a document open")
	}

	// Opening a file replaces the single clean untitled document.
	doc := m.NewFile("real", nil, "content")
	if len(m.Documents()) != 1 {
		t.Fatalf("live documents = %d, want 1", len(m.Documents()))
	}
	if doc.Slot() != 0 {
		t.Errorf("slot = %d, want 0", doc.Slot())
	}
	if blank.Valid() {
		t.Error("blank document should have been released")
	}
}

func TestFindByDisplayPathNearDuplicate(t *testing.T) {
	m := newTestManager(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := m.Open(path, false, nil, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// A redundant path segment resolves to the same record.
	odd := filepath.Join(dir, "sub", "..", "f.txt")
	if got := m.FindByDisplayPath(odd); got != doc {
		t.Errorf("FindByDisplayPath(%q) = %v, want the open document", odd, got)
	}
	if m.FindByDisplayPath(filepath.Join(dir, "other.txt")) != nil {
		t.Error("unrelated path should not match")
	}
}

func TestFindByBuffer(t *testing.T) {
	m := newTestManager(t)
	a := m.NewFile("a", nil, "")
	b := m.NewFile("b", nil, "")

	if got := m.FindByBuffer(b.Buf); got != b {
		t.Errorf("FindByBuffer = %v, want b", got)
	}
	if got := m.FindByBuffer(a.Buf); got != a {
		t.Errorf("FindByBuffer = %v, want a", got)
	}
}

func TestClone(t *testing.T) {
	m := newTestManager(t)
	src := m.NewFile("orig.c", nil, "int x;\n")
	src.SetEncoding("ISO-8859-1")
	src.SetBOM(false)
	src.Readonly = true

	dup := m.Clone(src, "copy.c")
	if dup == nil {
		t.Fatal("Clone returned nil")
	}
	if dup.Slot() == src.Slot() {
		t.Error("clone must get its own slot")
	}
	if dup.Buf == src.Buf {
		t.Error("clone must get its own buffer")
	}
	if got := dup.Buf.Text(); got != "int x;\n" {
		t.Errorf("clone text = %q", got)
	}
	if dup.Charset != "ISO-8859-1" {
		t.Errorf("clone charset = %q", dup.Charset)
	}
	if !dup.Readonly {
		t.Error("clone should copy readonly")
	}
	if dup.Changed() {
		t.Error("clone should start clean")
	}
}
