package document

import (
	"testing"

	"github.com/tomeedit/tome/internal/filetype"
)

func slotCount(slots []int, want int) int {
	n := 0
	for _, s := range slots {
		if s == want {
			n++
		}
	}
	return n
}

func TestSetFiletypeTriggersCollaborator(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	doc := m.NewFile("x", nil, "")
	h.colourised = nil
	h.styled = nil

	m.SetFiletype(doc, &filetype.Type{Name: "Go"})
	if len(h.styled) != 1 || h.styled[0] != doc.Slot() {
		t.Errorf("styled = %v", h.styled)
	}
	if slotCount(h.colourised, doc.Slot()) != 1 {
		t.Errorf("colourised = %v, want one request", h.colourised)
	}
	if slotCount(h.indexed, doc.Slot()) != 1 {
		t.Errorf("indexed = %v, want one update", h.indexed)
	}

	// Setting the same filetype again is a no-op.
	h.colourised = nil
	m.SetFiletype(doc, &filetype.Type{Name: "Go"})
	if len(h.colourised) != 0 {
		t.Errorf("unchanged filetype recoloured: %v", h.colourised)
	}
}

func TestDelayColouriseReentry(t *testing.T) {
	m := newTestManager(t)
	if err := m.DelayColourise(); err != nil {
		t.Fatalf("DelayColourise: %v", err)
	}
	if err := m.DelayColourise(); err != ErrColouriseActive {
		t.Errorf("re-entrant delay = %v, want ErrColouriseActive", err)
	}
	if err := m.CommitColourise(); err != nil {
		t.Fatalf("CommitColourise: %v", err)
	}
	if err := m.CommitColourise(); err != ErrColouriseInactive {
		t.Errorf("commit without batch = %v, want ErrColouriseInactive", err)
	}
}

func TestBatchColouriseDefersRequests(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	if err := m.DelayColourise(); err != nil {
		t.Fatal(err)
	}
	a := m.NewFile("a.go", &filetype.Type{Name: "Go"}, "")
	b := m.NewFile("b.go", &filetype.Type{Name: "Go"}, "")
	if len(h.colourised) != 0 {
		t.Fatalf("highlight requests during batch: %v", h.colourised)
	}

	if err := m.CommitColourise(); err != nil {
		t.Fatal(err)
	}
	// Exactly one request per document opened during the batch.
	if slotCount(h.colourised, a.Slot()) != 1 || slotCount(h.colourised, b.Slot()) != 1 {
		t.Errorf("colourised = %v, want one request each for %d and %d",
			h.colourised, a.Slot(), b.Slot())
	}
	if len(h.colourised) != 2 {
		t.Errorf("colourised = %v, want exactly 2 requests", h.colourised)
	}
}

func TestTypeKeywordChangeRecolours(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	cdoc := m.NewFile("a.c", &filetype.Type{Name: "C"}, "")
	text := m.NewFile("b.txt", &filetype.Type{Name: "Text"}, "")

	// A new type name appears in the shared keyword list; only languages
	// that highlight type keywords are affected.
	h.colourised = nil
	h.keywords = []string{"MyStruct"}
	m.SetFiletype(m.NewFile("c.c", &filetype.Type{Name: "C"}, ""), &filetype.Type{Name: "C"})

	if slotCount(h.colourised, cdoc.Slot()) != 1 {
		t.Errorf("colourised = %v, want a request for the C document %d",
			h.colourised, cdoc.Slot())
	}
	if slotCount(h.colourised, text.Slot()) != 0 {
		t.Errorf("plain-text document %d was recoloured: %v", text.Slot(), h.colourised)
	}
}

func TestBatchTypeKeywordChangeCoalesces(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	cdoc := m.NewFile("a.c", &filetype.Type{Name: "C"}, "")

	if err := m.DelayColourise(); err != nil {
		t.Fatal(err)
	}
	h.colourised = nil
	h.keywords = []string{"T1"}
	fresh := m.NewFile("b.c", &filetype.Type{Name: "C"}, "")
	h.keywords = []string{"T1", "T2"}
	m.SetFiletype(fresh, &filetype.Type{Name: "C++"})

	if len(h.colourised) != 0 {
		t.Fatalf("requests issued during batch: %v", h.colourised)
	}
	if err := m.CommitColourise(); err != nil {
		t.Fatal(err)
	}

	// One request per affected document despite multiple keyword changes.
	if slotCount(h.colourised, cdoc.Slot()) != 1 {
		t.Errorf("existing document requests = %d, want 1",
			slotCount(h.colourised, cdoc.Slot()))
	}
	if slotCount(h.colourised, fresh.Slot()) != 1 {
		t.Errorf("new document requests = %d, want 1",
			slotCount(h.colourised, fresh.Slot()))
	}
}

func TestUntypedDocumentStillColourised(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	doc := m.NewFile("", nil, "plain text")
	if doc.FileType != nil {
		t.Fatalf("untitled document got filetype %v", doc.FileType)
	}
	if slotCount(h.colourised, doc.Slot()) != 1 {
		t.Errorf("colourised = %v, want one request for slot %d",
			h.colourised, doc.Slot())
	}

	// The commit pass covers new documents unconditionally, filetype tag
	// or not.
	if err := m.DelayColourise(); err != nil {
		t.Fatal(err)
	}
	h.colourised = nil
	fresh := m.NewFile("", nil, "")
	if len(h.colourised) != 0 {
		t.Fatalf("requests issued during batch: %v", h.colourised)
	}
	if err := m.CommitColourise(); err != nil {
		t.Fatal(err)
	}
	if slotCount(h.colourised, fresh.Slot()) != 1 {
		t.Errorf("colourised = %v, want one request for slot %d",
			h.colourised, fresh.Slot())
	}
}

func TestReleasedSlotNotColourised(t *testing.T) {
	h := &stubHighlighter{}
	m := newTestManager(t, WithHighlighter(h))

	if err := m.DelayColourise(); err != nil {
		t.Fatal(err)
	}
	doc := m.NewFile("a.go", &filetype.Type{Name: "Go"}, "")
	if err := m.Release(doc, true); err != nil {
		t.Fatal(err)
	}
	h.colourised = nil
	if err := m.CommitColourise(); err != nil {
		t.Fatal(err)
	}
	if len(h.colourised) != 0 {
		t.Errorf("released slot was colourised: %v", h.colourised)
	}
}
