package filetype

import "testing"

func TestDetectByFilename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"main.go", "Go"},
		{"Makefile", "Makefile"},
		{"/tmp/proj/util.c", "C"},
		{"notes.md", "Markdown"},
	}
	for _, tt := range tests {
		ft := Detect(tt.path, nil)
		if ft.String() != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, ft.String(), tt.want)
		}
	}
}

func TestDetectByShebang(t *testing.T) {
	ft := Detect("install", []byte("#!/bin/sh\necho hi\n"))
	if ft == nil || ft.Name != "Shell" {
		t.Errorf("Detect shebang = %v, want Shell", ft)
	}
}

func TestDetectUnknown(t *testing.T) {
	ft := Detect("", nil)
	if ft != nil {
		t.Errorf("Detect empty = %v, want nil", ft)
	}
	if ft.String() != "None" {
		t.Errorf("nil type String() = %q, want \"None\"", ft.String())
	}
}

func TestCapabilities(t *testing.T) {
	mk := Detect("Makefile", nil)
	if !mk.MakefileFamily() {
		t.Error("Makefile must be makefile-family")
	}
	goft := Detect("main.go", nil)
	if goft.MakefileFamily() {
		t.Error("Go is not makefile-family")
	}
	if !goft.HasSymbols() {
		t.Error("Go documents feed the symbol index")
	}
	c := &Type{Name: "C"}
	if !c.UsesTypeKeywords() {
		t.Error("C participates in shared type keywords")
	}
	if goft.UsesTypeKeywords() {
		t.Error("Go does not participate in shared type keywords")
	}

	var none *Type
	if none.MakefileFamily() || none.HasSymbols() || none.UsesTypeKeywords() {
		t.Error("nil type must report no capabilities")
	}
}

func TestEqual(t *testing.T) {
	a := &Type{Name: "Go"}
	b := &Type{Name: "Go"}
	c := &Type{Name: "C"}
	if !a.Equal(b) || a.Equal(c) {
		t.Error("Equal comparison wrong")
	}
	var nilT *Type
	if a.Equal(nilT) || !nilT.Equal(nil) {
		t.Error("nil Equal comparison wrong")
	}
}
