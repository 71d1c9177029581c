// Package filetype detects the language/format of a document and exposes
// the capability flags the document core keys off it: symbol indexing,
// shared type-keyword highlighting and save-time tab handling.
package filetype

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Type is the capability tag attached to a document. A nil *Type means the
// filetype is unknown; all capability accessors are nil-safe.
type Type struct {
	// Name is the detected language name, e.g. "Go", "C", "Makefile".
	Name string
}

// None is returned when detection finds nothing usable.
var None *Type

// typeKeywordLanguages are languages whose highlighting shares a
// project-wide list of user type names. Opening or saving documents of
// these languages can require every sibling document to be re-highlighted.
var typeKeywordLanguages = map[string]bool{
	"C":           true,
	"C++":         true,
	"C#":          true,
	"Java":        true,
	"Objective-C": true,
	"Vala":        true,
	"D":           true,
}

// symbolLanguages feed the symbol index. Markup and data formats do not.
var symbolLanguages = map[string]bool{
	"C": true, "C++": true, "C#": true, "Java": true, "Objective-C": true,
	"Go": true, "Rust": true, "Python": true, "Ruby": true, "Perl": true,
	"JavaScript": true, "TypeScript": true, "PHP": true, "Lua": true,
	"Shell": true, "Haskell": true, "D": true, "Vala": true, "Pascal": true,
	"Fortran": true, "Tcl": true, "SQL": true, "Makefile": true,
}

// makefileLanguages form the family whose leading tabs are syntax and must
// survive save-time tab replacement.
var makefileLanguages = map[string]bool{
	"Makefile": true,
	"CMake":    true,
	"M4Sugar":  true,
}

// Detect determines the filetype from the filename and, when that is not
// conclusive, the content. Returns None when nothing matches.
func Detect(path string, content []byte) *Type {
	if path == "" && len(content) == 0 {
		return None
	}

	name := filepath.Base(path)

	if lang, safe := enry.GetLanguageByFilename(name); safe {
		return &Type{Name: lang}
	}
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return &Type{Name: lang}
	}
	if len(content) > 0 {
		if lang, safe := enry.GetLanguageByShebang(content); safe {
			return &Type{Name: lang}
		}
		if lang := enry.GetLanguage(name, content); lang != "" {
			return &Type{Name: lang}
		}
	}
	return None
}

// String returns the language name, or "None" for an unknown filetype.
func (t *Type) String() string {
	if t == nil {
		return "None"
	}
	return t.Name
}

// MakefileFamily reports whether leading tabs are significant syntax.
func (t *Type) MakefileFamily() bool {
	return t != nil && makefileLanguages[t.Name]
}

// HasSymbols reports whether documents of this type feed the symbol index.
func (t *Type) HasSymbols() bool {
	return t != nil && symbolLanguages[t.Name]
}

// UsesTypeKeywords reports whether this type participates in the shared
// type-keyword list used during batch colourise.
func (t *Type) UsesTypeKeywords() bool {
	return t != nil && typeKeywordLanguages[t.Name]
}

// Equal reports whether two filetype tags name the same language.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name == other.Name
}
