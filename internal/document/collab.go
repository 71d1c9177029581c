package document

import "github.com/tomeedit/tome/internal/filetype"

// Highlighter is the syntax-highlighting and symbol-indexing collaborator.
// The manager refers to documents by slot so the collaborator can keep its
// own per-document state in a parallel array.
type Highlighter interface {
	// SetFiletype installs lexer styles for the document's new file type.
	SetFiletype(slot int, ft *filetype.Type)

	// Colourise requests a full re-highlight of the document.
	Colourise(slot int)

	// UpdateSymbols rebuilds the symbol index for the document.
	UpdateSymbols(slot int)

	// RemoveSymbols drops the document from the symbol index.
	RemoveSymbols(slot int)

	// TypeKeywords returns the shared list of type names derived from the
	// symbol index. Documents whose language highlights type keywords are
	// re-coloured when this list changes.
	TypeKeywords() []string
}

// Notifier is the UI collaborator for messages and blocking prompts.
type Notifier interface {
	Notify(message string)
	Confirm(question string) bool
	PromptSaveAs() (path string, ok bool)
}
