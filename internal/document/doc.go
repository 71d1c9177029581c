// Package document is the core of the editor: a registry of open documents
// with stable integer slots, the load/reload/save pipeline, an attribute
// undo log layered over the buffer's native one, disk staleness polling and
// batched re-highlight coordination.
//
// All operations run on a single logical thread; nothing here locks.
// Collaborators that need a decision mid-operation (discard confirmation,
// save-as prompt) are modeled as blocking capability interfaces.
package document
