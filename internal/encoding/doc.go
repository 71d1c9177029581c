// Package encoding converts byte streams between on-disk charsets and the
// canonical in-memory representation (UTF-8).
//
// Decode runs the full load pipeline: BOM scanning, forced or auto-detected
// charset conversion, BOM stripping, embedded-NUL truncation checks and
// line-ending detection. Encode is the inverse used on save, including BOM
// emission and positioned diagnostics for untranslatable characters.
//
// The sentinel charset name "None" bypasses all conversion in both
// directions, for binary-safe raw viewing.
package encoding
