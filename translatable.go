// Package translatable extracts translatable content from document trees.
// It walks a tree of text and element nodes, skips markup regions and
// subtrees marked as untranslatable, filters out fragments that should not
// be translated (emails, numbers, whitespace), and memoizes results per
// root and configuration.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/) or their
// concern (walk/).
package translatable
