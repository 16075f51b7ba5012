// Package editcontext bridges a document model and a platform input-method
// surface.
//
// The EditContext keeps a flattened shadow copy of the lines spanned by the
// primary selection, pushes it to the surface, and turns the surface's raw
// text updates back into edit operations (delete-before / delete-after /
// insert). IME format ranges are mapped from local shadow offsets into
// document ranges and materialized as decorations, and composition and
// selection geometry is computed for candidate-window placement.
//
// Document positions are 1-based (LineNumber, Column). Local offsets into the
// shadow and surface text are 0-based and counted in grapheme clusters.
//
// All methods must be called from the single goroutine that owns the editor
// (the UI loop). Clipboard reads may run elsewhere; see BeginPaste.
package editcontext
