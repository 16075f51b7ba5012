// Package buffer implements the grapheme-accurate document model the input
// bridge reads from and writes to.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Decorations are owned by the buffer and replaced wholesale by their creator
// through DeltaDecorations.
package buffer
