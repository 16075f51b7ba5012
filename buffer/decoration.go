package buffer

import (
	"slices"
	"strconv"
)

// DecorationOptions describes a decoration to add through DeltaDecorations.
type DecorationOptions struct {
	Range Range
	// Class is an opaque, space-separated list of style classes.
	Class string
}

// Decoration is a styled range owned by the buffer.
type Decoration struct {
	ID    string
	Range Range
	Class string
}

// DeltaDecorations removes the decorations named by oldIDs and adds add,
// returning the IDs of the added decorations in order.
//
// Unknown IDs are ignored. Ranges are clamped and normalized. The version is
// bumped only when something was removed or added.
//
// Stored ranges do not move with later edits; Decorations only clamps them
// to the current document. An owner that edits under its decorations must
// replace them, as format updates do on every composition step.
func (b *Buffer) DeltaDecorations(oldIDs []string, add []DecorationOptions) []string {
	removed := 0
	if len(oldIDs) > 0 {
		kept := b.decos[:0]
		for _, d := range b.decos {
			if slices.Contains(oldIDs, d.ID) {
				removed++
				continue
			}
			kept = append(kept, d)
		}
		b.decos = kept
	}

	ids := make([]string, 0, len(add))
	for _, opt := range add {
		b.decoSeq++
		id := "deco-" + strconv.FormatUint(b.decoSeq, 10)
		b.decos = append(b.decos, Decoration{
			ID:    id,
			Range: NormalizeRange(ClampRange(opt.Range, len(b.lines), b.lineLen)),
			Class: opt.Class,
		})
		ids = append(ids, id)
	}

	if removed > 0 || len(ids) > 0 {
		b.version++
	}
	return ids
}

// Decorations returns a copy of all decorations with ranges clamped to the
// current document.
func (b *Buffer) Decorations() []Decoration {
	if len(b.decos) == 0 {
		return nil
	}
	out := make([]Decoration, len(b.decos))
	for i, d := range b.decos {
		d.Range = NormalizeRange(ClampRange(d.Range, len(b.lines), b.lineLen))
		out[i] = d
	}
	return out
}

// DecorationsOnRow returns the decorations intersecting row.
func (b *Buffer) DecorationsOnRow(row int) []Decoration {
	var out []Decoration
	for _, d := range b.Decorations() {
		if d.Range.Start.Row <= row && row <= d.Range.End.Row {
			out = append(out, d)
		}
	}
	return out
}
