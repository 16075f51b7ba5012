package editcontext

import "github.com/iw2rmb/imebridge/internal/grapheme"

// PositionOffsetTransformer maps grapheme offsets within a fixed text to
// 1-based line/column positions within that text.
type PositionOffsetTransformer struct {
	// lineStarts[i] is the offset of the first cluster of line i+1.
	lineStarts []int
	length     int
}

func NewPositionOffsetTransformer(text string) PositionOffsetTransformer {
	t := PositionOffsetTransformer{lineStarts: []int{0}}
	for _, c := range grapheme.Split(text) {
		t.length++
		if grapheme.IsLineBreak(c) {
			t.lineStarts = append(t.lineStarts, t.length)
		}
	}
	return t
}

// Len returns the text length in grapheme clusters.
func (t PositionOffsetTransformer) Len() int { return t.length }

// Position returns the position of offset, clamped into [0, Len()].
func (t PositionOffsetTransformer) Position(offset int) Position {
	offset = clampInt(offset, 0, t.length)

	lo, hi := 0, len(t.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Position{LineNumber: lo + 1, Column: offset - t.lineStarts[lo] + 1}
}

// Offset is the inverse of Position. Columns past the end of a line clamp to
// the line end.
func (t PositionOffsetTransformer) Offset(p Position) int {
	line := clampInt(p.LineNumber, 1, len(t.lineStarts)) - 1
	start := t.lineStarts[line]
	end := t.length
	if line+1 < len(t.lineStarts) {
		end = t.lineStarts[line+1] - 1
	}
	return clampInt(start+p.Column-1, start, end)
}

// Range maps the half-open offset range [start, end) to a document range.
func (t PositionOffsetTransformer) Range(start, end int) Range {
	if end < start {
		start, end = end, start
	}
	return RangeFromPositions(t.Position(start), t.Position(end))
}
