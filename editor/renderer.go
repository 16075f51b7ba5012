package editor

import (
	"github.com/iw2rmb/imebridge/buffer"
	"github.com/iw2rmb/imebridge/editcontext"
)

// cellRenderer reports where document ranges landed in the last laid out
// frame. Spans are relative to the text area, right of the gutter.
type cellRenderer struct {
	buf       *buffer.Buffer
	tabWidth  int
	charWidth float64

	// Visible document rows are [topRow, topRow+rows).
	topRow int
	rows   int
}

func (r cellRenderer) VisibleRangesForRange(rng editcontext.Range, includeNewLines bool) []editcontext.LineVisibleRanges {
	if r.buf == nil || r.rows <= 0 {
		return nil
	}
	br := buffer.NormalizeRange(fromRange(rng))

	first := max(br.Start.Row, r.topRow)
	last := min(br.End.Row, r.topRow+r.rows-1, r.buf.LineCount()-1)

	var out []editcontext.LineVisibleRanges
	for row := first; row <= last; row++ {
		cells := layoutLine(r.buf.LineText(row), r.tabWidth)
		startCol, endCol := 0, len(cells)
		if row == br.Start.Row {
			startCol = br.Start.GraphemeCol
		}
		if row == br.End.Row {
			endCol = br.End.GraphemeCol
		}

		left := cellForCol(cells, startCol)
		right := cellForCol(cells, endCol)
		if includeNewLines && row < br.End.Row {
			right++
		}
		out = append(out, editcontext.LineVisibleRanges{
			LineNumber: row + 1,
			Ranges: []editcontext.HorizontalRange{{
				Left:  float64(left) * r.charWidth,
				Width: float64(max(right-left, 0)) * r.charWidth,
			}},
		})
	}
	return out
}
