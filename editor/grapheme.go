package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/imebridge/internal/grapheme"
)

// cell is one grapheme laid out on a terminal row.
type cell struct {
	Text      string
	StartCell int
	Width     int
}

// layoutLine places every grapheme of line on a row starting at cell 0.
func layoutLine(line string, tabWidth int) []cell {
	clusters := graphemeutil.Split(line)
	if len(clusters) == 0 {
		return nil
	}

	out := make([]cell, 0, len(clusters))
	x := 0
	for _, g := range clusters {
		w := graphemeCellWidth(g, x, tabWidth)
		out = append(out, cell{Text: g, StartCell: x, Width: w})
		x += w
	}
	return out
}

// cellForCol returns the cell offset of grapheme column col. Columns past the
// end map to the end of the line.
func cellForCol(cells []cell, col int) int {
	if col <= 0 || len(cells) == 0 {
		return 0
	}
	if col >= len(cells) {
		last := cells[len(cells)-1]
		return last.StartCell + last.Width
	}
	return cells[col].StartCell
}

// colForCell returns the grapheme column under cell x, snapping to the
// nearest boundary inside wide graphemes.
func colForCell(cells []cell, x int) int {
	for i, c := range cells {
		if x < c.StartCell+c.Width {
			if x-c.StartCell > (c.Width-1)/2 {
				return i + 1
			}
			return i
		}
	}
	return len(cells)
}

func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = max(uniseg.StringWidth(text), 0)
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return max(tabWidth-visualCol%tabWidth, 1)
}
