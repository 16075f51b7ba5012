package editor

import "github.com/iw2rmb/imebridge/buffer"

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// GutterWidth is the number of cells left of the text.
	GutterWidth int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		GutterWidth: m.gutterWidth(),
	}
}

// ScreenToDoc maps viewport-local cell coordinates to a document position.
// Coordinates are clamped into the document; gutter clicks map to column 0.
func (m Model) ScreenToDoc(x, y int) buffer.Pos {
	if m.buf == nil {
		return buffer.Pos{}
	}
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	cells := layoutLine(m.buf.LineText(row), m.cfg.TabWidth)
	return buffer.Pos{Row: row, GraphemeCol: colForCell(cells, max(x-m.gutterWidth(), 0))}
}

// DocToScreen maps a document position to viewport-local cell coordinates.
//
// ok is false when the position is outside the visible viewport.
func (m Model) DocToScreen(pos buffer.Pos) (x int, y int, ok bool) {
	if m.buf == nil {
		return 0, 0, false
	}
	row := clampInt(pos.Row, 0, m.buf.LineCount()-1)
	cells := layoutLine(m.buf.LineText(row), m.cfg.TabWidth)
	x = m.gutterWidth() + cellForCol(cells, pos.GraphemeCol)
	y = row - m.viewport.YOffset

	if y < 0 || y >= m.visibleRowCount() || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
