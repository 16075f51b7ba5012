package buffer

import "github.com/iw2rmb/imebridge/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := b.clampPos(b.moveCursor(prevCursor, m))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(b.lines) - 1

	switch {
	case m.Unit == MoveDoc && (m.Dir == DirHome || m.Dir == DirUp):
		return Pos{}
	case m.Unit == MoveDoc && (m.Dir == DirEnd || m.Dir == DirDown):
		return Pos{Row: lastRow, GraphemeCol: b.lineLen(lastRow)}
	case m.Dir == DirHome:
		return Pos{Row: row}
	case m.Dir == DirEnd:
		return Pos{Row: row, GraphemeCol: b.lineLen(row)}
	case m.Dir == DirUp:
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, b.lineLen(row-1))}
	case m.Dir == DirDown:
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, b.lineLen(row+1))}
	case m.Unit == MoveWord && m.Dir == DirLeft:
		return Pos{Row: row, GraphemeCol: prevWordBoundary(b.lines[row], col)}
	case m.Unit == MoveWord && m.Dir == DirRight:
		return Pos{Row: row, GraphemeCol: nextWordBoundary(b.lines[row], col)}
	case m.Dir == DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row == 0 {
			return p
		}
		return Pos{Row: row - 1, GraphemeCol: b.lineLen(row - 1)}
	case m.Dir == DirRight:
		if col < b.lineLen(row) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row == lastRow {
			return p
		}
		return Pos{Row: row + 1}
	}
	return p
}

// Word boundaries skip whitespace, then non-whitespace, and never cross a
// newline.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
