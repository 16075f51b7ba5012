package buffer

import (
	"strings"

	"github.com/iw2rmb/imebridge/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.replaceAndRecord(b.SelectionOrCursor(), s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// ReplaceAround deletes prev clusters before the selection start and next
// clusters after the selection end, then inserts text in their place.
//
// Counts never cross a line boundary: prev stops at column 0 of the start
// row and next stops at the end of the end row.
func (b *Buffer) ReplaceAround(prev, next int, text string) {
	r := b.SelectionOrCursor()
	start := r.Start
	end := r.End
	if prev > 0 {
		start.GraphemeCol = max(start.GraphemeCol-prev, 0)
	}
	if next > 0 {
		end.GraphemeCol = min(end.GraphemeCol+next, b.lineLen(end.Row))
	}
	b.replaceAndRecord(Range{Start: start, End: end}, text)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.replaceAndRecord(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with previous line (delete the newline).
		b.replaceAndRecord(Range{Start: Pos{Row: row - 1, GraphemeCol: b.lineLen(row - 1)}, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < b.lineLen(row):
		b.replaceAndRecord(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with next line (delete the newline).
		b.replaceAndRecord(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.replaceAndRecord(r, "")
}

func (b *Buffer) replaceAndRecord(r Range, text string) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, false
	}

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	repl := make([][]string, 0, len(parts))
	for i, p := range parts {
		var line []string
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, grapheme.Split(p)...)
		if i == len(parts)-1 {
			nextCursor = Pos{Row: startRow + i, GraphemeCol: len(line)}
			line = append(line, suffix...)
		}
		repl = append(repl, line)
	}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	return nextCursor, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == r.Start.Row {
			partStart = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			partEnd = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
