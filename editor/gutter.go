package editor

import (
	"fmt"
	"strconv"
)

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

// gutterWidth is the number of cells left of the text: the line number plus
// one separator cell, or 0 without line numbers.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

func (m Model) renderGutter(row, digits int) string {
	style := m.cfg.Style.LineNum
	if m.focused && row == m.buf.Cursor().Row {
		style = m.cfg.Style.LineNumActive
	}
	return style.Render(fmt.Sprintf("%*d", digits, row+1)) + m.cfg.Style.Gutter.Render(" ")
}
