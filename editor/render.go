package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/imebridge/buffer"
)

type spanKind int

const (
	spanText spanKind = iota
	spanSelection
	spanCursor
	spanDecoration
)

type styledRun struct {
	kind  spanKind
	class string
	style lipgloss.Style
	sb    strings.Builder
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	digits := gutterDigits(m.buf.LineCount())
	sel, selOK := m.buf.Selection()

	out := make([]string, 0, m.buf.LineCount())
	for row := 0; row < m.buf.LineCount(); row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			sb.WriteString(m.renderGutter(row, digits))
		}
		sb.WriteString(m.renderLine(row, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders one document row. Consecutive graphemes sharing a
// style are rendered as one run. Decorations lose to the selection and the
// cursor.
func (m *Model) renderLine(row int, sel buffer.Range, selOK bool) string {
	st := m.cfg.Style
	cells := layoutLine(m.buf.LineText(row), m.cfg.TabWidth)
	decos := m.buf.DecorationsOnRow(row)

	cursor := m.buf.Cursor()
	cursorCol := -1
	if m.focused && cursor.Row == row {
		cursorCol = cursor.GraphemeCol
	}

	selStart, selEnd := -1, -1
	if selOK && sel.Start.Row <= row && row <= sel.End.Row {
		selStart, selEnd = 0, len(cells)
		if row == sel.Start.Row {
			selStart = sel.Start.GraphemeCol
		}
		if row == sel.End.Row {
			selEnd = sel.End.GraphemeCol
		}
	}

	var runs []*styledRun
	push := func(kind spanKind, class string, style lipgloss.Style, text string) {
		if n := len(runs); n > 0 && runs[n-1].kind == kind && runs[n-1].class == class {
			runs[n-1].sb.WriteString(text)
			return
		}
		r := &styledRun{kind: kind, class: class, style: style}
		r.sb.WriteString(text)
		runs = append(runs, r)
	}

	for col, c := range cells {
		text := c.Text
		if text == "\t" {
			text = strings.Repeat(" ", c.Width)
		}

		switch {
		case col == cursorCol:
			push(spanCursor, "", st.Cursor, text)
		case col >= selStart && col < selEnd:
			push(spanSelection, "", st.Selection, text)
		default:
			class := decorationClassAt(decos, row, col)
			if style, ok := st.decorationStyle(class); ok {
				push(spanDecoration, class, style, text)
			} else {
				push(spanText, "", st.Text, text)
			}
		}
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.style.Render(r.sb.String()))
	}
	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if cursorCol >= len(cells) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// decorationClassAt returns the class of the last decoration covering col
// on row, or "".
func decorationClassAt(decos []buffer.Decoration, row, col int) string {
	class := ""
	for _, d := range decos {
		r := d.Range
		if (row > r.Start.Row || col >= r.Start.GraphemeCol) && (row < r.End.Row || col < r.End.GraphemeCol) {
			class = d.Class
		}
	}
	return class
}
