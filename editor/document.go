package editor

import (
	"github.com/iw2rmb/imebridge/buffer"
	"github.com/iw2rmb/imebridge/editcontext"
)

// document exposes a buffer to the edit context as both its view model and
// its controller. Edits are dropped while readOnly is set.
type document struct {
	buf        *buffer.Buffer
	lineHeight float64
	readOnly   bool
}

func toPosition(p buffer.Pos) editcontext.Position {
	return editcontext.Position{LineNumber: p.Row + 1, Column: p.GraphemeCol + 1}
}

func toPos(p editcontext.Position) buffer.Pos {
	return buffer.Pos{Row: p.LineNumber - 1, GraphemeCol: p.Column - 1}
}

func toRange(r buffer.Range) editcontext.Range {
	return editcontext.RangeFromPositions(toPosition(r.Start), toPosition(r.End))
}

func fromRange(r editcontext.Range) buffer.Range {
	return buffer.Range{Start: toPos(r.Start()), End: toPos(r.End())}
}

func (d *document) PrimarySelection() editcontext.Range {
	return toRange(d.buf.SelectionOrCursor())
}

func (d *document) PrimaryCursor() editcontext.Position {
	return toPosition(d.buf.Cursor())
}

func (d *document) LineCount() int { return d.buf.LineCount() }

func (d *document) LineContent(lineNumber int) string {
	return d.buf.LineText(lineNumber - 1)
}

func (d *document) LineMaxColumn(lineNumber int) int {
	return d.buf.LineLen(lineNumber-1) + 1
}

func (d *document) TopForLineNumber(lineNumber int) float64 {
	return float64(max(lineNumber-1, 0)) * d.lineHeight
}

func (d *document) ValueInRange(r editcontext.Range) string {
	return d.buf.TextInRange(fromRange(r))
}

func (d *document) EOL() string { return "\n" }

func (d *document) DeltaDecorations(oldIDs []string, decorations []editcontext.Decoration) []string {
	add := make([]buffer.DecorationOptions, 0, len(decorations))
	for _, deco := range decorations {
		add = append(add, buffer.DecorationOptions{
			Range: fromRange(deco.Range),
			Class: deco.ClassName,
		})
	}
	return d.buf.DeltaDecorations(oldIDs, add)
}

func (d *document) Type(text string) {
	if d.readOnly {
		return
	}
	d.buf.InsertText(text)
}

func (d *document) CompositionType(text string, replacePrevCount, replaceNextCount, _ int) {
	if d.readOnly {
		return
	}
	d.buf.ReplaceAround(replacePrevCount, replaceNextCount, text)
}

func (d *document) Paste(text string) {
	if d.readOnly {
		return
	}
	d.buf.InsertText(text)
}

// Cut deletes the selection, or the whole cursor line (with its line break)
// when nothing is selected.
func (d *document) Cut() {
	if d.readOnly {
		return
	}
	if _, ok := d.buf.Selection(); ok {
		d.buf.DeleteSelection()
		return
	}

	row := d.buf.Cursor().Row
	last := d.buf.LineCount() - 1
	var r buffer.Range
	switch {
	case row < last:
		r = buffer.Range{Start: buffer.Pos{Row: row}, End: buffer.Pos{Row: row + 1}}
	case row > 0:
		r = buffer.Range{
			Start: buffer.Pos{Row: row - 1, GraphemeCol: d.buf.LineLen(row - 1)},
			End:   buffer.Pos{Row: row, GraphemeCol: d.buf.LineLen(row)},
		}
	default:
		r = buffer.Range{Start: buffer.Pos{Row: row}, End: buffer.Pos{Row: row, GraphemeCol: d.buf.LineLen(row)}}
	}
	d.buf.SetSelection(r)
	d.buf.DeleteSelection()
}
