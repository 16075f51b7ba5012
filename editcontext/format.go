package editcontext

import (
	"strings"
)

type UnderlineStyle int

const (
	UnderlineStyleNone UnderlineStyle = iota
	UnderlineStyleSolid
	UnderlineStyleDotted
	UnderlineStyleDashed
	UnderlineStyleWavy
)

func (s UnderlineStyle) String() string {
	switch s {
	case UnderlineStyleSolid:
		return "Solid"
	case UnderlineStyleDotted:
		return "Dotted"
	case UnderlineStyleDashed:
		return "Dashed"
	case UnderlineStyleWavy:
		return "Wavy"
	default:
		return "None"
	}
}

type UnderlineThickness int

const (
	UnderlineThicknessNone UnderlineThickness = iota
	UnderlineThicknessThin
	UnderlineThicknessThick
)

func (t UnderlineThickness) String() string {
	switch t {
	case UnderlineThicknessThin:
		return "Thin"
	case UnderlineThicknessThick:
		return "Thick"
	default:
		return "None"
	}
}

// FormatRange marks [RangeStart, RangeEnd) of the surface text.
type FormatRange struct {
	RangeStart         int
	RangeEnd           int
	UnderlineStyle     UnderlineStyle
	UnderlineThickness UnderlineThickness
}

// FormatDecorationClass is the class every format decoration carries.
const FormatDecorationClass = "edit-context-format-decoration"

// FormatClassName returns the decoration class list for f.
func FormatClassName(f FormatRange) string {
	return strings.Join([]string{
		FormatDecorationClass,
		"underline-style-" + strings.ToLower(f.UnderlineStyle.String()),
		"underline-thickness-" + strings.ToLower(f.UnderlineThickness.String()),
	}, " ")
}

// MapFormats maps format ranges over surfaceText into document decorations
// anchored at anchor's start. It returns nil when anchor is nil.
//
// The local line is shifted by anchor.StartLineNumber-1. The local column is
// shifted by anchor.StartColumn-1 only when the mapped line is the anchor's
// start line.
func MapFormats(formats []FormatRange, anchor *Range, surfaceText string) []Decoration {
	if anchor == nil || len(formats) == 0 {
		return nil
	}

	t := NewPositionOffsetTransformer(surfaceText)
	out := make([]Decoration, 0, len(formats))
	for _, f := range formats {
		local := t.Range(f.RangeStart, f.RangeEnd)
		start := anchorPosition(local.Start(), *anchor)
		end := anchorPosition(local.End(), *anchor)
		out = append(out, Decoration{
			Range:     RangeFromPositions(start, end),
			ClassName: FormatClassName(f),
		})
	}
	return out
}

func anchorPosition(local Position, anchor Range) Position {
	line := anchor.StartLineNumber + local.LineNumber - 1
	col := local.Column
	if line == anchor.StartLineNumber {
		col += anchor.StartColumn - 1
	}
	return Position{LineNumber: line, Column: col}
}
