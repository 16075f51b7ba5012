package editcontext

import "fmt"

// Position is a 1-based document position.
type Position struct {
	LineNumber int
	Column     int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.LineNumber, p.Column)
}

func comparePosition(a, b Position) int {
	switch {
	case a.LineNumber != b.LineNumber:
		return a.LineNumber - b.LineNumber
	default:
		return a.Column - b.Column
	}
}

// Range is a 1-based document range. Ranges produced by this package are
// normalized so the start never follows the end.
type Range struct {
	StartLineNumber int
	StartColumn     int
	EndLineNumber   int
	EndColumn       int
}

// RangeFromPositions returns the normalized range spanning a and b.
func RangeFromPositions(a, b Position) Range {
	if comparePosition(a, b) > 0 {
		a, b = b, a
	}
	return Range{
		StartLineNumber: a.LineNumber,
		StartColumn:     a.Column,
		EndLineNumber:   b.LineNumber,
		EndColumn:       b.Column,
	}
}

func (r Range) Start() Position {
	return Position{LineNumber: r.StartLineNumber, Column: r.StartColumn}
}

func (r Range) End() Position {
	return Position{LineNumber: r.EndLineNumber, Column: r.EndColumn}
}

func (r Range) IsEmpty() bool {
	return r.StartLineNumber == r.EndLineNumber && r.StartColumn == r.EndColumn
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d -> %d,%d]", r.StartLineNumber, r.StartColumn, r.EndLineNumber, r.EndColumn)
}

// Rect is a screen-space rectangle.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Layout carries the view metrics the geometry calculations depend on.
type Layout struct {
	LineHeight float64
	// TypicalHalfwidthCharacterWidth is the advance of a narrow character.
	TypicalHalfwidthCharacterWidth float64
	// ContentLeft is the offset of the text area from the container's left
	// edge (gutter, margins).
	ContentLeft  float64
	ContentWidth float64
}

// Decoration is a styled document range requested by the edit context.
type Decoration struct {
	Range     Range
	ClassName string
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
