package editcontext

import "math"

// CharacterBounds returns the box covering the composition's visible spans.
//
// visible holds the per-line spans of the composition range; when it has no
// spans the box is half a character wide at the content's left edge. The box
// is one line tall at lineTop, which is the document offset of the
// composition's first line.
func CharacterBounds(container Rect, layout Layout, lineTop, scrollTop float64, visible []LineVisibleRanges) Rect {
	left := container.Left + layout.ContentLeft
	width := layout.TypicalHalfwidthCharacterWidth / 2

	if minLeft, maxRight, ok := visibleExtent(visible); ok {
		left += minLeft
		width = maxRight - minLeft
	}

	return Rect{
		Left:   left,
		Top:    container.Top + lineTop - scrollTop,
		Width:  width,
		Height: layout.LineHeight,
	}
}

// SelectionBounds returns the box handed to the platform for the selection.
//
// A caret gets a half-character box at caretLeft (relative to the content
// area). A non-empty selection gets the full content width over every line it
// spans; candidate windows only need an outline.
func SelectionBounds(container Rect, layout Layout, sel Range, lineTop, scrollTop, caretLeft float64) Rect {
	top := container.Top + lineTop - scrollTop
	if sel.IsEmpty() {
		return Rect{
			Left:   container.Left + layout.ContentLeft + caretLeft,
			Top:    top,
			Width:  layout.TypicalHalfwidthCharacterWidth / 2,
			Height: layout.LineHeight,
		}
	}
	lines := sel.EndLineNumber - sel.StartLineNumber
	return Rect{
		Left:   container.Left + layout.ContentLeft,
		Top:    top,
		Width:  layout.ContentWidth,
		Height: float64(lines+1) * layout.LineHeight,
	}
}

func visibleExtent(visible []LineVisibleRanges) (minLeft, maxRight float64, ok bool) {
	minLeft, maxRight = math.Inf(1), math.Inf(-1)
	for _, line := range visible {
		for _, r := range line.Ranges {
			minLeft = math.Min(minLeft, r.Left)
			maxRight = math.Max(maxRight, r.Left+r.Width)
			ok = true
		}
	}
	return minLeft, maxRight, ok
}

func hasVisibleSpans(visible []LineVisibleRanges) bool {
	_, _, ok := visibleExtent(visible)
	return ok
}
