package editcontext

import "context"

// ViewModel is the read side of the document model plus decoration storage.
type ViewModel interface {
	// PrimarySelection returns the normalized primary selection.
	PrimarySelection() Range
	// PrimaryCursor returns the primary cursor (the active end of the
	// selection).
	PrimaryCursor() Position
	LineCount() int
	LineContent(lineNumber int) string
	// LineMaxColumn returns the column just past the last character of the
	// line, i.e. its length plus one.
	LineMaxColumn(lineNumber int) int
	// TopForLineNumber returns the vertical offset of the top of a line from
	// the top of the document, before scrolling.
	TopForLineNumber(lineNumber int) float64
	// ValueInRange returns the plain text covered by r.
	ValueInRange(r Range) string
	EOL() string
	// DeltaDecorations removes oldIDs and adds decorations, returning the
	// IDs of the added ones.
	DeltaDecorations(oldIDs []string, decorations []Decoration) []string
}

// Controller applies edit operations to the document.
type Controller interface {
	Type(text string)
	CompositionType(text string, replacePrevCount, replaceNextCount, positionDelta int)
	Paste(text string)
	Cut()
}

// HorizontalRange is a visible horizontal span, relative to the left edge of
// the content area and already adjusted for horizontal scrolling.
type HorizontalRange struct {
	Left  float64
	Width float64
}

// LineVisibleRanges lists the visible spans of one line.
type LineVisibleRanges struct {
	LineNumber int
	Ranges     []HorizontalRange
}

// Renderer reports the rendered geometry of document ranges.
type Renderer interface {
	// VisibleRangesForRange returns the visible spans of r, or nil when none
	// of it is rendered. includeNewLines widens partial lines to include the
	// line break.
	VisibleRangesForRange(r Range, includeNewLines bool) []LineVisibleRanges
}

// Surface is the platform input-method surface.
type Surface interface {
	// UpdateText replaces the surface text.
	UpdateText(text string)
	// UpdateSelection sets the surface selection in local offsets.
	UpdateSelection(start, end int)
	UpdateControlBounds(r Rect)
	UpdateSelectionBounds(r Rect)
	UpdateCharacterBounds(rangeStart int, bounds []Rect)
	// Text returns the surface's current text.
	Text() string
	// AddListener registers fn for events of kind until the returned
	// Disposable is disposed.
	AddListener(kind EventKind, fn func(Event)) Disposable
}

// Clipboard provides text clipboard access. Implementations may block.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, s string) error
}
