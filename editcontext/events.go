package editcontext

// EventKind discriminates surface events.
type EventKind int

const (
	EventTextUpdate EventKind = iota
	EventCompositionStart
	EventCompositionEnd
	EventTextFormatUpdate
	EventCharacterBoundsUpdate
)

func (k EventKind) String() string {
	switch k {
	case EventTextUpdate:
		return "textupdate"
	case EventCompositionStart:
		return "compositionstart"
	case EventCompositionEnd:
		return "compositionend"
	case EventTextFormatUpdate:
		return "textformatupdate"
	case EventCharacterBoundsUpdate:
		return "characterboundsupdate"
	default:
		return "unknown"
	}
}

// Event is a payload delivered by a Surface.
type Event interface {
	Kind() EventKind
}

// TextUpdate reports that the surface replaced [UpdateRangeStart,
// UpdateRangeEnd) of its text with Text. Offsets are local to the surface
// text as it was before the update.
type TextUpdate struct {
	Text             string
	UpdateRangeStart int
	UpdateRangeEnd   int
	// SelectionStart and SelectionEnd are the surface selection after the
	// update.
	SelectionStart int
	SelectionEnd   int
}

type CompositionStart struct{}

type CompositionEnd struct{}

// TextFormatUpdate carries the IME's formatting hints for the composition.
type TextFormatUpdate struct {
	Formats []FormatRange
}

// CharacterBoundsUpdate asks for the bounds of the characters in
// [RangeStart, RangeEnd).
type CharacterBoundsUpdate struct {
	RangeStart int
	RangeEnd   int
}

func (TextUpdate) Kind() EventKind            { return EventTextUpdate }
func (CompositionStart) Kind() EventKind      { return EventCompositionStart }
func (CompositionEnd) Kind() EventKind        { return EventCompositionEnd }
func (TextFormatUpdate) Kind() EventKind      { return EventTextFormatUpdate }
func (CharacterBoundsUpdate) Kind() EventKind { return EventCharacterBoundsUpdate }

// KeyDown is a keyboard event seen while the surface is active.
type KeyDown struct {
	// Key is a bubbles-style key name ("enter", "tab", "a", ...).
	Key string
}
