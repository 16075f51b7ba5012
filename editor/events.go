package editor

import (
	"github.com/iw2rmb/imebridge/buffer"
	"github.com/iw2rmb/imebridge/editcontext"
)

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

// Messages a host sends to drive the input-method surface.
type (
	// CompositionStartMsg starts an IME composition at the cursor.
	CompositionStartMsg struct{}
	// CompositionEndMsg commits the current composition.
	CompositionEndMsg struct{}

	// ReplaceTextMsg replaces [Start, End) of the surface text with Text,
	// the way an IME rewrites its composition string.
	ReplaceTextMsg struct {
		Start, End int
		Text       string
	}

	// TextFormatMsg carries IME underline hints for the composition.
	TextFormatMsg struct {
		Formats []editcontext.FormatRange
	}

	// CharacterBoundsMsg asks for the bounds of [RangeStart, RangeEnd) of the
	// surface text. The answer is visible through Model.IMEState.
	CharacterBoundsMsg struct {
		RangeStart, RangeEnd int
	}
)

type pasteMsg struct {
	req  editcontext.PasteRequest
	text string
	err  error
}
