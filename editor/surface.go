package editor

import (
	graphemeutil "github.com/iw2rmb/imebridge/internal/grapheme"

	"github.com/iw2rmb/imebridge/editcontext"
)

// IMEState is what the input-method surface was last told.
type IMEState struct {
	Text           string
	SelectionStart int
	SelectionEnd   int

	ControlBounds   editcontext.Rect
	SelectionBounds editcontext.Rect

	CharacterRangeStart int
	CharacterBounds     []editcontext.Rect
}

type surfaceListener struct {
	id int
	fn func(editcontext.Event)
}

// termSurface is the input surface of a terminal. It keeps the text and
// selection pushed by the edit context and turns key input into text updates
// against them.
type termSurface struct {
	state IMEState

	listeners map[editcontext.EventKind][]surfaceListener
	nextID    int
}

func newTermSurface() *termSurface {
	return &termSurface{listeners: map[editcontext.EventKind][]surfaceListener{}}
}

func (s *termSurface) UpdateText(text string) { s.state.Text = text }

func (s *termSurface) UpdateSelection(start, end int) {
	s.state.SelectionStart, s.state.SelectionEnd = start, end
}

func (s *termSurface) UpdateControlBounds(r editcontext.Rect) { s.state.ControlBounds = r }

func (s *termSurface) UpdateSelectionBounds(r editcontext.Rect) { s.state.SelectionBounds = r }

func (s *termSurface) UpdateCharacterBounds(rangeStart int, bounds []editcontext.Rect) {
	s.state.CharacterRangeStart = rangeStart
	s.state.CharacterBounds = append([]editcontext.Rect(nil), bounds...)
}

func (s *termSurface) Text() string { return s.state.Text }

func (s *termSurface) AddListener(kind editcontext.EventKind, fn func(editcontext.Event)) editcontext.Disposable {
	s.nextID++
	id := s.nextID
	s.listeners[kind] = append(s.listeners[kind], surfaceListener{id: id, fn: fn})
	return editcontext.DisposableFunc(func() {
		list := s.listeners[kind]
		for i, l := range list {
			if l.id == id {
				s.listeners[kind] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	})
}

func (s *termSurface) emit(ev editcontext.Event) {
	// Listeners may dispose themselves while we iterate.
	list := append([]surfaceListener(nil), s.listeners[ev.Kind()]...)
	for _, l := range list {
		l.fn(ev)
	}
}

// replace rewrites [start, end) of the surface text and reports it.
func (s *termSurface) replace(start, end int, text string) {
	n := graphemeutil.Count(s.state.Text)
	start = clampInt(start, 0, n)
	end = clampInt(end, start, n)

	s.state.Text = graphemeutil.Slice(s.state.Text, 0, start) + text + graphemeutil.Slice(s.state.Text, end, n)
	caret := start + graphemeutil.Count(text)
	s.state.SelectionStart, s.state.SelectionEnd = caret, caret

	s.emit(editcontext.TextUpdate{
		Text:             text,
		UpdateRangeStart: start,
		UpdateRangeEnd:   end,
		SelectionStart:   caret,
		SelectionEnd:     caret,
	})
}

// insert replaces the surface selection with text.
func (s *termSurface) insert(text string) {
	s.replace(s.state.SelectionStart, s.state.SelectionEnd, text)
}

// deleteBackward removes the selection or the grapheme before the caret. It
// returns false at the start of the surface text, where only the document
// can join lines.
func (s *termSurface) deleteBackward() bool {
	start, end := s.state.SelectionStart, s.state.SelectionEnd
	switch {
	case start < end:
		s.replace(start, end, "")
	case start > 0:
		s.replace(start-1, start, "")
	default:
		return false
	}
	return true
}

// deleteForward removes the selection or the grapheme after the caret. It
// returns false at the end of the surface text.
func (s *termSurface) deleteForward() bool {
	start, end := s.state.SelectionStart, s.state.SelectionEnd
	switch {
	case start < end:
		s.replace(start, end, "")
	case end < graphemeutil.Count(s.state.Text):
		s.replace(end, end+1, "")
	default:
		return false
	}
	return true
}

func (s *termSurface) snapshot() IMEState {
	st := s.state
	st.CharacterBounds = append([]editcontext.Rect(nil), s.state.CharacterBounds...)
	return st
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
