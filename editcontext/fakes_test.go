package editcontext

import (
	"context"
	"strconv"

	"github.com/iw2rmb/imebridge/internal/grapheme"
)

type fakeViewModel struct {
	lines      []string
	selection  Range
	cursor     Position
	lineHeight float64

	decorations map[string]Decoration
	nextID      int
	deltaCalls  int
}

func newFakeViewModel(lines ...string) *fakeViewModel {
	vm := &fakeViewModel{
		lines:       lines,
		lineHeight:  10,
		decorations: map[string]Decoration{},
	}
	vm.setCaret(Position{LineNumber: 1, Column: 1})
	return vm
}

func (vm *fakeViewModel) setCaret(p Position) {
	vm.selection = RangeFromPositions(p, p)
	vm.cursor = p
}

func (vm *fakeViewModel) setSelection(r Range) {
	vm.selection = r
	vm.cursor = r.End()
}

func (vm *fakeViewModel) PrimarySelection() Range { return vm.selection }
func (vm *fakeViewModel) PrimaryCursor() Position { return vm.cursor }
func (vm *fakeViewModel) LineCount() int          { return len(vm.lines) }

func (vm *fakeViewModel) LineContent(n int) string {
	if n < 1 || n > len(vm.lines) {
		return ""
	}
	return vm.lines[n-1]
}

func (vm *fakeViewModel) LineMaxColumn(n int) int {
	return grapheme.Count(vm.LineContent(n)) + 1
}

func (vm *fakeViewModel) TopForLineNumber(n int) float64 {
	return float64(n-1) * vm.lineHeight
}

func (vm *fakeViewModel) ValueInRange(r Range) string {
	if r.StartLineNumber == r.EndLineNumber {
		return grapheme.Slice(vm.LineContent(r.StartLineNumber), r.StartColumn-1, r.EndColumn-1)
	}
	s := grapheme.Slice(vm.LineContent(r.StartLineNumber), r.StartColumn-1, 1<<30)
	for n := r.StartLineNumber + 1; n < r.EndLineNumber; n++ {
		s += "\n" + vm.LineContent(n)
	}
	return s + "\n" + grapheme.Slice(vm.LineContent(r.EndLineNumber), 0, r.EndColumn-1)
}

func (vm *fakeViewModel) EOL() string { return "\n" }

func (vm *fakeViewModel) DeltaDecorations(oldIDs []string, decos []Decoration) []string {
	vm.deltaCalls++
	for _, id := range oldIDs {
		delete(vm.decorations, id)
	}
	ids := make([]string, 0, len(decos))
	for _, d := range decos {
		vm.nextID++
		id := "d" + strconv.Itoa(vm.nextID)
		vm.decorations[id] = d
		ids = append(ids, id)
	}
	return ids
}

type typeCall struct {
	text       string
	prev, next int
	delta      int
	replace    bool
}

type fakeController struct {
	types  []typeCall
	pastes []string
	cuts   int
}

func (c *fakeController) Type(text string) {
	c.types = append(c.types, typeCall{text: text})
}

func (c *fakeController) CompositionType(text string, prev, next, delta int) {
	c.types = append(c.types, typeCall{text: text, prev: prev, next: next, delta: delta, replace: true})
}

func (c *fakeController) Paste(text string) { c.pastes = append(c.pastes, text) }

func (c *fakeController) Cut() { c.cuts++ }

type charBounds struct {
	rangeStart int
	rects      []Rect
}

type fakeSurface struct {
	text            string
	selStart        int
	selEnd          int
	controlBounds   []Rect
	selectionBounds []Rect
	charBounds      []charBounds

	listeners map[EventKind][]*func(Event)
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{listeners: map[EventKind][]*func(Event){}}
}

func (s *fakeSurface) UpdateText(text string)         { s.text = text }
func (s *fakeSurface) UpdateSelection(start, end int) { s.selStart, s.selEnd = start, end }
func (s *fakeSurface) UpdateControlBounds(r Rect)     { s.controlBounds = append(s.controlBounds, r) }
func (s *fakeSurface) UpdateSelectionBounds(r Rect)   { s.selectionBounds = append(s.selectionBounds, r) }
func (s *fakeSurface) Text() string                   { return s.text }

func (s *fakeSurface) UpdateCharacterBounds(rangeStart int, rects []Rect) {
	s.charBounds = append(s.charBounds, charBounds{rangeStart: rangeStart, rects: rects})
}

func (s *fakeSurface) AddListener(kind EventKind, fn func(Event)) Disposable {
	p := &fn
	s.listeners[kind] = append(s.listeners[kind], p)
	return DisposableFunc(func() {
		list := s.listeners[kind]
		for i, q := range list {
			if q == p {
				s.listeners[kind] = append(list[:i], list[i+1:]...)
				return
			}
		}
	})
}

func (s *fakeSurface) listenerCount() int {
	n := 0
	for _, l := range s.listeners {
		n += len(l)
	}
	return n
}

func (s *fakeSurface) emit(ev Event) {
	for _, fn := range s.listeners[ev.Kind()] {
		(*fn)(ev)
	}
}

type fakeRenderer struct {
	ranges  []LineVisibleRanges
	queries []Range
}

func (r *fakeRenderer) VisibleRangesForRange(rng Range, _ bool) []LineVisibleRanges {
	r.queries = append(r.queries, rng)
	return r.ranges
}

type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
	writes   []string
}

func (c *fakeClipboard) ReadText(context.Context) (string, error) {
	return c.text, c.readErr
}

func (c *fakeClipboard) WriteText(_ context.Context, s string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, s)
	c.text = s
	return nil
}
