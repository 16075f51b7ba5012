package editcontext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/imebridge/internal/logging"
)

type harness struct {
	vm       *fakeViewModel
	ctrl     *fakeController
	surface  *fakeSurface
	renderer *fakeRenderer
	clip     *fakeClipboard
	ec       *EditContext
}

func newHarness(t *testing.T, lines ...string) *harness {
	t.Helper()
	h := &harness{
		vm:       newFakeViewModel(lines...),
		ctrl:     &fakeController{},
		surface:  newFakeSurface(),
		renderer: &fakeRenderer{},
		clip:     &fakeClipboard{},
	}
	ec, err := New(Options{
		ViewModel:  h.vm,
		Controller: h.ctrl,
		Surface:    h.surface,
		Renderer:   h.renderer,
		Clipboard:  h.clip,
		Layout:     testLayout,
		Logger:     logging.Discard(),
	})
	require.NoError(t, err)
	h.ec = ec
	return h
}

func TestNew_RequiresCollaborators(t *testing.T) {
	vm, ctrl, surface := newFakeViewModel("x"), &fakeController{}, newFakeSurface()
	for name, opt := range map[string]Options{
		"view model": {Controller: ctrl, Surface: surface},
		"controller": {ViewModel: vm, Surface: surface},
		"surface":    {ViewModel: vm, Controller: ctrl},
	} {
		ec, err := New(opt)
		assert.Nil(t, ec, name)
		assert.True(t, errors.Is(err, ErrMissingCollaborator), name)
		assert.Contains(t, err.Error(), name)
	}
}

func TestNew_SubscribesOncePerEventKind(t *testing.T) {
	h := newHarness(t, "abc")
	for _, kind := range []EventKind{
		EventTextUpdate, EventCompositionStart, EventCompositionEnd,
		EventTextFormatUpdate, EventCharacterBoundsUpdate,
	} {
		assert.Len(t, h.surface.listeners[kind], 1, kind.String())
	}
	assert.Empty(t, h.surface.text, "nothing is pushed before the first sync")
}

func TestDispose_RemovesListenersAndDecorations(t *testing.T) {
	h := newHarness(t, "hello")
	h.ec.Sync()
	h.ec.ApplyFormats([]FormatRange{{RangeStart: 0, RangeEnd: 2}})
	require.Len(t, h.vm.decorations, 1)

	h.ec.Dispose()
	h.ec.Dispose()
	assert.True(t, h.ec.IsDisposed())
	assert.Equal(t, 0, h.surface.listenerCount())
	assert.Empty(t, h.vm.decorations)
	assert.Empty(t, h.ec.DecorationIDs())

	assert.False(t, h.ec.OnCursorStateChanged())
	assert.False(t, h.ec.OnScrollChanged(1, 1))
	h.ec.OnCompositionStart()
	assert.Nil(t, h.ec.Composition().Start)
}

func TestSync_PushesShadowToSurface(t *testing.T) {
	h := newHarness(t, "hello", "world")
	h.vm.setSelection(Range{StartLineNumber: 1, StartColumn: 2, EndLineNumber: 2, EndColumn: 3})

	assert.True(t, h.ec.OnCursorStateChanged())
	assert.Equal(t, "helloworld", h.surface.text)
	assert.Equal(t, 1, h.surface.selStart)
	assert.Equal(t, 7, h.surface.selEnd)
}

func TestTextUpdate_DroppedBeforeFirstSync(t *testing.T) {
	h := newHarness(t, "hello")
	h.surface.emit(TextUpdate{Text: "x", UpdateRangeStart: 0, UpdateRangeEnd: 0})
	assert.Empty(t, h.ctrl.types)
}

func TestTextUpdate_PlainInsertTypes(t *testing.T) {
	h := newHarness(t, "hello")
	h.vm.setCaret(Position{LineNumber: 1, Column: 3})
	h.ec.OnCursorStateChanged()

	h.surface.emit(TextUpdate{Text: "x", UpdateRangeStart: 2, UpdateRangeEnd: 2, SelectionStart: 3, SelectionEnd: 3})
	require.Len(t, h.ctrl.types, 1)
	assert.Equal(t, typeCall{text: "x"}, h.ctrl.types[0])

	end := h.ec.Composition().End
	require.NotNil(t, end)
	assert.Equal(t, Position{LineNumber: 1, Column: 3}, *end)
}

func TestTextUpdate_ReplaceRoutesToCompositionType(t *testing.T) {
	h := newHarness(t, "nihao")
	h.vm.setCaret(Position{LineNumber: 1, Column: 6})
	h.ec.OnCursorStateChanged()

	h.surface.emit(TextUpdate{Text: "你好", UpdateRangeStart: 0, UpdateRangeEnd: 5})
	require.Len(t, h.ctrl.types, 1)
	assert.Equal(t, typeCall{text: "你好", prev: 5, replace: true}, h.ctrl.types[0])
}

func TestTextUpdate_DiffsAgainstRenderedState(t *testing.T) {
	h := newHarness(t, "abc")
	h.vm.setCaret(Position{LineNumber: 1, Column: 1})
	h.ec.Render()
	h.vm.setCaret(Position{LineNumber: 1, Column: 4})
	h.ec.OnCursorStateChanged()
	h.ec.Render()

	prev, ok := h.ec.Shadow().Previous()
	require.True(t, ok)
	cur, _ := h.ec.Shadow().Current()
	assert.Equal(t, cur, prev)

	h.surface.emit(TextUpdate{Text: "d", UpdateRangeStart: 3, UpdateRangeEnd: 3})
	assert.Equal(t, []typeCall{{text: "d"}}, h.ctrl.types)
}

func TestComposition_StampsCursor(t *testing.T) {
	h := newHarness(t, "hello")
	h.vm.setCaret(Position{LineNumber: 1, Column: 2})
	h.surface.emit(CompositionStart{})
	assert.True(t, h.ec.IsComposing())

	h.vm.setCaret(Position{LineNumber: 1, Column: 5})
	h.surface.emit(CompositionEnd{})
	assert.False(t, h.ec.IsComposing())

	rng, ok := h.ec.Composition().Range()
	require.True(t, ok)
	assert.Equal(t, Range{StartLineNumber: 1, StartColumn: 2, EndLineNumber: 1, EndColumn: 5}, rng)
}

func TestHandleKeyDown_EnterRequiresFocus(t *testing.T) {
	h := newHarness(t, "hello")
	assert.False(t, h.ec.HandleKeyDown(KeyDown{Key: "enter"}))
	assert.Empty(t, h.ctrl.types)

	h.ec.Focus()
	assert.False(t, h.ec.HandleKeyDown(KeyDown{Key: "tab"}))
	assert.True(t, h.ec.HandleKeyDown(KeyDown{Key: "enter"}))
	assert.Equal(t, []typeCall{{text: "\n"}}, h.ctrl.types)
	assert.NotNil(t, h.ec.Composition().End)

	h.ec.Blur()
	assert.False(t, h.ec.IsFocused())
}

func TestFormatUpdate_ReplacesDecorations(t *testing.T) {
	h := newHarness(t, "0123456789", "line two")
	h.vm.setCaret(Position{LineNumber: 1, Column: 4})
	h.ec.Sync()

	h.surface.emit(TextFormatUpdate{Formats: []FormatRange{{
		RangeStart:         1,
		RangeEnd:           3,
		UnderlineStyle:     UnderlineStyleWavy,
		UnderlineThickness: UnderlineThicknessThick,
	}}})
	ids := h.ec.DecorationIDs()
	require.Len(t, ids, 1)
	deco := h.vm.decorations[ids[0]]
	assert.Equal(t, Range{StartLineNumber: 1, StartColumn: 5, EndLineNumber: 1, EndColumn: 7}, deco.Range)
	assert.Equal(t, "edit-context-format-decoration underline-style-wavy underline-thickness-thick", deco.ClassName)

	h.surface.emit(TextFormatUpdate{Formats: []FormatRange{{RangeStart: 0, RangeEnd: 1}, {RangeStart: 2, RangeEnd: 4}}})
	assert.Len(t, h.vm.decorations, 2)
	assert.NotContains(t, h.vm.decorations, ids[0])
}

func TestFormatUpdate_WithoutAnchorClears(t *testing.T) {
	h := newHarness(t, "hello")
	h.ec.Sync()
	h.ec.ApplyFormats([]FormatRange{{RangeStart: 0, RangeEnd: 3}})
	require.Len(t, h.vm.decorations, 1)
	calls := h.vm.deltaCalls

	h.ec.ResetState()
	h.surface.emit(TextFormatUpdate{Formats: []FormatRange{{RangeStart: 0, RangeEnd: 3}}})
	assert.Equal(t, calls+1, h.vm.deltaCalls)
	assert.Empty(t, h.vm.decorations)
	assert.Empty(t, h.ec.DecorationIDs())
}

func TestCompositionEnd_ClearsFormatDecorations(t *testing.T) {
	h := newHarness(t, "hello")
	h.ec.Sync()
	h.surface.emit(CompositionStart{})
	h.ec.ApplyFormats([]FormatRange{{RangeStart: 0, RangeEnd: 3}})
	require.Len(t, h.vm.decorations, 1)

	h.surface.emit(CompositionEnd{})
	assert.Empty(t, h.vm.decorations)
}

func TestSelectionBounds_NeedContainer(t *testing.T) {
	h := newHarness(t, "hello")
	h.ec.OnCursorStateChanged()
	assert.Empty(t, h.surface.controlBounds)
	assert.Empty(t, h.surface.selectionBounds)

	container := Rect{Left: 5, Top: 7, Width: 300, Height: 200}
	h.ec.SetContainer(container)
	h.vm.setCaret(Position{LineNumber: 1, Column: 3})
	h.ec.OnCursorStateChanged()

	require.Len(t, h.surface.controlBounds, 1)
	assert.Equal(t, container, h.surface.controlBounds[0])
	require.Len(t, h.surface.selectionBounds, 1)
	caret := h.surface.selectionBounds[0]
	assert.Equal(t, testLayout.TypicalHalfwidthCharacterWidth/2, caret.Width)
	assert.Equal(t, testLayout.LineHeight, caret.Height)
	// no renderer spans: column 3 at 8 units per character
	assert.Equal(t, 5+testLayout.ContentLeft+16, caret.Left)
}

func TestOnConfigurationChanged(t *testing.T) {
	h := newHarness(t, "hello")
	assert.False(t, h.ec.OnConfigurationChanged(testLayout))

	wider := testLayout
	wider.TypicalHalfwidthCharacterWidth = 10
	assert.True(t, h.ec.OnConfigurationChanged(wider))
	assert.Equal(t, wider, h.ec.Layout())
}

func TestOnScrollChanged_ShiftsBounds(t *testing.T) {
	h := newHarness(t, "a", "b", "c")
	h.ec.SetContainer(Rect{})
	h.vm.setCaret(Position{LineNumber: 3, Column: 1})

	assert.True(t, h.ec.OnScrollChanged(10, 0))
	require.NotEmpty(t, h.surface.selectionBounds)
	last := h.surface.selectionBounds[len(h.surface.selectionBounds)-1]
	// line 3 sits at 20 in the fake view model
	assert.Equal(t, float64(10), last.Top)
}

func TestCharacterBounds_NeedCompositionAndContainer(t *testing.T) {
	h := newHarness(t, "hello")
	h.surface.emit(CharacterBoundsUpdate{RangeStart: 0, RangeEnd: 2})
	assert.Empty(t, h.surface.charBounds)

	h.ec.SetContainer(Rect{Left: 1, Top: 2})
	h.surface.emit(CharacterBoundsUpdate{RangeStart: 0, RangeEnd: 2})
	assert.Empty(t, h.surface.charBounds, "composition not started")

	h.surface.emit(CompositionStart{})
	h.vm.setCaret(Position{LineNumber: 1, Column: 3})
	h.surface.emit(CompositionEnd{})

	h.renderer.ranges = []LineVisibleRanges{{LineNumber: 1, Ranges: []HorizontalRange{{Left: 8, Width: 16}}}}
	h.surface.emit(CharacterBoundsUpdate{RangeStart: 4, RangeEnd: 6})
	require.Len(t, h.surface.charBounds, 1)
	got := h.surface.charBounds[0]
	assert.Equal(t, 4, got.rangeStart)
	assert.Equal(t, []Rect{{Left: 1 + testLayout.ContentLeft + 8, Top: 2, Width: 16, Height: testLayout.LineHeight}}, got.rects)

	// the renderer lost the line: the last spans are reused
	h.renderer.ranges = nil
	h.surface.emit(CharacterBoundsUpdate{RangeStart: 4, RangeEnd: 6})
	require.Len(t, h.surface.charBounds, 2)
	assert.Equal(t, got.rects, h.surface.charBounds[1].rects)
}

func TestCharacterBounds_DefaultsWithoutRenderer(t *testing.T) {
	h := newHarness(t, "hello")
	h.ec.PrepareRender(nil)
	h.ec.SetContainer(Rect{Left: 1, Top: 2})
	h.ec.OnCompositionStart()
	h.ec.OnCompositionEnd()

	h.ec.UpdateCharacterBounds(0)
	require.Len(t, h.surface.charBounds, 1)
	assert.Equal(t, []Rect{{Left: 1 + testLayout.ContentLeft, Top: 2, Width: 4, Height: testLayout.LineHeight}}, h.surface.charBounds[0].rects)
}
