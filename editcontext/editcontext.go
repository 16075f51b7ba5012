package editcontext

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/imebridge/internal/logging"
)

// ErrMissingCollaborator is returned by New when a required collaborator is
// nil.
var ErrMissingCollaborator = errors.New("editcontext: missing collaborator")

// Options configures an EditContext. ViewModel, Controller and Surface are
// required.
type Options struct {
	ViewModel  ViewModel
	Controller Controller
	Surface    Surface

	// Renderer may also be supplied later through PrepareRender.
	Renderer  Renderer
	Clipboard Clipboard

	Layout Layout
	// Container is the screen rectangle of the editing surface. Bounds are
	// not computed until it is known.
	Container *Rect

	// EmptySelectionClipboard makes Copy/Cut with an empty selection act on
	// the whole line.
	EmptySelectionClipboard bool

	Logger *log.Logger
}

// EditContext synchronizes a document model with an input-method surface.
type EditContext struct {
	vm        ViewModel
	ctrl      Controller
	surface   Surface
	renderer  Renderer
	clipboard Clipboard

	layout     Layout
	container  *Rect
	scrollTop  float64
	scrollLeft float64

	emptySelectionClipboard bool
	log                     *log.Logger

	shadow        ShadowTracker
	composition   CompositionPositions
	composing     bool
	decorationIDs []string
	lastVisible   []LineVisibleRanges
	focused       bool
	paste         pasteState

	listeners DisposableGroup
}

// New builds an EditContext and subscribes it to the surface's events. The
// surface receives no text until the first Sync.
func New(opt Options) (*EditContext, error) {
	switch {
	case opt.ViewModel == nil:
		return nil, fmt.Errorf("%w: view model", ErrMissingCollaborator)
	case opt.Controller == nil:
		return nil, fmt.Errorf("%w: controller", ErrMissingCollaborator)
	case opt.Surface == nil:
		return nil, fmt.Errorf("%w: surface", ErrMissingCollaborator)
	}

	logger := opt.Logger
	if logger == nil {
		logger = logging.Default()
	}

	c := &EditContext{
		vm:                      opt.ViewModel,
		ctrl:                    opt.Controller,
		surface:                 opt.Surface,
		renderer:                opt.Renderer,
		clipboard:               opt.Clipboard,
		layout:                  opt.Layout,
		emptySelectionClipboard: opt.EmptySelectionClipboard,
		log:                     logger.WithPrefix("editcontext"),
	}
	if opt.Container != nil {
		c.SetContainer(*opt.Container)
	}

	listen(c, EventTextUpdate, c.onTextUpdate)
	listen(c, EventCompositionStart, func(CompositionStart) { c.OnCompositionStart() })
	listen(c, EventCompositionEnd, func(CompositionEnd) { c.OnCompositionEnd() })
	listen(c, EventTextFormatUpdate, c.onTextFormatUpdate)
	listen(c, EventCharacterBoundsUpdate, func(e CharacterBoundsUpdate) { c.UpdateCharacterBounds(e.RangeStart) })
	return c, nil
}

// listen registers handler for events of kind E on c's surface. The
// subscription ends when c is disposed.
func listen[E Event](c *EditContext, kind EventKind, handler func(E)) {
	c.listeners.Add(c.surface.AddListener(kind, func(ev Event) {
		if c.listeners.IsDisposed() {
			return
		}
		e, ok := ev.(E)
		if !ok {
			c.log.Warn("unexpected event payload", "kind", kind, "type", fmt.Sprintf("%T", ev))
			return
		}
		handler(e)
	}))
}

// Dispose unsubscribes from the surface and removes the decorations this
// context created. Later calls are no-ops.
func (c *EditContext) Dispose() {
	if c.listeners.IsDisposed() {
		return
	}
	c.listeners.Dispose()
	c.clearDecorations()
	c.paste.seq++
}

func (c *EditContext) IsDisposed() bool { return c.listeners.IsDisposed() }

func (c *EditContext) Focus() { c.focused = true }

func (c *EditContext) Blur() { c.focused = false }

func (c *EditContext) IsFocused() bool { return c.focused }

// IsComposing reports whether a composition has started and not yet ended.
func (c *EditContext) IsComposing() bool { return c.composing }

// Composition returns the recorded composition positions.
func (c *EditContext) Composition() CompositionPositions { return c.composition }

// Shadow exposes the snapshot tracker.
func (c *EditContext) Shadow() *ShadowTracker { return &c.shadow }

// DecorationIDs returns the IDs of the format decorations currently owned.
func (c *EditContext) DecorationIDs() []string {
	return append([]string(nil), c.decorationIDs...)
}

// Layout returns the active layout metrics.
func (c *EditContext) Layout() Layout { return c.layout }

// SetContainer records the screen rectangle of the editing surface.
func (c *EditContext) SetContainer(r Rect) { c.container = &r }

// Sync snapshots the document selection and pushes the new shadow text and
// selection to the surface.
func (c *EditContext) Sync() {
	if c.IsDisposed() {
		return
	}
	snap := c.shadow.Sync(c.vm)
	c.surface.UpdateText(snap.Value)
	c.surface.UpdateSelection(snap.SelectionStart, snap.SelectionEnd)
}

// ResetState forgets both shadow snapshots, e.g. after the document was
// replaced wholesale. Text updates are dropped and format updates map to
// nothing until the next Sync.
func (c *EditContext) ResetState() {
	c.shadow.Reset()
}

// OnCursorStateChanged handles a primary selection change. It returns
// whether the view should re-render.
func (c *EditContext) OnCursorStateChanged() bool {
	if c.IsDisposed() {
		return false
	}
	c.Sync()
	c.UpdateSelectionAndControlBounds()
	return true
}

// OnConfigurationChanged applies new layout metrics. It returns false when
// nothing changed.
func (c *EditContext) OnConfigurationChanged(layout Layout) bool {
	if c.IsDisposed() || layout == c.layout {
		return false
	}
	c.layout = layout
	c.UpdateSelectionAndControlBounds()
	return true
}

// OnScrollChanged records the scroll offsets used by the geometry.
func (c *EditContext) OnScrollChanged(scrollTop, scrollLeft float64) bool {
	if c.IsDisposed() {
		return false
	}
	c.scrollTop = scrollTop
	c.scrollLeft = scrollLeft
	c.UpdateSelectionAndControlBounds()
	return true
}

// PrepareRender supplies the renderer used for the next geometry queries.
func (c *EditContext) PrepareRender(r Renderer) {
	c.renderer = r
}

// Render runs after the view is laid out: the surface is re-synced and the
// selection and control bounds refreshed.
func (c *EditContext) Render() {
	if c.IsDisposed() {
		return
	}
	c.Sync()
	c.UpdateSelectionAndControlBounds()
}

// OnCompositionStart stamps the composition start at the primary cursor.
func (c *EditContext) OnCompositionStart() {
	if c.IsDisposed() {
		return
	}
	c.composing = true
	c.composition.stampStart(c.vm.PrimaryCursor())
}

// OnCompositionEnd stamps the composition end at the primary cursor and
// drops the composition's format decorations.
func (c *EditContext) OnCompositionEnd() {
	if c.IsDisposed() {
		return
	}
	c.composing = false
	c.composition.stampEnd(c.vm.PrimaryCursor())
	c.clearDecorations()
}

// HandleKeyDown handles keys the surface does not turn into text updates. It
// returns whether the key was consumed.
func (c *EditContext) HandleKeyDown(k KeyDown) bool {
	if c.IsDisposed() || !c.focused {
		return false
	}
	switch k.Key {
	case "enter":
		c.composition.stampEnd(c.vm.PrimaryCursor())
		c.dispatch(EditOperation{Text: "\n"})
		return true
	}
	return false
}

func (c *EditContext) onTextUpdate(u TextUpdate) {
	prev, ok := c.shadow.Previous()
	if !ok {
		c.log.Debug("dropping text update before first sync", "text", u.Text)
		return
	}
	op, _ := DeriveEdit(u, &prev)
	c.dispatch(op)
	c.composition.stampEnd(c.vm.PrimaryCursor())
}

func (c *EditContext) dispatch(op EditOperation) {
	if op.IsReplace() {
		c.ctrl.CompositionType(op.Text, op.DeletePrevCount, op.DeleteNextCount, op.CursorShiftAfterInsert)
		return
	}
	c.ctrl.Type(op.Text)
}

func (c *EditContext) onTextFormatUpdate(u TextFormatUpdate) {
	c.ApplyFormats(u.Formats)
}

// ApplyFormats replaces the owned format decorations with formats mapped
// through the current shadow selection. Without a current snapshot the
// owned decorations are only removed.
func (c *EditContext) ApplyFormats(formats []FormatRange) {
	if c.IsDisposed() {
		return
	}
	var anchor *Range
	if cur, ok := c.shadow.Current(); ok {
		anchor = &cur.DocumentSelection
	} else {
		c.log.Debug("no anchor selection for format update", "formats", len(formats))
	}
	decos := MapFormats(formats, anchor, c.surface.Text())
	c.decorationIDs = c.vm.DeltaDecorations(c.decorationIDs, decos)
}

func (c *EditContext) clearDecorations() {
	if len(c.decorationIDs) == 0 {
		return
	}
	c.vm.DeltaDecorations(c.decorationIDs, nil)
	c.decorationIDs = nil
}

// UpdateCharacterBounds pushes the composition's bounds to the surface. It
// does nothing until the container and both composition positions are
// known.
func (c *EditContext) UpdateCharacterBounds(rangeStart int) {
	if c.IsDisposed() || c.container == nil {
		return
	}
	rng, ok := c.composition.Range()
	if !ok {
		return
	}

	var visible []LineVisibleRanges
	if c.renderer != nil {
		visible = c.renderer.VisibleRangesForRange(rng, true)
	}
	if hasVisibleSpans(visible) {
		c.lastVisible = visible
	} else {
		visible = c.lastVisible
	}

	top := c.vm.TopForLineNumber(rng.StartLineNumber)
	bounds := CharacterBounds(*c.container, c.layout, top, c.scrollTop, visible)
	c.surface.UpdateCharacterBounds(rangeStart, []Rect{bounds})
}

// UpdateSelectionAndControlBounds pushes the container and selection
// outlines to the surface.
func (c *EditContext) UpdateSelectionAndControlBounds() {
	if c.IsDisposed() || c.container == nil {
		return
	}
	sel := c.vm.PrimarySelection()
	top := c.vm.TopForLineNumber(sel.StartLineNumber)
	bounds := SelectionBounds(*c.container, c.layout, sel, top, c.scrollTop, c.caretLeft(sel.Start()))

	c.surface.UpdateControlBounds(*c.container)
	c.surface.UpdateSelectionBounds(bounds)
}

func (c *EditContext) caretLeft(p Position) float64 {
	if c.renderer != nil {
		for _, line := range c.renderer.VisibleRangesForRange(RangeFromPositions(p, p), false) {
			if len(line.Ranges) > 0 {
				return line.Ranges[0].Left
			}
		}
	}
	return float64(p.Column-1)*c.layout.TypicalHalfwidthCharacterWidth - c.scrollLeft
}
