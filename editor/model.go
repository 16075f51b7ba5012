package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/imebridge/buffer"
	"github.com/iw2rmb/imebridge/editcontext"
	"github.com/iw2rmb/imebridge/internal/logging"
)

// Model is a Bubble Tea component that renders a buffer and feeds its input
// through an edit context.
//
// Model is a value type like other Bubble Tea components, but copies share
// the buffer and the edit context. Call Close when the editor goes away.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	doc     *document
	surface *termSurface
	ec      *editcontext.EditContext
	log     *log.Logger

	focused bool

	viewport viewport.Model
	// Screen offset of the editor inside the host's frame, in cells.
	originX, originY int

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
	lastSelection   buffer.Range
	lastScrollRow   int

	mouseDragging bool
	mouseAnchor   buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		surface:  newTermSurface(),
		log:      logger.WithPrefix("editor"),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.doc = &document{buf: m.buf, lineHeight: cfg.LineHeight, readOnly: cfg.ReadOnly}

	ec, err := editcontext.New(editcontext.Options{
		ViewModel:               m.doc,
		Controller:              m.doc,
		Surface:                 m.surface,
		Clipboard:               cfg.Clipboard,
		Layout:                  m.layout(),
		EmptySelectionClipboard: cfg.EmptySelectionClipboard,
		Logger:                  logger,
	})
	if err != nil {
		// Only reachable with nil collaborators, which New never passes.
		m.log.Error("edit context unavailable", "err", err)
	}
	m.ec = ec
	if m.ec != nil {
		m.ec.Focus()
	}

	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.lastSelection = m.buf.SelectionOrCursor()
	m.rebuildContent()
	m.renderIME()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// EditContext returns the edit context bridging this editor's buffer.
func (m Model) EditContext() *editcontext.EditContext { return m.ec }

// IMEState returns what the input surface was last told about text,
// selection and geometry.
func (m Model) IMEState() IMEState { return m.surface.snapshot() }

func (m Model) Init() tea.Cmd { return nil }

// Close disposes the edit context and removes its decorations.
func (m Model) Close() {
	if m.ec != nil {
		m.ec.Dispose()
	}
}

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	m.relayoutIME()
	return m
}

// SetPosition places the editor at cell (x, y) of the host's frame. Bounds
// handed to the input surface are reported in that frame.
func (m Model) SetPosition(x, y int) Model {
	m.originX, m.originY = x, y
	m.relayoutIME()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		if m.ec != nil {
			m.ec.Focus()
		}
		m.rebuildContent()
		m.followCursor()
		m.renderIME()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		if m.ec != nil {
			m.ec.Blur()
		}
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case CompositionStartMsg:
		m.buf.BeginUndoGroup()
		m.surface.emit(editcontext.CompositionStart{})
	case CompositionEndMsg:
		m.surface.emit(editcontext.CompositionEnd{})
		m.buf.EndUndoGroup()
	case ReplaceTextMsg:
		m.surface.replace(msg.Start, msg.End, msg.Text)
	case TextFormatMsg:
		m.surface.emit(editcontext.TextFormatUpdate{Formats: msg.Formats})
	case CharacterBoundsMsg:
		m.surface.emit(editcontext.CharacterBoundsUpdate{RangeStart: msg.RangeStart, RangeEnd: msg.RangeEnd})
	case pasteMsg:
		m.completePaste(msg)
	}

	// The surface may have changed without the buffer following (read-only
	// edits, no-op replacements); render anyway so it is re-synced.
	if !m.syncFromBuffer() {
		m.renderIME()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after the buffer changed (including host
// mutations made outside Update) and re-syncs the input surface.
func (m *Model) syncFromBuffer() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	sel := m.buf.SelectionOrCursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged := cur != m.lastCursor
	selectionChanged := sel != m.lastSelection
	textChanged := m.buf.TextVersion() != m.lastTextVersion

	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = cur
	m.lastSelection = sel

	m.rebuildContent()
	if cursorChanged || textChanged {
		m.followCursor()
	}
	if m.ec != nil && (selectionChanged || textChanged) {
		m.ec.OnCursorStateChanged()
	}
	m.renderIME()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
	return true
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	switch {
	case cur.Row < y:
		m.viewport.SetYOffset(cur.Row)
	case cur.Row >= y+h:
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}
