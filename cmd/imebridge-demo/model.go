package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/imebridge/editcontext"
	"github.com/iw2rmb/imebridge/editor"
	"github.com/iw2rmb/imebridge/internal/config"
	"github.com/iw2rmb/imebridge/internal/grapheme"
)

const statusHeight = 6

// preeditText is what the scripted input method composes before a
// candidate is picked.
const preeditText = "ni"

var candidates = []string{"你", "尼", "泥"}

var (
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	candidateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

type model struct {
	editor editor.Model
	width  int
	height int

	cellWidth  float64
	cellHeight float64

	// preedit is the surface offset of the open scripted composition, or -1.
	preedit int
}

func newModel(cfg config.Config, text string, logger *log.Logger) model {
	ed := editor.New(editor.Config{
		Text:                    text,
		ShowLineNums:            cfg.ShowLineNumbers,
		Style:                   editor.DefaultStyle(),
		TabWidth:                cfg.TabWidth,
		HistoryLimit:            cfg.HistoryLimit,
		Clipboard:               editor.SystemClipboard{},
		EmptySelectionClipboard: cfg.EmptySelectionClipboard,
		LineHeight:              cfg.LineHeight,
		CharWidth:               cfg.CharWidth,
		Logger:                  logger,
	})
	return model{
		editor:     ed,
		cellWidth:  max(cfg.CharWidth, 1),
		cellHeight: max(cfg.LineHeight, 1),
		preedit:    -1,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-statusHeight, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
		if m.preedit >= 0 {
			return m.updateCandidates(msg)
		}
		if msg.String() == "f2" {
			st := m.editor.IMEState()
			m.preedit = st.SelectionStart
			return m, sequence(startComposition(st))
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// updateCandidates handles keys while the candidate window is open. Other
// keys are swallowed so the preedit stays where the window points.
func (m model) updateCandidates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pick := -1
	switch k := msg.String(); k {
	case "enter":
		pick = 0
	case "esc":
		start := m.preedit
		m.preedit = -1
		return m, sequence(finishComposition(start, ""))
	default:
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(candidates) {
			pick = int(k[0] - '1')
		}
	}
	if pick < 0 {
		return m, nil
	}
	start := m.preedit
	m.preedit = -1
	return m, sequence(finishComposition(start, candidates[pick]))
}

// startComposition is what an input method sends when the user types
// "ni" at the current selection: the preedit, its underline and a request
// for its bounds.
func startComposition(st editor.IMEState) []tea.Msg {
	s, e := st.SelectionStart, st.SelectionEnd
	n := grapheme.Count(preeditText)
	return []tea.Msg{
		editor.CompositionStartMsg{},
		editor.ReplaceTextMsg{Start: s, End: e, Text: preeditText},
		editor.TextFormatMsg{Formats: []editcontext.FormatRange{{
			RangeStart:         s,
			RangeEnd:           s + n,
			UnderlineStyle:     editcontext.UnderlineStyleDashed,
			UnderlineThickness: editcontext.UnderlineThicknessThin,
		}}},
		editor.CharacterBoundsMsg{RangeStart: s, RangeEnd: s + n},
	}
}

// finishComposition replaces the preedit at start with text and ends the
// composition. An empty text cancels it.
func finishComposition(start int, text string) []tea.Msg {
	return []tea.Msg{
		editor.ReplaceTextMsg{Start: start, End: start + grapheme.Count(preeditText), Text: text},
		editor.CompositionEndMsg{},
	}
}

func sequence(msgs []tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(msgs))
	for _, msg := range msgs {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	return tea.Sequence(cmds...)
}

// candidateWindow renders the candidate list and the cell it should be
// drawn at: just below the composition's character bounds.
func (m model) candidateWindow() (view string, x, y int, ok bool) {
	ec := m.editor.EditContext()
	st := m.editor.IMEState()
	if m.preedit < 0 || ec == nil || !ec.IsComposing() || len(st.CharacterBounds) == 0 {
		return "", 0, 0, false
	}

	items := make([]string, 0, len(candidates))
	for i, c := range candidates {
		items = append(items, fmt.Sprintf("%d %s", i+1, c))
	}
	view = candidateStyle.Render(strings.Join(items, "  "))

	b := st.CharacterBounds[0]
	x = int(b.Left / m.cellWidth)
	y = int((b.Top + b.Height) / m.cellHeight)
	if m.width > 0 {
		x = min(x, max(m.width-lipgloss.Width(view), 0))
	}
	if h := lipgloss.Height(view); m.height > 0 && y+h > m.height-statusHeight {
		// no room below: open above the composition
		y = max(int(b.Top/m.cellHeight)-h, 0)
	}
	return view, x, y, true
}

func (m model) View() string {
	st := m.editor.IMEState()
	ec := m.editor.EditContext()

	composing := "no"
	if ec != nil && ec.IsComposing() {
		composing = "yes"
	}
	help := "F2 compose  Ctrl+Q quit"
	if m.preedit >= 0 {
		help = "1-3/Enter pick  Esc cancel  Ctrl+Q quit"
	}
	status := strings.Join([]string{
		strings.Repeat("─", max(m.width, 1)),
		fmt.Sprintf("surface: %q [%d,%d)", st.Text, st.SelectionStart, st.SelectionEnd),
		fmt.Sprintf("selection bounds: %+v", st.SelectionBounds),
		fmt.Sprintf("character bounds: %+v @%d", st.CharacterBounds, st.CharacterRangeStart),
		fmt.Sprintf("composing: %s  decorations: %d", composing, len(m.editor.Buffer().Decorations())),
		help,
	}, "\n")

	base := m.editor.View() + "\n" + statusStyle.Render(status)
	popup, x, y, ok := m.candidateWindow()
	if !ok {
		return base
	}
	return overlay.Composite(popup, base, overlay.Left, overlay.Top, x, y)
}
