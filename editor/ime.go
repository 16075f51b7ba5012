package editor

import "github.com/iw2rmb/imebridge/editcontext"

// layout converts the terminal grid into edit-context layout metrics.
func (m Model) layout() editcontext.Layout {
	gw := m.gutterWidth()
	cw := m.cfg.CharWidth
	return editcontext.Layout{
		LineHeight:                     m.cfg.LineHeight,
		TypicalHalfwidthCharacterWidth: cw,
		ContentLeft:                    float64(gw) * cw,
		ContentWidth:                   float64(max(m.viewport.Width-gw, 0)) * cw,
	}
}

func (m Model) container() editcontext.Rect {
	return editcontext.Rect{
		Left:   float64(m.originX) * m.cfg.CharWidth,
		Top:    float64(m.originY) * m.cfg.LineHeight,
		Width:  float64(m.viewport.Width) * m.cfg.CharWidth,
		Height: float64(m.viewport.Height) * m.cfg.LineHeight,
	}
}

func (m Model) renderer() cellRenderer {
	return cellRenderer{
		buf:       m.buf,
		tabWidth:  m.cfg.TabWidth,
		charWidth: m.cfg.CharWidth,
		topRow:    m.viewport.YOffset,
		rows:      m.visibleRowCount(),
	}
}

// relayoutIME reports a new editor size or position to the edit context.
func (m *Model) relayoutIME() {
	if m.ec == nil {
		return
	}
	m.ec.SetContainer(m.container())
	m.renderIME()
}

// renderIME runs the edit context's render pass for the frame just laid
// out: renderer, layout and scroll offsets first, then the surface sync.
func (m *Model) renderIME() {
	if m.ec == nil {
		return
	}
	m.ec.PrepareRender(m.renderer())
	m.ec.OnConfigurationChanged(m.layout())
	if m.viewport.YOffset != m.lastScrollRow {
		m.lastScrollRow = m.viewport.YOffset
		m.ec.OnScrollChanged(float64(m.viewport.YOffset)*m.cfg.LineHeight, 0)
	}
	m.ec.Render()
}
