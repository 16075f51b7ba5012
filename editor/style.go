package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/imebridge/editcontext"
)

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Composition styles text under an IME format decoration;
	// CompositionThick is used for thick underlines.
	Composition      lipgloss.Style
	CompositionThick lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	underline := lipgloss.NewStyle().Underline(true)
	return Style{
		Gutter:           gutter,
		LineNum:          gutter,
		LineNumActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:             lipgloss.NewStyle(),
		Selection:        lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:           lipgloss.NewStyle().Reverse(true),
		Composition:      underline,
		CompositionThick: underline.Bold(true),
	}
}

// decorationStyle picks the style for a decoration class list.
func (st Style) decorationStyle(class string) (lipgloss.Style, bool) {
	classes := strings.Fields(class)
	var isFormat, thick bool
	for _, c := range classes {
		switch c {
		case editcontext.FormatDecorationClass:
			isFormat = true
		case "underline-thickness-thick":
			thick = true
		}
	}
	if !isFormat {
		return lipgloss.Style{}, false
	}
	if thick {
		return st.CompositionThick.Inherit(st.Text), true
	}
	return st.Composition.Inherit(st.Text), true
}
