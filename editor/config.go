package editor

import (
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/imebridge/editcontext"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4

	// Forwarded to buffer.Options.
	HistoryLimit int

	KeyMap KeyMap

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard editcontext.Clipboard
	// EmptySelectionClipboard makes copy and cut act on the cursor line when
	// nothing is selected.
	EmptySelectionClipboard bool

	ReadOnly bool

	// LineHeight and CharWidth scale terminal cells into the units reported
	// to the input-method surface. Both default to 1.
	LineHeight float64
	CharWidth  float64

	// OnChange is called after every update that changed the buffer.
	OnChange func(ChangeEvent)

	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.LineHeight <= 0 {
		c.LineHeight = 1
	}
	if c.CharWidth <= 0 {
		c.CharWidth = 1
	}
	// key.Binding is not comparable; an unset map has no Left keys.
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
