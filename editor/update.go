package editor

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/imebridge/buffer"
	"github.com/iw2rmb/imebridge/editcontext"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil || m.ec == nil {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.doc.Paste(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		// The surface only holds the selected lines; joining with the
		// previous line is a document edit.
		if !m.cfg.ReadOnly && !m.surface.deleteBackward() {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly && !m.surface.deleteForward() {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly {
			m.ec.HandleKeyDown(editcontext.KeyDown{Key: "enter"})
		}
	case key.Matches(msg, km.Tab):
		// Tabs bypass the surface: text updates fold whitespace.
		m.doc.Type("\t")

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.logClipboardErr("copy", m.ec.Copy(context.Background()))
	case key.Matches(msg, km.Cut):
		if m.cfg.ReadOnly {
			m.logClipboardErr("copy", m.ec.Copy(context.Background()))
		} else {
			m.logClipboardErr("cut", m.ec.Cut(context.Background()))
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			return m, m.pasteCmd()
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && !m.cfg.ReadOnly {
			m.surface.insert(string(msg.Runes))
		}
	}

	return m, nil
}

// pasteCmd reads the clipboard off the update loop; the text comes back as a
// pasteMsg.
func (m Model) pasteCmd() tea.Cmd {
	if m.cfg.Clipboard == nil {
		return nil
	}
	ec := m.ec
	req := ec.BeginPaste()
	return func() tea.Msg {
		text, err := ec.ReadClipboard(context.Background())
		return pasteMsg{req: req, text: text, err: err}
	}
}

func (m Model) completePaste(msg pasteMsg) {
	if msg.err != nil {
		m.logClipboardErr("paste", msg.err)
		return
	}
	if m.ec != nil {
		m.ec.CompletePaste(msg.req, msg.text)
	}
}

// Clipboard failures never reach the UI.
func (m Model) logClipboardErr(op string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, editcontext.ErrNoClipboard):
		m.log.Debug("clipboard not configured", "op", op)
	default:
		m.log.Warn("clipboard failed", "op", op, "err", err)
	}
}
