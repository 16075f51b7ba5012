package editcontext

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoClipboard is returned by clipboard operations when no Clipboard was
// configured.
var ErrNoClipboard = errors.New("editcontext: no clipboard")

// pasteState serializes asynchronous pastes: only the most recent request
// may complete, and only while the selection it was issued for is intact.
type pasteState struct {
	seq uint64
}

// PasteRequest identifies one paste started with BeginPaste.
type PasteRequest struct {
	seq       uint64
	selection Range
}

// Copy writes the primary selection to the clipboard. With an empty
// selection it copies the cursor line plus EOL when EmptySelectionClipboard
// is set, and does nothing otherwise.
func (c *EditContext) Copy(ctx context.Context) error {
	text, ok := c.clipboardText()
	if !ok {
		return nil
	}
	if c.clipboard == nil {
		return ErrNoClipboard
	}
	if err := c.clipboard.WriteText(ctx, text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Cut copies like Copy and then asks the controller to cut. The document is
// left untouched when the clipboard write fails.
func (c *EditContext) Cut(ctx context.Context) error {
	if _, ok := c.clipboardText(); !ok {
		return nil
	}
	if err := c.Copy(ctx); err != nil {
		return err
	}
	c.ctrl.Cut()
	return nil
}

func (c *EditContext) clipboardText() (string, bool) {
	if c.IsDisposed() {
		return "", false
	}
	sel := c.vm.PrimarySelection()
	if !sel.IsEmpty() {
		return c.vm.ValueInRange(sel), true
	}
	if !c.emptySelectionClipboard {
		return "", false
	}
	return c.vm.LineContent(sel.StartLineNumber) + c.vm.EOL(), true
}

// BeginPaste starts a paste and supersedes any paste still in flight. The
// caller reads the clipboard (ReadClipboard may run off the UI goroutine)
// and hands the text back with CompletePaste.
func (c *EditContext) BeginPaste() PasteRequest {
	c.paste.seq++
	return PasteRequest{seq: c.paste.seq, selection: c.vm.PrimarySelection()}
}

// ReadClipboard reads the clipboard text. It does not touch any other state
// and is safe to call from a worker goroutine.
func (c *EditContext) ReadClipboard(ctx context.Context) (string, error) {
	if c.clipboard == nil {
		return "", ErrNoClipboard
	}
	s, err := c.clipboard.ReadText(ctx)
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

// CompletePaste applies text for req. It returns false, without editing,
// when req was superseded by a newer BeginPaste, when the primary selection
// changed since BeginPaste, when text is empty, or after Dispose.
func (c *EditContext) CompletePaste(req PasteRequest, text string) bool {
	switch {
	case c.IsDisposed():
		return false
	case req.seq != c.paste.seq:
		c.log.Debug("dropping superseded paste", "seq", req.seq, "latest", c.paste.seq)
		return false
	case c.vm.PrimarySelection() != req.selection:
		c.log.Debug("dropping stale paste", "requested", req.selection, "now", c.vm.PrimarySelection())
		return false
	case text == "":
		return false
	}
	c.paste.seq++

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	c.ctrl.Paste(text)
	return true
}
