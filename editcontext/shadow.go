package editcontext

import (
	"strings"

	"github.com/iw2rmb/imebridge/internal/grapheme"
)

// ShadowSnapshot is the flattened text handed to the surface together with
// the selection inside it.
//
// Value is the concatenation of every line the selection spans with no line
// separators. SelectionStart and SelectionEnd are grapheme offsets into Value
// with 0 <= SelectionStart <= SelectionEnd <= len(Value).
type ShadowSnapshot struct {
	Value             string
	SelectionStart    int
	SelectionEnd      int
	DocumentSelection Range
}

// CaptureState builds a snapshot from the primary selection of vm.
//
// Intermediate lines contribute LineMaxColumn-1 characters to the end
// offset, so offsets after the first line do not match document columns;
// format ranges are mapped back through the document selection instead.
func CaptureState(vm ViewModel) ShadowSnapshot {
	sel := vm.PrimarySelection()

	var sb strings.Builder
	start, end := 0, 0
	for line := sel.StartLineNumber; line <= sel.EndLineNumber; line++ {
		sb.WriteString(vm.LineContent(line))
		if line == sel.StartLineNumber {
			start = sel.StartColumn - 1
		}
		if line == sel.EndLineNumber {
			end += sel.EndColumn - 1
		} else {
			end += vm.LineMaxColumn(line) - 1
		}
	}

	value := sb.String()
	n := grapheme.Count(value)
	start = clampInt(start, 0, n)
	end = clampInt(end, start, n)
	return ShadowSnapshot{
		Value:             value,
		SelectionStart:    start,
		SelectionEnd:      end,
		DocumentSelection: sel,
	}
}

// ShadowTracker holds the previous and current snapshots.
type ShadowTracker struct {
	previous *ShadowSnapshot
	current  *ShadowSnapshot
}

// Sync promotes current to previous and captures a new current. On the
// first call previous is set to the fresh snapshot as well.
func (t *ShadowTracker) Sync(vm ViewModel) ShadowSnapshot {
	if t.previous != nil {
		t.previous = t.current
	}
	snap := CaptureState(vm)
	t.current = &snap
	if t.previous == nil {
		prev := snap
		t.previous = &prev
	}
	return snap
}

// Previous returns the snapshot the next text update is diffed against.
func (t *ShadowTracker) Previous() (ShadowSnapshot, bool) {
	if t.previous == nil {
		return ShadowSnapshot{}, false
	}
	return *t.previous, true
}

// Current returns the snapshot last pushed to the surface.
func (t *ShadowTracker) Current() (ShadowSnapshot, bool) {
	if t.current == nil {
		return ShadowSnapshot{}, false
	}
	return *t.current, true
}

// Reset drops both snapshots.
func (t *ShadowTracker) Reset() {
	t.previous = nil
	t.current = nil
}
