package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot

	// While grouping, only the first edit of the group records a snapshot.
	grouping    bool
	groupOpened bool
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}

	anchor := b.clampPos(s.sel.anchor)
	end := b.clampPos(s.sel.end)
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	if b.hist.grouping {
		if b.hist.groupOpened {
			b.hist.redo = nil
			return
		}
		b.hist.groupOpened = true
	}
	b.hist.undo = b.pushBounded(b.hist.undo, prev)
	b.hist.redo = nil
}

func (b *Buffer) pushBounded(stack []bufferSnapshot, s bufferSnapshot) []bufferSnapshot {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return stack
	}
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

// BeginUndoGroup starts collapsing edits into a single undo step, as an
// input-method composition does. Nested calls are ignored.
func (b *Buffer) BeginUndoGroup() {
	if b.hist.grouping {
		return
	}
	b.hist.grouping = true
	b.hist.groupOpened = false
}

// EndUndoGroup closes the group started by BeginUndoGroup.
func (b *Buffer) EndUndoGroup() {
	b.hist.grouping = false
	b.hist.groupOpened = false
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	b.EndUndoGroup()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, b.snapshot())
	b.restoreAndBump(prev)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	b.hist.undo = b.pushBounded(b.hist.undo, b.snapshot())
	b.restoreAndBump(next)
	return true
}

func (b *Buffer) restoreAndBump(s bufferSnapshot) {
	b.restore(s)
	b.version++
	b.textVersion++
}
