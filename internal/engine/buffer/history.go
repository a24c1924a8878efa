package buffer

// snapshot captures buffer content and cursor for undo/redo.
type snapshot struct {
	lines  [][]rune
	cursor Point
}

func (b *Buffer) captureLocked() snapshot {
	lines := make([][]rune, len(b.lines))
	for i, line := range b.lines {
		lines[i] = append([]rune{}, line...)
	}
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restoreLocked(s snapshot) {
	b.lines = s.lines
	b.cursor = s.cursor
	b.anchor = nil
	b.clampCursorLocked()
}

// pushUndoLocked records the current state before a mutation and clears
// the redo stack.
func (b *Buffer) pushUndoLocked() {
	b.undo = append(b.undo, b.captureLocked())
	if len(b.undo) > maxUndoDepth {
		b.undo = b.undo[len(b.undo)-maxUndoDepth:]
	}
	b.redo = b.redo[:0]
}

// Undo reverts the most recent mutation. With nothing to revert it is a
// no-op.
func (b *Buffer) Undo() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.undo) == 0 {
		return
	}
	b.redo = append(b.redo, b.captureLocked())
	last := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]
	b.restoreLocked(last)
	b.revision++
}

// Redo reapplies the most recently undone mutation.
func (b *Buffer) Redo() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.redo) == 0 {
		return
	}
	b.undo = append(b.undo, b.captureLocked())
	last := b.redo[len(b.redo)-1]
	b.redo = b.redo[:len(b.redo)-1]
	b.restoreLocked(last)
	b.revision++
}
