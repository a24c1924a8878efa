package buffer

// InsertRune inserts a character at the cursor and advances the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pushUndoLocked()
	b.insertTextLocked(string(r))
	b.revision++
}

// InsertString inserts s (possibly multi-line) at the cursor.
func (b *Buffer) InsertString(s string) {
	if s == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pushUndoLocked()
	b.insertTextLocked(s)
	b.revision++
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pushUndoLocked()
	b.insertTextLocked("\n")
	b.revision++
}

// DeleteRune removes the rune before the cursor, joining lines when the
// cursor sits at a line head. At the buffer start it is a no-op.
func (b *Buffer) DeleteRune() {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur := b.cursor
	if cur.Col == 0 && cur.Row == 0 {
		return
	}

	b.pushUndoLocked()
	if cur.Col > 0 {
		b.removeLocked(Point{Row: cur.Row, Col: cur.Col - 1}, cur)
		b.cursor.Col--
	} else {
		prevLen := b.lineLenLocked(cur.Row - 1)
		b.removeLocked(Point{Row: cur.Row - 1, Col: prevLen}, cur)
		b.cursor = Point{Row: cur.Row - 1, Col: prevLen}
	}
	b.revision++
}

// DeleteNextChar removes the rune under the cursor. At the line end it
// joins the next line; at the buffer end it is a no-op.
func (b *Buffer) DeleteNextChar() {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur := b.cursor
	lineLen := b.lineLenLocked(cur.Row)
	if cur.Col < lineLen {
		b.pushUndoLocked()
		b.removeLocked(cur, Point{Row: cur.Row, Col: cur.Col + 1})
		b.revision++
		return
	}
	if cur.Row < len(b.lines)-1 {
		b.pushUndoLocked()
		b.removeLocked(cur, Point{Row: cur.Row + 1, Col: 0})
		b.revision++
	}
}

// DeleteLineByEnd removes from the cursor to the end of the line into the
// yank register. When the cursor already sits at the line end the newline
// is removed instead, joining the next line.
func (b *Buffer) DeleteLineByEnd() {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur := b.cursor
	lineLen := b.lineLenLocked(cur.Row)
	if cur.Col < lineLen {
		end := Point{Row: cur.Row, Col: lineLen}
		b.pushUndoLocked()
		b.register = b.extractLocked(cur, end)
		b.removeLocked(cur, end)
		b.revision++
		return
	}
	if cur.Row < len(b.lines)-1 {
		b.pushUndoLocked()
		b.removeLocked(cur, Point{Row: cur.Row + 1, Col: 0})
		b.revision++
	}
}
