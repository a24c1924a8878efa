package buffer

import "strings"

// StartSelection anchors a selection at the current cursor position.
// An existing anchor is replaced.
func (b *Buffer) StartSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	anchor := b.cursor
	b.anchor = &anchor
}

// CancelSelection drops the selection anchor without touching text.
func (b *Buffer) CancelSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anchor = nil
}

// HasSelection returns true while a selection anchor is set.
func (b *Buffer) HasSelection() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.anchor != nil
}

// Selection returns the selected range in document order. The range is
// half-open: start is included, end is excluded. ok is false when no
// anchor is set.
func (b *Buffer) Selection() (start, end Point, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selectionLocked()
}

func (b *Buffer) selectionLocked() (start, end Point, ok bool) {
	if b.anchor == nil {
		return Point{}, Point{}, false
	}
	start, end = *b.anchor, b.cursor
	if end.Before(start) {
		start, end = end, start
	}
	return start, end, true
}

// Copy places the selected text into the yank register, cancels the
// selection, and moves the cursor to the selection start. Without a
// selection it is a no-op.
func (b *Buffer) Copy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, ok := b.selectionLocked()
	if !ok {
		return
	}
	b.register = b.extractLocked(start, end)
	b.anchor = nil
	b.cursor = start
	b.clampCursorLocked()
}

// Cut removes the selected text into the yank register and moves the
// cursor to the selection start. Without a selection it is a no-op.
func (b *Buffer) Cut() {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end, ok := b.selectionLocked()
	if !ok {
		return
	}
	b.pushUndoLocked()
	b.register = b.extractLocked(start, end)
	b.removeLocked(start, end)
	b.anchor = nil
	b.cursor = start
	b.clampCursorLocked()
	b.revision++
}

// Paste inserts the yank register at the cursor. An empty register is a
// no-op.
func (b *Buffer) Paste() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.register == "" {
		return
	}
	b.pushUndoLocked()
	b.insertTextLocked(b.register)
	b.revision++
}

// extractLocked returns the text in the half-open range [start, end).
func (b *Buffer) extractLocked(start, end Point) string {
	if !start.Before(end) {
		return ""
	}
	if start.Row == end.Row {
		line := b.lines[start.Row]
		return string(line[clampIdx(start.Col, len(line)):clampIdx(end.Col, len(line))])
	}

	var sb strings.Builder
	first := b.lines[start.Row]
	sb.WriteString(string(first[clampIdx(start.Col, len(first)):]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	last := b.lines[end.Row]
	sb.WriteByte('\n')
	sb.WriteString(string(last[:clampIdx(end.Col, len(last))]))
	return sb.String()
}

// removeLocked deletes the half-open range [start, end).
func (b *Buffer) removeLocked(start, end Point) {
	if !start.Before(end) {
		return
	}
	first := b.lines[start.Row]
	head := first[:clampIdx(start.Col, len(first))]

	last := b.lines[end.Row]
	tail := last[clampIdx(end.Col, len(last)):]

	merged := make([]rune, 0, len(head)+len(tail))
	merged = append(merged, head...)
	merged = append(merged, tail...)

	rest := make([][]rune, 0, len(b.lines)-(end.Row-start.Row))
	rest = append(rest, b.lines[:start.Row]...)
	rest = append(rest, merged)
	rest = append(rest, b.lines[end.Row+1:]...)
	b.lines = rest
}

// insertTextLocked inserts s (possibly multi-line) at the cursor and
// leaves the cursor after the inserted text.
func (b *Buffer) insertTextLocked(s string) {
	parts := splitLines(s)
	row, col := b.cursor.Row, clampIdx(b.cursor.Col, len(b.lines[b.cursor.Row]))
	line := b.lines[row]
	head := append([]rune{}, line[:col]...)
	tail := append([]rune{}, line[col:]...)

	if len(parts) == 1 {
		merged := append(head, parts[0]...)
		b.cursor.Col = len(merged)
		b.lines[row] = append(merged, tail...)
		return
	}

	newLines := make([][]rune, 0, len(b.lines)+len(parts)-1)
	newLines = append(newLines, b.lines[:row]...)
	newLines = append(newLines, append(head, parts[0]...))
	newLines = append(newLines, parts[1:len(parts)-1]...)

	lastPart := parts[len(parts)-1]
	b.cursor.Row = row + len(parts) - 1
	b.cursor.Col = len(lastPart)
	newLines = append(newLines, append(append([]rune{}, lastPart...), tail...))
	newLines = append(newLines, b.lines[row+1:]...)
	b.lines = newLines
}

func clampIdx(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
