package buffer

import (
	"strings"
	"sync"
)

// Buffer is the text storage for one editor pane.
type Buffer struct {
	mu sync.RWMutex

	lines  [][]rune
	cursor Point
	anchor *Point // selection anchor, nil when no selection

	register string // yank register shared by copy/cut/paste

	undo []snapshot
	redo []snapshot

	topRow     int // first visible row
	viewHeight int // rows visible, set by the renderer

	revision uint64
}

// maxUndoDepth bounds the undo stack.
const maxUndoDepth = 1000

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		lines:      [][]rune{{}},
		viewHeight: 1,
	}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	b := New()
	b.lines = splitLines(s)
	return b
}

// Text returns the buffer content with lines joined by "\n".
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.textLocked()
}

func (b *Buffer) textLocked() string {
	parts := make([]string, len(b.lines))
	for i, line := range b.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the entire content. The cursor is clamped into the new
// content, the selection is dropped, and the old content is undoable.
func (b *Buffer) SetText(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pushUndoLocked()
	b.lines = splitLines(s)
	b.anchor = nil
	b.clampCursorLocked()
	b.revision++
}

// Lines returns a copy of the buffer content as strings.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

// Line returns the content of row i, or "" when out of range.
func (b *Buffer) Line(i int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// IsEmpty returns true when the buffer contains no text at all.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// Revision returns a counter that increments on every text mutation.
// Unchanged content across a blocking call can be detected by comparing
// revisions.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Register returns the current yank register content.
func (b *Buffer) Register() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.register
}

func (b *Buffer) lineLenLocked(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampCursorLocked() {
	if b.cursor.Row >= len(b.lines) {
		b.cursor.Row = len(b.lines) - 1
	}
	if b.cursor.Row < 0 {
		b.cursor.Row = 0
	}
	if max := b.lineLenLocked(b.cursor.Row); b.cursor.Col > max {
		b.cursor.Col = max
	}
	if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
}

// splitLines breaks s into rune slices, normalizing CRLF and CR to LF.
func splitLines(s string) [][]rune {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	raw := strings.Split(s, "\n")
	lines := make([][]rune, len(raw))
	for i, l := range raw {
		lines[i] = []rune(l)
	}
	return lines
}
