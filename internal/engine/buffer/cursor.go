package buffer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Point is a cursor position. Row and Col are 0-indexed; Col counts runes
// and may equal the line length (one past the last rune).
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Before returns true if p comes before other in document order.
func (p Point) Before(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// CursorMove identifies a cursor motion.
type CursorMove uint8

const (
	// MoveBack moves one rune left, stopping at the line head.
	MoveBack CursorMove = iota

	// MoveForward moves one rune right, stopping one past the line end.
	MoveForward

	// MoveUp moves one row up, clamping the column.
	MoveUp

	// MoveDown moves one row down, clamping the column.
	MoveDown

	// MoveWordForward moves to the start of the next word.
	MoveWordForward

	// MoveWordBack moves to the start of the previous word.
	MoveWordBack

	// MoveWordEnd moves onto the last rune of the current or next word.
	MoveWordEnd

	// MoveHead moves to column 0.
	MoveHead

	// MoveEnd moves one past the last rune of the line.
	MoveEnd

	// MoveTop moves to the first line, clamping the column.
	MoveTop

	// MoveBottom moves to the last line, clamping the column.
	MoveBottom
)

// String returns the motion name.
func (m CursorMove) String() string {
	switch m {
	case MoveBack:
		return "back"
	case MoveForward:
		return "forward"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveWordForward:
		return "word-forward"
	case MoveWordBack:
		return "word-back"
	case MoveWordEnd:
		return "word-end"
	case MoveHead:
		return "head"
	case MoveEnd:
		return "end"
	case MoveTop:
		return "top"
	case MoveBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// MoveCursor applies a motion to the cursor. Motions never mutate text.
func (b *Buffer) MoveCursor(m CursorMove) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch m {
	case MoveBack:
		if b.cursor.Col > 0 {
			b.cursor.Col--
		}
	case MoveForward:
		if b.cursor.Col < b.lineLenLocked(b.cursor.Row) {
			b.cursor.Col++
		}
	case MoveUp:
		if b.cursor.Row > 0 {
			b.cursor.Row--
			b.clampCursorLocked()
		}
	case MoveDown:
		if b.cursor.Row < len(b.lines)-1 {
			b.cursor.Row++
			b.clampCursorLocked()
		}
	case MoveWordForward:
		b.moveWordForwardLocked()
	case MoveWordBack:
		b.moveWordBackLocked()
	case MoveWordEnd:
		b.moveWordEndLocked()
	case MoveHead:
		b.cursor.Col = 0
	case MoveEnd:
		b.cursor.Col = b.lineLenLocked(b.cursor.Row)
	case MoveTop:
		b.cursor.Row = 0
		b.clampCursorLocked()
	case MoveBottom:
		b.cursor.Row = len(b.lines) - 1
		b.clampCursorLocked()
	}
}

// SetCursor moves the cursor to p, clamping into buffer bounds.
func (b *Buffer) SetCursor(p Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = p
	b.clampCursorLocked()
}

// wordSpan is a run of non-space runes within a line.
type wordSpan struct {
	start int // rune index of the first rune
	end   int // rune index of the last rune
}

// wordSpansLocked segments a line into words using Unicode word
// boundaries, dropping whitespace-only segments.
func (b *Buffer) wordSpansLocked(row int) []wordSpan {
	line := string(b.lines[row])
	var spans []wordSpan

	pos := 0
	state := -1
	for len(line) > 0 {
		var word string
		word, line, state = uniseg.FirstWordInString(line, state)
		runes := []rune(word)
		if strings.TrimSpace(word) != "" {
			spans = append(spans, wordSpan{start: pos, end: pos + len(runes) - 1})
		}
		pos += len(runes)
	}
	return spans
}

func (b *Buffer) moveWordForwardLocked() {
	for row := b.cursor.Row; row < len(b.lines); row++ {
		for _, span := range b.wordSpansLocked(row) {
			if row > b.cursor.Row || span.start > b.cursor.Col {
				b.cursor = Point{Row: row, Col: span.start}
				return
			}
		}
	}
	// Past the last word: park at the end of the buffer.
	b.cursor.Row = len(b.lines) - 1
	b.cursor.Col = b.lineLenLocked(b.cursor.Row)
}

func (b *Buffer) moveWordBackLocked() {
	for row := b.cursor.Row; row >= 0; row-- {
		spans := b.wordSpansLocked(row)
		for i := len(spans) - 1; i >= 0; i-- {
			if row < b.cursor.Row || spans[i].start < b.cursor.Col {
				b.cursor = Point{Row: row, Col: spans[i].start}
				return
			}
		}
	}
	b.cursor = Point{}
}

func (b *Buffer) moveWordEndLocked() {
	for row := b.cursor.Row; row < len(b.lines); row++ {
		for _, span := range b.wordSpansLocked(row) {
			if row > b.cursor.Row || span.end > b.cursor.Col {
				b.cursor = Point{Row: row, Col: span.end}
				return
			}
		}
	}
	b.cursor.Row = len(b.lines) - 1
	b.cursor.Col = b.lineLenLocked(b.cursor.Row)
}
