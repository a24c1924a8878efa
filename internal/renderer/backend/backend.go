// Package backend abstracts the terminal surface the renderer draws
// on. The real implementation is tcell; Sim is an in-memory stand-in
// for tests.
package backend

import "github.com/dshills/polyglot/internal/input/key"

// CursorStyle defines how the hardware cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventKind identifies the type of terminal event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event is one terminal event.
type Event struct {
	Kind EventKind

	// Key event payload.
	Key key.Event

	// Resize event payload.
	Width, Height int
}

// Backend is the drawing and input surface.
type Backend interface {
	// Init takes over the terminal. Must be called first.
	Init() error

	// Fini restores the terminal. Safe to call more than once.
	Fini()

	// Size returns the current dimensions.
	Size() (width, height int)

	// SetContent places one rune at a position. Out-of-bounds writes
	// are ignored.
	SetContent(x, y int, r rune, style Style)

	// Clear erases the whole surface with the default style.
	Clear()

	// Show flushes buffered changes to the terminal.
	Show()

	// ShowCursor positions and reveals the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle changes the cursor shape.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostInterrupt wakes a blocked PollEvent with an EventInterrupt.
	// Safe from any goroutine.
	PostInterrupt()
}

type simCell struct {
	r     rune
	style Style
}

// Sim is an in-memory backend for tests. It records cells, cursor
// state, and serves queued events.
type Sim struct {
	width, height int
	cells         [][]simCell
	cursorX       int
	cursorY       int
	cursorShown   bool
	cursorStyle   CursorStyle
	events        chan Event
}

// NewSim creates a simulated surface with fixed dimensions.
func NewSim(width, height int) *Sim {
	s := &Sim{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	s.reset()
	return s
}

func (s *Sim) reset() {
	s.cells = make([][]simCell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]simCell, s.width)
		for x := range s.cells[y] {
			s.cells[y][x] = simCell{r: ' ', style: StyleDefault}
		}
	}
}

func (s *Sim) Init() error { return nil }
func (s *Sim) Fini()       {}

func (s *Sim) Size() (int, int) {
	return s.width, s.height
}

func (s *Sim) SetContent(x, y int, r rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = simCell{r: r, style: style}
}

func (s *Sim) Clear() {
	s.reset()
}

func (s *Sim) Show() {}

func (s *Sim) ShowCursor(x, y int) {
	s.cursorX, s.cursorY = x, y
	s.cursorShown = true
}

func (s *Sim) HideCursor() {
	s.cursorShown = false
}

func (s *Sim) SetCursorStyle(style CursorStyle) {
	s.cursorStyle = style
}

func (s *Sim) PollEvent() Event {
	return <-s.events
}

func (s *Sim) PostInterrupt() {
	select {
	case s.events <- Event{Kind: EventInterrupt}:
	default:
	}
}

// PostKey queues a key event for PollEvent.
func (s *Sim) PostKey(ev key.Event) {
	s.events <- Event{Kind: EventKey, Key: ev}
}

// RowText returns the trimmed text content of one row.
func (s *Sim) RowText(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.r
	}
	return string(runes)
}

// StyleAt returns the style of one cell.
func (s *Sim) StyleAt(x, y int) Style {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return StyleDefault
	}
	return s.cells[y][x].style
}

// Cursor reports the cursor position and visibility.
func (s *Sim) Cursor() (x, y int, shown bool) {
	return s.cursorX, s.cursorY, s.cursorShown
}

// CursorShape reports the last cursor style set.
func (s *Sim) CursorShape() CursorStyle {
	return s.cursorStyle
}
