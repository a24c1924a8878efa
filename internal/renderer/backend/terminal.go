package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/polyglot/internal/input/key"
)

// Terminal implements Backend on a real terminal via tcell.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend. Init must still be called.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Fini() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style Style) {
	t.screen.SetContent(x, y, r, nil, convertStyle(style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	var cs tcell.CursorStyle
	switch style {
	case CursorUnderline:
		cs = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		cs = tcell.CursorStyleSteadyBar
	default:
		cs = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(cs)
}

func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			converted := key.FromTcell(ev)
			if converted.IsNone() {
				continue
			}
			return Event{Kind: EventKey, Key: converted}
		case *tcell.EventResize:
			w, h := ev.Size()
			t.screen.Sync()
			return Event{Kind: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Event{Kind: EventInterrupt}
		case nil:
			// Screen finalized; report as an interrupt so the event
			// loop can notice shutdown.
			return Event{Kind: EventInterrupt}
		}
	}
}

func (t *Terminal) PostInterrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.FG.IsDefault() {
		style = style.Foreground(tcell.NewHexColor(int32(s.FG)))
	}
	if !s.BG.IsDefault() {
		style = style.Background(tcell.NewHexColor(int32(s.BG)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}
