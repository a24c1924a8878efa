package renderer

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/polyglot/internal/engine/buffer"
	"github.com/dshills/polyglot/internal/input/mode"
	"github.com/dshills/polyglot/internal/lang"
	"github.com/dshills/polyglot/internal/renderer/backend"
	"github.com/dshills/polyglot/internal/session"
)

// Renderer paints the session onto a backend.
type Renderer struct {
	theme Theme
}

// New creates a renderer with the default theme.
func New() *Renderer {
	return &Renderer{theme: DefaultTheme()}
}

// span is a run of text in one style.
type span struct {
	text  string
	style backend.Style
}

// Render repaints the whole screen from the session state.
func (r *Renderer) Render(b backend.Backend, s *session.Session) {
	width, height := b.Size()
	b.Clear()
	l := computeLayout(width, height)

	r.drawHeader(b, l.header)
	r.drawPane(b, l.left, s, session.SideLeft)
	r.drawPane(b, l.right, s, session.SideRight)
	r.drawHelp(b, l.help, s)

	if s.Picker() != nil {
		b.HideCursor()
		r.drawPicker(b, s, width, height)
	}

	b.Show()
}

func (r *Renderer) drawHeader(b backend.Backend, rect Rect) {
	r.drawBox(b, rect, backend.StyleDefault, []span{
		{"polyglot", r.theme.HeaderTitle},
		{"  |  ", backend.StyleDefault},
		{"tab to switch", r.theme.HeaderHint},
	})
}

func (r *Renderer) drawPane(b backend.Backend, rect Rect, s *session.Session, side session.Side) {
	pane := s.Pane(side)
	active := s.Active() == side && s.Picker() == nil

	border := r.theme.Border
	title := r.theme.Title
	name := lang.At(pane.Language).Name
	if active {
		border = r.theme.BorderActive
		title = r.theme.TitleActive
		name = fmt.Sprintf("%s (active, %s)", name, pane.Mode.DisplayName())
	}
	r.drawBox(b, rect, border, []span{{name, title}})

	inner := rect.Inner()
	if inner.W == 0 || inner.H == 0 {
		return
	}
	pane.Buf.SetViewSize(inner.H)
	r.drawBufferText(b, inner, pane.Buf)

	if active {
		r.placeCursor(b, inner, pane)
	}
}

func (r *Renderer) drawBufferText(b backend.Backend, inner Rect, buf *buffer.Buffer) {
	top := buf.TopRow()
	selStart, selEnd, hasSel := buf.Selection()

	for rowOff := 0; rowOff < inner.H; rowOff++ {
		row := top + rowOff
		if row >= buf.LineCount() {
			break
		}
		x := inner.X
		for col, ch := range []rune(buf.Line(row)) {
			w := runeWidth(ch)
			if x+w > inner.X+inner.W {
				break
			}
			style := r.theme.PaneText
			if hasSel && inSelection(buffer.Point{Row: row, Col: col}, selStart, selEnd) {
				style = r.theme.Selection
			}
			b.SetContent(x, inner.Y+rowOff, ch, style)
			x += w
		}
	}
}

func (r *Renderer) placeCursor(b backend.Backend, inner Rect, pane *session.Pane) {
	cur := pane.Buf.Cursor()
	rowOff := cur.Row - pane.Buf.TopRow()
	if rowOff < 0 || rowOff >= inner.H {
		b.HideCursor()
		return
	}

	line := []rune(pane.Buf.Line(cur.Row))
	x := inner.X
	for col := 0; col < cur.Col && col < len(line); col++ {
		x += runeWidth(line[col])
	}
	if x >= inner.X+inner.W {
		b.HideCursor()
		return
	}

	switch pane.Mode.CursorStyle() {
	case mode.CursorBar:
		b.SetCursorStyle(backend.CursorBar)
	case mode.CursorUnderline:
		b.SetCursorStyle(backend.CursorUnderline)
	default:
		b.SetCursorStyle(backend.CursorBlock)
	}
	b.ShowCursor(x, inner.Y+rowOff)
}

func (r *Renderer) drawHelp(b backend.Backend, rect Rect, s *session.Session) {
	r.drawBox(b, rect, backend.StyleDefault, []span{{"Controls", backend.StyleDefault}})
	inner := rect.Inner()

	lines := [][]span{
		{{"Ctrl+c", r.theme.HelpKey}, {"  quit", r.theme.HelpText}},
		{{"Ctrl+h", r.theme.HelpKey}, {"  change left language", r.theme.HelpText}},
		{{"Ctrl+l", r.theme.HelpKey}, {"  change right language", r.theme.HelpText}},
		{{"Ctrl+n", r.theme.HelpKey}, {"  native-ize both", r.theme.HelpText}},
		{{"Ctrl+r", r.theme.HelpKey}, {"  clear active", r.theme.HelpText}},
		{{"Tab", r.theme.HelpKey}, {"  switch side", r.theme.HelpText}},
		{{"Vim", r.theme.HelpKey}, {"  i/a/o insert, Esc normal, hjkl move", r.theme.HelpText}},
		{{"Status", r.theme.HelpKey}, {"  ", r.theme.HelpText}, r.statusSpan(s)},
	}

	for i, line := range lines {
		if i >= inner.H {
			break
		}
		r.drawSpans(b, inner.X, inner.Y+i, inner.X+inner.W, line)
	}
}

func (r *Renderer) statusSpan(s *session.Session) span {
	switch {
	case s.Err() != "":
		return span{s.Err(), r.theme.StatusError}
	case s.TranslationPending() || s.Translating():
		return span{"translating...", r.theme.StatusBusy}
	default:
		return span{"ready", r.theme.StatusReady}
	}
}

func (r *Renderer) drawPicker(b backend.Backend, s *session.Session, width, height int) {
	p := s.Picker()
	area := centeredRect(70, 70, width, height)
	r.clearRect(b, area)

	title := "Select source language"
	if s.PickerSide() == session.SideRight {
		title = "Select target language"
	}
	r.drawBox(b, area, r.theme.PickerBorder, []span{{title, r.theme.PickerBorder}})

	inner := area.Inner()
	if inner.W == 0 || inner.H == 0 {
		return
	}

	// Query box on top, result list in the middle, key hints at the
	// bottom.
	queryRect := Rect{X: inner.X, Y: inner.Y, W: inner.W, H: min(3, inner.H)}
	footerH := 0
	if inner.H > queryRect.H+1 {
		footerH = min(2, inner.H-queryRect.H-1)
	}
	listRect := Rect{
		X: inner.X,
		Y: inner.Y + queryRect.H,
		W: inner.W,
		H: inner.H - queryRect.H - footerH,
	}
	footerRect := Rect{X: inner.X, Y: listRect.Y + listRect.H, W: inner.W, H: footerH}

	r.drawBox(b, queryRect, backend.StyleDefault, nil)
	qi := queryRect.Inner()
	if qi.H > 0 {
		r.drawSpans(b, qi.X, qi.Y, qi.X+qi.W, []span{
			{"Search: ", r.theme.HelpKey},
			{p.Query(), r.theme.HelpText},
		})
	}

	for i, res := range p.Results() {
		if i >= listRect.H {
			break
		}
		entry := lang.At(res.Item.Index)
		text := fmt.Sprintf("%s (%s)", entry.Name, entry.Code)
		if i == p.Selected() {
			r.drawSpans(b, listRect.X, listRect.Y+i, listRect.X+listRect.W, []span{
				{">> ", r.theme.PickerPick},
				{text, r.theme.PickerPick},
			})
		} else {
			r.drawSpans(b, listRect.X+3, listRect.Y+i, listRect.X+listRect.W, []span{
				{text, r.theme.PickerItem},
			})
		}
	}

	if footerRect.H > 0 {
		r.drawSpans(b, footerRect.X, footerRect.Y+footerRect.H-1, footerRect.X+footerRect.W, []span{
			{"Enter", r.theme.HelpKey},
			{" select  ", r.theme.HelpText},
			{"Esc", r.theme.HelpKey},
			{" cancel  ", r.theme.HelpText},
			{"Up/Down", r.theme.HelpKey},
			{" navigate", r.theme.HelpText},
		})
	}
}

// drawBox draws a border around rect with an optional title in its
// top edge.
func (r *Renderer) drawBox(b backend.Backend, rect Rect, style backend.Style, title []span) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right := rect.X + rect.W - 1
	bottom := rect.Y + rect.H - 1

	b.SetContent(rect.X, rect.Y, '┌', style)
	b.SetContent(right, rect.Y, '┐', style)
	b.SetContent(rect.X, bottom, '└', style)
	b.SetContent(right, bottom, '┘', style)
	for x := rect.X + 1; x < right; x++ {
		b.SetContent(x, rect.Y, '─', style)
		b.SetContent(x, bottom, '─', style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		b.SetContent(rect.X, y, '│', style)
		b.SetContent(right, y, '│', style)
	}

	if len(title) > 0 {
		r.drawSpans(b, rect.X+1, rect.Y, right, title)
	}
}

func (r *Renderer) clearRect(b backend.Backend, rect Rect) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			b.SetContent(x, y, ' ', backend.StyleDefault)
		}
	}
}

// drawSpans writes styled runs left to right, clipping at maxX.
// Returns the x position after the last rune drawn.
func (r *Renderer) drawSpans(b backend.Backend, x, y, maxX int, spans []span) int {
	for _, sp := range spans {
		for _, ch := range sp.text {
			w := runeWidth(ch)
			if x+w > maxX {
				return x
			}
			b.SetContent(x, y, ch, sp.style)
			x += w
		}
	}
	return x
}

func runeWidth(r rune) int {
	if w := uniseg.StringWidth(string(r)); w > 0 {
		return w
	}
	return 1
}

func inSelection(p, start, end buffer.Point) bool {
	return !p.Before(start) && p.Before(end)
}
