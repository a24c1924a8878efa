package session

import (
	"github.com/dshills/polyglot/internal/engine/buffer"
	"github.com/dshills/polyglot/internal/input/key"
	"github.com/dshills/polyglot/internal/input/mode"
)

// Pane is one half of the session: a buffer plus the modal editor
// state that drives it and the language its text is written in.
type Pane struct {
	Buf      *buffer.Buffer
	Mode     mode.Mode
	Pending  key.Event
	Language int
}

func newPane(language int) *Pane {
	return &Pane{
		Buf:      buffer.New(),
		Mode:     mode.Normal,
		Language: language,
	}
}

// handle feeds one key through the pane's modal editor and applies the
// resulting transition. The pending key is consumed by every call;
// only an explicit pending transition re-arms it. Reports whether the
// buffer text changed.
func (p *Pane) handle(ev key.Event) bool {
	before := p.Buf.Text()

	tr := mode.Handle(p.Mode, p.Pending, ev, p.Buf)
	switch tr.Kind {
	case mode.TransitionPending:
		p.Pending = tr.Pending
	case mode.TransitionMode:
		p.Mode = tr.Mode
		p.Pending = key.Event{}
	default:
		p.Pending = key.Event{}
	}

	return p.Buf.Text() != before
}

// reset replaces the pane's buffer with a fresh empty one, discarding
// text, cursor, and undo history. The modal state is kept.
func (p *Pane) reset() {
	p.Buf = buffer.New()
}
