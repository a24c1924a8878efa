package mode

import (
	"github.com/dshills/polyglot/internal/engine/buffer"
	"github.com/dshills/polyglot/internal/input/key"
)

// motionTable maps plain command-mode keys to cursor motions. It is
// shared by Normal, Visual and OperatorPending.
var motionTable = map[rune]buffer.CursorMove{
	'h': buffer.MoveBack,
	'j': buffer.MoveDown,
	'k': buffer.MoveUp,
	'l': buffer.MoveForward,
	'w': buffer.MoveWordForward,
	'b': buffer.MoveWordBack,
	'e': buffer.MoveWordEnd,
	'^': buffer.MoveHead,
	'$': buffer.MoveEnd,
	'G': buffer.MoveBottom,
}

// Handle interprets one key event for a pane in mode m with pending as
// the last unconsumed key, mutating buf as a side effect. Unrecognized
// keys are recorded as the new pending key and never produce an error.
func Handle(m Mode, pending key.Event, ev key.Event, buf *buffer.Buffer) Transition {
	if ev.IsNone() {
		return NoChange()
	}
	if m.Kind == KindInsert {
		return handleInsert(ev, buf)
	}
	return handleCommand(m, pending, ev, buf)
}

// handleCommand dispatches Normal/Visual/OperatorPending keys.
//
// Precedence: explicit commands return their transition directly and
// skip finalization. Motions (and the doubled-operator line selection)
// fall through to finalizeOperator, which applies a pending operator to
// whatever span the motion produced. Anything unmatched becomes the
// pending key.
func handleCommand(m Mode, pending key.Event, ev key.Event, buf *buffer.Buffer) Transition {
	if tr, done := dispatchCommand(m, pending, ev, buf); done {
		return tr
	}
	return finalizeOperator(m, buf)
}

// dispatchCommand runs the command table. done=false means the key fell
// through as a motion and finalization must run.
func dispatchCommand(m Mode, pending key.Event, ev key.Event, buf *buffer.Buffer) (Transition, bool) {
	// Control chords: viewport scrolling plus redo. Scrolls leave the
	// cursor in place, so a pending operator finalizes over an empty
	// span.
	if ev.IsRune() && ev.Modifiers.HasCtrl() {
		switch ev.Rune {
		case 'e':
			buf.ScrollLines(1)
			return Transition{}, false
		case 'y':
			buf.ScrollLines(-1)
			return Transition{}, false
		case 'd':
			buf.ScrollHalfPage(true)
			return Transition{}, false
		case 'u':
			buf.ScrollHalfPage(false)
			return Transition{}, false
		case 'f':
			buf.ScrollPage(true)
			return Transition{}, false
		case 'b':
			buf.ScrollPage(false)
			return Transition{}, false
		case 'r':
			buf.Redo()
			return Switch(Normal), true
		}
	}

	// Cancelling Visual returns to Normal; in other modes Escape falls
	// through to the pending-key default like any unmatched key.
	if m.Kind == KindVisual && (ev.IsEscape() || ev.IsPlainRune('v')) {
		buf.CancelSelection()
		return Switch(Normal), true
	}

	if ev.IsRune() && !ev.IsModified() {
		r := ev.Rune

		// Two-key "go to top": the first g parks as the pending key.
		if r == 'g' && pending.IsPlainRune('g') {
			buf.MoveCursor(buffer.MoveTop)
			return Transition{}, false
		}

		// Doubled operator: the repeated key selects the whole current
		// line, clamped to the buffer end on the last line.
		if m.IsOperatorPending() && rune(m.Op) == r {
			selectCurrentLine(buf)
			return Transition{}, false
		}

		switch r {
		case 'y', 'd', 'c':
			if m.Kind == KindNormal {
				buf.StartSelection()
				return Switch(OperatorPending(Operator(r))), true
			}
			if m.Kind == KindVisual {
				return applyVisualOperator(Operator(r), buf), true
			}
		case 'D':
			buf.DeleteLineByEnd()
			return Switch(Normal), true
		case 'C':
			buf.DeleteLineByEnd()
			buf.CancelSelection()
			return Switch(Insert), true
		case 'p':
			buf.Paste()
			return Switch(Normal), true
		case 'u':
			buf.Undo()
			return Switch(Normal), true
		case 'x':
			buf.DeleteNextChar()
			return Switch(Normal), true
		case 'i':
			buf.CancelSelection()
			return Switch(Insert), true
		case 'a':
			buf.CancelSelection()
			buf.MoveCursor(buffer.MoveForward)
			return Switch(Insert), true
		case 'A':
			buf.CancelSelection()
			buf.MoveCursor(buffer.MoveEnd)
			return Switch(Insert), true
		case 'I':
			buf.CancelSelection()
			buf.MoveCursor(buffer.MoveHead)
			return Switch(Insert), true
		case 'o':
			buf.MoveCursor(buffer.MoveEnd)
			buf.InsertNewline()
			return Switch(Insert), true
		case 'O':
			buf.MoveCursor(buffer.MoveHead)
			buf.InsertNewline()
			buf.MoveCursor(buffer.MoveUp)
			return Switch(Insert), true
		case 'v':
			if m.Kind == KindNormal {
				buf.StartSelection()
				return Switch(Visual), true
			}
		case 'V':
			if m.Kind == KindNormal {
				buf.MoveCursor(buffer.MoveHead)
				buf.StartSelection()
				buf.MoveCursor(buffer.MoveEnd)
				return Switch(Visual), true
			}
		}

		if move, ok := motionTable[r]; ok {
			buf.MoveCursor(move)
			// Operating through to a word end includes the end rune.
			if r == 'e' && m.IsOperatorPending() {
				buf.MoveCursor(buffer.MoveForward)
			}
			return Transition{}, false
		}
	}

	return SetPending(ev), true
}

// finalizeOperator applies a still-pending operator to the span between
// the selection anchor and the cursor. It runs after every fallthrough,
// which is exactly what makes operator+motion sequences work.
func finalizeOperator(m Mode, buf *buffer.Buffer) Transition {
	if !m.IsOperatorPending() {
		return NoChange()
	}
	switch m.Op {
	case OpYank:
		buf.Copy()
		return Switch(Normal)
	case OpChange:
		buf.Cut()
		return Switch(Insert)
	default:
		buf.Cut()
		return Switch(Normal)
	}
}

// applyVisualOperator extends the selection one position forward so the
// bound is inclusive, then applies the operator.
func applyVisualOperator(op Operator, buf *buffer.Buffer) Transition {
	buf.MoveCursor(buffer.MoveForward)
	switch op {
	case OpYank:
		buf.Copy()
		return Switch(Normal)
	case OpChange:
		buf.Cut()
		return Switch(Insert)
	default:
		buf.Cut()
		return Switch(Normal)
	}
}

// selectCurrentLine re-anchors the selection across the full current
// line for the doubled-operator shortcut. On the last line there is no
// line below, so the span is clamped to the end of the line.
func selectCurrentLine(buf *buffer.Buffer) {
	buf.MoveCursor(buffer.MoveHead)
	buf.StartSelection()
	before := buf.Cursor()
	buf.MoveCursor(buffer.MoveDown)
	if buf.Cursor() == before {
		buf.MoveCursor(buffer.MoveEnd)
	}
}

// handleInsert forwards keys to the buffer as literal input. Escape (or
// the C-c cancel chord) returns to Normal; everything else leaves the
// pane in Insert.
func handleInsert(ev key.Event, buf *buffer.Buffer) Transition {
	if ev.IsEscape() || ev.IsCtrlRune('c') {
		return Switch(Normal)
	}

	switch {
	case ev.IsChar() && !ev.IsModified():
		buf.InsertRune(ev.Rune)
	case ev.IsEnter():
		buf.InsertNewline()
	case ev.Key == key.KeyTab && ev.Modifiers.IsEmpty():
		buf.InsertRune('\t')
	case ev.IsBackspace():
		buf.DeleteRune()
	case ev.Key == key.KeyDelete:
		buf.DeleteNextChar()
	case ev.Key == key.KeyLeft:
		buf.MoveCursor(buffer.MoveBack)
	case ev.Key == key.KeyRight:
		buf.MoveCursor(buffer.MoveForward)
	case ev.Key == key.KeyUp:
		buf.MoveCursor(buffer.MoveUp)
	case ev.Key == key.KeyDown:
		buf.MoveCursor(buffer.MoveDown)
	case ev.Key == key.KeyHome:
		buf.MoveCursor(buffer.MoveHead)
	case ev.Key == key.KeyEnd:
		buf.MoveCursor(buffer.MoveEnd)
	}
	return Switch(Insert)
}
