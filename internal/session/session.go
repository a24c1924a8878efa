package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/polyglot/internal/input/key"
	"github.com/dshills/polyglot/internal/picker"
)

// Action is a request the session hands back to its owner; everything
// it can do by itself it does during HandleKey.
type Action uint8

const (
	// ActionNone means the key was fully handled.
	ActionNone Action = iota

	// ActionQuit asks the owner to shut down.
	ActionQuit

	// ActionNativize asks the owner to run a nativize pass; it needs
	// the translator, which the session does not hold.
	ActionNativize
)

// Session is the whole editing state: two panes, the active side, the
// picker overlay, and the translation bookkeeping. It is not safe for
// concurrent use; the owning event loop is the single writer.
type Session struct {
	panes  [2]*Pane
	active Side

	picker     *picker.Picker
	pickerSide Side

	// Translation bookkeeping, driven by the Scheduler.
	pending     bool
	lastEdit    time.Time
	inflight    uuid.UUID
	translating bool
	errMsg      string

	now func() time.Time
}

// New creates a session with empty panes and the left side active.
// The language arguments are catalog indices.
func New(leftLang, rightLang int) *Session {
	return &Session{
		panes:  [2]*Pane{newPane(leftLang), newPane(rightLang)},
		active: SideLeft,
		now:    time.Now,
	}
}

// Pane returns the pane for a side.
func (s *Session) Pane(side Side) *Pane {
	return s.panes[side]
}

// Active returns the side that currently receives input.
func (s *Session) Active() Side {
	return s.active
}

// ActivePane returns the pane that currently receives input.
func (s *Session) ActivePane() *Pane {
	return s.panes[s.active]
}

// Picker returns the open language picker, or nil.
func (s *Session) Picker() *picker.Picker {
	return s.picker
}

// PickerSide returns which pane an open picker targets.
func (s *Session) PickerSide() Side {
	return s.pickerSide
}

// Translating reports whether a dispatched request is still in flight.
func (s *Session) Translating() bool {
	return s.translating
}

// TranslationPending reports whether an edit is waiting out the quiet
// period.
func (s *Session) TranslationPending() bool {
	return s.pending
}

// Err returns the last translation error message, or "".
func (s *Session) Err() string {
	return s.errMsg
}

// HandleKey routes one key press. Picker input wins over everything
// except quit; global chords win over the modal editor.
func (s *Session) HandleKey(ev key.Event) Action {
	if !ev.IsPress() {
		return ActionNone
	}
	if s.picker != nil {
		return s.handlePickerKey(ev)
	}

	switch {
	case ev.IsCtrlRune('c'):
		return ActionQuit

	case ev.IsCtrlRune('h'):
		s.openPicker(SideLeft)

	case ev.IsCtrlRune('l'):
		s.openPicker(SideRight)

	case ev.Key == key.KeyBackspace && ev.Modifiers.HasCtrl():
		s.openPicker(SideLeft)

	case ev.IsCtrlRune('n'):
		return ActionNativize

	case ev.IsCtrlRune('r'):
		s.ActivePane().reset()
		s.scheduleTranslation()

	case ev.Key == key.KeyTab:
		s.active = s.active.Other()

	default:
		if s.ActivePane().handle(ev) {
			s.scheduleTranslation()
		}
	}
	return ActionNone
}

func (s *Session) handlePickerKey(ev key.Event) Action {
	if ev.IsCtrlRune('c') {
		return ActionQuit
	}

	out := s.picker.HandleKey(ev)
	if !out.Closed {
		return ActionNone
	}
	if out.Committed {
		s.panes[s.pickerSide].Language = out.LanguageIndex
		s.scheduleTranslation()
	}
	s.picker = nil
	return ActionNone
}

func (s *Session) openPicker(side Side) {
	s.picker = picker.New()
	s.pickerSide = side
}

// scheduleTranslation marks the session dirty and restarts the quiet
// period. Any previous error is cleared so stale failures do not
// linger in the status line.
func (s *Session) scheduleTranslation() {
	s.pending = true
	s.lastEdit = s.now()
	s.errMsg = ""
}
