package mode

import "github.com/dshills/polyglot/internal/input/key"

// TransitionKind discriminates the outcomes of Handle.
type TransitionKind uint8

const (
	// TransitionNone means the mode is unchanged. Any pending key was
	// consumed without completing a sequence.
	TransitionNone TransitionKind = iota

	// TransitionPending records the event as the pending key so the
	// next call can recognize a two-key sequence.
	TransitionPending

	// TransitionMode switches to a new mode. The pending key is
	// cleared by every mode transition.
	TransitionMode
)

// Transition is the result of interpreting one key event.
type Transition struct {
	Kind    TransitionKind
	Pending key.Event
	Mode    Mode
}

// NoChange reports that the key was handled (or ignored) in place.
func NoChange() Transition {
	return Transition{Kind: TransitionNone}
}

// SetPending records ev as the pending key.
func SetPending(ev key.Event) Transition {
	return Transition{Kind: TransitionPending, Pending: ev}
}

// Switch reports a transition to m.
func Switch(m Mode) Transition {
	return Transition{Kind: TransitionMode, Mode: m}
}
