package mode

import "fmt"

// Kind identifies the interpretation regime for key input.
type Kind uint8

const (
	// KindNormal interprets keys as motions and commands.
	KindNormal Kind = iota

	// KindInsert forwards keys to the buffer as literal input.
	KindInsert

	// KindVisual extends a selection with motions.
	KindVisual

	// KindOperatorPending waits for a motion (or a repeated operator
	// key) to determine the span an operator applies to.
	KindOperatorPending
)

// Operator is a pending yank, delete or change.
type Operator rune

const (
	// OpYank copies the operated span.
	OpYank Operator = 'y'

	// OpDelete cuts the operated span.
	OpDelete Operator = 'd'

	// OpChange cuts the operated span and enters insert mode.
	OpChange Operator = 'c'
)

// Mode is the per-pane modal state: a kind plus, for operator-pending,
// the operator awaiting its span. Modes are plain values and compare
// with ==.
type Mode struct {
	Kind Kind
	Op   Operator
}

// Convenience constructors for the fixed modes.
var (
	Normal = Mode{Kind: KindNormal}
	Insert = Mode{Kind: KindInsert}
	Visual = Mode{Kind: KindVisual}
)

// OperatorPending returns the operator-pending mode for op.
func OperatorPending(op Operator) Mode {
	return Mode{Kind: KindOperatorPending, Op: op}
}

// IsOperatorPending returns true when an operator awaits its span.
func (m Mode) IsOperatorPending() bool {
	return m.Kind == KindOperatorPending
}

// DisplayName returns the status-line name for the mode.
func (m Mode) DisplayName() string {
	switch m.Kind {
	case KindNormal:
		return "NORMAL"
	case KindInsert:
		return "INSERT"
	case KindVisual:
		return "VISUAL"
	case KindOperatorPending:
		return fmt.Sprintf("OPERATOR(%c)", rune(m.Op))
	default:
		return "UNKNOWN"
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m.Kind {
	case KindInsert:
		return CursorBar
	case KindVisual, KindOperatorPending:
		return CursorUnderline
	default:
		return CursorBlock
	}
}
