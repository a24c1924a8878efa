// Package mode implements the modal editing state machine. Each pane
// carries a Mode and the last unconsumed key; Handle interprets one
// normalized key event against that state, mutates the pane's buffer,
// and returns the resulting Transition.
//
// Handle is a pure transition function over (Mode, pending, event); it
// retains no state of its own, which keeps the whole key grammar
// unit-testable without a terminal.
//
// Normal, Visual and OperatorPending share one motion table. Keys that
// fall through the dispatch as motions always pass the operator
// finalization step: if the mode is still OperatorPending afterwards the
// operator is applied to the span the motion produced. That single
// post-step is what makes both "operator + motion" and the doubled
// operator shortcut work.
package mode
