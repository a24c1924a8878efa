// Package session owns the two-pane editing state and the translation
// workflow around it.
//
// A Session holds two panes, each with its own buffer, modal editor
// state, and language. Exactly one pane is active; keys route to the
// language picker when one is open, then to the global chord table,
// and finally to the active pane's modal editor. Any key that changes
// the active buffer's text schedules a translation.
//
// Scheduling is debounced: the Scheduler dispatches a request only
// after a quiet period with no further edits. The translation
// direction is snapshotted at dispatch time, so switching sides while
// a request is pending changes which way the next request flows.
// Results carry the request ID and the target buffer revision they
// were computed against; ApplyResult drops anything stale.
package session
