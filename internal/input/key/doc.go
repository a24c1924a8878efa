// Package key defines the normalized keyboard event model used by the
// modal editor and the session key router.
//
// Terminal backends deliver their own event types; FromTcell converts a
// tcell key event into the neutral Event form so everything above the
// backend can be tested without a terminal. An Event carries a logical
// key identity, the rune for character keys, modifier flags, and a
// press/release action. Only press events are acted on.
package key
