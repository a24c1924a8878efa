package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the user asked to exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrInitialization indicates the terminal backend could not be
	// set up.
	ErrInitialization = errors.New("initialization failed")
)
