package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrSessionClosed is returned when a closed session is asked to prompt
	// again.
	ErrSessionClosed = errors.New("tui: session closed")
)
