package prompt

import "errors"

var (
	// ErrAborted signals the user cancelled a prompt (e.g., Ctrl+C).
	// Cancellation terminates the whole run.
	ErrAborted = errors.New("prompt: aborted")
)
