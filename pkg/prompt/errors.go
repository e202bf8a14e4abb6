package prompt

import "errors"

var (
	// ErrAborted signals the user aborted the flow (Ctrl+C or a
	// declined final confirmation).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoProperties is returned when the property loop finishes
	// without a single accepted property.
	ErrNoProperties = errors.New("prompt: no properties were added")
)
