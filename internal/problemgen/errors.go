package problemgen

import "errors"

var (
	ErrInvalidLevel     = errors.New("invalid level")
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidNumber is returned when the learner's answer is not an integer.
	ErrInvalidNumber = errors.New("enter a valid number")
)
