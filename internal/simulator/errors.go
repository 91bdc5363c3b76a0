package simulator

import "errors"

var (
	// ErrInvalidRide is returned when a ride is missing its pickup,
	// destination or vehicle type.
	ErrInvalidRide = errors.New("ride missing pickup, destination or vehicle type")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("simulator already started")

	// ErrCancelNotAllowed is returned when Cancel is called outside the
	// searching state. The ride keeps progressing; callers log and move on.
	ErrCancelNotAllowed = errors.New("ride can only be cancelled while searching")

	// ErrDisposed is returned when a command is issued after Dispose.
	ErrDisposed = errors.New("simulator disposed")
)
