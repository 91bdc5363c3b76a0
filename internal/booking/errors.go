package booking

import "errors"

// Validation errors, one per rule, checked in order with the first failure
// returned. They surface to the user immediately and are never retried.
var (
	// ErrMissingPickup is returned when no pickup location is selected.
	ErrMissingPickup = errors.New("pickup location is required")

	// ErrMissingDestination is returned when no destination is selected.
	ErrMissingDestination = errors.New("destination is required")

	// ErrInvalidDate is returned when the date does not parse or is in the past.
	ErrInvalidDate = errors.New("date must be today or a future date")

	// ErrPassengerCountOutOfRange is returned when the passenger count is not 1..8.
	ErrPassengerCountOutOfRange = errors.New("passenger count must be between 1 and 8")

	// ErrCapacityExceeded is returned when the selected vehicle cannot seat the party.
	ErrCapacityExceeded = errors.New("passenger count exceeds vehicle capacity")
)
