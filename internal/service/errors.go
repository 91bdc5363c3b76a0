package service

import "errors"

var (
	// ErrActiveRideExists is returned when booking while a ride is active.
	// Exactly one ride may be active per client session.
	ErrActiveRideExists = errors.New("a ride is already active")

	// ErrNoActiveRide is returned when a command targets the active ride
	// but none exists.
	ErrNoActiveRide = errors.New("no active ride")

	// ErrVehicleNotFound is returned when the requested vehicle is not in
	// the catalog.
	ErrVehicleNotFound = errors.New("unknown vehicle")

	// ErrInvalidPaymentMethod is returned when a payment method is missing
	// required fields.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
