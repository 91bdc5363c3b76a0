package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickride/internal/booking"
	"quickride/internal/repository"
	"quickride/internal/service"
	"quickride/internal/simulator"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, booking.ErrMissingPickup),
		errors.Is(err, booking.ErrMissingDestination),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrPassengerCountOutOfRange),
		errors.Is(err, booking.ErrCapacityExceeded),
		errors.Is(err, simulator.ErrInvalidRide),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrInvalidPaymentMethod):
		return http.StatusBadRequest

	// Conflict errors - invalid command for the current lifecycle state
	case errors.Is(err, service.ErrActiveRideExists),
		errors.Is(err, simulator.ErrCancelNotAllowed),
		errors.Is(err, simulator.ErrAlreadyStarted),
		errors.Is(err, simulator.ErrDisposed):
		return http.StatusConflict

	// Missing active ride
	case errors.Is(err, service.ErrNoActiveRide):
		return http.StatusNotFound

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
