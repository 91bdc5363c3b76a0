package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"quickride/internal/domain"
	"quickride/internal/repository"
	"quickride/internal/service"
	"quickride/internal/simulator"
)

// RideHandler handles HTTP requests for rides.
type RideHandler struct {
	rideService *service.RideService
	rideRepo    repository.RideRepository
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(rideService *service.RideService, rideRepo repository.RideRepository) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		rideRepo:    rideRepo,
	}
}

// BookRideRequest is the HTTP request body for booking a ride.
type BookRideRequest struct {
	Pickup         *domain.Location `json:"pickup"`
	Destination    *domain.Location `json:"destination"`
	Date           string           `json:"date"` // YYYY-MM-DD
	VehicleID      int              `json:"vehicle_id,omitempty"`
	PassengerCount int              `json:"passenger_count"`
}

// ActiveRideResponse is the HTTP response describing the active ride.
type ActiveRideResponse struct {
	Ride  *domain.Ride       `json:"ride"`
	State simulator.Snapshot `json:"state"`
}

// BookRide handles POST /v1/rides
func (h *RideHandler) BookRide(c *gin.Context) {
	var req BookRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	ride, err := h.rideService.Book(c.Request.Context(), service.BookRequest{
		Pickup:         req.Pickup,
		Destination:    req.Destination,
		Date:           req.Date,
		VehicleID:      req.VehicleID,
		PassengerCount: req.PassengerCount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, ride)
}

// GetActive handles GET /v1/rides/active
func (h *RideHandler) GetActive(c *gin.Context) {
	ride, state, err := h.rideService.ActiveState()
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ActiveRideResponse{Ride: ride, State: state})
}

// CancelActive handles POST /v1/rides/active/cancel
func (h *RideHandler) CancelActive(c *gin.Context) {
	if err := h.rideService.CancelActive(); err != nil {
		// Cancel outside searching is a no-op for the ride; surface the
		// conflict but do not treat it as a failure worth retrying.
		log.Printf("cancel rejected: %v", err)
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"status": string(domain.RideStatusCancelled)})
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, ride)
}

// GetAll handles GET /v1/rides
func (h *RideHandler) GetAll(c *gin.Context) {
	rides, err := h.rideRepo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, rides)
}
