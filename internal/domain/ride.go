package domain

import "time"

// RideStatus represents the current status of a ride.
type RideStatus string

const (
	RideStatusSearching      RideStatus = "searching"
	RideStatusDriverAssigned RideStatus = "driver_assigned"
	RideStatusDriverArriving RideStatus = "driver_arriving"
	RideStatusDriverArrived  RideStatus = "driver_arrived"
	RideStatusInProgress     RideStatus = "in_progress"
	RideStatusCompleted      RideStatus = "completed"
	RideStatusCancelled      RideStatus = "cancelled"
)

// Terminal reports whether the status is an end state of the lifecycle.
func (s RideStatus) Terminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// Ride represents a booked ride. Pickup, destination, vehicle type and fare
// are fixed at creation; only Status changes afterwards, and only the
// lifecycle simulator may change it.
type Ride struct {
	ID              string      `json:"id"`
	PickupLocation  Location    `json:"pickup_location"`
	Destination     Location    `json:"destination"`
	VehicleType     VehicleType `json:"vehicle_type"`
	PassengerCount  int         `json:"passenger_count"`
	Fare            float64     `json:"fare"`
	Status          RideStatus  `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	CompletedAt     time.Time   `json:"completed_at,omitempty"`
	DistanceMiles   float64     `json:"distance_miles"`
	DurationMinutes int         `json:"duration_minutes"`
}
