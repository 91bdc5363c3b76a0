// Package booking validates pending booking requests and constructs the
// initial ride record handed to the lifecycle simulator.
package booking

import (
	"time"

	"github.com/google/uuid"

	"quickride/internal/domain"
	"quickride/internal/geo"
)

const (
	minPassengers = 1
	maxPassengers = 8

	// dateLayout is the wire format for the requested ride date.
	dateLayout = "2006-01-02"
)

// Request is a validated booking, ready to become a ride.
type Request struct {
	Pickup         domain.Location
	Destination    domain.Location
	Date           time.Time
	Vehicle        *domain.Vehicle
	VehicleType    domain.VehicleType
	PassengerCount int

	// Fare optionally pre-supplies the fare (e.g. the catalog estimate shown
	// to the user). Zero means estimate from distance at creation.
	Fare float64
}

// Coordinator validates bookings and creates rides. The now func is
// injectable so date validation is deterministic in tests.
type Coordinator struct {
	now func() time.Time
}

// NewCoordinator creates a Coordinator using the wall clock.
func NewCoordinator() *Coordinator {
	return &Coordinator{now: time.Now}
}

// NewCoordinatorAt creates a Coordinator with a fixed notion of "now".
func NewCoordinatorAt(now func() time.Time) *Coordinator {
	return &Coordinator{now: now}
}

// Validate applies the booking rules in order, short-circuiting on the first
// failure: pickup, destination, date, passenger count, vehicle capacity.
func (c *Coordinator) Validate(pickup, destination *domain.Location, date string, vehicle *domain.Vehicle, passengerCount int) (*Request, error) {
	if pickup == nil || pickup.IsZero() {
		return nil, ErrMissingPickup
	}
	if destination == nil || destination.IsZero() {
		return nil, ErrMissingDestination
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if parsed.Before(c.today()) {
		return nil, ErrInvalidDate
	}

	if passengerCount < minPassengers || passengerCount > maxPassengers {
		return nil, ErrPassengerCountOutOfRange
	}

	if vehicle != nil && passengerCount > vehicle.Capacity {
		return nil, ErrCapacityExceeded
	}

	req := &Request{
		Pickup:         *pickup,
		Destination:    *destination,
		Date:           parsed,
		Vehicle:        vehicle,
		PassengerCount: passengerCount,
	}
	if vehicle != nil {
		req.VehicleType = vehicle.Type
		req.Fare = vehicle.EstimatedFare
	}
	return req, nil
}

// CreateRide allocates a fresh ride in the searching state from a validated
// request. Pickup, destination and fare are fixed from here on; only the
// lifecycle simulator mutates status.
func (c *Coordinator) CreateRide(req *Request) *domain.Ride {
	vehicleType := req.VehicleType
	if vehicleType == "" {
		vehicleType = domain.VehicleTypeEconomy
	}

	distance := geo.Distance(req.Pickup, req.Destination)

	fare := req.Fare
	if fare == 0 {
		fare = geo.EstimateFare(distance, vehicleType)
	}

	return &domain.Ride{
		ID:              uuid.New().String(),
		PickupLocation:  req.Pickup,
		Destination:     req.Destination,
		VehicleType:     vehicleType,
		PassengerCount:  req.PassengerCount,
		Fare:            fare,
		Status:          domain.RideStatusSearching,
		CreatedAt:       c.now(),
		DistanceMiles:   distance,
		DurationMinutes: geo.EstimateTimeMinutes(distance),
	}
}

// today returns the current date at UTC midnight, matching the zone
// time.Parse assigns to bare dates, so same-day bookings pass validation.
func (c *Coordinator) today() time.Time {
	now := c.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
