package service

import (
	"context"
	"log"
	"sync"
	"time"

	"quickride/internal/booking"
	"quickride/internal/catalog"
	"quickride/internal/clock"
	"quickride/internal/domain"
	"quickride/internal/observability"
	"quickride/internal/repository"
	"quickride/internal/simulator"
)

// Broadcaster pushes snapshots to connected UI clients. The websocket hub
// implements it; tests pass nil or a recorder.
type Broadcaster interface {
	Broadcast(v any)
}

// finishTimeout bounds the background persistence of a terminal ride; the
// mock stores add artificial latency.
const finishTimeout = 5 * time.Second

// RideService owns the single active ride session: it validates bookings,
// creates rides, runs the lifecycle simulator and persists terminal rides
// into the history store.
type RideService struct {
	coordinator *booking.Coordinator
	sched       clock.Scheduler
	rideRepo    repository.RideRepository
	payments    *PaymentService
	notifier    *NotificationService
	broadcaster Broadcaster

	mu     sync.Mutex
	active *activeRide
}

// activeRide pairs the booked ride with its running simulator.
type activeRide struct {
	ride *domain.Ride
	sim  *simulator.Simulator
}

// NewRideService creates a new RideService. payments, notifier and
// broadcaster may be nil.
func NewRideService(
	coordinator *booking.Coordinator,
	sched clock.Scheduler,
	rideRepo repository.RideRepository,
	payments *PaymentService,
	notifier *NotificationService,
	broadcaster Broadcaster,
) *RideService {
	return &RideService{
		coordinator: coordinator,
		sched:       sched,
		rideRepo:    rideRepo,
		payments:    payments,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

// BookRequest contains the parameters for booking a ride.
type BookRequest struct {
	Pickup         *domain.Location
	Destination    *domain.Location
	Date           string
	VehicleID      int // 0 means no specific vehicle
	PassengerCount int
}

// Book validates the request, creates the ride and starts its lifecycle.
// Only one ride may be active at a time.
func (s *RideService) Book(ctx context.Context, req BookRequest) (*domain.Ride, error) {
	var vehicle *domain.Vehicle
	if req.VehicleID != 0 {
		if vehicle = catalog.VehicleByID(req.VehicleID); vehicle == nil {
			return nil, ErrVehicleNotFound
		}
	}

	valid, err := s.coordinator.Validate(req.Pickup, req.Destination, req.Date, vehicle, req.PassengerCount)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, ErrActiveRideExists
	}

	ride := s.coordinator.CreateRide(valid)

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	sim := simulator.New(s.sched)
	sim.OnStatusChange(func(snap simulator.Snapshot) {
		observability.RideTransitionsTotal.WithLabelValues(string(snap.Status)).Inc()
		if s.notifier != nil {
			s.notifier.NotifyStatus(snap)
		}
		if s.broadcaster != nil {
			s.broadcaster.Broadcast(snap)
		}
	})
	sim.OnComplete(s.finish)

	if err := sim.Start(ride); err != nil {
		return nil, err
	}

	s.active = &activeRide{ride: ride, sim: sim}
	observability.RidesBookedTotal.Inc()
	observability.ActiveRide.Set(1)

	if s.notifier != nil {
		s.notifier.NotifyRideBooked(ride)
	}
	return ride, nil
}

// CancelActive cancels the active ride. Legal only while searching; the
// simulator's rules apply.
func (s *RideService) CancelActive() error {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return ErrNoActiveRide
	}
	// The simulator invokes finish synchronously on success, so the session
	// lock must not be held here.
	return active.sim.Cancel()
}

// ActiveState returns the booked ride and the current lifecycle snapshot.
func (s *RideService) ActiveState() (*domain.Ride, simulator.Snapshot, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active == nil {
		return nil, simulator.Snapshot{}, ErrNoActiveRide
	}

	ride := *active.ride
	return &ride, active.sim.State(), nil
}

// Shutdown disposes the active simulator, if any. Per the session model,
// losing the handle is equivalent to ride loss.
func (s *RideService) Shutdown() {
	s.mu.Lock()
	active := s.active
	s.active = nil
	s.mu.Unlock()

	if active != nil {
		active.sim.Dispose()
		observability.ActiveRide.Set(0)
	}
}

// finish runs when the lifecycle reaches a terminal state: it persists the
// final status, records the charge for completed trips and frees the
// session for the next booking.
func (s *RideService) finish(snap simulator.Snapshot) {
	s.mu.Lock()
	active := s.active
	if active == nil || active.ride.ID != snap.RideID {
		s.mu.Unlock()
		return
	}
	s.active = nil
	ride := *active.ride
	s.mu.Unlock()

	observability.ActiveRide.Set(0)
	switch snap.Status {
	case domain.RideStatusCompleted:
		observability.RidesCompletedTotal.Inc()
	case domain.RideStatusCancelled:
		observability.RidesCancelledTotal.Inc()
	}

	ctx, cancel := context.WithTimeout(context.Background(), finishTimeout)
	defer cancel()

	ride.Status = snap.Status
	ride.CompletedAt = time.Now()
	if err := s.rideRepo.Update(ctx, &ride); err != nil {
		log.Printf("failed to persist terminal ride %s: %v", ride.ID, err)
	}

	if snap.Status == domain.RideStatusCompleted && s.payments != nil {
		if _, err := s.payments.RecordRideCharge(ctx, &ride); err != nil {
			log.Printf("failed to record charge for ride %s: %v", ride.ID, err)
		}
	}
}
