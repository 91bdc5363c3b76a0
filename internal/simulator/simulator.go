// Package simulator owns the authoritative state of a single active ride
// and advances it through a fixed stage sequence on a timer, independent of
// any presentation concern.
package simulator

import (
	"strconv"
	"sync"
	"time"

	"quickride/internal/clock"
	"quickride/internal/domain"
)

// Dwell times per state. A state holds for its dwell time and then
// auto-advances to the next state in the table below.
const (
	SearchingDwell      = 3000 * time.Millisecond
	DriverAssignedDwell = 5000 * time.Millisecond
	DriverArrivingDwell = 2000 * time.Millisecond
	DriverArrivedDwell  = 10000 * time.Millisecond
	InProgressDwell     = 15000 * time.Millisecond
)

// transition describes one row of the lifecycle table: after dwelling in a
// state, the ride moves to next.
type transition struct {
	dwell time.Duration
	next  domain.RideStatus
}

var transitions = map[domain.RideStatus]transition{
	domain.RideStatusSearching:      {SearchingDwell, domain.RideStatusDriverAssigned},
	domain.RideStatusDriverAssigned: {DriverAssignedDwell, domain.RideStatusDriverArriving},
	domain.RideStatusDriverArriving: {DriverArrivingDwell, domain.RideStatusDriverArrived},
	domain.RideStatusDriverArrived:  {DriverArrivedDwell, domain.RideStatusInProgress},
	domain.RideStatusInProgress:     {InProgressDwell, domain.RideStatusCompleted},
}

// driverLocationOffset is added to the pickup coordinates when a driver is
// assigned. The driver does not move after that; movement interpolation is
// out of scope.
const driverLocationOffset = 0.01

// Snapshot is a read-only copy of the simulator's observable state.
type Snapshot struct {
	RideID         string            `json:"ride_id"`
	Status         domain.RideStatus `json:"status"`
	Driver         *domain.Driver    `json:"driver,omitempty"`
	DriverLocation *domain.Location  `json:"driver_location,omitempty"`
	ETALabel       string            `json:"eta_label,omitempty"`
}

// Observer is invoked synchronously on every state transition with the new
// snapshot.
type Observer func(Snapshot)

// Simulator drives one ride through the lifecycle. Exactly one timer is
// outstanding at any moment; a generation counter invalidates timers on
// Cancel and Dispose so a stale firing can never transition a dead ride.
type Simulator struct {
	sched clock.Scheduler

	mu         sync.Mutex
	ride       *domain.Ride
	status     domain.RideStatus
	driver     *domain.Driver
	driverLoc  *domain.Location
	etaLabel   string
	timer      clock.Timer
	generation int
	started    bool
	disposed   bool
	observers  []Observer
	onComplete Observer
}

// New creates a Simulator scheduling on sched. In production sched is
// clock.Wall{}; tests pass a clock.Virtual.
func New(sched clock.Scheduler) *Simulator {
	return &Simulator{sched: sched}
}

// OnStatusChange registers an observer for every transition. Must be called
// before Start; the simulator does not replay past transitions.
func (s *Simulator) OnStatusChange(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// OnComplete registers the completion callback, invoked once when the ride
// reaches a terminal state (completed or cancelled).
func (s *Simulator) OnComplete(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = fn
}

// Start begins the lifecycle at searching and schedules the first dwell
// timer. The ride must carry a pickup, a destination and a vehicle type.
func (s *Simulator) Start(ride *domain.Ride) error {
	if ride == nil || ride.PickupLocation.IsZero() || ride.Destination.IsZero() || ride.VehicleType == "" {
		return ErrInvalidRide
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrDisposed
	}
	if s.started {
		return ErrAlreadyStarted
	}

	rideCopy := *ride
	s.ride = &rideCopy
	s.status = domain.RideStatusSearching
	s.etaLabel = etaMinutesLabel(ride.DurationMinutes)
	s.started = true
	s.schedule()
	return nil
}

// Cancel transitions the ride to cancelled. Legal only while searching;
// afterwards the driver is committed and Cancel returns ErrCancelNotAllowed
// with the ride unharmed.
func (s *Simulator) Cancel() error {
	s.mu.Lock()

	if s.disposed {
		s.mu.Unlock()
		return ErrDisposed
	}
	if !s.started || s.status != domain.RideStatusSearching {
		s.mu.Unlock()
		return ErrCancelNotAllowed
	}

	s.invalidateTimer()
	s.status = domain.RideStatusCancelled
	snap := s.snapshotLocked()
	observers, onComplete := s.observers, s.onComplete
	s.mu.Unlock()

	notify(observers, snap)
	if onComplete != nil {
		onComplete(snap)
	}
	return nil
}

// Dispose invalidates the outstanding timer. No transition fires after
// Dispose returns; the completion callback is not invoked.
func (s *Simulator) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.invalidateTimer()
}

// State returns a snapshot of the current observable state. It never
// mutates; calling it repeatedly between transitions yields identical
// snapshots.
func (s *Simulator) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// schedule arms the dwell timer for the current state. Caller holds s.mu.
func (s *Simulator) schedule() {
	tr, ok := transitions[s.status]
	if !ok {
		return // terminal state
	}

	gen := s.generation
	s.timer = s.sched.AfterFunc(tr.dwell, func() {
		s.advance(gen)
	})
}

// advance fires when a dwell timer elapses and applies the next transition.
// The generation check makes a firing scheduled before Cancel/Dispose a
// provable no-op even if it slipped past Timer.Stop.
func (s *Simulator) advance(gen int) {
	s.mu.Lock()

	if s.disposed || gen != s.generation {
		s.mu.Unlock()
		return
	}

	tr, ok := transitions[s.status]
	if !ok {
		s.mu.Unlock()
		return
	}

	s.status = tr.next
	s.applyEntryActionsLocked()
	s.schedule()

	snap := s.snapshotLocked()
	observers, onComplete := s.observers, s.onComplete
	terminal := s.status.Terminal()
	s.mu.Unlock()

	notify(observers, snap)
	if terminal && onComplete != nil {
		onComplete(snap)
	}
}

// applyEntryActionsLocked runs the entry action for the state just entered.
// Caller holds s.mu.
func (s *Simulator) applyEntryActionsLocked() {
	switch s.status {
	case domain.RideStatusDriverAssigned:
		s.driver = mockDriver()
		s.driverLoc = &domain.Location{
			Name: "Driver",
			Lat:  s.ride.PickupLocation.Lat + driverLocationOffset,
			Lng:  s.ride.PickupLocation.Lng + driverLocationOffset,
		}
	case domain.RideStatusDriverArriving:
		s.etaLabel = "2 min"
	case domain.RideStatusDriverArrived:
		s.etaLabel = "0 min"
	case domain.RideStatusInProgress:
		s.etaLabel = "15 min"
	case domain.RideStatusCompleted:
		s.etaLabel = "0 min"
	}
}

// invalidateTimer stops the outstanding timer and bumps the generation so an
// already-fired callback cannot transition. Caller holds s.mu.
func (s *Simulator) invalidateTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

// snapshotLocked builds a snapshot with copied driver and location values.
// Caller holds s.mu.
func (s *Simulator) snapshotLocked() Snapshot {
	snap := Snapshot{
		Status:   s.status,
		ETALabel: s.etaLabel,
	}
	if s.ride != nil {
		snap.RideID = s.ride.ID
	}
	if s.driver != nil {
		d := *s.driver
		snap.Driver = &d
	}
	if s.driverLoc != nil {
		l := *s.driverLoc
		snap.DriverLocation = &l
	}
	return snap
}

func notify(observers []Observer, snap Snapshot) {
	for _, fn := range observers {
		fn(snap)
	}
}

// mockDriver returns the demo driver assigned to every ride.
func mockDriver() *domain.Driver {
	return &domain.Driver{
		ID:     "1",
		Name:   "John Smith",
		Rating: 4.8,
		Vehicle: domain.DriverVehicle{
			Model:        "Toyota Camry",
			LicensePlate: "ABC-1234",
			Color:        "Black",
		},
	}
}

func etaMinutesLabel(minutes int) string {
	if minutes <= 0 {
		return "5 min"
	}
	return strconv.Itoa(minutes) + " min"
}
