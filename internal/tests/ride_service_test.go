package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"quickride/internal/booking"
	"quickride/internal/clock"
	"quickride/internal/domain"
	"quickride/internal/service"
	"quickride/internal/simulator"
)

// fixedNow pins validation so "today" is deterministic in tests.
var fixedNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

// totalDwell is the time from booking to completion when nothing is
// cancelled.
const totalDwell = simulator.SearchingDwell +
	simulator.DriverAssignedDwell +
	simulator.DriverArrivingDwell +
	simulator.DriverArrivedDwell +
	simulator.InProgressDwell

func testLocations() (*domain.Location, *domain.Location) {
	pickup := &domain.Location{
		Name:    "Times Square",
		Address: "Manhattan, NY 10036",
		Lat:     40.758,
		Lng:     -73.9855,
	}
	dest := &domain.Location{
		Name:    "Central Park",
		Address: "New York, NY",
		Lat:     40.7829,
		Lng:     -73.9654,
	}
	return pickup, dest
}

func validBookRequest() service.BookRequest {
	pickup, dest := testLocations()
	return service.BookRequest{
		Pickup:         pickup,
		Destination:    dest,
		Date:           "2026-08-28",
		VehicleID:      1,
		PassengerCount: 2,
	}
}

// newRideService wires a RideService on a virtual clock with mock
// repositories.
func newRideService(t *testing.T) (*service.RideService, *clock.Virtual, *MockRideRepository, *MockTransactionRepository, *MockBroadcaster) {
	t.Helper()

	vc := clock.NewVirtual()
	rideRepo := NewMockRideRepository()
	methodRepo := NewMockPaymentMethodRepository()
	txRepo := NewMockTransactionRepository()
	broadcaster := NewMockBroadcaster()

	payments := service.NewPaymentService(methodRepo, txRepo)
	svc := service.NewRideService(
		booking.NewCoordinatorAt(func() time.Time { return fixedNow }),
		vc,
		rideRepo,
		payments,
		service.NewNotificationService(),
		broadcaster,
	)
	return svc, vc, rideRepo, txRepo, broadcaster
}

func TestBookRideStartsSearching(t *testing.T) {
	t.Parallel()
	svc, _, rideRepo, _, _ := newRideService(t)

	ride, err := svc.Book(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if ride.ID == "" {
		t.Error("expected a generated ride ID")
	}
	if ride.Status != domain.RideStatusSearching {
		t.Errorf("Status = %s, want %s", ride.Status, domain.RideStatusSearching)
	}
	if ride.Fare <= 0 {
		t.Errorf("Fare = %f, want > 0", ride.Fare)
	}
	if got := atomic.LoadInt32(&rideRepo.CreateCallCount); got != 1 {
		t.Errorf("CreateCallCount = %d, want 1", got)
	}

	active, snap, err := svc.ActiveState()
	if err != nil {
		t.Fatalf("ActiveState() error = %v", err)
	}
	if active.ID != ride.ID {
		t.Errorf("active ride ID = %s, want %s", active.ID, ride.ID)
	}
	if snap.Status != domain.RideStatusSearching {
		t.Errorf("snapshot status = %s, want searching", snap.Status)
	}
}

func TestBookRejectsSecondActiveRide(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _ := newRideService(t)

	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("first Book() error = %v", err)
	}
	_, err := svc.Book(context.Background(), validBookRequest())
	if !errors.Is(err, service.ErrActiveRideExists) {
		t.Fatalf("second Book() error = %v, want ErrActiveRideExists", err)
	}
}

func TestBookRejectsUnknownVehicle(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _ := newRideService(t)

	req := validBookRequest()
	req.VehicleID = 999
	_, err := svc.Book(context.Background(), req)
	if !errors.Is(err, service.ErrVehicleNotFound) {
		t.Fatalf("Book() error = %v, want ErrVehicleNotFound", err)
	}
}

func TestBookRejectsInvalidBooking(t *testing.T) {
	t.Parallel()
	svc, _, rideRepo, _, _ := newRideService(t)

	req := validBookRequest()
	req.Pickup = nil
	_, err := svc.Book(context.Background(), req)
	if !errors.Is(err, booking.ErrMissingPickup) {
		t.Fatalf("Book() error = %v, want ErrMissingPickup", err)
	}
	if got := atomic.LoadInt32(&rideRepo.CreateCallCount); got != 0 {
		t.Errorf("CreateCallCount = %d, want 0 after rejected booking", got)
	}
}

func TestCompletedRidePersistedAndCharged(t *testing.T) {
	t.Parallel()
	svc, vc, rideRepo, txRepo, broadcaster := newRideService(t)

	ride, err := svc.Book(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	vc.Advance(totalDwell)

	// The session is freed for the next booking.
	if _, _, err := svc.ActiveState(); !errors.Is(err, service.ErrNoActiveRide) {
		t.Fatalf("ActiveState() error = %v, want ErrNoActiveRide", err)
	}

	stored := rideRepo.GetRide(ride.ID)
	if stored == nil {
		t.Fatal("completed ride not found in history")
	}
	if stored.Status != domain.RideStatusCompleted {
		t.Errorf("stored status = %s, want completed", stored.Status)
	}
	if stored.CompletedAt.IsZero() {
		t.Error("expected CompletedAt to be set")
	}

	txs := txRepo.GetTransactions()
	if len(txs) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txs))
	}
	if txs[0].RideID != ride.ID {
		t.Errorf("transaction RideID = %s, want %s", txs[0].RideID, ride.ID)
	}
	if txs[0].Amount != ride.Fare {
		t.Errorf("transaction Amount = %f, want %f", txs[0].Amount, ride.Fare)
	}
	if txs[0].Description != "Ride to Central Park" {
		t.Errorf("transaction Description = %q", txs[0].Description)
	}

	// One snapshot per transition went out to the stream.
	if got := len(broadcaster.Messages()); got != 5 {
		t.Errorf("broadcast messages = %d, want 5", got)
	}
}

func TestNextBookingAllowedAfterCompletion(t *testing.T) {
	t.Parallel()
	svc, vc, _, _, _ := newRideService(t)

	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("first Book() error = %v", err)
	}
	vc.Advance(totalDwell)

	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("Book() after completion error = %v", err)
	}
}

func TestCancelWhileSearching(t *testing.T) {
	t.Parallel()
	svc, vc, rideRepo, txRepo, _ := newRideService(t)

	ride, err := svc.Book(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	if err := svc.CancelActive(); err != nil {
		t.Fatalf("CancelActive() error = %v", err)
	}
	if _, _, err := svc.ActiveState(); !errors.Is(err, service.ErrNoActiveRide) {
		t.Fatalf("ActiveState() error = %v, want ErrNoActiveRide", err)
	}

	stored := rideRepo.GetRide(ride.ID)
	if stored == nil {
		t.Fatal("cancelled ride not found in history")
	}
	if stored.Status != domain.RideStatusCancelled {
		t.Errorf("stored status = %s, want cancelled", stored.Status)
	}

	// No charge for a cancelled ride, and the dead timer must not revive
	// the session.
	vc.Advance(totalDwell)
	if got := len(txRepo.GetTransactions()); got != 0 {
		t.Errorf("transactions = %d, want 0", got)
	}
	if _, _, err := svc.ActiveState(); !errors.Is(err, service.ErrNoActiveRide) {
		t.Fatalf("ActiveState() after advance error = %v, want ErrNoActiveRide", err)
	}
}

func TestCancelAfterDriverAssignedRejected(t *testing.T) {
	t.Parallel()
	svc, vc, rideRepo, _, _ := newRideService(t)

	ride, err := svc.Book(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	vc.Advance(simulator.SearchingDwell)

	if err := svc.CancelActive(); !errors.Is(err, simulator.ErrCancelNotAllowed) {
		t.Fatalf("CancelActive() error = %v, want ErrCancelNotAllowed", err)
	}

	// The rejected cancel does not disturb the lifecycle.
	vc.Advance(totalDwell)
	stored := rideRepo.GetRide(ride.ID)
	if stored == nil || stored.Status != domain.RideStatusCompleted {
		t.Fatalf("stored ride = %+v, want completed", stored)
	}
}

func TestCancelWithoutActiveRide(t *testing.T) {
	t.Parallel()
	svc, _, _, _, _ := newRideService(t)

	if err := svc.CancelActive(); !errors.Is(err, service.ErrNoActiveRide) {
		t.Fatalf("CancelActive() error = %v, want ErrNoActiveRide", err)
	}
}

func TestShutdownStopsLifecycle(t *testing.T) {
	t.Parallel()
	svc, vc, _, txRepo, broadcaster := newRideService(t)

	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	svc.Shutdown()

	before := len(broadcaster.Messages())
	vc.Advance(totalDwell)
	if got := len(broadcaster.Messages()); got != before {
		t.Errorf("broadcast messages after shutdown = %d, want %d", got, before)
	}
	if got := len(txRepo.GetTransactions()); got != 0 {
		t.Errorf("transactions = %d, want 0", got)
	}
}

func TestDriverAssignedSnapshotOnStream(t *testing.T) {
	t.Parallel()
	svc, vc, _, _, broadcaster := newRideService(t)

	ride, err := svc.Book(context.Background(), validBookRequest())
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	vc.Advance(simulator.SearchingDwell)

	msgs := broadcaster.Messages()
	if len(msgs) != 1 {
		t.Fatalf("broadcast messages = %d, want 1", len(msgs))
	}
	snap, ok := msgs[0].(simulator.Snapshot)
	if !ok {
		t.Fatalf("broadcast payload type = %T, want simulator.Snapshot", msgs[0])
	}
	if snap.RideID != ride.ID {
		t.Errorf("snapshot RideID = %s, want %s", snap.RideID, ride.ID)
	}
	if snap.Status != domain.RideStatusDriverAssigned {
		t.Errorf("snapshot status = %s, want driver_assigned", snap.Status)
	}
	if snap.Driver == nil || snap.Driver.Name != "John Smith" {
		t.Errorf("snapshot driver = %+v, want John Smith", snap.Driver)
	}
}

func TestUpdateFailureDoesNotBlockNextBooking(t *testing.T) {
	t.Parallel()
	svc, vc, rideRepo, _, _ := newRideService(t)

	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	rideRepo.UpdateError = errors.New("store down")
	vc.Advance(totalDwell)

	// Persistence failed but the session is still freed.
	if _, err := svc.Book(context.Background(), validBookRequest()); err != nil {
		t.Fatalf("Book() after failed persist error = %v", err)
	}
}
