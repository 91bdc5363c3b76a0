package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickride/internal/domain"
	"quickride/internal/repository"
)

func TestRideStore_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewRideStore(0)

	ride := &domain.Ride{
		ID:        "ride-1",
		Status:    domain.RideStatusSearching,
		CreatedAt: time.Now(),
	}
	if err := store.Create(ctx, ride); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetByID(ctx, "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "ride-1" {
		t.Errorf("expected ride-1, got %s", got.ID)
	}

	got.Status = domain.RideStatusCompleted
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := store.GetByID(ctx, "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.RideStatusCompleted {
		t.Errorf("expected completed, got %s", updated.Status)
	}

	if err := store.Delete(ctx, "ride-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.GetByID(ctx, "ride-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRideStore_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewRideStore(0)

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.Update(ctx, &domain.Ride{ID: "missing"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRideStore_GetAll_MostRecentFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewRideStore(0)

	base := time.Now()
	for i, id := range []string{"old", "mid", "new"} {
		err := store.Create(ctx, &domain.Ride{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].ID != "new" || all[2].ID != "old" {
		ids := make([]string, 0, len(all))
		for _, r := range all {
			ids = append(ids, r.ID)
		}
		t.Errorf("expected [new mid old], got %v", ids)
	}
}

func TestRideStore_StoresCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewRideStore(0)

	ride := &domain.Ride{ID: "ride-1", Status: domain.RideStatusSearching}
	if err := store.Create(ctx, ride); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's ride must not affect the stored record.
	ride.Status = domain.RideStatusCancelled

	got, err := store.GetByID(ctx, "ride-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.RideStatusSearching {
		t.Errorf("stored ride shares memory with caller: status %s", got.Status)
	}
}

func TestRideStore_InstancesAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := NewRideStore(0)
	b := NewRideStore(0)

	if err := a.Create(ctx, &domain.Ride{ID: "ride-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.GetByID(ctx, "ride-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("stores share state: %v", err)
	}
}

func TestRideStore_LatencyHonorsContext(t *testing.T) {
	t.Parallel()

	store := NewRideStore(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.GetAll(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPaymentMethodStore_AssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewPaymentMethodStore(0)

	first := &domain.PaymentMethod{Type: domain.PaymentMethodTypeCard, Brand: "Visa", Last4: "4242"}
	second := &domain.PaymentMethod{Type: domain.PaymentMethodTypeCard, Brand: "Mastercard", Last4: "4444"}

	if err := store.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Create(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].ID != 1 || all[1].ID != 2 {
		t.Errorf("expected insertion order, got %+v", all)
	}
}

func TestPaymentMethodStore_DeleteUnknown(t *testing.T) {
	t.Parallel()

	store := NewPaymentMethodStore(0)
	if err := store.Delete(context.Background(), 42); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactionStore_NewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewTransactionStore(0)

	base := time.Now()
	for i, desc := range []string{"oldest", "middle", "newest"} {
		err := store.Create(ctx, &domain.Transaction{
			RideID:      "ride-1",
			Amount:      10,
			Description: desc,
			Date:        base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[0].Description != "newest" || all[2].Description != "oldest" {
		t.Errorf("expected newest first, got %+v", all)
	}
}
