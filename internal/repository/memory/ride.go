package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quickride/internal/domain"
	"quickride/internal/repository"
)

// Ensure RideStore implements RideRepository.
var _ repository.RideRepository = (*RideStore)(nil)

// RideStore is an in-memory ride repository.
type RideStore struct {
	mu      sync.RWMutex
	rides   map[string]*domain.Ride
	latency time.Duration
}

// NewRideStore creates an empty ride store with the given artificial
// latency. Pass 0 for immediate responses in tests.
func NewRideStore(latency time.Duration) *RideStore {
	return &RideStore{
		rides:   make(map[string]*domain.Ride),
		latency: latency,
	}
}

// Create persists a new ride.
func (s *RideStore) Create(ctx context.Context, ride *domain.Ride) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *ride
	s.rides[ride.ID] = &stored
	return nil
}

// GetByID retrieves a ride by ID.
func (s *RideStore) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	ride, ok := s.rides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *ride
	return &out, nil
}

// GetAll retrieves all rides, most recent first.
func (s *RideStore) GetAll(ctx context.Context) ([]*domain.Ride, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Ride, 0, len(s.rides))
	for _, r := range s.rides {
		ride := *r
		out = append(out, &ride)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update updates an existing ride.
func (s *RideStore) Update(ctx context.Context, ride *domain.Ride) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rides[ride.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *ride
	s.rides[ride.ID] = &stored
	return nil
}

// Delete removes a ride by ID.
func (s *RideStore) Delete(ctx context.Context, id string) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rides[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rides, id)
	return nil
}
