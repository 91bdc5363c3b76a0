package repository

import (
	"context"

	"quickride/internal/domain"
)

// RideRepository defines the persistence operations for rides.
// Implementations are injectable per process and per test; nothing is shared
// at package level.
type RideRepository interface {
	// Create persists a new ride.
	Create(ctx context.Context, ride *domain.Ride) error

	// GetByID retrieves a ride by ID.
	GetByID(ctx context.Context, id string) (*domain.Ride, error)

	// GetAll retrieves all rides, most recent first.
	GetAll(ctx context.Context) ([]*domain.Ride, error)

	// Update updates an existing ride.
	Update(ctx context.Context, ride *domain.Ride) error

	// Delete removes a ride by ID.
	Delete(ctx context.Context, id string) error
}
