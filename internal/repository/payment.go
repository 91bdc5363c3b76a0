package repository

import (
	"context"

	"quickride/internal/domain"
)

// PaymentMethodRepository defines the persistence operations for stored
// payment methods. Create assigns the ID.
type PaymentMethodRepository interface {
	// Create persists a new payment method and fills in its ID.
	Create(ctx context.Context, method *domain.PaymentMethod) error

	// GetByID retrieves a payment method by ID.
	GetByID(ctx context.Context, id int) (*domain.PaymentMethod, error)

	// GetAll retrieves all payment methods.
	GetAll(ctx context.Context) ([]*domain.PaymentMethod, error)

	// Update updates an existing payment method.
	Update(ctx context.Context, method *domain.PaymentMethod) error

	// Delete removes a payment method by ID.
	Delete(ctx context.Context, id int) error
}

// TransactionRepository defines the persistence operations for ride charges.
type TransactionRepository interface {
	// Create persists a new transaction and fills in its ID.
	Create(ctx context.Context, tx *domain.Transaction) error

	// GetByID retrieves a transaction by ID.
	GetByID(ctx context.Context, id int) (*domain.Transaction, error)

	// GetAll retrieves all transactions, newest first.
	GetAll(ctx context.Context) ([]*domain.Transaction, error)
}
