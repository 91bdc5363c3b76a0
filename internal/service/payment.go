package service

import (
	"context"
	"fmt"
	"time"

	"quickride/internal/domain"
	"quickride/internal/repository"
)

// PaymentService manages stored payment methods and the transaction history.
// No real charges happen; completed rides simply produce a transaction
// record.
type PaymentService struct {
	methods repository.PaymentMethodRepository
	txs     repository.TransactionRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(methods repository.PaymentMethodRepository, txs repository.TransactionRepository) *PaymentService {
	return &PaymentService{methods: methods, txs: txs}
}

// ListMethods returns all stored payment methods.
func (s *PaymentService) ListMethods(ctx context.Context) ([]*domain.PaymentMethod, error) {
	return s.methods.GetAll(ctx)
}

// AddMethod stores a new payment method. The first method ever added
// becomes the default.
func (s *PaymentService) AddMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if method == nil || method.Type == "" || method.Last4 == "" {
		return nil, ErrInvalidPaymentMethod
	}

	existing, err := s.methods.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	method.IsDefault = len(existing) == 0

	if err := s.methods.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

// RemoveMethod deletes a stored payment method.
func (s *PaymentService) RemoveMethod(ctx context.Context, id int) error {
	return s.methods.Delete(ctx, id)
}

// SetDefaultMethod marks one method as the default and clears the flag on
// all others.
func (s *PaymentService) SetDefaultMethod(ctx context.Context, id int) (*domain.PaymentMethod, error) {
	target, err := s.methods.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.methods.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range all {
		if m.IsDefault && m.ID != id {
			m.IsDefault = false
			if err := s.methods.Update(ctx, m); err != nil {
				return nil, err
			}
		}
	}

	target.IsDefault = true
	if err := s.methods.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// ListTransactions returns the transaction history, newest first.
func (s *PaymentService) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.txs.GetAll(ctx)
}

// RecordRideCharge writes the transaction for a completed ride.
func (s *PaymentService) RecordRideCharge(ctx context.Context, ride *domain.Ride) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		RideID:      ride.ID,
		Amount:      ride.Fare,
		Description: fmt.Sprintf("Ride to %s", ride.Destination.Name),
		Date:        time.Now(),
	}
	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}
