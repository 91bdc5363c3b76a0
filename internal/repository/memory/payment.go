package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quickride/internal/domain"
	"quickride/internal/repository"
)

// Ensure the stores implement their repository interfaces.
var (
	_ repository.PaymentMethodRepository = (*PaymentMethodStore)(nil)
	_ repository.TransactionRepository   = (*TransactionStore)(nil)
)

// PaymentMethodStore is an in-memory payment method repository.
type PaymentMethodStore struct {
	mu      sync.RWMutex
	methods map[int]*domain.PaymentMethod
	nextID  int
	latency time.Duration
}

// NewPaymentMethodStore creates an empty payment method store.
func NewPaymentMethodStore(latency time.Duration) *PaymentMethodStore {
	return &PaymentMethodStore{
		methods: make(map[int]*domain.PaymentMethod),
		nextID:  1,
		latency: latency,
	}
}

// Create persists a new payment method and fills in its ID.
func (s *PaymentMethodStore) Create(ctx context.Context, method *domain.PaymentMethod) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	method.ID = s.nextID
	s.nextID++
	stored := *method
	s.methods[method.ID] = &stored
	return nil
}

// GetByID retrieves a payment method by ID.
func (s *PaymentMethodStore) GetByID(ctx context.Context, id int) (*domain.PaymentMethod, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	method, ok := s.methods[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *method
	return &out, nil
}

// GetAll retrieves all payment methods in insertion order.
func (s *PaymentMethodStore) GetAll(ctx context.Context) ([]*domain.PaymentMethod, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.PaymentMethod, 0, len(s.methods))
	for _, m := range s.methods {
		method := *m
		out = append(out, &method)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update updates an existing payment method.
func (s *PaymentMethodStore) Update(ctx context.Context, method *domain.PaymentMethod) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.methods[method.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *method
	s.methods[method.ID] = &stored
	return nil
}

// Delete removes a payment method by ID.
func (s *PaymentMethodStore) Delete(ctx context.Context, id int) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.methods[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.methods, id)
	return nil
}

// TransactionStore is an in-memory transaction repository.
type TransactionStore struct {
	mu      sync.RWMutex
	txs     map[int]*domain.Transaction
	nextID  int
	latency time.Duration
}

// NewTransactionStore creates an empty transaction store.
func NewTransactionStore(latency time.Duration) *TransactionStore {
	return &TransactionStore{
		txs:     make(map[int]*domain.Transaction),
		nextID:  1,
		latency: latency,
	}
}

// Create persists a new transaction and fills in its ID.
func (s *TransactionStore) Create(ctx context.Context, tx *domain.Transaction) error {
	if err := wait(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	stored := *tx
	s.txs[tx.ID] = &stored
	return nil
}

// GetByID retrieves a transaction by ID.
func (s *TransactionStore) GetByID(ctx context.Context, id int) (*domain.Transaction, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.txs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *tx
	return &out, nil
}

// GetAll retrieves all transactions, newest first.
func (s *TransactionStore) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		t := *tx
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
