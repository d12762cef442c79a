package account

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotFound indicates no account is open under the number.
	ErrNotFound = errors.New("account not found")

	// ErrExists indicates the account number is already taken.
	ErrExists = errors.New("account already exists")
)

// Repository holds open accounts keyed by account number. Accounts live
// in memory only; there is no durable store.
type Repository interface {
	Create(ctx context.Context, acct *Account) error
	Get(ctx context.Context, number int64) (*Account, error)
}

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[int64]*Account
}

// NewMemoryRepository constructs the in-memory account repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[int64]*Account)}
}

func (r *memoryRepository) Create(_ context.Context, acct *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[acct.Number()]; exists {
		return ErrExists
	}
	r.storage[acct.Number()] = acct
	return nil
}

func (r *memoryRepository) Get(_ context.Context, number int64) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acct, ok := r.storage[number]
	if !ok {
		return nil, ErrNotFound
	}
	return acct, nil
}
