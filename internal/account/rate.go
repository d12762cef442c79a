package account

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// InterestRate is the process-wide interest percentage shared by every
// account. It is global configuration: a Set is visible to all
// subsequent PayInterest calls on all accounts.
type InterestRate struct {
	mu  sync.RWMutex
	pct decimal.Decimal
}

// NewInterestRate builds the shared rate with an explicit starting
// percentage. Negative rates are rejected.
func NewInterestRate(pct decimal.Decimal) (*InterestRate, error) {
	if pct.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate cannot be negative", ErrValidation)
	}
	return &InterestRate{pct: pct}, nil
}

// Get returns the current percentage.
func (r *InterestRate) Get() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pct
}

// Set replaces the percentage for all accounts. Last write wins.
func (r *InterestRate) Set(pct decimal.Decimal) error {
	if pct.IsNegative() {
		return fmt.Errorf("%w: interest rate cannot be negative", ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pct = pct
	return nil
}
