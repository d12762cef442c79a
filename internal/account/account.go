// Package account models a single bank account: balance mutation
// guarded by validation, with every operation returning a confirmation
// code issued by the shared codec.
package account

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kivu-bank/kivu_bank/internal/confirmation"
	"github.com/kivu-bank/kivu_bank/internal/timezone"
)

// ErrValidation reports rejected constructor or operation arguments.
var ErrValidation = errors.New("validation")

// minAmount is the smallest accepted balance, deposit or withdrawal.
var minAmount = decimal.New(1, -2) // 0.01

// Account holds the balance and identity of a single ledger account.
// Identity fields are fixed at Open; the balance only moves through
// Deposit, Withdraw and PayInterest. Mutations are serialized so the
// account can be served over concurrent HTTP.
type Account struct {
	number    int64
	firstName string
	lastName  string
	tz        timezone.TimeZone

	codes *confirmation.Codec
	rate  *InterestRate

	mu      sync.Mutex
	balance decimal.Decimal
}

// Open validates and creates an account. The account number must be
// non-negative, names non-empty and the initial balance at least 0.01.
// A zero tz defaults to UTC.
func Open(number int64, firstName, lastName string, initial decimal.Decimal, tz timezone.TimeZone, codes *confirmation.Codec, rate *InterestRate) (*Account, error) {
	if number < 0 {
		return nil, fmt.Errorf("%w: account number cannot be negative", ErrValidation)
	}
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name cannot be empty", ErrValidation)
	}
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name cannot be empty", ErrValidation)
	}
	if initial.LessThan(minAmount) {
		return nil, fmt.Errorf("%w: initial balance must be at least %s", ErrValidation, minAmount)
	}
	if codes == nil {
		return nil, fmt.Errorf("%w: confirmation codec is required", ErrValidation)
	}
	if rate == nil {
		return nil, fmt.Errorf("%w: interest rate is required", ErrValidation)
	}
	if tz.IsZero() {
		tz = timezone.UTC()
	}
	return &Account{
		number:    number,
		firstName: firstName,
		lastName:  lastName,
		tz:        tz,
		codes:     codes,
		rate:      rate,
		balance:   initial,
	}, nil
}

// Number returns the immutable account number.
func (a *Account) Number() int64 { return a.number }

// FirstName returns the holder's first name.
func (a *Account) FirstName() string { return a.firstName }

// LastName returns the holder's last name.
func (a *Account) LastName() string { return a.lastName }

// FullName returns "first last".
func (a *Account) FullName() string { return a.firstName + " " + a.lastName }

// TimeZone returns the account's display zone.
func (a *Account) TimeZone() timezone.TimeZone { return a.tz }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit credits the amount and returns a DEPOSIT confirmation code.
// Amounts under 0.01 are a validation error and leave the balance
// untouched.
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	if err := validateAmount(amount, "deposit"); err != nil {
		return "", err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	code, err := a.codes.Generate(a.number, confirmation.KindDeposit)
	if err != nil {
		return "", err
	}
	a.balance = a.balance.Add(amount)
	return code, nil
}

// Withdraw debits the amount when covered by the balance. An amount
// over the balance is not an error: the balance stays put and a
// REJECTED confirmation code is returned.
func (a *Account) Withdraw(amount decimal.Decimal) (string, error) {
	if err := validateAmount(amount, "withdraw"); err != nil {
		return "", err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return a.codes.Generate(a.number, confirmation.KindRejected)
	}
	code, err := a.codes.Generate(a.number, confirmation.KindWithdraw)
	if err != nil {
		return "", err
	}
	a.balance = a.balance.Sub(amount)
	return code, nil
}

// PayInterest credits balance * rate / 100, reading the shared rate as
// it stands at call time, and returns an INTEREST confirmation code.
func (a *Account) PayInterest() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	interest := a.balance.Mul(a.rate.Get()).Div(decimal.NewFromInt(100))
	code, err := a.codes.Generate(a.number, confirmation.KindInterest)
	if err != nil {
		return "", err
	}
	a.balance = a.balance.Add(interest)
	return code, nil
}

func validateAmount(amount decimal.Decimal, op string) error {
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: %s amount must be at least %s", ErrValidation, op, minAmount)
	}
	return nil
}
