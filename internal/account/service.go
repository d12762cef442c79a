package account

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kivu-bank/kivu_bank/internal/confirmation"
	"github.com/kivu-bank/kivu_bank/internal/notification"
	"github.com/kivu-bank/kivu_bank/internal/timezone"
)

// Service exposes account operations to the transport layer. All
// accounts share one codec (and therefore one sequence generator) and
// one interest rate.
type Service struct {
	repo     Repository
	codec    *confirmation.Codec
	rate     *InterestRate
	notifier notification.Notifier
}

// NewService builds an account service instance.
func NewService(repo Repository, codec *confirmation.Codec, rate *InterestRate, notifier notification.Notifier) *Service {
	return &Service{repo: repo, codec: codec, rate: rate, notifier: notifier}
}

// OpenInput captures the data required to open an account.
type OpenInput struct {
	Number         int64
	FirstName      string
	LastName       string
	InitialBalance decimal.Decimal
	TimeZone       timezone.TimeZone
}

// Open validates, creates and registers an account.
func (s *Service) Open(ctx context.Context, input OpenInput) (*Account, error) {
	acct, err := Open(input.Number, input.FirstName, input.LastName, input.InitialBalance, input.TimeZone, s.codec, s.rate)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// Get retrieves an open account.
func (s *Service) Get(ctx context.Context, number int64) (*Account, error) {
	return s.repo.Get(ctx, number)
}

// TransactionResult describes the outcome of a balance operation.
type TransactionResult struct {
	Confirmation string
	Balance      decimal.Decimal
	Rejected     bool
	CompletedAt  time.Time
}

// Deposit credits the amount to the account.
func (s *Service) Deposit(ctx context.Context, number int64, amount decimal.Decimal) (TransactionResult, error) {
	acct, err := s.repo.Get(ctx, number)
	if err != nil {
		return TransactionResult{}, err
	}
	code, err := acct.Deposit(amount)
	if err != nil {
		return TransactionResult{}, err
	}
	res := s.result(acct, code)
	s.notify(ctx, acct, res, fmt.Sprintf("deposit of %s confirmed (%s)", amount, code))
	return res, nil
}

// Withdraw debits the amount from the account. A withdrawal over the
// balance comes back with Rejected set and a nil error.
func (s *Service) Withdraw(ctx context.Context, number int64, amount decimal.Decimal) (TransactionResult, error) {
	acct, err := s.repo.Get(ctx, number)
	if err != nil {
		return TransactionResult{}, err
	}
	code, err := acct.Withdraw(amount)
	if err != nil {
		return TransactionResult{}, err
	}
	res := s.result(acct, code)
	if res.Rejected {
		s.notify(ctx, acct, res, fmt.Sprintf("withdrawal of %s declined (%s)", amount, code))
	} else {
		s.notify(ctx, acct, res, fmt.Sprintf("withdrawal of %s confirmed (%s)", amount, code))
	}
	return res, nil
}

// PayInterest accrues interest on the account at the shared rate.
func (s *Service) PayInterest(ctx context.Context, number int64) (TransactionResult, error) {
	acct, err := s.repo.Get(ctx, number)
	if err != nil {
		return TransactionResult{}, err
	}
	code, err := acct.PayInterest()
	if err != nil {
		return TransactionResult{}, err
	}
	res := s.result(acct, code)
	s.notify(ctx, acct, res, fmt.Sprintf("interest paid at %s%% (%s)", s.rate.Get(), code))
	return res, nil
}

// InterestRate returns the shared rate percentage.
func (s *Service) InterestRate() decimal.Decimal {
	return s.rate.Get()
}

// SetInterestRate replaces the shared rate for all accounts.
func (s *Service) SetInterestRate(pct decimal.Decimal) error {
	return s.rate.Set(pct)
}

func (s *Service) result(acct *Account, code string) TransactionResult {
	return TransactionResult{
		Confirmation: code,
		Balance:      acct.Balance(),
		Rejected:     confirmation.IsRejected(code),
		CompletedAt:  time.Now().UTC(),
	}
}

func (s *Service) notify(ctx context.Context, acct *Account, res TransactionResult, body string) {
	if s.notifier == nil {
		return
	}
	kind := notification.KindPosted
	if res.Rejected {
		kind = notification.KindRejected
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:          kind,
		AccountNumber: acct.Number(),
		Holder:        acct.FullName(),
		Body:          body,
	})
}
