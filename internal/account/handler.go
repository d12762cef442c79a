package account

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/kivu-bank/kivu_bank/internal/timezone"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type timeZoneRequest struct {
	Name          string `json:"name"`
	OffsetHours   int    `json:"offset_hours"`
	OffsetMinutes int    `json:"offset_minutes"`
}

type openRequest struct {
	AccountNumber  int64            `json:"account_number"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	InitialBalance string           `json:"initial_balance"`
	TimeZone       *timeZoneRequest `json:"timezone"`
}

type accountResponse struct {
	AccountNumber int64  `json:"account_number"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	FullName      string `json:"full_name"`
	Balance       string `json:"balance"`
	TimeZone      string `json:"timezone"`
}

type transactionResponse struct {
	ConfirmationCode string    `json:"confirmation_code"`
	Balance          string    `json:"balance"`
	Rejected         bool      `json:"rejected"`
	Timestamp        time.Time `json:"timestamp"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}

type rateRequest struct {
	InterestRate string `json:"interest_rate"`
}

// Open creates an account.
func (h *Handler) Open(c *fiber.Ctx) error {
	var req openRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	balance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "initial_balance must be a decimal number")
	}

	var tz timezone.TimeZone
	if req.TimeZone != nil {
		tz, err = timezone.New(req.TimeZone.Name, req.TimeZone.OffsetHours, req.TimeZone.OffsetMinutes)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
	}

	acct, err := h.service.Open(c.UserContext(), OpenInput{
		Number:         req.AccountNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		InitialBalance: balance,
		TimeZone:       tz,
	})
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(toAccountResponse(acct))
}

// Get returns account details.
func (h *Handler) Get(c *fiber.Ctx) error {
	acct, err := h.account(c)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(toAccountResponse(acct))
}

// Balance returns the current balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	acct, err := h.account(c)
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"account_number": acct.Number(),
		"balance":        acct.Balance().String(),
		"timestamp":      time.Now().UTC(),
	})
}

// Deposit credits the posted amount.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	return h.transact(c, h.service.Deposit)
}

// Withdraw debits the posted amount. A declined withdrawal still
// answers 200 with rejected=true and an X- confirmation code.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	return h.transact(c, h.service.Withdraw)
}

// PayInterest accrues interest at the shared rate.
func (h *Handler) PayInterest(c *fiber.Ctx) error {
	number, err := accountNumber(c)
	if err != nil {
		return err
	}
	res, err := h.service.PayInterest(c.UserContext(), number)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toTransactionResponse(res))
}

// InterestRate returns the shared rate.
func (h *Handler) InterestRate(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"interest_rate": h.service.InterestRate().String(),
	})
}

// SetInterestRate replaces the shared rate for all accounts.
func (h *Handler) SetInterestRate(c *fiber.Ctx) error {
	var req rateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	pct, err := decimal.NewFromString(req.InterestRate)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "interest_rate must be a decimal number")
	}
	if err := h.service.SetInterestRate(pct); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"interest_rate": h.service.InterestRate().String(),
	})
}

func (h *Handler) transact(c *fiber.Ctx, op func(ctx context.Context, number int64, amount decimal.Decimal) (TransactionResult, error)) error {
	number, err := accountNumber(c)
	if err != nil {
		return err
	}
	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "amount must be a decimal number")
	}
	res, err := op(c.UserContext(), number, amount)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(toTransactionResponse(res))
}

func (h *Handler) account(c *fiber.Ctx) (*Account, error) {
	number, err := accountNumber(c)
	if err != nil {
		return nil, err
	}
	acct, err := h.service.Get(c.UserContext(), number)
	if err != nil {
		return nil, mapError(err)
	}
	return acct, nil
}

func accountNumber(c *fiber.Ctx) (int64, error) {
	number, err := strconv.ParseInt(c.Params("number"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "account number must be an integer")
	}
	return number, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrExists):
		return fiber.NewError(http.StatusConflict, err.Error())
	default:
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
}

func toAccountResponse(acct *Account) accountResponse {
	return accountResponse{
		AccountNumber: acct.Number(),
		FirstName:     acct.FirstName(),
		LastName:      acct.LastName(),
		FullName:      acct.FullName(),
		Balance:       acct.Balance().String(),
		TimeZone:      acct.TimeZone().String(),
	}
}

func toTransactionResponse(res TransactionResult) transactionResponse {
	return transactionResponse{
		ConfirmationCode: res.Confirmation,
		Balance:          res.Balance.String(),
		Rejected:         res.Rejected,
		Timestamp:        res.CompletedAt,
	}
}
