package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kivu-bank/kivu_bank/internal/account"
)

// RegisterAccountRoutes wires account-related endpoints.
func RegisterAccountRoutes(r fiber.Router, h *account.Handler) {
	r.Post("/accounts", h.Open)
	r.Get("/accounts/:number", h.Get)
	r.Get("/accounts/:number/balance", h.Balance)
	r.Post("/accounts/:number/deposits", h.Deposit)
	r.Post("/accounts/:number/withdrawals", h.Withdraw)
	r.Post("/accounts/:number/interest", h.PayInterest)
	r.Get("/interest-rate", h.InterestRate)
	r.Put("/interest-rate", h.SetInterestRate)
}
