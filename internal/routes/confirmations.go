package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kivu-bank/kivu_bank/internal/confirmation"
)

// RegisterConfirmationRoutes wires the confirmation-code endpoints.
func RegisterConfirmationRoutes(r fiber.Router, h *confirmation.Handler) {
	r.Post("/confirmations/parse", h.Parse)
}
