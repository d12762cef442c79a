package confirmation

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kivu-bank/kivu_bank/internal/timezone"
)

// Handler exposes the confirmation-code parse endpoint.
type Handler struct{}

// NewHandler builds a confirmation HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

type timeZoneRequest struct {
	Name          string `json:"name"`
	OffsetHours   int    `json:"offset_hours"`
	OffsetMinutes int    `json:"offset_minutes"`
}

type parseRequest struct {
	Code     string           `json:"code"`
	TimeZone *timeZoneRequest `json:"timezone"`
}

type parseResponse struct {
	AccountNumber   string `json:"account_number"`
	TransactionCode string `json:"transaction_code"`
	TransactionID   string `json:"transaction_id"`
	TimeUTC         string `json:"time_utc"`
	Time            string `json:"time"`
}

// Parse decodes a confirmation code, optionally shifting the timestamp
// into a caller-supplied display zone.
func (h *Handler) Parse(c *fiber.Ctx) error {
	var req parseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	var tz timezone.TimeZone
	if req.TimeZone != nil {
		var err error
		tz, err = timezone.New(req.TimeZone.Name, req.TimeZone.OffsetHours, req.TimeZone.OffsetMinutes)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
	}

	parsed, err := Parse(req.Code, tz)
	if err != nil {
		if errors.Is(err, ErrFormat) {
			return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusOK).JSON(parseResponse{
		AccountNumber:   parsed.AccountNumber,
		TransactionCode: parsed.TransactionCode,
		TransactionID:   parsed.TransactionID,
		TimeUTC:         parsed.TimeUTC,
		Time:            parsed.Time,
	})
}
