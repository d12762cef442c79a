package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/kivu-bank/kivu_bank/internal/account"
	"github.com/kivu-bank/kivu_bank/internal/config"
	"github.com/kivu-bank/kivu_bank/internal/confirmation"
	"github.com/kivu-bank/kivu_bank/internal/middleware"
	"github.com/kivu-bank/kivu_bank/internal/notification"
	"github.com/kivu-bank/kivu_bank/internal/sequence"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes, building the
// shared sequence generator, codec and interest rate from config.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	codec := confirmation.NewCodec(sequence.New(d.Cfg.SequenceStart))
	rate, err := account.NewInterestRate(d.Cfg.InterestRate)
	if err != nil {
		return err
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	accountSvc := account.NewService(account.NewMemoryRepository(), codec, rate, notifier)

	accountHandler := account.NewHandler(accountSvc)
	confirmationHandler := confirmation.NewHandler()

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAccountRoutes(api, accountHandler)
	RegisterConfirmationRoutes(api, confirmationHandler)

	return nil
}
