package httpapi

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-search-history/internal/scheduler"
	"github.com/i474232898/weather-search-history/internal/search"
)

var validate = validator.New()

const defaultStoreTimeout = 5 * time.Second

// HealthReporter exposes the latest store probe.
type HealthReporter interface {
	Status() scheduler.StoreStatus
}

// Options tunes RegisterRoutes. The zero value is usable.
type Options struct {
	// StoreTimeout bounds every store call made by a request.
	StoreTimeout time.Duration
	// Health reports the store probe on /health; nil reports "unknown".
	Health HealthReporter
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *search.Service, opts Options) {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = defaultStoreTimeout
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		store := scheduler.StoreStatus{State: scheduler.StateUnknown}
		if opts.Health != nil {
			store = opts.Health.Status()
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": ServiceName,
			"store":   store,
		})
	})

	api := app.Group("/api")

	api.Post("/search", func(c *fiber.Ctx) error {
		var draft search.Draft
		if err := c.BodyParser(&draft); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(draft); err != nil {
			return badRequest(c, err)
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), opts.StoreTimeout)
		defer cancel()

		rec, err := service.Save(ctx, draft)
		if err != nil {
			return badRequest(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	})

	api.Get("/searches", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), opts.StoreTimeout)
		defer cancel()

		recs, err := service.List(ctx)
		if err != nil {
			return badRequest(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(recs)
	})
}

// badRequest answers 400 with {"message": ...}; every failure of the search
// endpoints, including store outages, maps to it.
func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": err.Error(),
	})
}
