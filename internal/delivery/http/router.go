package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/kopi/config"
	_ "github.com/savioruz/kopi/docs" // Swagger docs
	orderHandler "github.com/savioruz/kopi/internal/domains/orders/handler"
	paymentHandler "github.com/savioruz/kopi/internal/domains/payments/handler"
	"github.com/savioruz/kopi/pkg/metrics"

	"github.com/savioruz/kopi/internal/delivery/http/middleware"
	"github.com/savioruz/kopi/pkg/logger"
)

type Handlers struct {
	Order   *orderHandler.Handler
	Payment *paymentHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title kopi payments API
// @BasePath /v1
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, metrics.Handler())
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	apiV1Group := app.Group("/v1")
	{
		handlers.Order.RegisterRoutes(apiV1Group)
		handlers.Payment.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
