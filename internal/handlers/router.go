package handlers

import (
	"errors"

	"claimdesk/internal/app"
	"claimdesk/internal/handlers/middleware"
	"claimdesk/internal/logger"
	"claimdesk/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Router(router fiber.Router, app *app.App) (err error) {
	setupWebSocketRoute(router, app)

	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewPatientHandler(*app, api).Register()
	NewClaimHandler(*app, api).Register()
	NewReviewHandler(*app, api).Register()
	NewSupplementHandler(*app, api).Register()
	NewPaymentHandler(*app, api).Register()
	NewIntegrationHandler(*app, api).Register()
	NewDashboardHandler(*app, api).Register()

	return nil
}

func setupWebSocketRoute(router fiber.Router, app *app.App) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(func(c *websocket.Conn) {
		app.Websocket.HandleWebSocket(c)
	}))
}

// errorStatus maps controller errors onto HTTP statuses. Missing rows are
// 404, lifecycle guard rejections are 409, everything else is 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func validationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).
		JSON(fiber.Map{"message": "validation failed", "error": err.Error()})
}
