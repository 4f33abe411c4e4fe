package middleware

import (
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	db     database.DB
	config config.Config
	log    logger.Logger
}

func New(db database.DB, config config.Config) Middleware {
	return Middleware{
		db:     db,
		config: config,
		log:    logger.New("middleware"),
	}
}

// RequestLogger logs one line per request after the handler chain runs.
func (m Middleware) RequestLogger() fiber.Handler {
	log := m.log.Function("RequestLogger")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}
