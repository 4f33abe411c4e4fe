package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"claimdesk/internal/app"
	"claimdesk/internal/handlers"
	"claimdesk/internal/logger"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer application.Close()

	server := fiber.New(fiber.Config{
		AppName:     "claimdesk",
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	server.Use(recover.New())
	server.Use(cors.New())
	server.Use(application.Middleware.RequestLogger())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info("shutting down server")
		if err := server.Shutdown(); err != nil {
			log.Er("failed to shut down server", err)
		}
	}()

	address := fmt.Sprintf(":%d", application.Config.Port)
	log.Info("starting server", "address", address)
	if err := server.Listen(address); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}
