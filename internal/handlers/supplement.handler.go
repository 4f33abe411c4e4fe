package handlers

import (
	"claimdesk/internal/app"
	supplementController "claimdesk/internal/controllers/supplement"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SupplementHandler struct {
	Handler
	controller supplementController.SupplementController
}

func NewSupplementHandler(app app.App, router fiber.Router) *SupplementHandler {
	log := logger.New("handlers").File("supplement_handler")
	return &SupplementHandler{
		controller: *app.SupplementController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *SupplementHandler) Register() {
	supplements := h.router.Group("/supplements")
	supplements.Post("/", h.createRequest)
	supplements.Get("/", h.getRequests)
	supplements.Get("/:id", h.getRequest)
	supplements.Post("/:id/process", h.processRequest)

	appeals := h.router.Group("/appeals")
	appeals.Get("/", h.getAppeals)
}

func (h *SupplementHandler) createRequest(c *fiber.Ctx) error {
	log := h.log.Function("createRequest")

	var request CreateSupplementRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse supplement request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse supplement request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	supplement, err := h.controller.CreateRequest(c.Context(), &request)
	if err != nil {
		log.Er("failed to create supplement request", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to create supplement request", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "supplement": supplement})
}

func (h *SupplementHandler) getRequests(c *fiber.Ctx) error {
	log := h.log.Function("getRequests")

	status := SupplementStatus(c.Query("status"))
	supplements, err := h.controller.ListRequests(c.Context(), status, c.Query("claimId"))
	if err != nil {
		log.Er("failed to get supplement requests", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get supplement requests", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "supplements": supplements})
}

func (h *SupplementHandler) getRequest(c *fiber.Ctx) error {
	log := h.log.Function("getRequest")

	supplement, err := h.controller.GetRequest(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get supplement request", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "supplement request not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "supplement": supplement})
}

func (h *SupplementHandler) processRequest(c *fiber.Ctx) error {
	log := h.log.Function("processRequest")

	var request ProcessSupplementRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse process request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse process request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	if err := h.controller.Process(c.Context(), c.Params("id"), &request); err != nil {
		log.Er("failed to process supplement request", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to process supplement request", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *SupplementHandler) getAppeals(c *fiber.Ctx) error {
	log := h.log.Function("getAppeals")

	status := SupplementStatus(c.Query("status"))
	appeals, err := h.controller.ListAppeals(c.Context(), status)
	if err != nil {
		log.Er("failed to get appeals", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get appeals", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "appeals": appeals})
}
