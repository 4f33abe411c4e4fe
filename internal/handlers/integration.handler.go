package handlers

import (
	"claimdesk/internal/app"
	integrationController "claimdesk/internal/controllers/integration"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type IntegrationHandler struct {
	Handler
	controller integrationController.IntegrationController
}

func NewIntegrationHandler(app app.App, router fiber.Router) *IntegrationHandler {
	log := logger.New("handlers").File("integration_handler")
	return &IntegrationHandler{
		controller: *app.IntegrationController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *IntegrationHandler) Register() {
	integrations := h.router.Group("/integrations")
	integrations.Post("/eligibility", h.checkEligibility)
	integrations.Post("/special-approval", h.requestSpecialApproval)
	integrations.Post("/private-insurance", h.routePrivateInsurance)
	integrations.Get("/", h.getHistory)
}

func (h *IntegrationHandler) checkEligibility(c *fiber.Ctx) error {
	log := h.log.Function("checkEligibility")

	var request EligibilityRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse eligibility request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse eligibility request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	response, err := h.controller.CheckEligibility(c.Context(), &request)
	if err != nil {
		log.Er("failed to check eligibility", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to check eligibility", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "eligibility": response})
}

func (h *IntegrationHandler) requestSpecialApproval(c *fiber.Ctx) error {
	log := h.log.Function("requestSpecialApproval")

	var request SpecialApprovalRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse special approval request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse special approval request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	response, err := h.controller.RequestSpecialApproval(c.Context(), &request)
	if err != nil {
		log.Er("failed to request special approval", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to request special approval", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "approval": response})
}

func (h *IntegrationHandler) routePrivateInsurance(c *fiber.Ctx) error {
	log := h.log.Function("routePrivateInsurance")

	var request PrivateInsuranceRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse private insurance request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse private insurance request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	response, err := h.controller.RoutePrivateInsurance(c.Context(), &request)
	if err != nil {
		log.Er("failed to route private insurance claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to route private insurance claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "routing": response})
}

func (h *IntegrationHandler) getHistory(c *fiber.Ctx) error {
	log := h.log.Function("getHistory")

	history, err := h.controller.GetHistory(
		c.Context(),
		IntegrationType(c.Query("type")),
		c.Query("patientId"),
	)
	if err != nil {
		log.Er("failed to get integration history", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get integration history", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "integrations": history})
}
