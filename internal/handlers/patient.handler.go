package handlers

import (
	"claimdesk/internal/app"
	patientController "claimdesk/internal/controllers/patient"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PatientHandler struct {
	Handler
	controller patientController.PatientController
}

func NewPatientHandler(app app.App, router fiber.Router) *PatientHandler {
	log := logger.New("handlers").File("patient_handler")
	return &PatientHandler{
		controller: *app.PatientController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PatientHandler) Register() {
	patients := h.router.Group("/patients")
	patients.Post("/", h.createPatient)
	patients.Get("/:id", h.getPatient)
	patients.Get("/", h.getPatients)
}

func (h *PatientHandler) createPatient(c *fiber.Ctx) error {
	log := h.log.Function("createPatient")

	var request CreatePatientRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse patient request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse patient request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	patient, err := h.controller.Register(c.Context(), &request)
	if err != nil {
		log.Er("failed to create patient", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to create patient", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "patient": patient})
}

func (h *PatientHandler) getPatient(c *fiber.Ctx) error {
	log := h.log.Function("getPatient")

	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "patient ID is required"})
	}

	patient, err := h.controller.GetPatient(c.Context(), id)
	if err != nil {
		log.Er("failed to get patient", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "patient not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "patient": patient})
}

func (h *PatientHandler) getPatients(c *fiber.Ctx) error {
	log := h.log.Function("getPatients")

	patients, err := h.controller.ListPatients(c.Context())
	if err != nil {
		log.Er("failed to get patients", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get patients", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "patients": patients})
}
