package handlers

import (
	"claimdesk/internal/app"
	paymentController "claimdesk/internal/controllers/payment"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Handler
	controller paymentController.PaymentController
}

func NewPaymentHandler(app app.App, router fiber.Router) *PaymentHandler {
	log := logger.New("handlers").File("payment_handler")
	return &PaymentHandler{
		controller: *app.PaymentController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *PaymentHandler) Register() {
	payments := h.router.Group("/payments")
	payments.Get("/", h.getPayments)
	payments.Post("/:id/confirm", h.confirmPayment)
}

func (h *PaymentHandler) getPayments(c *fiber.Ctx) error {
	log := h.log.Function("getPayments")

	status := PaymentStatus(c.Query("status"))
	payments, err := h.controller.ListPayments(c.Context(), status)
	if err != nil {
		log.Er("failed to get payments", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get payments", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "payments": payments})
}

func (h *PaymentHandler) confirmPayment(c *fiber.Ctx) error {
	log := h.log.Function("confirmPayment")

	payment, err := h.controller.Confirm(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to confirm payment", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to confirm payment", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "payment": payment})
}
