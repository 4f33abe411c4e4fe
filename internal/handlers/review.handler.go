package handlers

import (
	"claimdesk/internal/app"
	reviewController "claimdesk/internal/controllers/review"
	"claimdesk/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Handler
	controller reviewController.ReviewController
}

func NewReviewHandler(app app.App, router fiber.Router) *ReviewHandler {
	log := logger.New("handlers").File("review_handler")
	return &ReviewHandler{
		controller: *app.ReviewController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReviewHandler) Register() {
	claims := h.router.Group("/claims")
	claims.Post("/:id/review", h.generateReview)
	claims.Get("/:id/review", h.getReview)
}

func (h *ReviewHandler) generateReview(c *fiber.Ctx) error {
	log := h.log.Function("generateReview")

	summary, err := h.controller.Generate(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to generate review result", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to generate review result", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "review": summary})
}

func (h *ReviewHandler) getReview(c *fiber.Ctx) error {
	log := h.log.Function("getReview")

	result, err := h.controller.GetLatest(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get review result", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "review result not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "review": result})
}
