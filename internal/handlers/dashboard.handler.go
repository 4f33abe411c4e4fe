package handlers

import (
	"strconv"

	"claimdesk/internal/app"
	dashboardController "claimdesk/internal/controllers/dashboard"
	"claimdesk/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	controller dashboardController.DashboardController
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	log := logger.New("handlers").File("dashboard_handler")
	return &DashboardHandler{
		controller: *app.DashboardController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DashboardHandler) Register() {
	dashboard := h.router.Group("/dashboard")
	dashboard.Get("/stats", h.getStats)
	dashboard.Get("/monthly", h.getMonthlyStats)
	dashboard.Get("/reduction-analysis", h.getReductionAnalysis)
	dashboard.Get("/departments", h.getDepartmentStats)
}

func (h *DashboardHandler) getStats(c *fiber.Ctx) error {
	log := h.log.Function("getStats")

	stats, err := h.controller.GetStats(c.Context())
	if err != nil {
		log.Er("failed to get dashboard stats", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get dashboard stats", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "stats": stats})
}

func (h *DashboardHandler) getMonthlyStats(c *fiber.Ctx) error {
	log := h.log.Function("getMonthlyStats")

	months, err := strconv.Atoi(c.Query("months", "6"))
	if err != nil || months <= 0 {
		months = 6
	}

	stats, err := h.controller.GetMonthlyStats(c.Context(), months)
	if err != nil {
		log.Er("failed to get monthly stats", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get monthly stats", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "monthly": stats})
}

func (h *DashboardHandler) getReductionAnalysis(c *fiber.Ctx) error {
	log := h.log.Function("getReductionAnalysis")

	stats, err := h.controller.GetReductionAnalysis(c.Context())
	if err != nil {
		log.Er("failed to get reduction analysis", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get reduction analysis", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "reductions": stats})
}

func (h *DashboardHandler) getDepartmentStats(c *fiber.Ctx) error {
	log := h.log.Function("getDepartmentStats")

	stats, err := h.controller.GetDepartmentStats(c.Context())
	if err != nil {
		log.Er("failed to get department stats", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get department stats", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "departments": stats})
}
