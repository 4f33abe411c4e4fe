package handlers

import (
	"time"

	"claimdesk/internal/app"
	claimController "claimdesk/internal/controllers/claim"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ClaimHandler struct {
	Handler
	controller claimController.ClaimController
}

func NewClaimHandler(app app.App, router fiber.Router) *ClaimHandler {
	log := logger.New("handlers").File("claim_handler")
	return &ClaimHandler{
		controller: *app.ClaimController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ClaimHandler) Register() {
	claims := h.router.Group("/claims")
	claims.Post("/", h.createClaim)
	claims.Get("/", h.getClaims)
	claims.Get("/export/csv", h.exportCSV)
	claims.Get("/:id", h.getClaim)
	claims.Patch("/:id", h.updateClaim)
	claims.Delete("/:id", h.deleteClaim)

	claims.Post("/:id/items", h.addItem)
	claims.Delete("/:id/items/:itemId", h.removeItem)
	claims.Post("/:id/recalculate", h.recalculate)

	claims.Post("/:id/precheck", h.precheck)
	claims.Post("/:id/submit", h.submit)
	claims.Post("/:id/supplement", h.supplementSubmit)
	claims.Post("/:id/additional", h.additionalSubmit)
	claims.Post("/:id/cancel", h.cancelSubmit)
	claims.Get("/:id/submissions", h.getSubmissions)
}

func (h *ClaimHandler) createClaim(c *fiber.Ctx) error {
	log := h.log.Function("createClaim")

	var request CreateClaimRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse claim request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse claim request"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	claim, err := h.controller.CreateClaim(c.Context(), &request)
	if err != nil {
		log.Er("failed to create claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to create claim", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "claim": claim})
}

func (h *ClaimHandler) getClaims(c *fiber.Ctx) error {
	log := h.log.Function("getClaims")

	status := ClaimStatus(c.Query("status"))
	claims, err := h.controller.ListClaims(c.Context(), status)
	if err != nil {
		log.Er("failed to get claims", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get claims", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "claims": claims})
}

func (h *ClaimHandler) exportCSV(c *fiber.Ctx) error {
	log := h.log.Function("exportCSV")

	status := ClaimStatus(c.Query("status"))
	claims, err := h.controller.ListClaims(c.Context(), status)
	if err != nil {
		log.Er("failed to get claims for export", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export claims", "error": err.Error()})
	}

	data, err := utils.GenerateClaimsCSV(claims)
	if err != nil {
		log.Er("failed to generate claims csv", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to export claims", "error": err.Error()})
	}

	filename := "claims_" + time.Now().Format("20060102") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *ClaimHandler) getClaim(c *fiber.Ctx) error {
	log := h.log.Function("getClaim")

	claim, err := h.controller.GetClaim(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "claim not found"})
	}

	return c.JSON(fiber.Map{"message": "success", "claim": claim})
}

func (h *ClaimHandler) updateClaim(c *fiber.Ctx) error {
	log := h.log.Function("updateClaim")

	var request UpdateClaimRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse claim update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse claim update"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	claim, err := h.controller.UpdateClaim(c.Context(), c.Params("id"), &request)
	if err != nil {
		log.Er("failed to update claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to update claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "claim": claim})
}

func (h *ClaimHandler) deleteClaim(c *fiber.Ctx) error {
	log := h.log.Function("deleteClaim")

	if err := h.controller.DeleteClaim(c.Context(), c.Params("id")); err != nil {
		log.Er("failed to delete claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to delete claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *ClaimHandler) addItem(c *fiber.Ctx) error {
	log := h.log.Function("addItem")

	var request AddClaimItemRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse claim item", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse claim item"})
	}

	if err := validate.Struct(&request); err != nil {
		return validationError(c, err)
	}

	item, err := h.controller.AddItem(c.Context(), c.Params("id"), &request)
	if err != nil {
		log.Er("failed to add claim item", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to add claim item", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).
		JSON(fiber.Map{"message": "success", "item": item})
}

func (h *ClaimHandler) removeItem(c *fiber.Ctx) error {
	log := h.log.Function("removeItem")

	if err := h.controller.RemoveItem(c.Context(), c.Params("id"), c.Params("itemId")); err != nil {
		log.Er("failed to remove claim item", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to remove claim item", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *ClaimHandler) recalculate(c *fiber.Ctx) error {
	log := h.log.Function("recalculate")

	totals, err := h.controller.RecalculateTotals(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to recalculate claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to recalculate claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "totals": totals})
}

func (h *ClaimHandler) precheck(c *fiber.Ctx) error {
	log := h.log.Function("precheck")

	result, err := h.controller.Precheck(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to run precheck", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to run precheck", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "result": result})
}

func (h *ClaimHandler) submit(c *fiber.Ctx) error {
	log := h.log.Function("submit")

	result, err := h.controller.Submit(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to submit claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to submit claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "submission": result})
}

func (h *ClaimHandler) supplementSubmit(c *fiber.Ctx) error {
	log := h.log.Function("supplementSubmit")

	var request struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse supplement submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse supplement submission"})
	}

	result, err := h.controller.Supplement(c.Context(), c.Params("id"), request.Reason)
	if err != nil {
		log.Er("failed to submit supplement claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to submit supplement claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "submission": result})
}

func (h *ClaimHandler) additionalSubmit(c *fiber.Ctx) error {
	log := h.log.Function("additionalSubmit")

	var request struct {
		AdditionalAmount int `json:"additionalAmount"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse additional submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse additional submission"})
	}

	result, err := h.controller.Additional(c.Context(), c.Params("id"), request.AdditionalAmount)
	if err != nil {
		log.Er("failed to submit additional claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to submit additional claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "submission": result})
}

func (h *ClaimHandler) cancelSubmit(c *fiber.Ctx) error {
	log := h.log.Function("cancelSubmit")

	var request struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse cancel submission", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "failed to parse cancel submission"})
	}

	result, err := h.controller.Cancel(c.Context(), c.Params("id"), request.Reason)
	if err != nil {
		log.Er("failed to cancel claim", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to cancel claim", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "submission": result})
}

func (h *ClaimHandler) getSubmissions(c *fiber.Ctx) error {
	log := h.log.Function("getSubmissions")

	submissions, err := h.controller.GetSubmissions(c.Context(), c.Params("id"))
	if err != nil {
		log.Er("failed to get submissions", err)
		return c.Status(errorStatus(err)).
			JSON(fiber.Map{"message": "failed to get submissions", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success", "submissions": submissions})
}
