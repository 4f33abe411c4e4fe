package paymentController

import (
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"claimdesk/internal/services"
	"context"
)

// PaymentController reconciles scheduled insurer disbursements.
type PaymentController struct {
	paymentRepo              repositories.PaymentRepository
	cacheInvalidationService *services.CacheInvalidationService
	log                      logger.Logger
}

func New(
	paymentRepo repositories.PaymentRepository,
	cacheInvalidationService *services.CacheInvalidationService,
) *PaymentController {
	return &PaymentController{
		paymentRepo:              paymentRepo,
		cacheInvalidationService: cacheInvalidationService,
		log:                      logger.New("PaymentController"),
	}
}

func (pc *PaymentController) ListPayments(ctx context.Context, status PaymentStatus) ([]*Payment, error) {
	return pc.paymentRepo.GetAll(ctx, status, 100)
}

// Confirm marks the deposit as received.
func (pc *PaymentController) Confirm(ctx context.Context, id string) (*Payment, error) {
	log := pc.log.Function("Confirm")

	payment, err := pc.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, log.Err("payment not found", err, "id", id)
	}

	payment.Status = PaymentCompleted
	if err := pc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, log.Err("failed to confirm payment", err, "id", id)
	}

	pc.cacheInvalidationService.InvalidateDashboard(ctx)

	return payment, nil
}
