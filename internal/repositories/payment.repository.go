package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetAll(ctx context.Context, status PaymentStatus, limit int) ([]*Payment, error)
}

type paymentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPayment(db database.DB) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: logger.New("paymentRepository"),
	}
}

func (r *paymentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	log := r.log.Function("GetByID")

	var payment Payment
	if err := r.getDB(ctx).First(&payment, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get payment", err, "id", id)
	}

	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *Payment) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(payment).Error; err != nil {
		return log.Err("failed to create payment", err, "claimID", payment.ClaimID)
	}

	return nil
}

func (r *paymentRepository) Update(ctx context.Context, payment *Payment) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Save(payment).Error; err != nil {
		return log.Err("failed to update payment", err, "id", payment.ID)
	}

	return nil
}

func (r *paymentRepository) GetAll(ctx context.Context, status PaymentStatus, limit int) ([]*Payment, error) {
	log := r.log.Function("GetAll")

	if limit <= 0 {
		limit = 100
	}

	query := r.getDB(ctx).Order("payment_date DESC").Limit(limit)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []*Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, log.Err("failed to get payments", err, "status", status)
	}

	return payments, nil
}
