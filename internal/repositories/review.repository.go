package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

type ReviewResultRepository interface {
	Create(ctx context.Context, result *ReviewResult) error
	// GetLatestByClaimID returns the most recent result; history rows are
	// retained but not surfaced.
	GetLatestByClaimID(ctx context.Context, claimID string) (*ReviewResult, error)
}

type reviewResultRepository struct {
	db  database.DB
	log logger.Logger
}

func NewReviewResult(db database.DB) ReviewResultRepository {
	return &reviewResultRepository{
		db:  db,
		log: logger.New("reviewResultRepository"),
	}
}

func (r *reviewResultRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *reviewResultRepository) Create(ctx context.Context, result *ReviewResult) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(result).Error; err != nil {
		return log.Err("failed to create review result", err, "claimID", result.ClaimID)
	}

	return nil
}

func (r *reviewResultRepository) GetLatestByClaimID(ctx context.Context, claimID string) (*ReviewResult, error) {
	log := r.log.Function("GetLatestByClaimID")

	var result ReviewResult
	err := r.getDB(ctx).
		Where("claim_id = ?", claimID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		return nil, log.Err("failed to get latest review result", err, "claimID", claimID)
	}

	return &result, nil
}
