package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

// SubmissionRepository is append-only: submissions are never updated or
// deleted once written.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *ClaimSubmission) error
	GetByClaimID(ctx context.Context, claimID string) ([]*ClaimSubmission, error)
}

type submissionRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSubmission(db database.DB) SubmissionRepository {
	return &submissionRepository{
		db:  db,
		log: logger.New("submissionRepository"),
	}
}

func (r *submissionRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *submissionRepository) Create(ctx context.Context, submission *ClaimSubmission) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(submission).Error; err != nil {
		return log.Err("failed to create claim submission", err,
			"claimID", submission.ClaimID, "submissionNumber", submission.SubmissionNumber)
	}

	return nil
}

func (r *submissionRepository) GetByClaimID(ctx context.Context, claimID string) ([]*ClaimSubmission, error) {
	log := r.log.Function("GetByClaimID")

	var submissions []*ClaimSubmission
	err := r.getDB(ctx).
		Where("claim_id = ?", claimID).
		Order("submission_date DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, log.Err("failed to get submissions by claim", err, "claimID", claimID)
	}

	return submissions, nil
}
