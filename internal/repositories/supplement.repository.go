package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

type SupplementFilter struct {
	Status      SupplementStatus
	ClaimID     string
	RequestType SupplementRequestType
	Limit       int
}

type SupplementRepository interface {
	GetByID(ctx context.Context, id string) (*SupplementRequest, error)
	Create(ctx context.Context, request *SupplementRequest) error
	Update(ctx context.Context, request *SupplementRequest) error
	GetAll(ctx context.Context, filter SupplementFilter) ([]*SupplementRequest, error)
}

type supplementRepository struct {
	db  database.DB
	log logger.Logger
}

func NewSupplement(db database.DB) SupplementRepository {
	return &supplementRepository{
		db:  db,
		log: logger.New("supplementRepository"),
	}
}

func (r *supplementRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *supplementRepository) GetByID(ctx context.Context, id string) (*SupplementRequest, error) {
	log := r.log.Function("GetByID")

	var request SupplementRequest
	if err := r.getDB(ctx).Preload("Details").First(&request, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get supplement request", err, "id", id)
	}

	return &request, nil
}

// Create persists the request with its appeal details in one write; GORM
// inserts the association rows in the same statement batch.
func (r *supplementRepository) Create(ctx context.Context, request *SupplementRequest) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(request).Error; err != nil {
		return log.Err("failed to create supplement request", err, "claimID", request.ClaimID)
	}

	return nil
}

func (r *supplementRepository) Update(ctx context.Context, request *SupplementRequest) error {
	log := r.log.Function("Update")

	if err := r.getDB(ctx).Omit("Details").Save(request).Error; err != nil {
		return log.Err("failed to update supplement request", err, "id", request.ID)
	}

	return nil
}

func (r *supplementRepository) GetAll(ctx context.Context, filter SupplementFilter) ([]*SupplementRequest, error) {
	log := r.log.Function("GetAll")

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := r.getDB(ctx).Order("requested_at DESC").Limit(limit)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ClaimID != "" {
		query = query.Where("claim_id = ?", filter.ClaimID)
	}
	if filter.RequestType != "" {
		query = query.Where("request_type = ?", filter.RequestType)
	}

	var requests []*SupplementRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, log.Err("failed to get supplement requests", err)
	}

	return requests, nil
}
