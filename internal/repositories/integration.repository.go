package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

type IntegrationFilter struct {
	Type      IntegrationType
	PatientID string
	Limit     int
}

type IntegrationRepository interface {
	Create(ctx context.Context, record *ExternalIntegration) error
	GetAll(ctx context.Context, filter IntegrationFilter) ([]*ExternalIntegration, error)
}

type integrationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewIntegration(db database.DB) IntegrationRepository {
	return &integrationRepository{
		db:  db,
		log: logger.New("integrationRepository"),
	}
}

func (r *integrationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *integrationRepository) Create(ctx context.Context, record *ExternalIntegration) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(record).Error; err != nil {
		return log.Err("failed to create integration record", err, "type", record.IntegrationType)
	}

	return nil
}

func (r *integrationRepository) GetAll(ctx context.Context, filter IntegrationFilter) ([]*ExternalIntegration, error) {
	log := r.log.Function("GetAll")

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}

	query := r.getDB(ctx).Order("requested_at DESC").Limit(limit)
	if filter.Type != "" {
		query = query.Where("integration_type = ?", filter.Type)
	}
	if filter.PatientID != "" {
		query = query.Where("patient_id = ?", filter.PatientID)
	}

	var records []*ExternalIntegration
	if err := query.Find(&records).Error; err != nil {
		return nil, log.Err("failed to get integration records", err)
	}

	return records, nil
}
