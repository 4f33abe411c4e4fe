package repositories

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/services"
	"context"

	"gorm.io/gorm"
)

type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, patient *Patient) error
	GetAll(ctx context.Context, limit int) ([]*Patient, error)
	Count(ctx context.Context) (int64, error)
}

type patientRepository struct {
	db  database.DB
	log logger.Logger
}

func NewPatient(db database.DB) PatientRepository {
	return &patientRepository{
		db:  db,
		log: logger.New("patientRepository"),
	}
}

func (r *patientRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*Patient, error) {
	log := r.log.Function("GetByID")

	var patient Patient
	if err := r.getDB(ctx).First(&patient, "id = ?", id).Error; err != nil {
		return nil, log.Err("failed to get patient by id", err, "id", id)
	}

	return &patient, nil
}

func (r *patientRepository) Create(ctx context.Context, patient *Patient) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(patient).Error; err != nil {
		return log.Err("failed to create patient", err, "patientNumber", patient.PatientNumber)
	}

	return nil
}

func (r *patientRepository) GetAll(ctx context.Context, limit int) ([]*Patient, error) {
	log := r.log.Function("GetAll")

	if limit <= 0 {
		limit = 100
	}

	var patients []*Patient
	if err := r.getDB(ctx).Order("created_at DESC").Limit(limit).Find(&patients).Error; err != nil {
		return nil, log.Err("failed to get all patients", err)
	}

	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	log := r.log.Function("Count")

	var count int64
	if err := r.getDB(ctx).Model(&Patient{}).Count(&count).Error; err != nil {
		return 0, log.Err("failed to count patients", err)
	}

	return count, nil
}
