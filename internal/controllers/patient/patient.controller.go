package patientController

import (
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"
	"claimdesk/internal/repositories"
	"context"
)

type PatientController struct {
	patientRepo repositories.PatientRepository
	log         logger.Logger
}

func New(patientRepo repositories.PatientRepository) *PatientController {
	return &PatientController{
		patientRepo: patientRepo,
		log:         logger.New("PatientController"),
	}
}

func (pc *PatientController) Register(ctx context.Context, request *CreatePatientRequest) (*Patient, error) {
	log := pc.log.Function("Register")

	patient := &Patient{
		PatientNumber:   request.PatientNumber,
		Name:            request.Name,
		BirthDate:       request.BirthDate,
		Gender:          Gender(request.Gender),
		InsuranceType:   InsuranceType(request.InsuranceType),
		InsuranceNumber: request.InsuranceNumber,
		Phone:           request.Phone,
		Address:         request.Address,
	}

	if err := pc.patientRepo.Create(ctx, patient); err != nil {
		return nil, log.Err("failed to register patient", err, "patientNumber", request.PatientNumber)
	}

	return patient, nil
}

func (pc *PatientController) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return pc.patientRepo.GetByID(ctx, id)
}

func (pc *PatientController) ListPatients(ctx context.Context) ([]*Patient, error) {
	return pc.patientRepo.GetAll(ctx, 100)
}
