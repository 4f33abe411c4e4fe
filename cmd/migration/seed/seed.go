package seed

import (
	"claimdesk/config"
	"claimdesk/internal/logger"
	. "claimdesk/internal/models"

	"gorm.io/gorm"
)

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	patients := []Patient{
		{
			PatientNumber: "P2024001",
			Name:          "김철수",
			BirthDate:     "1975-03-12",
			Gender:        GenderMale,
			InsuranceType: InsuranceNationalHealth,
			Phone:         "010-1234-5678",
		}, {
			PatientNumber: "P2024002",
			Name:          "이영희",
			BirthDate:     "1988-11-02",
			Gender:        GenderFemale,
			InsuranceType: InsuranceNationalHealth,
			Phone:         "010-2345-6789",
		}, {
			PatientNumber: "P2024003",
			Name:          "박민수",
			BirthDate:     "1962-07-25",
			Gender:        GenderMale,
			InsuranceType: InsuranceMedicalAid,
			Phone:         "010-3456-7890",
		},
	}

	for _, patient := range patients {
		var existing Patient
		if err := db.First(&existing, "patient_number = ?", patient.PatientNumber).Error; err == nil {
			log.Info("Patient already exists", "patientNumber", patient.PatientNumber)
			continue
		}
		log.Info("Seeding patient", "patientNumber", patient.PatientNumber)
		if err := db.Create(&patient).Error; err != nil {
			log.Er("failed to create patient", err, "patientNumber", patient.PatientNumber)
		}
	}

	return nil
}
