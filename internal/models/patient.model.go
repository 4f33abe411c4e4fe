package models

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type InsuranceType string

const (
	InsuranceNationalHealth InsuranceType = "national_health"
	InsuranceMedicalAid     InsuranceType = "medical_aid"
	InsuranceOther          InsuranceType = "other"
)

// Patient is immutable once claims reference it; no update or delete path
// is exposed.
type Patient struct {
	BaseUUIDModel
	PatientNumber   string        `gorm:"type:varchar(32);not null;uniqueIndex" json:"patientNumber"`
	Name            string        `gorm:"type:varchar(100);not null"            json:"name"`
	BirthDate       string        `gorm:"type:varchar(10)"                      json:"birthDate"`
	Gender          Gender        `gorm:"type:varchar(1)"                       json:"gender"`
	InsuranceType   InsuranceType `gorm:"type:varchar(20)"                      json:"insuranceType"`
	InsuranceNumber string        `gorm:"type:varchar(30)"                      json:"insuranceNumber"`
	Phone           string        `gorm:"type:varchar(20)"                      json:"phone"`
	Address         string        `gorm:"type:varchar(255)"                     json:"address"`
}

type CreatePatientRequest struct {
	PatientNumber   string `json:"patientNumber"   validate:"required,max=32"`
	Name            string `json:"name"            validate:"required,max=100"`
	BirthDate       string `json:"birthDate"       validate:"omitempty,datetime=2006-01-02"`
	Gender          string `json:"gender"          validate:"omitempty,oneof=M F"`
	InsuranceType   string `json:"insuranceType"   validate:"omitempty,oneof=national_health medical_aid other"`
	InsuranceNumber string `json:"insuranceNumber" validate:"max=30"`
	Phone           string `json:"phone"           validate:"max=20"`
	Address         string `json:"address"         validate:"max=255"`
}
