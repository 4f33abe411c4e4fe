package models

import "time"

type IntegrationType string

const (
	IntegrationEligibility      IntegrationType = "eligibility"
	IntegrationSpecialApproval  IntegrationType = "special_approval"
	IntegrationPrivateInsurance IntegrationType = "private_insurance"
)

// ExternalIntegration is the history row for one simulated external call.
type ExternalIntegration struct {
	BaseUUIDModel
	IntegrationType IntegrationType `gorm:"type:varchar(30);not null;index" json:"integrationType"`
	PatientID       *string         `gorm:"type:varchar(64);index"          json:"patientId"`
	RequestData     string          `gorm:"type:text"                       json:"requestData"`
	ResponseData    string          `gorm:"type:text"                       json:"responseData"`
	Status          string          `gorm:"type:varchar(20)"                json:"status"`
	RequestedAt     time.Time       `gorm:"not null"                        json:"requestedAt"`
	RespondedAt     time.Time       `gorm:"not null"                        json:"respondedAt"`
}

type EligibilityRequest struct {
	PatientID string `json:"patientId" validate:"required"`
}

type EligibilityResponse struct {
	Valid            bool   `json:"valid"`
	InsuranceType    string `json:"insuranceType"`
	Status           string `json:"status"`
	CoverageStart    string `json:"coverageStart"`
	SpecialExemption bool   `json:"specialExemption"`
}

type SpecialApprovalRequest struct {
	PatientID     string `json:"patientId"     validate:"required"`
	DiagnosisCode string `json:"diagnosisCode"`
}

type SpecialApprovalResponse struct {
	Approved       bool   `json:"approved"`
	CoverageRate   int    `json:"coverageRate"`
	ValidUntil     string `json:"validUntil"`
	ApprovalNumber string `json:"approvalNumber"`
}

type PrivateInsuranceRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	Amount    int    `json:"amount"    validate:"required,gt=0"`
}

type PrivateInsuranceResponse struct {
	InsuranceCompany string `json:"insuranceCompany"`
	ClaimNumber      string `json:"claimNumber"`
	Status           string `json:"status"`
	ExpectedPayment  int    `json:"expectedPayment"`
}
