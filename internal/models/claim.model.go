package models

import (
	"errors"
	"time"
)

type ClaimStatus string

const (
	StatusDraft            ClaimStatus = "draft"
	StatusPrecheckComplete ClaimStatus = "precheck_complete"
	StatusClaimPending     ClaimStatus = "claim_pending"
	StatusClaimComplete    ClaimStatus = "claim_complete"
	StatusUnderReview      ClaimStatus = "under_review"
	StatusReviewComplete   ClaimStatus = "review_complete"
	StatusSupplementNeeded ClaimStatus = "supplement_needed"
	StatusSupplementClaim  ClaimStatus = "supplement_claim"
	StatusAdditionalClaim  ClaimStatus = "additional_claim"
	StatusClaimCancelled   ClaimStatus = "claim_cancelled"
)

// ErrInvalidTransition signals a lifecycle operation invoked from a status
// that does not permit it. Handlers surface it as a conflict.
var ErrInvalidTransition = errors.New("invalid claim status transition")

// CanPrecheck reports whether precheck may run for the current status.
func (s ClaimStatus) CanPrecheck() bool {
	return s == StatusDraft || s == StatusPrecheckComplete
}

// CanSubmit guards against duplicate submissions: only prechecked or pending
// claims may be submitted.
func (s ClaimStatus) CanSubmit() bool {
	return s == StatusPrecheckComplete || s == StatusClaimPending
}

// CanGenerateReview reports whether a review result may be generated.
func (s ClaimStatus) CanGenerateReview() bool {
	return s == StatusClaimComplete || s == StatusUnderReview
}

func (s ClaimStatus) IsTerminal() bool {
	return s == StatusClaimCancelled
}

type Claim struct {
	BaseUUIDModel
	ClaimNumber   string      `gorm:"type:varchar(20);not null;uniqueIndex" json:"claimNumber"`
	PatientID     string      `gorm:"type:varchar(64);not null;index"       json:"patientId"`
	Patient       *Patient    `gorm:"foreignKey:PatientID"                  json:"patient,omitempty"`
	VisitDate     string      `gorm:"type:varchar(10)"                      json:"visitDate"`
	Department    string      `gorm:"type:varchar(50)"                      json:"department"`
	DiagnosisCode string      `gorm:"type:varchar(20)"                      json:"diagnosisCode"`
	DiagnosisName string      `gorm:"type:varchar(100)"                     json:"diagnosisName"`
	DoctorName    string      `gorm:"type:varchar(50)"                      json:"doctorName"`
	Status        ClaimStatus `gorm:"type:varchar(20);not null;index"       json:"status"`
	Notes         string      `gorm:"type:text"                             json:"notes"`

	// Derived from the item list; insurance + copay always equals total.
	TotalAmount     int `gorm:"not null;default:0" json:"totalAmount"`
	InsuranceAmount int `gorm:"not null;default:0" json:"insuranceAmount"`
	CopayAmount     int `gorm:"not null;default:0" json:"copayAmount"`

	SubmittedAt *time.Time `json:"submittedAt"`

	Items []ClaimItem `gorm:"foreignKey:ClaimID" json:"items,omitempty"`
}

// PrecheckResult is the structured outcome of pre-submission validation.
// Errors block the transition, warnings never do.
type PrecheckResult struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

type CreateClaimRequest struct {
	PatientID     string `json:"patientId"     validate:"required"`
	VisitDate     string `json:"visitDate"     validate:"required"`
	Department    string `json:"department"    validate:"max=50"`
	DiagnosisCode string `json:"diagnosisCode" validate:"max=20"`
	DiagnosisName string `json:"diagnosisName" validate:"max=100"`
	DoctorName    string `json:"doctorName"    validate:"max=50"`
	Notes         string `json:"notes"`
}

type UpdateClaimRequest struct {
	VisitDate     string `json:"visitDate"     validate:"required"`
	Department    string `json:"department"    validate:"max=50"`
	DiagnosisCode string `json:"diagnosisCode" validate:"max=20"`
	DiagnosisName string `json:"diagnosisName" validate:"max=100"`
	DoctorName    string `json:"doctorName"    validate:"max=50"`
	Notes         string `json:"notes"`
}

type ClaimTotals struct {
	TotalAmount     int `json:"totalAmount"`
	InsuranceAmount int `json:"insuranceAmount"`
	CopayAmount     int `json:"copayAmount"`
}
