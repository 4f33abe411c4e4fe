package models

import "time"

type SubmissionType string

const (
	SubmissionNew        SubmissionType = "new"
	SubmissionSupplement SubmissionType = "supplement"
	SubmissionAdditional SubmissionType = "additional"
	SubmissionCancel     SubmissionType = "cancel"
)

type SubmissionStatus string

const (
	SubmissionAccepted  SubmissionStatus = "accepted"
	SubmissionCancelled SubmissionStatus = "cancelled"
)

// ClaimSubmission is an append-only log entry for one provider-to-payer
// transmission event. Rows are never mutated after creation.
type ClaimSubmission struct {
	BaseUUIDModel
	ClaimID          string           `gorm:"type:varchar(64);not null;index"       json:"claimId"`
	SubmissionNumber string           `gorm:"type:varchar(30);not null;uniqueIndex" json:"submissionNumber"`
	SubmissionType   SubmissionType   `gorm:"type:varchar(20);not null"             json:"submissionType"`
	SubmissionDate   time.Time        `gorm:"not null"                              json:"submissionDate"`
	Status           SubmissionStatus `gorm:"type:varchar(20);not null"             json:"status"`
	ResponseData     string           `gorm:"type:text"                             json:"responseData"`
}

// SubmissionResponse is the simulated payer acknowledgement stored as the
// submission's response payload.
type SubmissionResponse struct {
	Message          string `json:"message"`
	ReceiptNumber    string `json:"receiptNumber,omitempty"`
	SupplementReason string `json:"supplementReason,omitempty"`
	AdditionalAmount int    `json:"additionalAmount,omitempty"`
	CancelReason     string `json:"cancelReason,omitempty"`
}

type SubmitResult struct {
	SubmissionNumber string `json:"submissionNumber"`
	Message          string `json:"message"`
}
