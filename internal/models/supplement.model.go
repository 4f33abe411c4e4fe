package models

import "time"

type SupplementRequestType string

const (
	RequestSupplement SupplementRequestType = "supplement_request"
	RequestAppeal     SupplementRequestType = "appeal"
)

type SupplementStatus string

const (
	SupplementRequested SupplementStatus = "requested"
	SupplementCompleted SupplementStatus = "completed"
	SupplementRejected  SupplementStatus = "rejected"
)

// SupplementRequest is the payer's or provider's request to correct or
// dispute a claim after review. Creating one forces the parent claim into
// supplement_needed; completing one returns it to under_review.
type SupplementRequest struct {
	BaseUUIDModel
	ClaimID        string                `gorm:"type:varchar(64);not null;index" json:"claimId"`
	ReviewResultID *string               `gorm:"type:varchar(64)"                json:"reviewResultId"`
	RequestType    SupplementRequestType `gorm:"type:varchar(30);not null"       json:"requestType"`
	RequestReason  string                `gorm:"type:text;not null"              json:"requestReason"`
	RequestedItems *string               `gorm:"type:text"                       json:"requestedItems"` // JSON payload
	Status         SupplementStatus      `gorm:"type:varchar(20);not null"       json:"status"`
	ResponseText   *string               `gorm:"type:text"                       json:"responseText"`
	RequestedAt    time.Time             `gorm:"not null"                        json:"requestedAt"`
	RespondedAt    *time.Time            `json:"respondedAt"`

	Details []AppealDetail `gorm:"foreignKey:SupplementRequestID" json:"appealDetails,omitempty"`
}

// AppealDetail is one disputed line item under an appeal. Rows are created
// atomically with the parent request and never independently later.
type AppealDetail struct {
	BaseUUIDModel
	SupplementRequestID string  `gorm:"type:varchar(64);not null;index" json:"supplementRequestId"`
	ItemCode            *string `gorm:"type:varchar(20)"                json:"itemCode"`
	ItemName            *string `gorm:"type:varchar(100)"               json:"itemName"`
	OriginalAmount      *int    `json:"originalAmount"`
	RequestedAmount     *int    `json:"requestedAmount"`
	AppealReason        string  `gorm:"type:text;not null"              json:"appealReason"`
	SupportingDocuments *string `gorm:"type:text"                       json:"supportingDocuments"` // JSON payload
}

type CreateSupplementRequest struct {
	ClaimID        string                `json:"claimId"        validate:"required"`
	ReviewResultID *string               `json:"reviewResultId"`
	RequestType    string                `json:"requestType"    validate:"omitempty,oneof=supplement_request appeal"`
	RequestReason  string                `json:"requestReason"  validate:"required"`
	RequestedItems []string              `json:"requestedItems"`
	AppealDetails  []AppealDetailRequest `json:"appealDetails"  validate:"omitempty,dive"`
}

type AppealDetailRequest struct {
	ItemCode            *string  `json:"itemCode"`
	ItemName            *string  `json:"itemName"`
	OriginalAmount      *int     `json:"originalAmount"`
	RequestedAmount     *int     `json:"requestedAmount"`
	AppealReason        string   `json:"appealReason" validate:"required"`
	SupportingDocuments []string `json:"supportingDocuments"`
}

type ProcessSupplementRequest struct {
	Status       string  `json:"status"       validate:"required,oneof=completed rejected"`
	ResponseText *string `json:"responseText"`
}
