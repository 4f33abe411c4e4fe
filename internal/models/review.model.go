package models

import "time"

type ReviewResultType string

const (
	ReviewAppropriate      ReviewResultType = "appropriate"
	ReviewPartialReduction ReviewResultType = "partial_reduction"
	ReviewFullReduction    ReviewResultType = "full_reduction"
	ReviewPending          ReviewResultType = "pending"
)

// Fixed reduction reasons carried over from the payer simulation.
const (
	ReasonPartialReduction = "일부 진료 항목이 급여 인정 기준에 미달"
	ReasonFullReduction    = "진료 내용이 급여 기준에 부적합"
)

// ReviewResult records one simulated adjudication decision. History is
// retained; queries return the most recent row.
type ReviewResult struct {
	BaseUUIDModel
	ClaimID         string           `gorm:"type:varchar(64);not null;index" json:"claimId"`
	ResultType      ReviewResultType `gorm:"type:varchar(20);not null"       json:"resultType"`
	OriginalAmount  int              `gorm:"not null"                        json:"originalAmount"`
	ApprovedAmount  int              `gorm:"not null"                        json:"approvedAmount"`
	ReductionAmount int              `gorm:"not null"                        json:"reductionAmount"`
	ReductionReason *string          `gorm:"type:varchar(255)"               json:"reductionReason"`
	ReviewDate      time.Time        `gorm:"not null"                        json:"reviewDate"`
	PaymentDate     time.Time        `gorm:"not null"                        json:"paymentDate"`
	PaymentAmount   int              `gorm:"not null"                        json:"paymentAmount"`
}

type ReviewResultSummary struct {
	ResultType      ReviewResultType `json:"resultType"`
	OriginalAmount  int              `json:"originalAmount"`
	ApprovedAmount  int              `json:"approvedAmount"`
	ReductionAmount int              `json:"reductionAmount"`
	PaymentAmount   int              `json:"paymentAmount"`
}
