package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Payment is the insurer disbursement scheduled by a review result and
// reconciled when the deposit is confirmed.
type Payment struct {
	BaseUUIDModel
	ClaimID       string        `gorm:"type:varchar(64);not null;index" json:"claimId"`
	PaymentDate   time.Time     `gorm:"not null"                        json:"paymentDate"`
	PaymentAmount int           `gorm:"not null"                        json:"paymentAmount"`
	PaymentType   string        `gorm:"type:varchar(30)"                json:"paymentType"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
}
