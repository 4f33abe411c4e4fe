package models

import "gorm.io/gorm"

type ItemType string

const (
	ItemConsultation ItemType = "consultation"
	ItemPrescription ItemType = "prescription"
	ItemTest         ItemType = "test"
	ItemTreatment    ItemType = "treatment"
	ItemOther        ItemType = "other"
)

// ClaimItem is one billable line within a claim. Items are owned by their
// claim and are removed with it.
type ClaimItem struct {
	BaseUUIDModel
	ClaimID           string   `gorm:"type:varchar(64);not null;index" json:"claimId"`
	ItemCode          string   `gorm:"type:varchar(20)"                json:"itemCode"`
	ItemName          string   `gorm:"type:varchar(100);not null"      json:"itemName"`
	ItemType          ItemType `gorm:"type:varchar(20)"                json:"itemType"`
	UnitPrice         int      `gorm:"not null"                        json:"unitPrice"`
	Quantity          int      `gorm:"not null;default:1"              json:"quantity"`
	TotalPrice        int      `gorm:"not null"                        json:"totalPrice"`
	InsuranceCoverage int      `gorm:"not null;default:70"             json:"insuranceCoverage"` // percent, 0-100
	Notes             string   `gorm:"type:varchar(255)"               json:"notes"`
}

// BeforeSave keeps total_price consistent with unit price and quantity.
func (i *ClaimItem) BeforeSave(tx *gorm.DB) error {
	if err := i.BaseUUIDModel.BeforeSave(tx); err != nil {
		return err
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	i.TotalPrice = i.UnitPrice * i.Quantity
	return nil
}

// CoveredAmount is the insurer share of this line, floored per item.
func (i *ClaimItem) CoveredAmount() int {
	return i.TotalPrice * i.InsuranceCoverage / 100
}

type AddClaimItemRequest struct {
	ItemCode          string `json:"itemCode"          validate:"max=20"`
	ItemName          string `json:"itemName"          validate:"required,max=100"`
	ItemType          string `json:"itemType"          validate:"omitempty,oneof=consultation prescription test treatment other"`
	UnitPrice         int    `json:"unitPrice"         validate:"required,gt=0"`
	Quantity          int    `json:"quantity"          validate:"omitempty,gt=0"`
	InsuranceCoverage *int   `json:"insuranceCoverage" validate:"omitempty,gte=0,lte=100"`
	Notes             string `json:"notes"             validate:"max=255"`
}
