package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PaymentTypeCash   = "Cash"
	PaymentTypeCredit = "Credit"
	PaymentTypeDebit  = "Debit"
	PaymentTypeUpi    = "Upi"
)

// IsValidPaymentType reports whether t is one of the accepted payment types.
func IsValidPaymentType(t string) bool {
	switch t {
	case PaymentTypeCash, PaymentTypeCredit, PaymentTypeDebit, PaymentTypeUpi:
		return true
	}
	return false
}

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomID     *uint `gorm:"index;column:room_id" json:"room,omitempty"`
	HostelerID *uint `gorm:"index;column:hosteler_id" json:"hostelerId,omitempty"`

	PaymentType string         `gorm:"size:20" json:"paymentType"`
	PaymentDate datatypes.Date `json:"paymentDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
