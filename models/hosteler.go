package models

import (
	"time"
)

type Hosteler struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhoneNumber string `gorm:"uniqueIndex;size:20" json:"phoneNumber"`
	Name        string `gorm:"index;size:255" json:"name"`

	RoomID *uint `gorm:"index;column:room_id" json:"roomAllocated,omitempty"`
	Room   Room  `gorm:"foreignKey:RoomID" json:"-"`

	IsPaid bool `gorm:"default:false" json:"isPaid"`

	// PaymentID points at the latest payment made by this hosteler.
	PaymentID *uint `gorm:"index;column:payment_id" json:"paymentDetails,omitempty"`

	Avatar string `gorm:"size:512" json:"avatar,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
