package models

import (
	"time"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber int     `gorm:"uniqueIndex;column:room_number" json:"roomNumber"`
	Price      float64 `json:"price"`
	Capacity   int     `json:"capacity"`

	// Occupied is the seat counter the capacity gate works against; it always
	// equals the number of hostelers referencing this room.
	Occupied int `gorm:"default:0" json:"occupiedPeople"`

	// OccupancyStatus is true while the room still has free capacity.
	OccupancyStatus bool `gorm:"column:occupancy_status" json:"occupancyStatus"`

	AdminID *uint `gorm:"index;column:admin_id" json:"adminId,omitempty"`
	Admin   Admin `gorm:"foreignKey:AdminID" json:"-"`

	Hostelers []Hosteler `gorm:"foreignKey:RoomID" json:"hostelers,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
