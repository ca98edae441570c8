package services

import (
	"errors"
	"net/http"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomUpdate carries the optional fields of a partial room update.
type RoomUpdate struct {
	RoomNumber *int     `json:"roomNumber"`
	Price      *float64 `json:"price"`
	Capacity   *int     `json:"capacity"`
}

// Register creates a room owned by the given admin. Room numbers are unique.
func (s *RoomService) Register(roomNumber int, price float64, capacity int, adminID uint) (*models.Room, error) {
	if roomNumber <= 0 || price < 0 || capacity <= 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "All fields are required")
	}

	var existing models.Room
	err := s.DB.Where("room_number = ?", roomNumber).First(&existing).Error
	if err == nil {
		return nil, utils.NewAPIError(http.StatusConflict, "Room already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	room := &models.Room{
		RoomNumber:      roomNumber,
		Price:           price,
		Capacity:        capacity,
		OccupancyStatus: true,
		AdminID:         &adminID,
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, utils.NewAPIError(http.StatusConflict, "Room already exists")
		}
		return nil, err
	}
	return room, nil
}

// Update applies a partial update of number/price/capacity and keeps the
// occupancy flag consistent with the new capacity.
func (s *RoomService) Update(roomID uint, upd RoomUpdate) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAPIError(http.StatusNotFound, "Room not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.RoomNumber != nil {
		fields["room_number"] = *upd.RoomNumber
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, utils.NewAPIError(http.StatusBadRequest, "Price must not be negative")
		}
		fields["price"] = *upd.Price
	}
	if upd.Capacity != nil {
		if *upd.Capacity <= 0 {
			return nil, utils.NewAPIError(http.StatusBadRequest, "Capacity must be positive")
		}
		fields["capacity"] = *upd.Capacity
		fields["occupancy_status"] = room.Occupied < *upd.Capacity
	}
	if len(fields) == 0 {
		return &room, nil
	}

	if err := s.DB.Model(&room).Updates(fields).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, utils.NewAPIError(http.StatusConflict, "Room already exists")
		}
		return nil, err
	}
	return &room, nil
}

// Delete removes the room. Deletion is refused while hostelers still
// reference the room, so no dangling assignments can appear.
func (s *RoomService) Delete(roomID uint) error {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NewAPIError(http.StatusNotFound, "Room not found")
		}
		return err
	}

	var occupants int64
	if err := s.DB.Model(&models.Hosteler{}).Where("room_id = ?", room.ID).Count(&occupants).Error; err != nil {
		return err
	}
	if occupants > 0 {
		return utils.NewAPIError(http.StatusConflict, "Room still has hostelers assigned to it")
	}

	return s.DB.Delete(&room).Error
}

// Available lists rooms with free capacity, each annotated with its
// occupied count.
func (s *RoomService) Available() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Where("occupancy_status = ?", true).Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "No available rooms found")
	}
	return rooms, nil
}

// CheckAvailability reports whether the given room can take another
// hosteler: 404 when the room does not exist, 400 when it is full.
func (s *RoomService) CheckAvailability(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAPIError(http.StatusNotFound, "Room not found")
		}
		return nil, err
	}

	if !room.OccupancyStatus || room.Occupied >= room.Capacity {
		return nil, utils.NewAPIError(http.StatusBadRequest, "Room is not available for booking")
	}
	return &room, nil
}
