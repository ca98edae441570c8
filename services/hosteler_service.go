package services

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HostelerService struct {
	DB *gorm.DB
}

func NewHostelerService(db *gorm.DB) *HostelerService {
	return &HostelerService{DB: db}
}

// HostelerDetails is the hosteler row joined with its room's number and
// price, the shape the listing and detail endpoints return.
type HostelerDetails struct {
	HostelerID  uint    `json:"hostelerId"`
	PhoneNumber string  `json:"phoneNumber"`
	Name        string  `json:"name"`
	IsPaid      bool    `json:"isPaid"`
	Room        int     `json:"room"`
	Price       float64 `json:"price"`
}

const detailsSelect = "hostelers.id AS hosteler_id, hostelers.phone_number, hostelers.name, " +
	"hostelers.is_paid, rooms.room_number AS room, rooms.price"

func (s *HostelerService) detailsQuery(db *gorm.DB) *gorm.DB {
	return db.Table("hostelers").
		Select(detailsSelect).
		Joins("JOIN rooms ON rooms.id = hostelers.room_id")
}

// Register admits a hosteler into the room with the given number. The seat
// is taken with a single guarded update (occupied is incremented only while
// occupied < capacity), so concurrent registrations can never push a room
// past its capacity; the occupant row and the occupancy-flag flip ride in
// the same transaction.
func (s *HostelerService) Register(name, phoneNumber string, roomNumber int) (*models.Hosteler, error) {
	name = strings.TrimSpace(name)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if name == "" || phoneNumber == "" || roomNumber == 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "All fields are required")
	}

	var existing models.Hosteler
	err := s.DB.Where("name = ? OR phone_number = ?", name, phoneNumber).First(&existing).Error
	if err == nil {
		return nil, utils.NewAPIError(http.StatusConflict, "Hosteler with name or phone number already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var hosteler *models.Hosteler
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAPIError(http.StatusBadRequest, "Room not found")
			}
			return err
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND occupied < capacity", room.ID).
			UpdateColumn("occupied", gorm.Expr("occupied + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NewAPIError(http.StatusBadRequest, "Room reached its occupancy limit")
		}

		h := &models.Hosteler{
			Name:        name,
			PhoneNumber: phoneNumber,
			RoomID:      &room.ID,
		}
		if err := tx.Create(h).Error; err != nil {
			if isDuplicateKey(err) {
				return utils.NewAPIError(http.StatusConflict, "Hosteler with name or phone number already exists")
			}
			return err
		}

		if err := tx.First(&room, room.ID).Error; err != nil {
			return err
		}
		if room.Occupied >= room.Capacity {
			if err := tx.Model(&room).Update("occupancy_status", false).Error; err != nil {
				return err
			}
		}

		hosteler = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hosteler, nil
}

// Update changes the hosteler's name and/or phone number.
func (s *HostelerService) Update(hostelerID uint, name, phoneNumber string) (*models.Hosteler, error) {
	var hosteler models.Hosteler
	if err := s.DB.First(&hosteler, hostelerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAPIError(http.StatusNotFound, "Hosteler not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if name = strings.TrimSpace(name); name != "" {
		fields["name"] = name
	}
	if phoneNumber = strings.TrimSpace(phoneNumber); phoneNumber != "" {
		fields["phone_number"] = phoneNumber
	}
	if len(fields) > 0 {
		if err := s.DB.Model(&hosteler).Updates(fields).Error; err != nil {
			if isDuplicateKey(err) {
				return nil, utils.NewAPIError(http.StatusConflict, "Hosteler with name or phone number already exists")
			}
			return nil, err
		}
	}
	return &hosteler, nil
}

// Delete removes the hosteler, releases its seat and marks the room
// available again.
func (s *HostelerService) Delete(hostelerID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var hosteler models.Hosteler
		if err := tx.First(&hosteler, hostelerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAPIError(http.StatusNotFound, "Hosteler not found")
			}
			return err
		}

		if err := tx.Delete(&hosteler).Error; err != nil {
			return err
		}

		if hosteler.RoomID != nil {
			if err := tx.Model(&models.Room{}).
				Where("id = ? AND occupied > 0", *hosteler.RoomID).
				UpdateColumn("occupied", gorm.Expr("occupied - 1")).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Room{}).
				Where("id = ?", *hosteler.RoomID).
				Update("occupancy_status", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MarkPaid records one payment of the given type for the hosteler and
// persists the paid flag and payment reference on the hosteler row.
func (s *HostelerService) MarkPaid(hostelerID uint, paymentType string) (*HostelerDetails, error) {
	if strings.TrimSpace(paymentType) == "" {
		return nil, utils.NewAPIError(http.StatusBadRequest, "paymentType is required")
	}
	if !models.IsValidPaymentType(paymentType) {
		return nil, utils.NewAPIError(http.StatusBadRequest, "paymentType must be one of Cash, Credit, Debit, Upi")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var hosteler models.Hosteler
		if err := tx.First(&hosteler, hostelerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewAPIError(http.StatusNotFound, "Hosteler not found")
			}
			return err
		}

		payment := &models.Payment{
			RoomID:      hosteler.RoomID,
			HostelerID:  &hosteler.ID,
			PaymentType: paymentType,
			PaymentDate: datatypes.Date(time.Now()),
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&hosteler).Updates(map[string]interface{}{
			"is_paid":    true,
			"payment_id": payment.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Details(hostelerID)
}

// Details returns one hosteler joined with its room.
func (s *HostelerService) Details(hostelerID uint) (*HostelerDetails, error) {
	var details HostelerDetails
	res := s.detailsQuery(s.DB).Where("hostelers.id = ?", hostelerID).Scan(&details)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.NewAPIError(http.StatusNotFound, "Hosteler not found")
	}
	return &details, nil
}

// AllDetails returns every hosteler joined with its room.
func (s *HostelerService) AllDetails() ([]HostelerDetails, error) {
	var details []HostelerDetails
	if err := s.detailsQuery(s.DB).Order("hostelers.id ASC").Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// Paid lists hostelers that have paid; no room join, matching the original
// report.
func (s *HostelerService) Paid() ([]models.Hosteler, error) {
	var hostelers []models.Hosteler
	if err := s.DB.Where("is_paid = ?", true).Order("id ASC").Find(&hostelers).Error; err != nil {
		return nil, err
	}
	if len(hostelers) == 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "No hostelers have made payments")
	}
	return hostelers, nil
}

// Unpaid lists hostelers that have not paid, joined with their rooms.
func (s *HostelerService) Unpaid() ([]HostelerDetails, error) {
	var details []HostelerDetails
	err := s.detailsQuery(s.DB).Where("hostelers.is_paid = ?", false).Order("hostelers.id ASC").Scan(&details).Error
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, utils.NewAPIError(http.StatusBadRequest, "No unpaid hostelers found. All hostelers have made payments")
	}
	return details, nil
}
