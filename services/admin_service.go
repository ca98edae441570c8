package services

import (
	"errors"
	"net/http"
	"strings"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// Register creates a new administrator. All fields are required after
// trimming; username and email must be unique.
func (s *AdminService) Register(fullName, email, username, password string) (*models.Admin, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	username = strings.ToLower(strings.TrimSpace(username))

	if fullName == "" || email == "" || username == "" || strings.TrimSpace(password) == "" {
		return nil, utils.NewAPIError(http.StatusBadRequest, "All fields are required")
	}

	var existing models.Admin
	err := s.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, utils.NewAPIError(http.StatusConflict, "Admin with email or username already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		FullName: fullName,
		Email:    email,
		Username: username,
		Password: hash,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, utils.NewAPIError(http.StatusConflict, "Admin with email or username already exists")
		}
		return nil, err
	}
	return admin, nil
}

// Authenticate looks the admin up by username or email and verifies the
// password against the stored hash.
func (s *AdminService) Authenticate(username, email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.DB.Where("username = ? OR email = ?", strings.ToLower(strings.TrimSpace(username)), strings.TrimSpace(email)).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAPIError(http.StatusNotFound, "Admin does not exist")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, utils.NewAPIError(http.StatusUnauthorized, "Invalid admin credentials")
	}
	return &admin, nil
}

// ChangePassword re-verifies the old password before storing the new hash.
func (s *AdminService) ChangePassword(admin *models.Admin, oldPassword, newPassword string) error {
	if !utils.CheckPasswordHash(oldPassword, admin.Password) {
		return utils.NewAPIError(http.StatusBadRequest, "Invalid old password")
	}
	if strings.TrimSpace(newPassword) == "" {
		return utils.NewAPIError(http.StatusBadRequest, "New password is required")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(admin).Update("password", hash).Error
}

// UpdateAccount updates the profile fields and returns the fresh record.
func (s *AdminService) UpdateAccount(adminID uint, fullName, email string) (*models.Admin, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, utils.NewAPIError(http.StatusBadRequest, "All fields are required")
	}

	err := s.DB.Model(&models.Admin{}).Where("id = ?", adminID).
		Updates(map[string]interface{}{"full_name": fullName, "email": email}).Error
	if err != nil {
		if isDuplicateKey(err) {
			return nil, utils.NewAPIError(http.StatusConflict, "Admin with email already exists")
		}
		return nil, err
	}

	var admin models.Admin
	if err := s.DB.First(&admin, adminID).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// Delete removes the administrator by ID.
func (s *AdminService) Delete(adminID uint) error {
	res := s.DB.Delete(&models.Admin{}, adminID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.NewAPIError(http.StatusNotFound, "Admin not found")
	}
	return nil
}

// GetByID resolves a token identity to a current admin record.
func (s *AdminService) GetByID(adminID uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAPIError(http.StatusUnauthorized, "Invalid access token")
		}
		return nil, err
	}
	return &admin, nil
}
