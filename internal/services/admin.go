package services

import (
	"errors"

	"gorm.io/gorm"

	"clinic-appointment-server/internal/models"
)

// AdminService manages the administrator account.
type AdminService struct {
	DB *gorm.DB
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// Seed creates the admin account with the given credentials if no account
// with that email exists yet. Returns true when a new account was created.
func (s *AdminService) Seed(email, password string) (bool, error) {
	var existing models.Admin
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	admin := models.Admin{Email: email}
	if err := admin.SetPassword(password); err != nil {
		return false, err
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

// ByEmail fetches an admin by email address.
func (s *AdminService) ByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
