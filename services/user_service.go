package services

import (
	"errors"

	"github.com/RohitMacherla3/Viveo/models"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileInput struct {
	FullName string `json:"full_name"`
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := s.db.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	return s.db.Save(&user).Error
}

// Deactivate soft-disables the account; data stays for later export.
func (s *UserService) Deactivate(userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}
	user.Disabled = true
	return s.db.Save(&user).Error
}
