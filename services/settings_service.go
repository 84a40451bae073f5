package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reservas-backend/models"
)

// FallbackDepositPercent applies when no settings row exists yet.
const FallbackDepositPercent = 30

// SettingsService reads and writes the single hotel settings row.
type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

func (s *SettingsService) Get() (models.HotelSetting, error) {
	var setting models.HotelSetting
	if err := s.DB.First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HotelSetting{DefaultDepositPercent: FallbackDepositPercent}, nil
		}
		return models.HotelSetting{}, err
	}
	return setting, nil
}

type SettingsInput struct {
	Name                  string `json:"name"`
	Address               string `json:"address"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	DefaultDepositPercent int    `json:"default_deposit_percent"`
}

func (s *SettingsService) Update(input SettingsInput) (models.HotelSetting, error) {
	if input.DefaultDepositPercent <= 0 || input.DefaultDepositPercent > 100 {
		return models.HotelSetting{}, fmt.Errorf("%w: deposit percent must be between 1 and 100", ErrInvalidSettings)
	}

	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.HotelSetting{}, err
	}

	setting.Name = input.Name
	setting.Address = input.Address
	setting.Phone = input.Phone
	setting.Email = input.Email
	setting.DefaultDepositPercent = input.DefaultDepositPercent

	if err := s.DB.Save(&setting).Error; err != nil {
		return models.HotelSetting{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return setting, nil
}

// DefaultDepositPercent is what new reservations are created with. Falls
// back to 30 when settings are missing or unreadable.
func (s *SettingsService) DefaultDepositPercent() int {
	setting, err := s.Get()
	if err != nil || setting.DefaultDepositPercent <= 0 {
		return FallbackDepositPercent
	}
	return setting.DefaultDepositPercent
}
