package services

import (
	"errors"

	"lodging-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest models.Guest) (models.Guest, error) {
	err := s.DB.Create(&guest).Error
	return guest, err
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, ErrGuestNotFound
		}
		return guest, err
	}
	return guest, nil
}

func (s *GuestService) Update(guest models.Guest) error {
	return s.DB.Model(&models.Guest{}).Where("id = ?", guest.ID).Updates(guest).Error
}

func (s *GuestService) Delete(id uint) error {
	return s.DB.Delete(&models.Guest{}, id).Error
}
