package services

import (
	"lodging-backend/models"

	"gorm.io/gorm"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Find(&types).Error
	return types, err
}

func (s *RoomTypeService) Create(rt models.RoomType) (models.RoomType, error) {
	err := s.DB.Create(&rt).Error
	return rt, err
}

func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Delete(&models.RoomType{}, id).Error
}
