package services

import (
	"errors"
	"fmt"

	"lodging-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	if !room.Status.IsValid() {
		return room, fmt.Errorf("validation: invalid room status %q", room.Status)
	}
	err := s.DB.Create(&room).Error
	return room, err
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, err
	}
	return room, nil
}

// Update writes descriptive fields only. Status is omitted on purpose: the
// transition service is the sole writer of Room.Status.
func (s *RoomService) Update(room models.Room) error {
	return s.DB.Model(&models.Room{}).
		Where("id = ?", room.ID).
		Omit("status").
		Updates(room).Error
}

func (s *RoomService) Delete(id uint) error {
	return s.DB.Delete(&models.Room{}, id).Error
}
