package services

import (
	"context"
	"errors"

	"lodging-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormGateway implements Gateway on top of *gorm.DB.
type GormGateway struct {
	DB *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{DB: db}
}

func (g *GormGateway) WithTransaction(ctx context.Context, fn func(tx Store) error) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{tx: tx})
	})
}

type gormStore struct {
	tx *gorm.DB
}

func (s *gormStore) LoadBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Guest").
		Preload("Room").
		First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *gormStore) LoadRoom(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// Saves omit associations: the preloaded Guest/Room snapshots must never be
// written back, only the row itself.
func (s *gormStore) SaveBooking(b *models.Booking) error {
	return s.tx.Omit(clause.Associations).Save(b).Error
}

func (s *gormStore) SaveRoom(r *models.Room) error {
	return s.tx.Omit(clause.Associations).Save(r).Error
}
