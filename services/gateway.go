package services

import (
	"context"

	"lodging-backend/models"
)

// Store is the entity access handle exposed inside one transaction. Loads take
// row locks so two concurrent transitions touching the same room serialize on
// that row.
type Store interface {
	LoadBooking(id uint) (*models.Booking, error)
	LoadRoom(id uint) (*models.Room, error)
	SaveBooking(b *models.Booking) error
	SaveRoom(r *models.Room) error
}

// Gateway runs fn against a Store with all-or-nothing commit semantics: if fn
// returns an error, or the commit itself fails, nothing is written.
type Gateway interface {
	WithTransaction(ctx context.Context, fn func(tx Store) error) error
}
