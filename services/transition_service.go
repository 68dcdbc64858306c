package services

import (
	"context"
	"errors"
	"log"

	"lodging-backend/models"
)

// EntityType names the entity a transition event targets.
type EntityType string

const (
	EntityBooking EntityType = "booking"
	EntityRoom    EntityType = "room"
)

// TransitionField names the status-like field being changed.
type TransitionField string

const (
	FieldStatus        TransitionField = "status"
	FieldPaymentStatus TransitionField = "payment_status"
)

// TransitionEvent is one requested field change.
type TransitionEvent struct {
	Entity   EntityType
	ID       uint
	Field    TransitionField
	OldValue string
	NewValue string
}

// TransitionResult carries the entities as committed. Room is nil when the
// transition had no room side effect.
type TransitionResult struct {
	Booking *models.Booking
	Room    *models.Room
}

// TransitionService is the single entry point for status mutations. It is the
// only component permitted to write Room.Status, Booking.Status and
// Booking.PaymentStatus; every call commits its full write-set in one
// transaction and dispatches notifications only after a successful commit.
type TransitionService struct {
	gateway  Gateway
	notifier Notifier
	booking  *BookingMachine
	payment  *PaymentMachine
}

func NewTransitionService(gateway Gateway, notifier Notifier, holdRoomOnPending bool) *TransitionService {
	bm := NewBookingMachine(holdRoomOnPending)
	return &TransitionService{
		gateway:  gateway,
		notifier: notifier,
		booking:  bm,
		payment:  NewPaymentMachine(bm),
	}
}

// BookingMachine exposes the configured machine so the booking-creation flow
// can plan its initial room hold from the same table.
func (s *TransitionService) BookingMachine() *BookingMachine { return s.booking }

// Handle validates the event, computes the merged write-set (including any
// payment -> booking cascade), commits it atomically and then dispatches the
// collected notifications best-effort.
func (s *TransitionService) Handle(ctx context.Context, evt TransitionEvent) (TransitionResult, error) {
	if evt.OldValue == evt.NewValue {
		return s.loadUnchanged(ctx, evt)
	}

	switch evt.Entity {
	case EntityBooking:
		return s.handleBooking(ctx, evt)
	case EntityRoom:
		return s.handleRoom(ctx, evt)
	default:
		return TransitionResult{}, &UnknownTransitionError{Field: "entity", Value: string(evt.Entity)}
	}
}

// loadUnchanged returns the current entity without writes or notifications.
func (s *TransitionService) loadUnchanged(ctx context.Context, evt TransitionEvent) (TransitionResult, error) {
	var result TransitionResult
	err := s.gateway.WithTransaction(ctx, func(tx Store) error {
		switch evt.Entity {
		case EntityBooking:
			b, err := tx.LoadBooking(evt.ID)
			if err != nil {
				return err
			}
			result.Booking = b
		case EntityRoom:
			r, err := tx.LoadRoom(evt.ID)
			if err != nil {
				return err
			}
			result.Room = r
		default:
			return &UnknownTransitionError{Field: "entity", Value: string(evt.Entity)}
		}
		return nil
	})
	if err != nil {
		return TransitionResult{}, classify(err)
	}
	return result, nil
}

func (s *TransitionService) handleBooking(ctx context.Context, evt TransitionEvent) (TransitionResult, error) {
	var result TransitionResult
	var pending []NotificationKind

	err := s.gateway.WithTransaction(ctx, func(tx Store) error {
		booking, err := tx.LoadBooking(evt.ID)
		if err != nil {
			return err
		}

		// Plan from the value re-read inside the transaction, not the
		// caller's copy, so a stale event cannot bypass a guard.
		var plan TransitionPlan
		switch evt.Field {
		case FieldStatus:
			target := models.BookingStatus(evt.NewValue)
			if booking.Status == target {
				result.Booking = booking
				return nil
			}
			plan, err = s.booking.Plan(booking.Status, target)
		case FieldPaymentStatus:
			target := models.PaymentStatus(evt.NewValue)
			if booking.PaymentStatus == target {
				result.Booking = booking
				return nil
			}
			plan, err = s.payment.Plan(booking.Status, booking.PaymentStatus, target)
		default:
			return &UnknownTransitionError{Field: "field", Value: string(evt.Field)}
		}
		if err != nil {
			return err
		}

		if plan.BookingStatus != nil {
			booking.Status = *plan.BookingStatus
		}
		if plan.PaymentStatus != nil {
			booking.PaymentStatus = *plan.PaymentStatus
		}
		if err := tx.SaveBooking(booking); err != nil {
			return err
		}

		// The room row is re-read under lock and written at most once, and
		// only when the stored status actually differs.
		if plan.RoomStatus != nil {
			room, err := tx.LoadRoom(booking.RoomID)
			if err != nil {
				return err
			}
			if room.Status != *plan.RoomStatus {
				room.Status = *plan.RoomStatus
				if err := tx.SaveRoom(room); err != nil {
					return err
				}
			}
			result.Room = room
		}

		result.Booking = booking
		pending = plan.Notifications
		return nil
	})
	if err != nil {
		return TransitionResult{}, classify(err)
	}

	s.dispatch(pending, result.Booking)
	return result, nil
}

func (s *TransitionService) handleRoom(ctx context.Context, evt TransitionEvent) (TransitionResult, error) {
	// Rooms have exactly one status-like field.
	if evt.Field != FieldStatus {
		return TransitionResult{}, &UnknownTransitionError{Field: "field", Value: string(evt.Field)}
	}
	var result TransitionResult
	err := s.gateway.WithTransaction(ctx, func(tx Store) error {
		room, err := tx.LoadRoom(evt.ID)
		if err != nil {
			return err
		}
		target, err := TransitionRoomStatus(room.Status, models.RoomStatus(evt.NewValue))
		if err != nil {
			return err
		}
		if room.Status != target {
			room.Status = target
			if err := tx.SaveRoom(room); err != nil {
				return err
			}
		}
		result.Room = room
		return nil
	})
	if err != nil {
		return TransitionResult{}, classify(err)
	}
	return result, nil
}

// dispatch attempts every collected notification after the commit. Failures
// are logged with context and never surfaced; a committed transition is never
// undone by a delivery problem.
func (s *TransitionService) dispatch(kinds []NotificationKind, booking *models.Booking) {
	if booking == nil {
		return
	}
	for _, kind := range kinds {
		s.notify(kind, *booking)
	}
}

func (s *TransitionService) notify(kind NotificationKind, booking models.Booking) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("notification %s for booking %d panicked: %v", kind, booking.ID, r)
		}
	}()
	if err := s.notifier.Send(kind, booking); err != nil {
		log.Printf("notification %s for booking %d failed: %v", kind, booking.ID, err)
	}
}

// classify keeps transition and not-found errors typed for callers and wraps
// everything else (driver failures, commit failures) as a persistence error.
func classify(err error) error {
	var unknown *UnknownTransitionError
	var invalid *InvalidTransitionError
	var persistence *PersistenceError
	switch {
	case errors.As(err, &unknown), errors.As(err, &invalid), errors.As(err, &persistence):
		return err
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrRoomNotFound):
		return err
	default:
		return &PersistenceError{Err: err}
	}
}
