package services

import (
	"lodging-backend/models"
)

// TransitionPlan is the merged write-set mandated by one transition: the new
// field values to persist plus the notifications to attempt after commit.
// Nil pointers mean "leave untouched". RoomStatus is a desired target; the
// orchestrator re-reads the room inside the transaction and writes only if
// the stored status differs.
type TransitionPlan struct {
	BookingStatus *models.BookingStatus
	PaymentStatus *models.PaymentStatus
	RoomStatus    *models.RoomStatus
	Notifications []NotificationKind
}

func (p *TransitionPlan) merge(other TransitionPlan) {
	if other.BookingStatus != nil {
		p.BookingStatus = other.BookingStatus
	}
	if other.PaymentStatus != nil {
		p.PaymentStatus = other.PaymentStatus
	}
	if other.RoomStatus != nil {
		p.RoomStatus = other.RoomStatus
	}
	p.Notifications = append(p.Notifications, other.Notifications...)
}

// BookingMachine validates booking lifecycle transitions and lists their
// mandated side effects.
type BookingMachine struct {
	// HoldRoomOnPending controls whether entering pending places a tentative
	// hold on the room before payment is confirmed.
	HoldRoomOnPending bool
}

func NewBookingMachine(holdRoomOnPending bool) *BookingMachine {
	return &BookingMachine{HoldRoomOnPending: holdRoomOnPending}
}

// Plan validates old -> new and returns the mandated write-set. The empty old
// status is the creation entry point. An unrecognized target is rejected with
// no side effects; a recognized but unreachable target is rejected as invalid.
func (m *BookingMachine) Plan(old, target models.BookingStatus) (TransitionPlan, error) {
	if !target.IsValid() {
		return TransitionPlan{}, &UnknownTransitionError{Field: "status", Value: string(target)}
	}
	if old != "" && !old.IsValid() {
		return TransitionPlan{}, &UnknownTransitionError{Field: "status", Value: string(old)}
	}
	if !old.CanTransitionTo(target) {
		return TransitionPlan{}, &InvalidTransitionError{Field: "status", From: string(old), To: string(target)}
	}

	plan := TransitionPlan{BookingStatus: &target}
	switch target {
	case models.BookingPending:
		// Tentative, unpaid hold.
		if m.HoldRoomOnPending {
			plan.RoomStatus = roomStatusPtr(models.RoomOccupied)
		}
	case models.BookingConfirmed:
		plan.RoomStatus = roomStatusPtr(models.RoomOccupied)
		plan.Notifications = append(plan.Notifications, NotifyBookingConfirmed)
	case models.BookingCheckedIn:
		// Room is already occupied; nothing to write.
	case models.BookingCheckedOut:
		plan.RoomStatus = roomStatusPtr(models.RoomAvailable)
		plan.Notifications = append(plan.Notifications, NotifyBookingCheckedOut)
	case models.BookingCancelled:
		plan.RoomStatus = roomStatusPtr(models.RoomAvailable)
		plan.Notifications = append(plan.Notifications, NotifyBookingCancelled)
	}
	return plan, nil
}

func roomStatusPtr(s models.RoomStatus) *models.RoomStatus { return &s }
